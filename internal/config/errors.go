package config

import "errors"

var (
	// ErrInvalidConfig marks a setting or roster entry that failed validation.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrLoadConfig marks a file or environment source that could not be read.
	ErrLoadConfig = errors.New("load config failed")
)
