package model

import "errors"

// Sentinel kinds for weekly record errors.
var (
	ErrInvalidWeek = errors.New("invalid week")
)
