package athlete

import "errors"

// Sentinel kinds for roster errors.
var (
	ErrNotFound         = errors.New("athlete not found")
	ErrInvalidPosition  = errors.New("invalid position")
	ErrInvalidAthlete   = errors.New("invalid athlete")
	ErrDuplicateAthlete = errors.New("duplicate athlete")
	ErrEmptyRoster      = errors.New("empty roster")
)
