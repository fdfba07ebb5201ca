package series

import "errors"

var (
	// ErrInvalidComparison is returned when a comparison names fewer than two,
	// more than four, or repeated athletes.
	ErrInvalidComparison = errors.New("invalid comparison")
	// ErrInvalidRange is returned when a report's start week is after its end.
	ErrInvalidRange = errors.New("invalid week range")
)
