package ingest

import "errors"

var (
	ErrMissingColumn = errors.New("missing column")
	ErrInvalidCell   = errors.New("invalid cell")
	ErrDuplicateRow  = errors.New("duplicate row")
)
