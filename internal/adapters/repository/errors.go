package repository

import (
	"errors"

	"github.com/okian/perftrack/internal/domain/model"
)

// Sentinel kinds for store errors.
var (
	// ErrInvalidWeek aliases the model error so callers can match either.
	ErrInvalidWeek = model.ErrInvalidWeek
	ErrClosed      = errors.New("store closed")
)
