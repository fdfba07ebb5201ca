package api

import (
	"errors"
	"fmt"
	"net/http"

	service "github.com/okian/perftrack/internal/app"
	"github.com/okian/perftrack/internal/domain/athlete"
	"github.com/okian/perftrack/internal/domain/ingest"
	"github.com/okian/perftrack/internal/domain/model"
	"github.com/okian/perftrack/internal/domain/series"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest      = errors.New("bad request")
	ErrPayloadTooLarge = errors.New("payload too large")
	ErrUnsupportedType = errors.New("unsupported media type")
)

// Error carries the failing handler op and a sentinel kind alongside the
// underlying cause.
type Error struct {
	Op   string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Err == nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	case e.Kind == nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is.
func (e *Error) Unwrap() []error {
	out := make([]error, 0, 2)
	if e.Kind != nil {
		out = append(out, e.Kind)
	}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

// NewKind returns an Error of kind with no further cause.
func NewKind(op string, kind error) error {
	return &Error{Op: op, Kind: kind}
}

// Wrap attaches op to err. Nil stays nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

// WrapKind attaches op and kind to err.
func WrapKind(op string, kind, err error) error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// classify maps an error to its HTTP status and response code.
func classify(err error) (int, string) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge), errors.Is(err, ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge, "payload_too_large"
	case errors.Is(err, ErrUnsupportedType):
		return http.StatusUnsupportedMediaType, "unsupported_media_type"
	case errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound, "session_not_found"
	case errors.Is(err, athlete.ErrNotFound):
		return http.StatusNotFound, "athlete_not_found"
	case errors.Is(err, model.ErrInvalidWeek):
		return http.StatusBadRequest, "invalid_week"
	case errors.Is(err, ingest.ErrMissingColumn):
		return http.StatusBadRequest, "missing_column"
	case errors.Is(err, series.ErrInvalidComparison):
		return http.StatusBadRequest, "invalid_comparison"
	case errors.Is(err, series.ErrInvalidRange):
		return http.StatusBadRequest, "invalid_range"
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, "bad_request"
	}
	return http.StatusInternalServerError, "internal_error"
}
