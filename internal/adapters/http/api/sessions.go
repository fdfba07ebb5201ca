package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/okian/perftrack/internal/domain/ingest"
	"github.com/okian/perftrack/internal/domain/model"
	"github.com/okian/perftrack/pkg/logger"
)

// SessionsHandler serves session lifecycle and weekly upload routes.
type SessionsHandler struct {
	deps           Dependencies
	logger         logger.Logger
	maxUploadBytes int64
}

// NewSessionsHandler creates a new sessions handler.
func NewSessionsHandler(deps Dependencies, log logger.Logger, maxUploadBytes int64) *SessionsHandler {
	return &SessionsHandler{deps: deps, logger: log, maxUploadBytes: maxUploadBytes}
}

type weeksResponse struct {
	SessionID string `json:"session_id"`
	Weeks     []int  `json:"weeks"`
}

// HandleCreate handles POST /sessions.
func (h *SessionsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	sess, err := h.deps.CreateSession(r.Context())
	if err != nil {
		fail(r.Context(), h.logger, w, Wrap("api.create_session", err))
		return
	}
	w.Header().Set("Location", "/sessions/"+sess.ID)
	writeJSON(w, http.StatusCreated, sess)
}

// HandleGet handles GET /sessions/{id}.
func (h *SessionsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	sess, err := h.deps.Session(r.Context(), r.PathValue("id"))
	if err != nil {
		fail(r.Context(), h.logger, w, Wrap("api.get_session", err))
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// HandleDelete handles DELETE /sessions/{id}.
func (h *SessionsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.DeleteSession(r.Context(), r.PathValue("id")); err != nil {
		fail(r.Context(), h.logger, w, Wrap("api.delete_session", err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleWeeks handles GET /sessions/{id}/weeks.
func (h *SessionsHandler) HandleWeeks(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	weeks, err := h.deps.Weeks(r.Context(), id)
	if err != nil {
		fail(r.Context(), h.logger, w, Wrap("api.weeks", err))
		return
	}
	if weeks == nil {
		weeks = []int{}
	}
	writeJSON(w, http.StatusOK, weeksResponse{SessionID: id, Weeks: weeks})
}

// HandlePutWeek handles PUT /sessions/{id}/weeks/{week}. The body is a JSON
// table ({"columns": [...], "rows": [[...]]}) or, with Content-Type
// text/csv, a CSV file whose first line is the header.
func (h *SessionsHandler) HandlePutWeek(w http.ResponseWriter, r *http.Request) {
	const op = "api.put_week"
	week, err := pathInt(r, op, "week")
	if err != nil {
		fail(r.Context(), h.logger, w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	table, err := decodeTable(r)
	if err != nil {
		fail(r.Context(), h.logger, w, Wrap(op, err))
		return
	}

	res, err := h.deps.Upload(r.Context(), r.PathValue("id"), week, table)
	if err != nil {
		fail(r.Context(), h.logger, w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func decodeTable(r *http.Request) (model.Table, error) {
	mediaType := "application/json"
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return model.Table{}, fmt.Errorf("%w: %w", ErrUnsupportedType, err)
		}
		mediaType = mt
	}

	switch mediaType {
	case "application/json":
		var table model.Table
		dec := json.NewDecoder(r.Body)
		if err := dec.Decode(&table); err != nil {
			if errors.Is(err, io.EOF) {
				return model.Table{}, fmt.Errorf("%w: empty body", ErrBadRequest)
			}
			return model.Table{}, fmt.Errorf("%w: %w", ErrBadRequest, err)
		}
		return table, nil
	case "text/csv":
		table, err := ingest.ReadCSV(r.Body)
		if err != nil {
			return model.Table{}, fmt.Errorf("%w: %w", ErrBadRequest, err)
		}
		return table, nil
	}
	return model.Table{}, fmt.Errorf("%w: %s", ErrUnsupportedType, mediaType)
}

// HandleWeekSummary handles GET /sessions/{id}/weeks/{week}/summary.
func (h *SessionsHandler) HandleWeekSummary(w http.ResponseWriter, r *http.Request) {
	const op = "api.week_summary"
	week, err := pathInt(r, op, "week")
	if err != nil {
		fail(r.Context(), h.logger, w, err)
		return
	}
	sum, err := h.deps.WeekSummary(r.Context(), r.PathValue("id"), week)
	if err != nil {
		fail(r.Context(), h.logger, w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, sum)
}
