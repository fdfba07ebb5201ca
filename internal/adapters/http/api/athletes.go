package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/okian/perftrack/internal/domain/metric"
	"github.com/okian/perftrack/internal/domain/model"
	"github.com/okian/perftrack/pkg/logger"
)

// AthletesHandler serves per-athlete analytics and comparisons.
type AthletesHandler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewAthletesHandler creates a new athlete analytics handler.
func NewAthletesHandler(deps Dependencies, log logger.Logger) *AthletesHandler {
	return &AthletesHandler{deps: deps, logger: log}
}

// HandleTrend handles GET /sessions/{id}/athletes/{name}/trend?metric=.
func (h *AthletesHandler) HandleTrend(w http.ResponseWriter, r *http.Request) {
	const op = "api.trend"
	raw := r.URL.Query().Get("metric")
	if raw == "" {
		fail(r.Context(), h.logger, w, WrapKind(op, ErrBadRequest, errors.New("missing metric")))
		return
	}
	kind, ok := metric.Parse(raw)
	if !ok {
		fail(r.Context(), h.logger, w, WrapKind(op, ErrBadRequest, fmt.Errorf("unknown metric %q", raw)))
		return
	}
	out, err := h.deps.Trend(r.Context(), r.PathValue("id"), r.PathValue("name"), kind)
	if err != nil {
		fail(r.Context(), h.logger, w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleProfile handles GET /sessions/{id}/athletes/{name}/profile?week=.
func (h *AthletesHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	const op = "api.profile"
	week, err := queryInt(r, op, "week", 0, true)
	if err != nil {
		fail(r.Context(), h.logger, w, err)
		return
	}
	out, err := h.deps.Profile(r.Context(), r.PathValue("id"), r.PathValue("name"), week)
	if err != nil {
		fail(r.Context(), h.logger, w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleReport handles GET /sessions/{id}/athletes/{name}/report?start=&end=.
// The range defaults to the whole season.
func (h *AthletesHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	const op = "api.report"
	start, err := queryInt(r, op, "start", model.FirstWeek, false)
	if err != nil {
		fail(r.Context(), h.logger, w, err)
		return
	}
	end, err := queryInt(r, op, "end", model.LastWeek, false)
	if err != nil {
		fail(r.Context(), h.logger, w, err)
		return
	}
	out, err := h.deps.Report(r.Context(), r.PathValue("id"), r.PathValue("name"), start, end)
	if err != nil {
		fail(r.Context(), h.logger, w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleBodyWeight handles GET /sessions/{id}/athletes/{name}/bodyweight?week=.
func (h *AthletesHandler) HandleBodyWeight(w http.ResponseWriter, r *http.Request) {
	const op = "api.bodyweight"
	week, err := queryInt(r, op, "week", 0, true)
	if err != nil {
		fail(r.Context(), h.logger, w, err)
		return
	}
	out, err := h.deps.BodyWeight(r.Context(), r.PathValue("id"), r.PathValue("name"), week)
	if err != nil {
		fail(r.Context(), h.logger, w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleCompare handles GET /sessions/{id}/compare?week=&athlete=&athlete=.
// Names contain commas, so each athlete is its own parameter.
func (h *AthletesHandler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	const op = "api.compare"
	week, err := queryInt(r, op, "week", 0, true)
	if err != nil {
		fail(r.Context(), h.logger, w, err)
		return
	}
	out, err := h.deps.Compare(r.Context(), r.PathValue("id"), queryList(r, "athlete", true), week)
	if err != nil {
		fail(r.Context(), h.logger, w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, out)
}
