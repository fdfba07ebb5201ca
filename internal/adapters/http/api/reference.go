package api

import (
	"net/http"
	"strings"

	"github.com/okian/perftrack/internal/domain/athlete"
	"github.com/okian/perftrack/internal/domain/ingest"
	"github.com/okian/perftrack/pkg/logger"
)

// TemplateFilename is suggested to clients downloading the CSV template.
const TemplateFilename = "weekly-template.csv"

// ReferenceHandler serves the roster, metric catalog and upload template.
type ReferenceHandler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewReferenceHandler creates a new reference data handler.
func NewReferenceHandler(deps Dependencies, log logger.Logger) *ReferenceHandler {
	return &ReferenceHandler{deps: deps, logger: log}
}

type rosterResponse struct {
	Athletes []athlete.Athlete       `json:"athletes"`
	Counts   map[athlete.Position]int `json:"counts"`
}

// HandleCatalog handles GET /catalog.
func (h *ReferenceHandler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Catalog(r.Context()))
}

// HandleRoster handles GET /roster?position=&q=.
func (h *ReferenceHandler) HandleRoster(w http.ResponseWriter, r *http.Request) {
	const op = "api.roster"
	var f athlete.Filter
	for _, raw := range queryList(r, "position", false) {
		pos, err := athlete.ParsePosition(raw)
		if err != nil {
			fail(r.Context(), h.logger, w, WrapKind(op, ErrBadRequest, err))
			return
		}
		f.Positions = append(f.Positions, pos)
	}
	f.Query = strings.TrimSpace(r.URL.Query().Get("q"))

	athletes := h.deps.Roster(r.Context(), f)
	if athletes == nil {
		athletes = []athlete.Athlete{}
	}
	writeJSON(w, http.StatusOK, rosterResponse{
		Athletes: athletes,
		Counts:   h.deps.RosterCounts(r.Context()),
	})
}

// HandleTemplate handles GET /roster/template. CSV unless format=json.
func (h *ReferenceHandler) HandleTemplate(w http.ResponseWriter, r *http.Request) {
	const op = "api.template"
	table := h.deps.Template(r.Context())

	switch strings.ToLower(r.URL.Query().Get("format")) {
	case "json":
		writeJSON(w, http.StatusOK, table)
	case "", "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+TemplateFilename+`"`)
		if err := ingest.WriteCSV(w, table); err != nil {
			h.logger.Error(r.Context(), "template write failed", logger.Error(Wrap(op, err)))
		}
	default:
		fail(r.Context(), h.logger, w, NewKind(op, ErrBadRequest))
	}
}
