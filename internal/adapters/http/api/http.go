// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/perftrack/internal/domain/athlete"
	"github.com/okian/perftrack/internal/domain/metric"
	"github.com/okian/perftrack/internal/domain/model"
	"github.com/okian/perftrack/internal/domain/series"
	"github.com/okian/perftrack/internal/domain/types"
	"github.com/okian/perftrack/pkg/logger"
)

// DefaultMaxUploadBytes bounds week upload bodies unless overridden.
const DefaultMaxUploadBytes int64 = 1 << 20

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	StatsProvider

	// Reference data.
	Roster(ctx context.Context, f athlete.Filter) []athlete.Athlete
	RosterCounts(ctx context.Context) map[athlete.Position]int
	Template(ctx context.Context) model.Table
	Catalog(ctx context.Context) []metric.Definition

	// Sessions.
	CreateSession(ctx context.Context) (types.Session, error)
	Session(ctx context.Context, id string) (types.Session, error)
	DeleteSession(ctx context.Context, id string) error

	// Weekly data and analytics.
	Upload(ctx context.Context, id string, week int, table model.Table) (types.UploadResult, error)
	Weeks(ctx context.Context, id string) ([]int, error)
	WeekSummary(ctx context.Context, id string, week int) (types.WeekSummary, error)
	Trend(ctx context.Context, id, name string, kind metric.Kind) (types.Trend, error)
	Profile(ctx context.Context, id, name string, week int) (types.Profile, error)
	Report(ctx context.Context, id, name string, start, end int) (types.RangeReport, error)
	BodyWeight(ctx context.Context, id, name string, week int) (types.BodyWeight, error)
	Compare(ctx context.Context, id string, names []string, week int) (series.Comparison, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	logger         logger.Logger
	maxUploadBytes int64

	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	referenceHandler *ReferenceHandler
	sessionsHandler  *SessionsHandler
	athletesHandler  *AthletesHandler
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for unexpected handler failures.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxUploadBytes bounds the size of a week upload body.
func WithMaxUploadBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxUploadBytes = n
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, opts ...Option) *Server {
	s := &Server{maxUploadBytes: DefaultMaxUploadBytes}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Nop()
	}
	s.logger = s.logger.Named("api")

	s.healthHandler = NewHealthHandler()
	s.statsHandler = NewStatsHandler(deps)
	s.referenceHandler = NewReferenceHandler(deps, s.logger)
	s.sessionsHandler = NewSessionsHandler(deps, s.logger, s.maxUploadBytes)
	s.athletesHandler = NewAthletesHandler(deps, s.logger)
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	route := func(pattern, endpoint string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, MetricsMiddleware(h, endpoint))
	}

	route("GET /healthz", "healthz", s.healthHandler.HandleHealth)
	route("GET /stats", "stats", s.statsHandler.HandleStats)

	route("GET /catalog", "catalog", s.referenceHandler.HandleCatalog)
	route("GET /roster", "roster", s.referenceHandler.HandleRoster)
	route("GET /roster/template", "roster_template", s.referenceHandler.HandleTemplate)

	route("POST /sessions", "sessions_create", s.sessionsHandler.HandleCreate)
	route("GET /sessions/{id}", "sessions_get", s.sessionsHandler.HandleGet)
	route("DELETE /sessions/{id}", "sessions_delete", s.sessionsHandler.HandleDelete)
	route("GET /sessions/{id}/weeks", "weeks", s.sessionsHandler.HandleWeeks)
	route("PUT /sessions/{id}/weeks/{week}", "weeks_put", s.sessionsHandler.HandlePutWeek)
	route("GET /sessions/{id}/weeks/{week}/summary", "weeks_summary", s.sessionsHandler.HandleWeekSummary)

	route("GET /sessions/{id}/athletes/{name}/trend", "athlete_trend", s.athletesHandler.HandleTrend)
	route("GET /sessions/{id}/athletes/{name}/profile", "athlete_profile", s.athletesHandler.HandleProfile)
	route("GET /sessions/{id}/athletes/{name}/report", "athlete_report", s.athletesHandler.HandleReport)
	route("GET /sessions/{id}/athletes/{name}/bodyweight", "athlete_bodyweight", s.athletesHandler.HandleBodyWeight)
	route("GET /sessions/{id}/compare", "compare", s.athletesHandler.HandleCompare)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// fail maps err to a status and writes it. Server errors are logged.
func fail(ctx context.Context, log logger.Logger, w http.ResponseWriter, err error) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError {
		log.Error(ctx, "request failed", logger.Error(err))
	}
	writeError(w, status, code, err)
}
