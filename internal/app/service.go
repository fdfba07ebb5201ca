// Package service provides the analysis sessions behind the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/okian/perftrack/internal/domain/athlete"
	"github.com/okian/perftrack/internal/domain/ingest"
	"github.com/okian/perftrack/internal/domain/metric"
	"github.com/okian/perftrack/internal/domain/model"
	"github.com/okian/perftrack/pkg/logger"
	"github.com/okian/perftrack/pkg/metrics"
)

// Defaults.
const (
	DefaultMaxSessions        = 64
	DefaultSessionIdleTimeout = 2 * time.Hour
	DefaultSweepInterval      = time.Minute
)

// Service owns the roster and every open session. Each session has its own
// store, so uploads in one session are never visible in another.
type Service struct {
	mu sync.Mutex

	roster   *athlete.Roster
	sessions *gocache.Cache

	// Configuration
	maxSessions   int
	idleTimeout   time.Duration
	sweepInterval time.Duration

	// State
	started bool
	stopCh  chan struct{}
	wg      sync.WaitGroup

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRoster replaces the built-in roster.
func WithRoster(r *athlete.Roster) Option {
	return func(s *Service) {
		if r != nil {
			s.roster = r
		}
	}
}

// WithMaxSessions caps the number of open sessions. The least recently used
// session is closed to make room for a new one.
func WithMaxSessions(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxSessions = n
		}
	}
}

// WithSessionIdleTimeout sets how long an unused session survives.
// Zero keeps sessions until they are deleted or evicted.
func WithSessionIdleTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.idleTimeout = d
		}
	}
}

// WithSweepInterval sets how often expired sessions are closed.
func WithSweepInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.sweepInterval = d
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		roster:        athlete.Default(),
		maxSessions:   DefaultMaxSessions,
		idleTimeout:   DefaultSessionIdleTimeout,
		sweepInterval: DefaultSweepInterval,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}
	s.logger = s.logger.Named("service")
	expiry := s.idleTimeout
	if expiry == 0 {
		expiry = gocache.NoExpiration
	}
	// No janitor: the sweeper below owns expiry so Stop can end it.
	s.sessions = gocache.New(expiry, 0)
	s.sessions.OnEvicted(s.closeSession)
	return s
}

// Start launches the idle-session sweeper.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	s.stopCh = make(chan struct{})
	if s.idleTimeout > 0 {
		s.wg.Add(1)
		go s.sweep(s.stopCh)
	}

	s.started = true
	s.logger.Info(ctx, "analysis service started",
		logger.Int("athletes", s.roster.Len()),
		logger.Int("maxSessions", s.maxSessions),
		logger.Duration("idleTimeout", s.idleTimeout),
	)
	return nil
}

// Stop ends the sweeper and closes every session.
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	close(s.stopCh)
	s.started = false
	s.mu.Unlock()

	s.wg.Wait()

	s.mu.Lock()
	s.sessions.DeleteExpired()
	for id := range s.sessions.Items() {
		s.sessions.Delete(id)
	}
	s.mu.Unlock()

	s.logger.Info(context.Background(), "analysis service stopped")
}

func (s *Service) sweep(stop <-chan struct{}) {
	defer s.wg.Done()

	t := time.NewTicker(s.sweepInterval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			s.mu.Lock()
			s.sessions.DeleteExpired()
			s.mu.Unlock()
		}
	}
}

// Roster returns the rostered athletes matching f.
func (s *Service) Roster(_ context.Context, f athlete.Filter) []athlete.Athlete {
	return s.roster.List(f)
}

// RosterCounts returns the headcount per position.
func (s *Service) RosterCounts(_ context.Context) map[athlete.Position]int {
	return s.roster.Counts()
}

// Template returns the blank upload table.
func (s *Service) Template(_ context.Context) model.Table {
	return ingest.Template(s.roster)
}

// Catalog returns the metric definitions.
func (s *Service) Catalog(_ context.Context) []metric.Definition {
	return metric.Definitions()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := context.Background()
	items := s.sessions.Items()
	active := len(items)
	weeks := 0
	for _, item := range items {
		weeks += item.Object.(*session).store.Count(ctx)
	}
	metrics.UpdateActiveSessions(active)
	metrics.UpdateStoredWeeks(weeks)

	return map[string]interface{}{
		"started":        s.started,
		"athletes":       s.roster.Len(),
		"maxSessions":    s.maxSessions,
		"activeSessions": active,
		"storedWeeks":    weeks,
		"idleTimeout":    s.idleTimeout.String(),
	}
}
