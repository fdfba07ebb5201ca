package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/okian/perftrack/internal/adapters/repository"
	"github.com/okian/perftrack/internal/domain/series"
	"github.com/okian/perftrack/internal/domain/types"
	"github.com/okian/perftrack/pkg/logger"
	"github.com/okian/perftrack/pkg/metrics"
)

// session is one user's isolated workspace. mu makes an upload exclusive
// against every read of the same session.
type session struct {
	id       string
	created  time.Time
	lastUsed atomic.Int64

	mu    sync.RWMutex
	store *repository.MemoryStore
	asm   *series.Assembler
}

func (s *session) touch(now time.Time) { s.lastUsed.Store(now.UnixNano()) }

// CreateSession opens an empty session.
func (s *Service) CreateSession(ctx context.Context) (types.Session, error) {
	now := time.Now()
	store := repository.NewMemoryStore()
	sess := &session{
		id:      uuid.New().String(),
		created: now,
		store:   store,
		asm:     series.New(s.roster, store),
	}
	sess.touch(now)

	s.mu.Lock()
	s.sessions.DeleteExpired()
	for s.sessions.ItemCount() >= s.maxSessions {
		if !s.evictOldestLocked(ctx) {
			break
		}
	}
	s.sessions.SetDefault(sess.id, sess)
	info := s.infoLocked(ctx, sess)
	s.mu.Unlock()

	metrics.RecordSessionCreated()
	s.logger.Info(ctx, "session created", logger.String("session", sess.id))
	return info, nil
}

// Session returns the session's description and marks it used.
func (s *Service) Session(ctx context.Context, id string) (types.Session, error) {
	sess, err := s.acquire(ctx, id)
	if err != nil {
		return types.Session{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.infoLocked(ctx, sess), nil
}

// DeleteSession closes a session and drops its data.
func (s *Service) DeleteSession(ctx context.Context, id string) error {
	s.mu.Lock()
	_, ok := s.sessions.Get(id)
	if ok {
		s.sessions.Delete(id)
	}
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	s.logger.Info(ctx, "session deleted", logger.String("session", id))
	return nil
}

// acquire looks a session up and refreshes its idle deadline.
func (s *Service) acquire(_ context.Context, id string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.sessions.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	sess := v.(*session)
	sess.touch(time.Now())
	s.sessions.SetDefault(id, sess)
	return sess, nil
}

// read runs fn with shared access to the session.
func (s *Service) read(ctx context.Context, id string, fn func(*session) error) error {
	sess, err := s.acquire(ctx, id)
	if err != nil {
		return err
	}
	sess.mu.RLock()
	defer sess.mu.RUnlock()
	return fn(sess)
}

// write runs fn with exclusive access to the session.
func (s *Service) write(ctx context.Context, id string, fn func(*session) error) error {
	sess, err := s.acquire(ctx, id)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	err = fn(sess)
	if errors.Is(err, repository.ErrClosed) {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return err
}

func (s *Service) evictOldestLocked(ctx context.Context) bool {
	var (
		oldest   string
		oldestAt int64
	)
	for id, item := range s.sessions.Items() {
		at := item.Object.(*session).lastUsed.Load()
		if oldest == "" || at < oldestAt {
			oldest, oldestAt = id, at
		}
	}
	if oldest == "" {
		return false
	}
	s.sessions.Delete(oldest)
	metrics.RecordSessionEvicted()
	s.logger.Warn(ctx, "session evicted to make room",
		logger.String("session", oldest),
		logger.Int("maxSessions", s.maxSessions),
	)
	return true
}

func (s *Service) infoLocked(ctx context.Context, sess *session) types.Session {
	info := types.Session{
		ID:        sess.id,
		CreatedAt: sess.created,
		Weeks:     sess.store.WeeksPresent(ctx),
	}
	if _, exp, ok := s.sessions.GetWithExpiration(sess.id); ok && !exp.IsZero() {
		info.ExpiresAt = &exp
	}
	return info
}

// closeSession runs whenever the cache drops a session.
func (s *Service) closeSession(id string, v interface{}) {
	sess, ok := v.(*session)
	if !ok {
		return
	}
	sess.mu.Lock()
	_ = sess.store.Close()
	sess.mu.Unlock()

	metrics.RecordSessionClosed()
	s.logger.Debug(context.Background(), "session closed", logger.String("session", id))
}
