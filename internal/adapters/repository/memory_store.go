package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/okian/perftrack/internal/domain/metric"
	"github.com/okian/perftrack/internal/domain/model"
	"github.com/okian/perftrack/pkg/metrics"
)

// MemoryStore keeps weekly snapshots in memory.
//
// Snapshots are copied on the way in and out so callers can never mutate
// stored rows. A write swaps the whole week under the lock, so a reader sees
// either the old snapshot or the new one.
type MemoryStore struct {
	mu      sync.RWMutex
	weeks   map[int]model.Snapshot
	closed  bool
	metrics bool
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		weeks:   make(map[int]model.Snapshot),
		metrics: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PutWeek replaces the snapshot for snap.Week.
func (s *MemoryStore) PutWeek(_ context.Context, snap model.Snapshot) error {
	if err := model.ValidateWeek(snap.Week); err != nil {
		return err
	}
	start := time.Now()
	stored := snap.Clone()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.weeks[snap.Week] = stored
	s.mu.Unlock()

	if s.metrics {
		metrics.RecordRepositoryUpdateLatency(msSince(start))
	}
	return nil
}

// AthleteRow returns a copy of the athlete's row for week.
func (s *MemoryStore) AthleteRow(_ context.Context, name string, week int) (model.Row, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.weeks[week]
	if !ok {
		return nil, false
	}
	row, ok := snap.Rows[name]
	if !ok {
		return nil, false
	}
	return row.Clone(), true
}

// Column returns the non-null values of kind for week in upload order.
func (s *MemoryStore) Column(_ context.Context, week int, kind metric.Kind) []Entry {
	start := time.Now()
	s.mu.RLock()
	snap, ok := s.weeks[week]
	if !ok {
		s.mu.RUnlock()
		return nil
	}
	out := make([]Entry, 0, len(snap.Names))
	for _, name := range snap.Names {
		if v, ok := snap.Rows[name][kind]; ok {
			out = append(out, Entry{Name: name, Value: v})
		}
	}
	s.mu.RUnlock()

	if s.metrics {
		metrics.RecordRepositoryQueryLatency(msSince(start))
	}
	return out
}

// WeeksPresent returns the stored weeks in ascending order.
func (s *MemoryStore) WeeksPresent(_ context.Context) []int {
	s.mu.RLock()
	out := make([]int, 0, len(s.weeks))
	for w := range s.weeks {
		out = append(out, w)
	}
	s.mu.RUnlock()

	sort.Ints(out)
	return out
}

// Snapshot returns a copy of the snapshot for week.
func (s *MemoryStore) Snapshot(_ context.Context, week int) (model.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.weeks[week]
	if !ok {
		return model.Snapshot{}, false
	}
	return snap.Clone(), true
}

// Count returns the number of weeks stored.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.weeks)
}

// Close drops all snapshots. Later writes fail with ErrClosed.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.weeks = make(map[int]model.Snapshot)
	s.closed = true
	return nil
}

func msSince(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000
}
