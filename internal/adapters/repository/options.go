package repository

import "github.com/okian/perftrack/internal/domain/model"

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithSnapshots seeds the store with snapshots. Invalid weeks are skipped.
func WithSnapshots(snaps ...model.Snapshot) Option {
	return func(s *MemoryStore) {
		for _, snap := range snaps {
			if model.ValidateWeek(snap.Week) == nil {
				s.weeks[snap.Week] = snap.Clone()
			}
		}
	}
}

// WithoutMetrics stops the store from reporting latencies. Useful for
// throwaway stores built in tests and tools.
func WithoutMetrics() Option {
	return func(s *MemoryStore) {
		s.metrics = false
	}
}
