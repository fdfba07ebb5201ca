// Package model contains the weekly record shapes passed between layers.
package model

import (
	"fmt"

	"github.com/okian/perftrack/internal/domain/metric"
)

// Program weeks. Uploads outside this range are rejected.
const (
	FirstWeek = 1
	LastWeek  = 12
)

// ValidateWeek returns ErrInvalidWeek when week is outside FirstWeek..LastWeek.
func ValidateWeek(week int) error {
	if week < FirstWeek || week > LastWeek {
		return fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidWeek, week, FirstWeek, LastWeek)
	}
	return nil
}

// Row holds one athlete's recorded values for a week.
// A metric without a key has no value that week; it is never zero-filled.
type Row map[metric.Kind]float64

// Value returns the recorded value for k.
func (r Row) Value(k metric.Kind) (float64, bool) {
	v, ok := r[k]
	return v, ok
}

// Kinds returns the recorded metrics in catalog order.
func (r Row) Kinds() []metric.Kind {
	out := make([]metric.Kind, 0, len(r))
	for _, k := range metric.All() {
		if _, ok := r[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

// Clone returns an independent copy of r.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Snapshot is the full set of rows captured by one week's upload.
type Snapshot struct {
	Week int
	// Rows is keyed by athlete name.
	Rows map[string]Row
	// Names lists the row keys in upload order.
	Names []string
}

// NewSnapshot returns an empty snapshot for week.
func NewSnapshot(week int) Snapshot {
	return Snapshot{Week: week, Rows: make(map[string]Row)}
}

// Add appends a row. It reports false and leaves the snapshot unchanged when
// name already has a row.
func (s *Snapshot) Add(name string, row Row) bool {
	if s.Rows == nil {
		s.Rows = make(map[string]Row)
	}
	if _, dup := s.Rows[name]; dup {
		return false
	}
	s.Rows[name] = row
	s.Names = append(s.Names, name)
	return true
}

// Len returns the number of rows.
func (s Snapshot) Len() int { return len(s.Names) }

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Week:  s.Week,
		Rows:  make(map[string]Row, len(s.Rows)),
		Names: make([]string, len(s.Names)),
	}
	copy(out.Names, s.Names)
	for name, row := range s.Rows {
		out.Rows[name] = row.Clone()
	}
	return out
}
