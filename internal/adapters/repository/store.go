// Package repository holds weekly snapshots for one session.
package repository

import (
	"context"

	"github.com/okian/perftrack/internal/domain/metric"
	"github.com/okian/perftrack/internal/domain/model"
)

// Entry is one non-null value of a week's metric column.
type Entry struct {
	Name  string
	Value float64
}

// Store provides read/write access to weekly snapshots.
type Store interface {
	// PutWeek replaces the snapshot for snap.Week wholesale.
	// Returns model.ErrInvalidWeek when the week is outside 1..12.
	PutWeek(ctx context.Context, snap model.Snapshot) error

	// AthleteRow returns the athlete's row for week. The second result is
	// false when the week has no snapshot or the athlete no row in it.
	AthleteRow(ctx context.Context, name string, week int) (model.Row, bool)

	// Column returns the non-null values of kind for week in upload order.
	Column(ctx context.Context, week int, kind metric.Kind) []Entry

	// WeeksPresent returns the weeks holding a snapshot, ascending.
	WeeksPresent(ctx context.Context) []int

	// Snapshot returns a copy of the snapshot for week.
	Snapshot(ctx context.Context, week int) (model.Snapshot, bool)

	// Count returns the number of weeks stored.
	Count(ctx context.Context) int
}

// Values extracts the values of a column.
func Values(column []Entry) []float64 {
	out := make([]float64, len(column))
	for i, e := range column {
		out[i] = e.Value
	}
	return out
}
