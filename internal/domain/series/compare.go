package series

import (
	"context"
	"fmt"

	"github.com/okian/perftrack/internal/domain/athlete"
	"github.com/okian/perftrack/internal/domain/metric"
)

// ComparisonEntry is one athlete's side of a head-to-head.
type ComparisonEntry struct {
	Name     string           `json:"name"`
	Position athlete.Position `json:"position"`
	// Available is false when the athlete has no row that week.
	Available bool   `json:"available"`
	Profile   []Axis `json:"profile"`
	// Missing lists the catalog metrics absent from Profile, so renderers can
	// line up axes that other athletes have.
	Missing []metric.Kind `json:"missing"`
}

// Comparison is a head-to-head for one week.
type Comparison struct {
	Week    int               `json:"week"`
	Entries []ComparisonEntry `json:"entries"`
}

// HeadToHead builds a profile vector for each named athlete in request order.
// Vectors are not intersected: each athlete shows the metrics they recorded.
func (a *Assembler) HeadToHead(ctx context.Context, names []string, week int) (Comparison, error) {
	if len(names) < MinCompare || len(names) > MaxCompare {
		return Comparison{}, fmt.Errorf("%w: need %d..%d athletes, got %d",
			ErrInvalidComparison, MinCompare, MaxCompare, len(names))
	}
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			return Comparison{}, fmt.Errorf("%w: %q listed twice", ErrInvalidComparison, n)
		}
		seen[n] = struct{}{}
	}

	out := Comparison{Week: week, Entries: make([]ComparisonEntry, 0, len(names))}
	for _, n := range names {
		profile, ok, err := a.ProfileVector(ctx, n, week)
		if err != nil {
			return Comparison{}, err
		}
		pos, _ := a.roster.LookupPosition(n)
		if profile == nil {
			profile = []Axis{}
		}
		out.Entries = append(out.Entries, ComparisonEntry{
			Name:      n,
			Position:  pos,
			Available: ok,
			Profile:   profile,
			Missing:   missing(profile),
		})
	}
	return out, nil
}

func missing(profile []Axis) []metric.Kind {
	have := make(map[metric.Kind]bool, len(profile))
	for _, ax := range profile {
		have[ax.Metric] = true
	}
	out := []metric.Kind{}
	for _, k := range metric.All() {
		if !have[k] {
			out = append(out, k)
		}
	}
	return out
}
