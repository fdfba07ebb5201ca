// Package aggregate computes per-week statistics over a session's store.
package aggregate

import (
	"context"
	"math"

	"github.com/okian/perftrack/internal/adapters/repository"
	"github.com/okian/perftrack/internal/domain/athlete"
	"github.com/okian/perftrack/internal/domain/metric"
	"github.com/okian/perftrack/internal/domain/model"
	"github.com/okian/perftrack/internal/domain/scoring"
)

// StableBand is the absolute body-weight change, in percent, below which an
// athlete is classified as Stable.
const StableBand = 2.0

// Trend classifies a body-weight change.
type Trend int

const (
	Stable Trend = iota
	Gaining
	Losing
)

var trendNames = [...]string{"stable", "gaining", "losing"}

func (t Trend) String() string {
	if t < 0 || int(t) >= len(trendNames) {
		return "unknown"
	}
	return trendNames[t]
}

// MarshalText encodes the trend as its lower-case name.
func (t Trend) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// Classify maps a percent change onto a Trend.
func Classify(pct float64) Trend {
	switch {
	case math.Abs(pct) < StableBand:
		return Stable
	case pct > 0:
		return Gaining
	default:
		return Losing
	}
}

// WeightChange is an athlete's body-weight change relative to week 1.
type WeightChange struct {
	Week     int     `json:"week"`
	Baseline float64 `json:"baseline"`
	Current  float64 `json:"current"`
	DeltaLbs float64 `json:"delta_lbs"`
	Pct      float64 `json:"pct"`
	Trend    Trend   `json:"trend"`
}

// Engine answers aggregate questions for one store.
type Engine struct {
	roster *athlete.Roster
	store  repository.Store
}

// New returns an Engine over store, resolving positions through roster.
func New(roster *athlete.Roster, store repository.Store) *Engine {
	return &Engine{roster: roster, store: store}
}

// PositionAverage returns the mean of kind among athletes in pos for week.
// Rows for names missing from the roster have no position and are ignored.
func (e *Engine) PositionAverage(ctx context.Context, pos athlete.Position, week int, kind metric.Kind) (float64, bool) {
	var sum float64
	var n int
	for _, entry := range e.store.Column(ctx, week, kind) {
		if !e.roster.InPosition(entry.Name, pos) {
			continue
		}
		sum += entry.Value
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// TeamBest returns the best recorded value of kind for week: the minimum for
// lower-is-better metrics, the maximum otherwise.
func (e *Engine) TeamBest(ctx context.Context, week int, kind metric.Kind) (float64, bool) {
	return best(kind, repository.Values(e.store.Column(ctx, week, kind)))
}

func best(kind metric.Kind, values []float64) (float64, bool) {
	lo, hi, ok := scoring.Bounds(values)
	if !ok {
		return 0, false
	}
	if kind.LowerIsBetter() {
		return lo, true
	}
	return hi, true
}

// BodyWeightChange compares the athlete's body weight in week against week 1.
// The result is absent when either value is missing or the baseline is zero.
func (e *Engine) BodyWeightChange(ctx context.Context, name string, week int) (WeightChange, bool, error) {
	if _, err := e.roster.Lookup(name); err != nil {
		return WeightChange{}, false, err
	}
	if err := model.ValidateWeek(week); err != nil {
		return WeightChange{}, false, err
	}

	base, ok := e.bodyWeight(ctx, name, model.FirstWeek)
	if !ok || base == 0 {
		return WeightChange{}, false, nil
	}
	cur, ok := e.bodyWeight(ctx, name, week)
	if !ok {
		return WeightChange{}, false, nil
	}

	pct := scoring.Round((cur-base)/base*100, 2)
	return WeightChange{
		Week:     week,
		Baseline: base,
		Current:  cur,
		DeltaLbs: scoring.Round(cur-base, 2),
		Pct:      pct,
		Trend:    Classify(pct),
	}, true, nil
}

func (e *Engine) bodyWeight(ctx context.Context, name string, week int) (float64, bool) {
	row, ok := e.store.AthleteRow(ctx, name, week)
	if !ok {
		return 0, false
	}
	return row.Value(metric.BodyWeight)
}
