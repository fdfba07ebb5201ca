// Package series builds chart-ready sequences from weekly snapshots: trends,
// normalized profile vectors, head-to-head comparisons and range reports.
package series

import (
	"context"

	"github.com/okian/perftrack/internal/adapters/repository"
	"github.com/okian/perftrack/internal/domain/aggregate"
	"github.com/okian/perftrack/internal/domain/athlete"
	"github.com/okian/perftrack/internal/domain/metric"
	"github.com/okian/perftrack/internal/domain/model"
	"github.com/okian/perftrack/internal/domain/scoring"
)

// Comparison bounds.
const (
	MinCompare = 2
	MaxCompare = 4
)

// Point is one recorded value in a trend.
type Point struct {
	Week  int     `json:"week"`
	Value float64 `json:"value"`
}

// TrendSummary compares the first and last points of a trend.
type TrendSummary struct {
	StartWeek int     `json:"start_week"`
	EndWeek   int     `json:"end_week"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
	Delta     float64 `json:"delta"`
	PctDelta  float64 `json:"pct_delta"`
}

// Axis is one metric of a profile vector. All three scores are normalized
// against the same week column.
type Axis struct {
	Metric      metric.Kind `json:"metric"`
	Label       string      `json:"label"`
	Athlete     float64     `json:"athlete"`
	PositionAvg float64     `json:"position_avg"`
	TeamBest    float64     `json:"team_best"`
}

// Assembler builds series for one store.
type Assembler struct {
	roster *athlete.Roster
	store  repository.Store
	agg    *aggregate.Engine
}

// New returns an Assembler over store.
func New(roster *athlete.Roster, store repository.Store) *Assembler {
	return &Assembler{
		roster: roster,
		store:  store,
		agg:    aggregate.New(roster, store),
	}
}

// Aggregates exposes the aggregate engine sharing this assembler's store.
func (a *Assembler) Aggregates() *aggregate.Engine { return a.agg }

// AthleteTrend returns the athlete's recorded values of kind in ascending
// week order. Weeks without a value are skipped, never zero-filled.
func (a *Assembler) AthleteTrend(ctx context.Context, name string, kind metric.Kind) ([]Point, error) {
	if _, err := a.roster.Lookup(name); err != nil {
		return nil, err
	}
	out := []Point{}
	for _, week := range a.store.WeeksPresent(ctx) {
		row, ok := a.store.AthleteRow(ctx, name, week)
		if !ok {
			continue
		}
		if v, ok := row.Value(kind); ok {
			out = append(out, Point{Week: week, Value: v})
		}
	}
	return out, nil
}

// Summarize reports the change between the first and last points. It returns
// false for an empty trend, which has no defined change.
func Summarize(points []Point) (TrendSummary, bool) {
	if len(points) == 0 {
		return TrendSummary{}, false
	}
	first, last := points[0], points[len(points)-1]
	delta := scoring.Round(last.Value-first.Value, 2)
	return TrendSummary{
		StartWeek: first.Week,
		EndWeek:   last.Week,
		Start:     first.Value,
		End:       last.Value,
		Delta:     delta,
		PctDelta:  pctChange(first.Value, last.Value),
	}, true
}

// ProfileVector scores every metric the athlete recorded in week. The vector
// length varies with the athlete's row. It returns false when the athlete has
// no row that week.
func (a *Assembler) ProfileVector(ctx context.Context, name string, week int) ([]Axis, bool, error) {
	who, err := a.roster.Lookup(name)
	if err != nil {
		return nil, false, err
	}
	if err := model.ValidateWeek(week); err != nil {
		return nil, false, err
	}
	row, ok := a.store.AthleteRow(ctx, name, week)
	if !ok {
		return nil, false, nil
	}

	out := make([]Axis, 0, len(row))
	for _, kind := range row.Kinds() {
		v := row[kind]
		column := repository.Values(a.store.Column(ctx, week, kind))

		ax := Axis{
			Metric:  kind,
			Label:   kind.Label(),
			Athlete: scoring.NormalizeValue(v, kind, column),
		}
		// The athlete's own value is in the column, so both of these exist.
		if avg, ok := a.agg.PositionAverage(ctx, who.Position, week, kind); ok {
			ax.PositionAvg = scoring.NormalizeValue(avg, kind, column)
		}
		if top, ok := a.agg.TeamBest(ctx, week, kind); ok {
			ax.TeamBest = scoring.NormalizeValue(top, kind, column)
		}
		out = append(out, ax)
	}
	return out, true, nil
}

// pctChange is 0 when start is 0. That avoids the division; it does not mean
// nothing changed.
func pctChange(start, end float64) float64 {
	if start == 0 {
		return 0
	}
	return scoring.Round((end-start)/start*100, 1)
}
