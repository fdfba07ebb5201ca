package aggregate

import (
	"context"

	"github.com/okian/perftrack/internal/adapters/repository"
	"github.com/okian/perftrack/internal/domain/athlete"
	"github.com/okian/perftrack/internal/domain/metric"
	"github.com/okian/perftrack/internal/domain/scoring"
)

// MetricSummary describes one metric column of a week.
type MetricSummary struct {
	Metric      metric.Kind                  `json:"metric"`
	Label       string                       `json:"label"`
	Count       int                          `json:"count"`
	Mean        float64                      `json:"mean"`
	TeamBest    float64                      `json:"team_best"`
	PositionAvg map[athlete.Position]float64 `json:"position_avg"`
}

// Summary is the team overview for one week.
type Summary struct {
	Week     int             `json:"week"`
	Athletes int             `json:"athletes"`
	Metrics  []MetricSummary `json:"metrics"`
}

// WeekSummary returns per-metric statistics for week. Metrics without any
// value that week are left out. The result is absent when the week has no
// snapshot.
func (e *Engine) WeekSummary(ctx context.Context, week int) (Summary, bool) {
	snap, ok := e.store.Snapshot(ctx, week)
	if !ok {
		return Summary{}, false
	}

	out := Summary{Week: week, Athletes: snap.Len(), Metrics: []MetricSummary{}}
	for _, kind := range metric.All() {
		col := e.store.Column(ctx, week, kind)
		if len(col) == 0 {
			continue
		}
		values := repository.Values(col)
		top, _ := best(kind, values)

		ms := MetricSummary{
			Metric:      kind,
			Label:       kind.Label(),
			Count:       len(values),
			Mean:        scoring.Round(mean(values), 2),
			TeamBest:    top,
			PositionAvg: make(map[athlete.Position]float64),
		}
		for _, pos := range athlete.Positions() {
			if avg, ok := e.PositionAverage(ctx, pos, week, kind); ok {
				ms.PositionAvg[pos] = scoring.Round(avg, 2)
			}
		}
		out.Metrics = append(out.Metrics, ms)
	}
	return out, true
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
