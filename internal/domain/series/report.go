package series

import (
	"context"
	"fmt"

	"github.com/okian/perftrack/internal/domain/athlete"
	"github.com/okian/perftrack/internal/domain/metric"
	"github.com/okian/perftrack/internal/domain/model"
	"github.com/okian/perftrack/internal/domain/scoring"
)

// RangeLine is one metric's change between two weeks.
type RangeLine struct {
	Metric   metric.Kind `json:"metric"`
	Label    string      `json:"label"`
	Start    float64     `json:"start"`
	End      float64     `json:"end"`
	Delta    float64     `json:"delta"`
	PctDelta float64     `json:"pct_delta"`
}

// Report summarizes an athlete's progress between two weeks.
type Report struct {
	Name      string           `json:"name"`
	Position  athlete.Position `json:"position"`
	StartWeek int              `json:"start_week"`
	EndWeek   int              `json:"end_week"`
	Lines     []RangeLine      `json:"lines"`
	// BodyWeight is the end-week body weight, when recorded.
	BodyWeight *float64 `json:"body_weight,omitempty"`
	// BodyWeightTrend holds body-weight points within the range.
	BodyWeightTrend []Point `json:"body_weight_trend"`
}

// RangeReport compares the athlete's rows at start and end. Only metrics with
// a value at both ends are reported. It returns false when either endpoint row
// is missing.
func (a *Assembler) RangeReport(ctx context.Context, name string, start, end int) (Report, bool, error) {
	who, err := a.roster.Lookup(name)
	if err != nil {
		return Report{}, false, err
	}
	if err := model.ValidateWeek(start); err != nil {
		return Report{}, false, err
	}
	if err := model.ValidateWeek(end); err != nil {
		return Report{}, false, err
	}
	if start > end {
		return Report{}, false, fmt.Errorf("%w: start %d after end %d", ErrInvalidRange, start, end)
	}

	from, ok := a.store.AthleteRow(ctx, name, start)
	if !ok {
		return Report{}, false, nil
	}
	to, ok := a.store.AthleteRow(ctx, name, end)
	if !ok {
		return Report{}, false, nil
	}

	rep := Report{
		Name:      who.Name,
		Position:  who.Position,
		StartWeek: start,
		EndWeek:   end,
		Lines:     []RangeLine{},
	}
	for _, kind := range metric.All() {
		s, ok := from.Value(kind)
		if !ok {
			continue
		}
		e, ok := to.Value(kind)
		if !ok {
			continue
		}
		delta := scoring.Round(e-s, 2)
		rep.Lines = append(rep.Lines, RangeLine{
			Metric:   kind,
			Label:    kind.Label(),
			Start:    s,
			End:      e,
			Delta:    delta,
			PctDelta: pctChange(s, e),
		})
	}

	if bw, ok := to.Value(metric.BodyWeight); ok {
		rep.BodyWeight = &bw
	}
	trend, err := a.AthleteTrend(ctx, name, metric.BodyWeight)
	if err != nil {
		return Report{}, false, err
	}
	rep.BodyWeightTrend = []Point{}
	for _, p := range trend {
		if p.Week >= start && p.Week <= end {
			rep.BodyWeightTrend = append(rep.BodyWeightTrend, p)
		}
	}
	return rep, true, nil
}
