package seeddata

import (
	"errors"
	"fmt"

	"github.com/okian/perftrack/internal/domain/series"
	"github.com/okian/perftrack/internal/domain/types"
)

// ErrInvariant marks an analytic result the engine should never produce.
var ErrInvariant = errors.New("invariant violated")

// VerifyTrend checks that points are in strictly ascending week order and
// that availability matches the presence of points.
func VerifyTrend(t types.Trend) error {
	for i := 1; i < len(t.Points); i++ {
		if t.Points[i].Week <= t.Points[i-1].Week {
			return fmt.Errorf("%w: %s %s trend week %d follows week %d",
				ErrInvariant, t.Athlete, t.Metric, t.Points[i].Week, t.Points[i-1].Week)
		}
	}
	if t.Available != (len(t.Points) > 0) || t.Available != (t.Summary != nil) {
		return fmt.Errorf("%w: %s %s trend availability does not match its points",
			ErrInvariant, t.Athlete, t.Metric)
	}
	return nil
}

// VerifyProfile checks every score is within [0, 100] and that the vector
// has one axis per recorded metric.
func VerifyProfile(p types.Profile, recorded int) error {
	if !p.Available {
		if recorded > 0 {
			return fmt.Errorf("%w: %s week %d has %d values but no profile",
				ErrInvariant, p.Athlete, p.Week, recorded)
		}
		return nil
	}
	if len(p.Axes) != recorded {
		return fmt.Errorf("%w: %s week %d profile has %d axes, want %d",
			ErrInvariant, p.Athlete, p.Week, len(p.Axes), recorded)
	}
	for _, ax := range p.Axes {
		for _, v := range []float64{ax.Athlete, ax.PositionAvg, ax.TeamBest} {
			if v < 0 || v > 100 {
				return fmt.Errorf("%w: %s %s score %v outside [0, 100]",
					ErrInvariant, p.Athlete, ax.Metric, v)
			}
		}
	}
	return nil
}

// VerifyReport checks that each line's delta matches its endpoints.
func VerifyReport(r types.RangeReport) error {
	if !r.Available || r.Report == nil {
		return nil
	}
	for _, line := range r.Report.Lines {
		if !closeTo(line.Delta, line.End-line.Start) {
			return fmt.Errorf("%w: %s %s delta %v, endpoints %v -> %v",
				ErrInvariant, r.Athlete, line.Metric, line.Delta, line.Start, line.End)
		}
	}
	return verifyAscending(r.Athlete, r.Report.BodyWeightTrend)
}

func verifyAscending(name string, points []series.Point) error {
	for i := 1; i < len(points); i++ {
		if points[i].Week <= points[i-1].Week {
			return fmt.Errorf("%w: %s body weight trend is not ascending", ErrInvariant, name)
		}
	}
	return nil
}

// closeTo tolerates the two-decimal rounding applied to deltas.
func closeTo(a, b float64) bool {
	d := a - b
	return d < 0.0051 && d > -0.0051
}
