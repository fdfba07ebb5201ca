// Package scoring maps raw metric values onto a 0-100 scale relative to the
// week's observed distribution.
package scoring

import (
	"math"

	"github.com/okian/perftrack/internal/domain/metric"
)

// Score scale constants.
const (
	MinScore      = 0.0
	MaxScore      = 100.0
	FlatScore     = 50.0 // every value in a zero-variance column
	scoreDecimals = 1
)

// Normalize scores value against column, the week's non-null values for
// kind. A nil value has no score: the second result is false and the caller
// must not treat the zero as a genuine minimum.
//
// An empty column scores 0 and a column without spread scores FlatScore.
// Otherwise value is scaled linearly between the column min and max,
// inverted for lower-is-better metrics, and rounded to one decimal.
// The column is not modified.
func Normalize(value *float64, kind metric.Kind, column []float64) (float64, bool) {
	if value == nil {
		return 0, false
	}
	lo, hi, ok := Bounds(column)
	if !ok {
		return MinScore, true
	}
	if lo == hi {
		return FlatScore, true
	}

	scaled := (*value - lo) / (hi - lo) * MaxScore
	if kind.LowerIsBetter() {
		scaled = MaxScore - scaled
	}
	scaled = math.Max(MinScore, math.Min(MaxScore, scaled))
	return Round(scaled, scoreDecimals), true
}

// NormalizeValue is Normalize for a value known to be present.
func NormalizeValue(value float64, kind metric.Kind, column []float64) float64 {
	s, _ := Normalize(&value, kind, column)
	return s
}

// Bounds returns the min and max of values. NaN entries are skipped.
func Bounds(values []float64) (lo, hi float64, ok bool) {
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi, ok
}

// Round rounds x to places decimals, halves away from zero.
func Round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
