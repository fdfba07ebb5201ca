package scoring_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/okian/perftrack/internal/domain/metric"
	scoring "github.com/okian/perftrack/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func ptr(v float64) *float64 { return &v }

func TestNormalize(t *testing.T) {
	Convey("Given a bench press column", t, func() {
		column := []float64{185, 205, 225, 315, 275}

		Convey("When normalizing the column minimum", func() {
			s, ok := scoring.Normalize(ptr(185), metric.BenchPress, column)

			Convey("Then it should score 0", func() {
				So(ok, ShouldBeTrue)
				So(s, ShouldEqual, 0)
			})
		})

		Convey("When normalizing the column maximum", func() {
			s, ok := scoring.Normalize(ptr(315), metric.BenchPress, column)

			Convey("Then it should score 100", func() {
				So(ok, ShouldBeTrue)
				So(s, ShouldEqual, 100)
			})
		})

		Convey("When normalizing a value in between", func() {
			s, _ := scoring.Normalize(ptr(225), metric.BenchPress, column)

			Convey("Then it should scale linearly and round to one decimal", func() {
				// (225-185)/(315-185)*100 = 30.769...
				So(s, ShouldEqual, 30.8)
			})
		})

		Convey("When normalizing a nil value", func() {
			s, ok := scoring.Normalize(nil, metric.BenchPress, column)

			Convey("Then the score should be absent", func() {
				So(ok, ShouldBeFalse)
				So(s, ShouldEqual, 0)
			})
		})

		Convey("Then the input column should be left untouched", func() {
			before := append([]float64(nil), column...)
			scoring.Normalize(ptr(200), metric.BenchPress, column)
			So(column, ShouldResemble, before)
		})
	})

	Convey("Given a sprint column", t, func() {
		column := []float64{1.00, 1.10, 1.20}

		Convey("Then the fastest time should score 100", func() {
			So(scoring.NormalizeValue(1.00, metric.Sprint, column), ShouldEqual, 100)
		})

		Convey("Then the slowest time should score 0", func() {
			So(scoring.NormalizeValue(1.20, metric.Sprint, column), ShouldEqual, 0)
		})

		Convey("Then the middle time should score 50", func() {
			So(scoring.NormalizeValue(1.10, metric.Sprint, column), ShouldEqual, 50)
		})
	})

	Convey("Given a column without spread", t, func() {
		column := []float64{24, 24, 24}

		Convey("Then every value should score exactly 50", func() {
			for _, k := range metric.All() {
				So(scoring.NormalizeValue(24, k, column), ShouldEqual, 50)
			}
		})
	})

	Convey("Given an empty column", t, func() {
		s, ok := scoring.Normalize(ptr(200), metric.BodyWeight, nil)

		Convey("Then the score should be 0 and present", func() {
			So(ok, ShouldBeTrue)
			So(s, ShouldEqual, 0)
		})
	})

	Convey("Given a value outside the column range", t, func() {
		column := []float64{100, 200}

		Convey("Then the score should be clamped onto the axis", func() {
			So(scoring.NormalizeValue(250, metric.BenchPress, column), ShouldEqual, 100)
			So(scoring.NormalizeValue(50, metric.BenchPress, column), ShouldEqual, 0)
		})
	})
}

func TestNormalizeProperties(t *testing.T) {
	Convey("Given random columns for every metric", t, func() {
		rng := rand.New(rand.NewSource(42)) //nolint:gosec // deterministic seed for reproducible testing

		for trial := 0; trial < 200; trial++ {
			n := 1 + rng.Intn(40)
			column := make([]float64, n)
			for i := range column {
				column[i] = 50 + rng.Float64()*400
			}
			for _, k := range metric.All() {
				a := column[rng.Intn(n)]
				b := column[rng.Intn(n)]
				sa := scoring.NormalizeValue(a, k, column)
				sb := scoring.NormalizeValue(b, k, column)

				So(sa, ShouldBeBetweenOrEqual, 0, 100)
				So(sb, ShouldBeBetweenOrEqual, 0, 100)

				switch {
				case a < b && k.Polarity() == metric.HigherIsBetter:
					So(sa, ShouldBeLessThanOrEqualTo, sb)
				case a < b && k.Polarity() == metric.LowerIsBetter:
					So(sa, ShouldBeGreaterThanOrEqualTo, sb)
				}
			}
		}
	})
}

func TestBounds(t *testing.T) {
	Convey("Given values with a NaN", t, func() {
		lo, hi, ok := scoring.Bounds([]float64{3, math.NaN(), -1, 7})

		Convey("Then NaN should be skipped", func() {
			So(ok, ShouldBeTrue)
			So(lo, ShouldEqual, -1)
			So(hi, ShouldEqual, 7)
		})
	})

	Convey("Given no values", t, func() {
		_, _, ok := scoring.Bounds(nil)
		So(ok, ShouldBeFalse)
	})
}

func TestRound(t *testing.T) {
	Convey("Given values to round", t, func() {
		So(scoring.Round(10.8108, 1), ShouldEqual, 10.8)
		So(scoring.Round(4.999, 2), ShouldEqual, 5.0)
		So(scoring.Round(-2.345, 1), ShouldEqual, -2.3)
		So(scoring.Round(20, 2), ShouldEqual, 20)
	})
}
