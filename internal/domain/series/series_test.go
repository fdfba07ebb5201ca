package series_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/perftrack/internal/adapters/repository"
	"github.com/okian/perftrack/internal/domain/athlete"
	"github.com/okian/perftrack/internal/domain/metric"
	"github.com/okian/perftrack/internal/domain/model"
	"github.com/okian/perftrack/internal/domain/series"
	. "github.com/smartystreets/goconvey/convey"
)

func testRoster() *athlete.Roster {
	r, err := athlete.NewRoster([]athlete.Athlete{
		{Name: "Stone, Abe", Position: athlete.Line},
		{Name: "Pike, Ben", Position: athlete.Line},
		{Name: "Reed, Cal", Position: athlete.Skill},
		{Name: "Vance, Dom", Position: athlete.BigSkill},
		{Name: "West, Eli", Position: athlete.Skill},
	})
	if err != nil {
		panic(err)
	}
	return r
}

func put(store repository.Store, week int, rows map[string]model.Row, order ...string) {
	snap := model.NewSnapshot(week)
	for _, name := range order {
		snap.Add(name, rows[name])
	}
	if err := store.PutWeek(context.Background(), snap); err != nil {
		panic(err)
	}
}

func newAssembler() (*series.Assembler, repository.Store) {
	store := repository.NewMemoryStore(repository.WithoutMetrics())
	return series.New(testRoster(), store), store
}

func TestAthleteTrend(t *testing.T) {
	Convey("Given bench values in weeks 1, 3 and 4 uploaded out of order", t, func() {
		ctx := context.Background()
		asm, store := newAssembler()
		put(store, 4, map[string]model.Row{"Stone, Abe": {metric.BenchPress: 240}}, "Stone, Abe")
		put(store, 1, map[string]model.Row{"Stone, Abe": {metric.BenchPress: 225}}, "Stone, Abe")
		put(store, 2, map[string]model.Row{"Stone, Abe": {metric.BodyWeight: 250}}, "Stone, Abe")
		put(store, 3, map[string]model.Row{"Stone, Abe": {metric.BenchPress: 235}}, "Stone, Abe")

		Convey("Then the trend should skip the gap and be ascending", func() {
			points, err := asm.AthleteTrend(ctx, "Stone, Abe", metric.BenchPress)
			So(err, ShouldBeNil)
			So(points, ShouldResemble, []series.Point{
				{Week: 1, Value: 225},
				{Week: 3, Value: 235},
				{Week: 4, Value: 240},
			})
		})

		Convey("Then an athlete without values should get an empty trend", func() {
			points, err := asm.AthleteTrend(ctx, "Reed, Cal", metric.BenchPress)
			So(err, ShouldBeNil)
			So(points, ShouldBeEmpty)

			_, ok := series.Summarize(points)
			So(ok, ShouldBeFalse)
		})

		Convey("Then an unknown athlete should be not found", func() {
			_, err := asm.AthleteTrend(ctx, "Nobody", metric.BenchPress)
			So(errors.Is(err, athlete.ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestSummarize(t *testing.T) {
	Convey("Given a rising trend", t, func() {
		sum, ok := series.Summarize([]series.Point{{Week: 1, Value: 185}, {Week: 5, Value: 195}, {Week: 9, Value: 205}})

		Convey("Then the change should come from the first and last points", func() {
			So(ok, ShouldBeTrue)
			So(sum.StartWeek, ShouldEqual, 1)
			So(sum.EndWeek, ShouldEqual, 9)
			So(sum.Delta, ShouldEqual, 20)
			So(sum.PctDelta, ShouldEqual, 10.8)
		})
	})

	Convey("Given a trend starting at zero", t, func() {
		sum, ok := series.Summarize([]series.Point{{Week: 2, Value: 0}, {Week: 3, Value: 12}})
		So(ok, ShouldBeTrue)
		So(sum.Delta, ShouldEqual, 12)
		So(sum.PctDelta, ShouldEqual, 0)
	})
}

func TestProfileVector(t *testing.T) {
	Convey("Given a week where one athlete recorded three of seven metrics", t, func() {
		ctx := context.Background()
		asm, store := newAssembler()
		put(store, 2, map[string]model.Row{
			"Stone, Abe": {metric.BenchPress: 300, metric.Sprint: 1.20, metric.BodyWeight: 280},
			"Pike, Ben":  {metric.BenchPress: 200, metric.Sprint: 1.10, metric.BodyWeight: 260, metric.PowerClean: 225},
			"Reed, Cal":  {metric.BenchPress: 250, metric.Sprint: 1.00, metric.BodyWeight: 180},
		}, "Stone, Abe", "Pike, Ben", "Reed, Cal")

		profile, ok, err := asm.ProfileVector(ctx, "Stone, Abe", 2)

		Convey("Then the vector should hold exactly those metrics in catalog order", func() {
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(len(profile), ShouldEqual, 3)
			So(profile[0].Metric, ShouldEqual, metric.BodyWeight)
			So(profile[1].Metric, ShouldEqual, metric.BenchPress)
			So(profile[2].Metric, ShouldEqual, metric.Sprint)
		})

		Convey("Then bench scores should share one column", func() {
			bench := profile[1]
			So(bench.Label, ShouldEqual, "Bench Press (lbs)")
			So(bench.Athlete, ShouldEqual, 100)
			// line average 250 in [200..300]
			So(bench.PositionAvg, ShouldEqual, 50)
			So(bench.TeamBest, ShouldEqual, 100)
		})

		Convey("Then sprint scores should be inverted", func() {
			sprint := profile[2]
			So(sprint.Athlete, ShouldEqual, 0)
			So(sprint.TeamBest, ShouldEqual, 100)
			// line average 1.15 in [1.00..1.20]
			So(sprint.PositionAvg, ShouldEqual, 25)
		})

		Convey("Then an athlete without a row should be absent", func() {
			_, ok, err := asm.ProfileVector(ctx, "Vance, Dom", 2)
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
		})

		Convey("Then a bad week should be rejected", func() {
			_, _, err := asm.ProfileVector(ctx, "Stone, Abe", 0)
			So(errors.Is(err, model.ErrInvalidWeek), ShouldBeTrue)
		})
	})
}

func TestHeadToHead(t *testing.T) {
	Convey("Given athletes with different recorded metrics", t, func() {
		ctx := context.Background()
		asm, store := newAssembler()
		put(store, 5, map[string]model.Row{
			"Stone, Abe": {metric.BackSquat: 405, metric.VerticalJump: 24},
			"Reed, Cal":  {metric.BackSquat: 315, metric.Sprint: 1.02, metric.VerticalJump: 34},
		}, "Stone, Abe", "Reed, Cal")

		Convey("When comparing three athletes", func() {
			cmp, err := asm.HeadToHead(ctx, []string{"Reed, Cal", "Stone, Abe", "Vance, Dom"}, 5)
			So(err, ShouldBeNil)

			Convey("Then entries should keep request order with their own axes", func() {
				So(cmp.Week, ShouldEqual, 5)
				So(len(cmp.Entries), ShouldEqual, 3)
				So(cmp.Entries[0].Name, ShouldEqual, "Reed, Cal")
				So(cmp.Entries[0].Position, ShouldEqual, athlete.Skill)
				So(len(cmp.Entries[0].Profile), ShouldEqual, 3)
				So(len(cmp.Entries[1].Profile), ShouldEqual, 2)
			})

			Convey("Then missing metrics should be listed per athlete", func() {
				So(cmp.Entries[1].Missing, ShouldContain, metric.Sprint)
				So(len(cmp.Entries[1].Missing), ShouldEqual, 5)
				So(len(cmp.Entries[0].Missing), ShouldEqual, 4)
			})

			Convey("Then an athlete without a row should be unavailable", func() {
				So(cmp.Entries[2].Available, ShouldBeFalse)
				So(cmp.Entries[2].Profile, ShouldBeEmpty)
				So(len(cmp.Entries[2].Missing), ShouldEqual, len(metric.All()))
			})
		})

		Convey("When the athlete count is out of bounds", func() {
			_, err := asm.HeadToHead(ctx, []string{"Reed, Cal"}, 5)
			So(errors.Is(err, series.ErrInvalidComparison), ShouldBeTrue)

			_, err = asm.HeadToHead(ctx, []string{"Reed, Cal", "Stone, Abe", "Pike, Ben", "Vance, Dom", "West, Eli"}, 5)
			So(errors.Is(err, series.ErrInvalidComparison), ShouldBeTrue)
		})

		Convey("When an athlete is repeated", func() {
			_, err := asm.HeadToHead(ctx, []string{"Reed, Cal", "Reed, Cal"}, 5)
			So(errors.Is(err, series.ErrInvalidComparison), ShouldBeTrue)
		})

		Convey("When an athlete is unknown", func() {
			_, err := asm.HeadToHead(ctx, []string{"Reed, Cal", "Nobody"}, 5)
			So(errors.Is(err, athlete.ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestRangeReport(t *testing.T) {
	Convey("Given rows in weeks 1, 3 and 6", t, func() {
		ctx := context.Background()
		asm, store := newAssembler()
		put(store, 1, map[string]model.Row{
			"Stone, Abe": {metric.BenchPress: 185, metric.BodyWeight: 250, metric.Sprint: 1.30, metric.PowerClean: 0},
		}, "Stone, Abe")
		put(store, 3, map[string]model.Row{
			"Stone, Abe": {metric.BodyWeight: 255},
		}, "Stone, Abe")
		put(store, 6, map[string]model.Row{
			"Stone, Abe": {metric.BenchPress: 205, metric.BodyWeight: 262, metric.PowerClean: 135, metric.BackSquat: 365},
		}, "Stone, Abe")

		rep, ok, err := asm.RangeReport(ctx, "Stone, Abe", 1, 6)

		Convey("Then only metrics present at both ends should be reported", func() {
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(len(rep.Lines), ShouldEqual, 3)
			So(rep.Lines[0].Metric, ShouldEqual, metric.BodyWeight)
			So(rep.Lines[1].Metric, ShouldEqual, metric.BenchPress)
			So(rep.Lines[2].Metric, ShouldEqual, metric.PowerClean)
		})

		Convey("Then bench should show delta 20.00 and 10.8 percent", func() {
			So(rep.Lines[1].Start, ShouldEqual, 185)
			So(rep.Lines[1].End, ShouldEqual, 205)
			So(rep.Lines[1].Delta, ShouldEqual, 20)
			So(rep.Lines[1].PctDelta, ShouldEqual, 10.8)
		})

		Convey("Then a zero start should give a zero percent change", func() {
			So(rep.Lines[2].Delta, ShouldEqual, 135)
			So(rep.Lines[2].PctDelta, ShouldEqual, 0)
		})

		Convey("Then the player card fields should be filled", func() {
			So(rep.Position, ShouldEqual, athlete.Line)
			So(rep.BodyWeight, ShouldNotBeNil)
			So(*rep.BodyWeight, ShouldEqual, 262)
			So(rep.BodyWeightTrend, ShouldResemble, []series.Point{
				{Week: 1, Value: 250}, {Week: 3, Value: 255}, {Week: 6, Value: 262},
			})
		})

		Convey("Then a narrower range should clip the body weight trend", func() {
			rep, ok, err := asm.RangeReport(ctx, "Stone, Abe", 3, 6)
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(len(rep.Lines), ShouldEqual, 1)
			So(len(rep.BodyWeightTrend), ShouldEqual, 2)
		})

		Convey("Then a missing endpoint should be absent", func() {
			_, ok, err := asm.RangeReport(ctx, "Stone, Abe", 1, 7)
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
		})

		Convey("Then a reversed range should be rejected", func() {
			_, _, err := asm.RangeReport(ctx, "Stone, Abe", 6, 1)
			So(errors.Is(err, series.ErrInvalidRange), ShouldBeTrue)
		})

		Convey("Then an out-of-range week should be rejected", func() {
			_, _, err := asm.RangeReport(ctx, "Stone, Abe", 1, 14)
			So(errors.Is(err, model.ErrInvalidWeek), ShouldBeTrue)
		})
	})
}
