package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/okian/perftrack/internal/domain/metric"
	"github.com/okian/perftrack/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func snapshot(week int, rows map[string]model.Row, order ...string) model.Snapshot {
	snap := model.NewSnapshot(week)
	for _, name := range order {
		snap.Add(name, rows[name])
	}
	return snap
}

func TestMemoryStore_PutAndRead(t *testing.T) {
	Convey("Given an empty memory store", t, func() {
		ctx := context.Background()
		store := NewMemoryStore(WithoutMetrics())

		So(store.Count(ctx), ShouldEqual, 0)
		So(store.WeeksPresent(ctx), ShouldBeEmpty)

		Convey("When week 3 is stored", func() {
			err := store.PutWeek(ctx, snapshot(3, map[string]model.Row{
				"Ho, Bryant":   {metric.BenchPress: 225, metric.BodyWeight: 210},
				"Li, Marcus":   {metric.BenchPress: 315},
				"Moore, Tevin": {metric.BodyWeight: 190},
			}, "Ho, Bryant", "Li, Marcus", "Moore, Tevin"))
			So(err, ShouldBeNil)

			Convey("Then the athlete row should be readable", func() {
				row, ok := store.AthleteRow(ctx, "Ho, Bryant", 3)
				So(ok, ShouldBeTrue)
				So(row[metric.BenchPress], ShouldEqual, 225)
			})

			Convey("Then unknown athletes and weeks should be absent", func() {
				_, ok := store.AthleteRow(ctx, "Nobody", 3)
				So(ok, ShouldBeFalse)
				_, ok = store.AthleteRow(ctx, "Ho, Bryant", 4)
				So(ok, ShouldBeFalse)
			})

			Convey("Then the column should skip nulls and keep upload order", func() {
				col := store.Column(ctx, 3, metric.BenchPress)
				So(col, ShouldResemble, []Entry{
					{Name: "Ho, Bryant", Value: 225},
					{Name: "Li, Marcus", Value: 315},
				})
				So(Values(col), ShouldResemble, []float64{225, 315})
			})

			Convey("Then a column for a missing week should be empty", func() {
				So(store.Column(ctx, 9, metric.BenchPress), ShouldBeEmpty)
			})

			Convey("Then mutating a returned row should not touch the store", func() {
				row, _ := store.AthleteRow(ctx, "Ho, Bryant", 3)
				row[metric.BenchPress] = 1
				again, _ := store.AthleteRow(ctx, "Ho, Bryant", 3)
				So(again[metric.BenchPress], ShouldEqual, 225)
			})
		})
	})
}

func TestMemoryStore_Replace(t *testing.T) {
	Convey("Given week 3 uploaded twice", t, func() {
		ctx := context.Background()
		store := NewMemoryStore(WithoutMetrics())

		first := snapshot(3, map[string]model.Row{
			"Ho, Bryant": {metric.BenchPress: 225},
			"Li, Marcus": {metric.BenchPress: 315},
		}, "Ho, Bryant", "Li, Marcus")
		second := snapshot(3, map[string]model.Row{
			"Ho, Bryant": {metric.BenchPress: 235},
		}, "Ho, Bryant")

		So(store.PutWeek(ctx, first), ShouldBeNil)
		So(store.PutWeek(ctx, second), ShouldBeNil)

		Convey("Then only the second upload should be visible", func() {
			So(store.Count(ctx), ShouldEqual, 1)
			row, ok := store.AthleteRow(ctx, "Ho, Bryant", 3)
			So(ok, ShouldBeTrue)
			So(row[metric.BenchPress], ShouldEqual, 235)

			_, ok = store.AthleteRow(ctx, "Li, Marcus", 3)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestMemoryStore_Weeks(t *testing.T) {
	Convey("Given snapshots stored out of order", t, func() {
		ctx := context.Background()
		store := NewMemoryStore(WithoutMetrics())
		for _, w := range []int{7, 1, 12, 3} {
			So(store.PutWeek(ctx, model.NewSnapshot(w)), ShouldBeNil)
		}

		Convey("Then weeks should be listed ascending", func() {
			So(store.WeeksPresent(ctx), ShouldResemble, []int{1, 3, 7, 12})
			So(store.Count(ctx), ShouldEqual, 4)
		})
	})

	Convey("Given an out-of-range week", t, func() {
		ctx := context.Background()
		store := NewMemoryStore(WithoutMetrics())

		for _, w := range []int{0, 13, -1} {
			err := store.PutWeek(ctx, model.NewSnapshot(w))
			So(errors.Is(err, ErrInvalidWeek), ShouldBeTrue)
		}
		So(store.Count(ctx), ShouldEqual, 0)
	})
}

func TestMemoryStore_Options(t *testing.T) {
	Convey("Given a store seeded with snapshots", t, func() {
		ctx := context.Background()
		seed := snapshot(2, map[string]model.Row{
			"Ho, Bryant": {metric.Sprint: 1.05},
		}, "Ho, Bryant")
		store := NewMemoryStore(WithoutMetrics(), WithSnapshots(seed, model.NewSnapshot(40)))

		Convey("Then valid weeks should be present and invalid skipped", func() {
			So(store.WeeksPresent(ctx), ShouldResemble, []int{2})
			snap, ok := store.Snapshot(ctx, 2)
			So(ok, ShouldBeTrue)
			So(snap.Names, ShouldResemble, []string{"Ho, Bryant"})
		})

		Convey("Then the seed should be copied", func() {
			seed.Rows["Ho, Bryant"][metric.Sprint] = 9
			row, _ := store.AthleteRow(ctx, "Ho, Bryant", 2)
			So(row[metric.Sprint], ShouldEqual, 1.05)
		})
	})
}

func TestMemoryStore_Close(t *testing.T) {
	Convey("Given a closed store", t, func() {
		ctx := context.Background()
		store := NewMemoryStore(WithoutMetrics())
		So(store.PutWeek(ctx, model.NewSnapshot(1)), ShouldBeNil)
		So(store.Close(), ShouldBeNil)

		Convey("Then it should be empty and refuse writes", func() {
			So(store.Count(ctx), ShouldEqual, 0)
			So(errors.Is(store.PutWeek(ctx, model.NewSnapshot(2)), ErrClosed), ShouldBeTrue)
		})
	})
}

func TestMemoryStore_Concurrency(t *testing.T) {
	Convey("Given concurrent writers and readers", t, func() {
		ctx := context.Background()
		store := NewMemoryStore()

		var wg sync.WaitGroup
		for w := model.FirstWeek; w <= model.LastWeek; w++ {
			wg.Add(2)
			go func(week int) {
				defer wg.Done()
				snap := model.NewSnapshot(week)
				for i := 0; i < 20; i++ {
					snap.Add(fmt.Sprintf("athlete-%d", i), model.Row{metric.BackSquat: float64(300 + i)})
				}
				_ = store.PutWeek(ctx, snap)
			}(w)
			go func(week int) {
				defer wg.Done()
				_ = store.Column(ctx, week, metric.BackSquat)
				_ = store.WeeksPresent(ctx)
			}(w)
		}
		wg.Wait()

		Convey("Then every week should hold a complete snapshot", func() {
			So(store.Count(ctx), ShouldEqual, model.LastWeek)
			for w := model.FirstWeek; w <= model.LastWeek; w++ {
				So(len(store.Column(ctx, w, metric.BackSquat)), ShouldEqual, 20)
			}
		})
	})
}
