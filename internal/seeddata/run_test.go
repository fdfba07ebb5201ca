package seeddata_test

import (
	"errors"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/okian/perftrack/internal/adapters/http/api"
	service "github.com/okian/perftrack/internal/app"
	"github.com/okian/perftrack/internal/domain/athlete"
	"github.com/okian/perftrack/internal/domain/metric"
	"github.com/okian/perftrack/internal/domain/model"
	"github.com/okian/perftrack/internal/seeddata"
	"github.com/okian/perftrack/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func newServer() (*httptest.Server, *service.Service) {
	roster, err := athlete.NewRoster([]athlete.Athlete{
		{Name: "Ho, Bryant", Position: athlete.BigSkill},
		{Name: "Stone, Abe", Position: athlete.Line},
		{Name: "Reyes, Cam", Position: athlete.Skill},
		{Name: "Ames, Dov", Position: athlete.Skill},
		{Name: "Kerr, Eli", Position: athlete.Line},
	})
	if err != nil {
		panic(err)
	}
	svc := service.New(
		service.WithLogger(logger.Nop()),
		service.WithRoster(roster),
		service.WithSessionIdleTimeout(0),
	)
	mux := http.NewServeMux()
	api.NewServer(svc).Register(context.Background(), mux)
	return httptest.NewServer(mux), svc
}

func TestRun(t *testing.T) {
	Convey("Given a running perftrack server", t, func() {
		srv, svc := newServer()
		defer srv.Close()

		cfg := &seeddata.Config{
			BaseURL: srv.URL,
			Weeks:   3,
			Seed:    11,
			Sample:  2,
			Missing: 0.2,
			Timeout: 5 * time.Second,
			Logger:  logger.Nop(),
		}

		Convey("When seeding and verifying", func() {
			stats, err := seeddata.Run(context.Background(), cfg)

			Convey("Then every check should pass and the session be dropped", func() {
				So(err, ShouldBeNil)
				So(stats.WeeksUploaded, ShouldEqual, 3)
				So(stats.RowsUploaded, ShouldEqual, 15)
				So(stats.AthletesCheck, ShouldEqual, 2)
				So(stats.TrendsChecked, ShouldEqual, 2*len(metric.All()))
				So(stats.ProfilesCheck, ShouldEqual, 6)
				So(stats.ReportsChecked, ShouldEqual, 2)
				So(svc.GetStats()["activeSessions"], ShouldEqual, 0)
			})
		})

		Convey("When keeping the session", func() {
			cfg.Keep = true
			stats, err := seeddata.Run(context.Background(), cfg)

			Convey("Then its weeks should still be stored", func() {
				So(err, ShouldBeNil)
				weeks, err := svc.Weeks(context.Background(), stats.SessionID)
				So(err, ShouldBeNil)
				So(weeks, ShouldResemble, []int{1, 2, 3})
			})
		})

		Convey("When asking for an impossible number of weeks", func() {
			cfg.Weeks = 13
			_, err := seeddata.Run(context.Background(), cfg)

			Convey("Then the run should not start", func() {
				So(errors.Is(err, model.ErrInvalidWeek), ShouldBeTrue)
			})
		})
	})

	Convey("Given no server", t, func() {
		cfg := &seeddata.Config{BaseURL: "http://127.0.0.1:1", Weeks: 1, Timeout: time.Second, Logger: logger.Nop()}

		Convey("Then the health check should fail", func() {
			_, err := seeddata.Run(context.Background(), cfg)
			So(err, ShouldNotBeNil)
		})
	})
}
