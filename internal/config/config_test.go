package config_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/okian/perftrack/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New(context.Background())

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.MaxSessions, convey.ShouldEqual, 64)
			convey.So(cfg.SessionIdleTimeout, convey.ShouldEqual, 2*time.Hour)
			convey.So(cfg.MaxUploadBytes, convey.ShouldEqual, 1<<20)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given configs with one bad setting", t, func() {
		cases := map[string]func(*config.Config){
			"addr":           func(c *config.Config) { c.Addr = " " },
			"max_sessions":   func(c *config.Config) { c.MaxSessions = 0 },
			"idle timeout":   func(c *config.Config) { c.SessionIdleTimeout = -time.Second },
			"sweep interval": func(c *config.Config) { c.SweepInterval = 0 },
			"upload bytes":   func(c *config.Config) { c.MaxUploadBytes = -1 },
			"log format":     func(c *config.Config) { c.LogFormat = "logfmt" },
		}

		for name, mutate := range cases {
			convey.Convey("Then a bad "+name+" should be rejected", func() {
				cfg := config.New(context.Background())
				mutate(cfg)
				convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		}

		convey.Convey("Then a zero idle timeout should be allowed", func() {
			cfg := config.New(context.Background())
			cfg.SessionIdleTimeout = 0
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}
