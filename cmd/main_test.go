package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/okian/perftrack/internal/config"
	"github.com/okian/perftrack/pkg/logger"
	"github.com/okian/perftrack/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainComponents(t *testing.T) {
	convey.Convey("Given the default configuration", t, func() {
		ctx := context.Background()
		cfg := config.New(ctx)
		cfg.SessionIdleTimeout = 0

		convey.Convey("When building the service", func() {
			svc, err := newService(ctx, cfg, logger.Nop())

			convey.Convey("Then it should use the built-in roster", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(svc.GetStats()["athletes"], convey.ShouldEqual, 110)
			})

			convey.Convey("And the mux should serve the API and the docs", func() {
				mux := newMux(ctx, cfg, svc, logger.Nop())

				for _, path := range []string{"/roster", "/catalog", "/openapi.yaml", "/api-docs", "/healthz"} {
					w := httptest.NewRecorder()
					mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, http.NoBody))
					convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				}

				w := httptest.NewRecorder()
				mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/sessions", http.NoBody))
				convey.So(w.Code, convey.ShouldEqual, http.StatusCreated)
			})
		})

		convey.Convey("When the roster file is missing", func() {
			cfg.RosterFile = "/non/existent/roster.yaml"
			_, err := newService(ctx, cfg, logger.Nop())

			convey.Convey("Then the service should not be built", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When running and cancelling", func() {
			cfg.Addr = "127.0.0.1:0"
			runCtx, cancel := context.WithCancel(ctx)
			done := make(chan error, 1)
			go func() { done <- run(runCtx, cfg, logger.Nop()) }()
			time.Sleep(50 * time.Millisecond)
			cancel()

			convey.Convey("Then run should shut down cleanly", func() {
				select {
				case err := <-done:
					convey.So(err, convey.ShouldBeNil)
				case <-time.After(5 * time.Second):
					convey.So("run did not return", convey.ShouldBeEmpty)
				}
			})
		})
	})
}

func TestMetricsUpdaters(t *testing.T) {
	convey.Convey("Given the system metrics updater", t, func() {
		convey.Convey("When updating once", func() {
			updateSystemMetrics()

			convey.Convey("Then the goroutine gauge should be published", func() {
				n, err := testutil.GatherAndCount(metrics.GetRegistry(), "perftrack_analytics_system_goroutine_count")
				convey.So(err, convey.ShouldBeNil)
				convey.So(n, convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When the context is already done", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			convey.Convey("Then the loop should return", func() {
				convey.So(func() { startSystemMetricsUpdater(ctx) }, convey.ShouldNotPanic)
			})
		})
	})
}

func TestConfigFromEnvironment(t *testing.T) {
	convey.Convey("Given PERFTRACK_ variables", t, func() {
		_ = os.Setenv("PERFTRACK_ADDR", ":8181")
		_ = os.Setenv("PERFTRACK_MAX_UPLOAD_BYTES", "512")
		defer func() {
			_ = os.Unsetenv("PERFTRACK_ADDR")
			_ = os.Unsetenv("PERFTRACK_MAX_UPLOAD_BYTES")
		}()

		cfg, err := config.Load(context.Background())
		convey.So(err, convey.ShouldBeNil)
		cfg.SessionIdleTimeout = 0

		convey.Convey("Then uploads should be capped by the configured size", func() {
			svc, err := newService(context.Background(), cfg, logger.Nop())
			convey.So(err, convey.ShouldBeNil)
			mux := newMux(context.Background(), cfg, svc, logger.Nop())

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/sessions", http.NoBody))
			convey.So(w.Code, convey.ShouldEqual, http.StatusCreated)
			id := strings.Split(w.Header().Get("Location"), "/")[2]

			body := `{"columns":["Name"],"rows":[["` + strings.Repeat("x", 1024) + `"]]}`
			req := httptest.NewRequest(http.MethodPut, "/sessions/"+id+"/weeks/1", strings.NewReader(body))
			w = httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			convey.So(cfg.Addr, convey.ShouldEqual, ":8181")
			convey.So(w.Code, convey.ShouldEqual, http.StatusRequestEntityTooLarge)
		})
	})
}
