package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mergington/activities/internal/adapters/http/api"
	"github.com/mergington/activities/internal/app"
	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/domain/catalog"
	"github.com/mergington/activities/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("ACTIVITIES_ADDR", ":8080")
			_ = os.Setenv("ACTIVITIES_LOG_FORMAT", "json")
			defer func() {
				_ = os.Unsetenv("ACTIVITIES_ADDR")
				_ = os.Unsetenv("ACTIVITIES_LOG_FORMAT")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
			})
		})

		convey.Convey("When testing invalid configuration", func() {
			_ = os.Setenv("ACTIVITIES_ADDR", "")
			defer func() { _ = os.Unsetenv("ACTIVITIES_ADDR") }()

			convey.Convey("Then configuration loading should fail", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func TestLoadCatalog(t *testing.T) {
	convey.Convey("Given a configuration", t, func() {
		ctx := context.Background()
		cfg := config.New(ctx)

		convey.Convey("When no seed file is set", func() {
			seed, err := loadCatalog(ctx, cfg)

			convey.Convey("Then the built-in catalog should be used", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(seed, convey.ShouldHaveLength, len(catalog.Default()))
			})
		})

		convey.Convey("When a seed file is set", func() {
			path := filepath.Join(t.TempDir(), "seed.yaml")
			err := os.WriteFile(path, []byte(`activities:
  - name: Robotics
    description: Build and program robots
    schedule: Mondays, 4:00 PM - 6:00 PM
    max_participants: 10
    participants: [ada@mergington.edu]
`), 0o600)
			convey.So(err, convey.ShouldBeNil)
			cfg.SeedFile = path

			seed, err := loadCatalog(ctx, cfg)

			convey.Convey("Then its activities should be returned", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(seed, convey.ShouldHaveLength, 1)
				convey.So(seed[0].Name, convey.ShouldEqual, "Robotics")
				convey.So(seed[0].Participants, convey.ShouldResemble, []string{"ada@mergington.edu"})
			})
		})

		convey.Convey("When the seed file is missing", func() {
			cfg.SeedFile = filepath.Join(t.TempDir(), "missing.yaml")
			_, err := loadCatalog(ctx, cfg)

			convey.Convey("Then it should report an invalid seed", func() {
				convey.So(errors.Is(err, catalog.ErrInvalidSeed), convey.ShouldBeTrue)
			})
		})
	})
}

func TestNewHandler(t *testing.T) {
	convey.Convey("Given a started service and the full handler", t, func() {
		ctx := context.Background()
		cfg := config.New(ctx)
		svc := app.New()
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		defer svc.Stop()

		h := newHandler(ctx, cfg, svc, logger.Get())

		get := func(path string) *httptest.ResponseRecorder {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, http.NoBody))
			return w
		}

		convey.Convey("Then the root should redirect to the landing page", func() {
			w := get("/")
			convey.So(w.Code, convey.ShouldEqual, http.StatusTemporaryRedirect)
			convey.So(w.Header().Get("Location"), convey.ShouldEqual, "/static/index.html")
		})

		convey.Convey("And the redirect target should be served", func() {
			w := get("/static/index.html")
			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			convey.So(w.Header().Get("Content-Type"), convey.ShouldContainSubstring, "text/html")
		})

		convey.Convey("And every route family should be mounted", func() {
			for _, path := range []string{"/activities", "/healthz", "/stats", "/metrics", "/openapi.yaml", "/api-docs", "/static/app.js"} {
				convey.So(get(path).Code, convey.ShouldEqual, http.StatusOK)
			}
		})

		convey.Convey("And responses should carry a request id", func() {
			convey.So(get("/healthz").Header().Get(api.HeaderRequestID), convey.ShouldNotBeEmpty)
		})
	})
}

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given main application components", t, func() {
		convey.Convey("When testing system metrics updater", func() {
			convey.Convey("Then it should return once the context is done", func() {
				ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
				defer cancel()

				convey.So(func() {
					startSystemMetricsUpdater(ctx, 10*time.Millisecond)
				}, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When testing system metrics update", func() {
			convey.Convey("Then it should update metrics without panicking", func() {
				convey.So(updateSystemMetrics, convey.ShouldNotPanic)
			})
		})
	})
}
