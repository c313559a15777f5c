package rostercheck

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mergington/activities/internal/adapters/http/api"
	"github.com/mergington/activities/internal/app"
	"github.com/mergington/activities/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func newTestServer(t *testing.T) (*httptest.Server, *app.Service) {
	t.Helper()
	svc := app.New()
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start service: %v", err)
	}
	mux := http.NewServeMux()
	api.NewServer(svc, svc).Register(context.Background(), mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(func() {
		srv.Close()
		svc.Stop()
	})
	return srv, svc
}

func TestRun(t *testing.T) {
	Convey("Given a running activities service", t, func() {
		srv, svc := newTestServer(t)
		ctx := context.Background()

		Convey("When running a roster check against Chess Club", func() {
			stats, err := Run(ctx, &Config{
				BaseURL:  srv.URL,
				Activity: "Chess Club",
				Students: 20,
				Workers:  4,
				Timeout:  5 * time.Second,
			})

			Convey("Then it should succeed", func() {
				So(err, ShouldBeNil)
				So(stats.InitialCount, ShouldEqual, 2)
				So(stats.PeakCount, ShouldEqual, 22)
				So(stats.FinalCount, ShouldEqual, 2)
				So(stats.SignupsSucceeded, ShouldEqual, 20)
				So(stats.RemovalsSucceeded, ShouldEqual, 20)
				So(stats.DuplicatesRejected, ShouldEqual, 1)
			})

			Convey("And the roster should be back to its seed", func() {
				activities, err := svc.List(ctx)
				So(err, ShouldBeNil)
				So(activities["Chess Club"].Participants, ShouldResemble,
					[]string{"michael@mergington.edu", "daniel@mergington.edu"})
			})
		})

		Convey("When the activity name needs encoding", func() {
			stats, err := Run(ctx, &Config{
				BaseURL:     srv.URL + "/",
				Activity:    "Programming Class",
				Students:    5,
				EmailDomain: "example.org",
			})

			Convey("Then it should still succeed with defaults filled in", func() {
				So(err, ShouldBeNil)
				So(stats.SignupsSucceeded, ShouldEqual, 5)
			})
		})

		Convey("When the activity does not exist", func() {
			_, err := Run(ctx, &Config{BaseURL: srv.URL, Activity: "Underwater Basket Weaving", Students: 1})

			Convey("Then it should report the missing activity", func() {
				So(errors.Is(err, ErrActivityMissing), ShouldBeTrue)
			})
		})
	})

	Convey("Given a service that is down", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		Convey("When running a roster check", func() {
			_, err := Run(context.Background(), &Config{BaseURL: srv.URL, Activity: "Chess Club"})

			Convey("Then it should fail the health check", func() {
				So(errors.Is(err, ErrUnhealthy), ShouldBeTrue)
			})
		})
	})
}

func TestVerification(t *testing.T) {
	Convey("Given roster snapshots", t, func() {
		initial := []string{"a@x", "b@x"}

		Convey("When every generated email is enrolled", func() {
			err := verifyEnrolled([]string{"a@x", "b@x", "c@x"}, []string{"c@x"}, 3)

			Convey("Then enrollment should verify", func() {
				So(err, ShouldBeNil)
			})
		})

		Convey("When the count is off", func() {
			err := verifyEnrolled(initial, []string{"c@x"}, 3)

			Convey("Then it should report a mismatch", func() {
				So(errors.Is(err, ErrRosterMismatch), ShouldBeTrue)
			})
		})

		Convey("When a generated email lingers after removal", func() {
			err := verifyRestored(initial, []string{"a@x", "c@x"}, []string{"c@x"})

			Convey("Then it should report a mismatch", func() {
				So(errors.Is(err, ErrRosterMismatch), ShouldBeTrue)
			})
		})

		Convey("When the roster is restored", func() {
			So(verifyRestored(initial, []string{"a@x", "b@x"}, []string{"c@x"}), ShouldBeNil)
		})
	})
}

func TestGenerateEmails(t *testing.T) {
	Convey("Given a request for generated emails", t, func() {
		emails := generateEmails(10, "mergington.edu")

		Convey("Then they should be unique and use the domain", func() {
			seen := map[string]bool{}
			for _, e := range emails {
				So(strings.HasSuffix(e, "@mergington.edu"), ShouldBeTrue)
				So(seen[e], ShouldBeFalse)
				seen[e] = true
			}
			So(seen, ShouldHaveLength, 10)
		})
	})
}

func TestFanOut(t *testing.T) {
	Convey("Given a cancelled context", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		Convey("When fanning out", func() {
			ok, _ := fanOut(ctx, &Config{Workers: 2}, []string{"a", "b", "c"}, func(context.Context, string) bool {
				return true
			})

			Convey("Then no call should be counted as successful", func() {
				So(ok, ShouldEqual, 0)
			})
		})
	})

	Convey("Given a function that fails for one email", t, func() {
		ok, failed := fanOut(context.Background(), &Config{Workers: 3}, []string{"a", "b", "c", "d"},
			func(_ context.Context, email string) bool { return email != "c" })

		Convey("Then the counts should reflect it", func() {
			So(ok, ShouldEqual, 3)
			So(failed, ShouldEqual, 1)
		})
	})
}
