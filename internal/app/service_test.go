package app_test

import (
	"context"
	"errors"
	"testing"

	repository "github.com/mergington/activities/internal/adapters/repository"
	"github.com/mergington/activities/internal/app"
	"github.com/mergington/activities/internal/domain/model"
	"github.com/mergington/activities/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func startedService(t *testing.T, opts ...app.Option) *app.Service {
	t.Helper()
	svc := app.New(opts...)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	return svc
}

func TestService_Start(t *testing.T) {
	Convey("Given a new service with the built-in catalog", t, func() {
		svc := app.New()
		defer svc.Stop()

		Convey("When starting the service", func() {
			err := svc.Start(context.Background())

			Convey("Then it should seed the nine activities", func() {
				So(err, ShouldBeNil)
				stats := svc.GetStats()
				So(stats["started"], ShouldEqual, true)
				So(stats["activities"], ShouldEqual, 9)
				So(stats["participants"], ShouldEqual, 6)
			})

			Convey("And starting again should be a no-op", func() {
				So(svc.Start(context.Background()), ShouldBeNil)
			})
		})
	})

	Convey("Given a service with an invalid catalog", t, func() {
		svc := app.New(app.WithCatalog([]model.Activity{{Name: "Choir", Description: "d", Schedule: "s"}}))

		Convey("When starting the service", func() {
			err := svc.Start(context.Background())

			Convey("Then it should refuse to start", func() {
				So(err, ShouldNotBeNil)
				So(svc.GetStats()["started"], ShouldEqual, false)
			})
		})
	})
}

func TestService_Stop(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := startedService(t)

		Convey("When stopping the service", func() {
			svc.Stop()

			Convey("Then it should be marked as stopped", func() {
				So(svc.GetStats()["started"], ShouldEqual, false)
			})
		})
	})
}

func TestService_Signup(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := startedService(t)
		defer svc.Stop()

		Convey("When signing up a new student", func() {
			msg, err := svc.Signup(ctx, "Soccer Team", "student@mergington.edu")

			Convey("Then the message should mention the email and activity", func() {
				So(err, ShouldBeNil)
				So(msg, ShouldContainSubstring, "student@mergington.edu")
				So(msg, ShouldContainSubstring, "Soccer Team")
			})

			Convey("And the student should be on the roster", func() {
				all, err := svc.List(ctx)
				So(err, ShouldBeNil)
				So(all["Soccer Team"].Participants, ShouldContain, "student@mergington.edu")
			})

			Convey("And signing up again should fail with ErrAlreadySignedUp", func() {
				_, err := svc.Signup(ctx, "Soccer Team", "student@mergington.edu")
				So(errors.Is(err, app.ErrAlreadySignedUp), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "already signed up")
			})
		})

		Convey("When signing up for an unknown activity", func() {
			_, err := svc.Signup(ctx, "Nonexistent Activity", "student@mergington.edu")

			Convey("Then it should fail with ErrActivityNotFound", func() {
				So(errors.Is(err, app.ErrActivityNotFound), ShouldBeTrue)
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "not found")
			})
		})

		Convey("When signing up with an empty email", func() {
			_, err := svc.Signup(ctx, "Soccer Team", "  ")

			Convey("Then it should fail with ErrEmailRequired", func() {
				So(errors.Is(err, app.ErrEmailRequired), ShouldBeTrue)
			})
		})

		Convey("When signing up beyond max participants", func() {
			svc := startedService(t, app.WithCatalog([]model.Activity{{
				Name: "Tiny Club", Description: "d", Schedule: "s", MaxParticipants: 1,
				Participants: []string{"first@mergington.edu"},
			}}))
			_, err := svc.Signup(ctx, "Tiny Club", "second@mergington.edu")

			Convey("Then capacity should not be enforced", func() {
				So(err, ShouldBeNil)
			})
		})
	})
}

func TestService_Remove(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := startedService(t)
		defer svc.Stop()

		Convey("When removing an enrolled student", func() {
			msg, err := svc.Remove(ctx, "Chess Club", "michael@mergington.edu")

			Convey("Then the message should mention the email", func() {
				So(err, ShouldBeNil)
				So(msg, ShouldContainSubstring, "michael@mergington.edu")
			})

			Convey("And only daniel should remain", func() {
				all, _ := svc.List(ctx)
				So(all["Chess Club"].Participants, ShouldResemble, []string{"daniel@mergington.edu"})
			})
		})

		Convey("When removing a student who is not enrolled", func() {
			_, err := svc.Remove(ctx, "Soccer Team", "notenrolled@mergington.edu")

			Convey("Then it should fail with ErrNotEnrolled", func() {
				So(errors.Is(err, app.ErrNotEnrolled), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "not enrolled")
			})
		})

		Convey("When removing from an unknown activity", func() {
			_, err := svc.Remove(ctx, "Nonexistent Activity", "student@mergington.edu")

			Convey("Then it should fail with ErrActivityNotFound", func() {
				So(errors.Is(err, app.ErrActivityNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestService_SignupRemoveRoundTrip(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := startedService(t)
		defer svc.Stop()

		all, _ := svc.List(ctx)
		initial := len(all["Basketball Club"].Participants)

		Convey("When a student signs up and is then removed", func() {
			_, err := svc.Signup(ctx, "Basketball Club", "integration@mergington.edu")
			So(err, ShouldBeNil)
			all, _ = svc.List(ctx)
			So(all["Basketball Club"].Participants, ShouldHaveLength, initial+1)

			_, err = svc.Remove(ctx, "Basketball Club", "integration@mergington.edu")
			So(err, ShouldBeNil)

			Convey("Then the roster size should return to its starting value", func() {
				all, _ = svc.List(ctx)
				So(all["Basketball Club"].Participants, ShouldHaveLength, initial)
				So(all["Basketball Club"].Participants, ShouldNotContain, "integration@mergington.edu")
			})
		})
	})
}

func TestService_WithStore(t *testing.T) {
	Convey("Given a service with an injected store", t, func() {
		store := repository.NewMemoryStore()
		svc := startedService(t, app.WithStore(store))
		defer svc.Stop()

		Convey("Then the store should hold the seeded catalog", func() {
			So(store.Count(context.Background()), ShouldEqual, 9)
		})
	})
}
