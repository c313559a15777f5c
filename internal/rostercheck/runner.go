package rostercheck

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mergington/activities/pkg/logger"
)

// Run signs generated students up for one activity, verifies the roster grew,
// checks that a duplicate signup is rejected, removes them again and verifies
// the roster is back to its starting size.
func Run(ctx context.Context, config *Config) (*Stats, error) {
	cfg := config.withDefaults()
	log := logger.Named("rostercheck")
	stats := &Stats{StartTime: time.Now()}

	log.Info(ctx, "starting roster check",
		logger.String("baseURL", cfg.BaseURL),
		logger.String("activity", cfg.Activity),
		logger.Int("students", cfg.Students),
		logger.Int("workers", cfg.Workers),
		logger.Duration("timeout", cfg.Timeout))

	client := NewClient(cfg.BaseURL, cfg.Timeout)

	// Step 1: Check service health
	if err := client.Health(ctx); err != nil {
		return stats, fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Record the starting roster
	initial, err := roster(ctx, client, cfg.Activity)
	if err != nil {
		return stats, err
	}
	stats.InitialCount = len(initial)

	// Step 3: Sign up generated students concurrently
	emails := generateEmails(cfg.Students, cfg.EmailDomain)
	ok, failed := fanOut(ctx, &cfg, emails, func(ctx context.Context, email string) bool {
		status, err := client.Signup(ctx, cfg.Activity, email)
		if cfg.Verbose {
			log.Debug(ctx, "signup", logger.String("email", email), logger.Int("status", status))
		}
		return err == nil && status == http.StatusOK
	})
	stats.SignupsSucceeded, stats.SignupsFailed = ok, failed

	// Step 4: Verify every student is enrolled
	after, err := roster(ctx, client, cfg.Activity)
	if err != nil {
		return stats, err
	}
	stats.PeakCount = len(after)
	if err := verifyEnrolled(after, emails, stats.InitialCount+stats.SignupsSucceeded); err != nil {
		return stats, err
	}

	// Step 5: A second signup for the same student must be rejected
	if len(emails) > 0 {
		if err := checkDuplicate(ctx, client, cfg.Activity, emails[0]); err != nil {
			return stats, err
		}
		stats.DuplicatesRejected++
	}

	// Step 6: Remove the generated students concurrently
	ok, failed = fanOut(ctx, &cfg, emails, func(ctx context.Context, email string) bool {
		status, err := client.Remove(ctx, cfg.Activity, email)
		if cfg.Verbose {
			log.Debug(ctx, "remove", logger.String("email", email), logger.Int("status", status))
		}
		return err == nil && status == http.StatusOK
	})
	stats.RemovalsSucceeded, stats.RemovalsFailed = ok, failed

	// Step 7: Verify the roster is back where it started
	final, err := roster(ctx, client, cfg.Activity)
	if err != nil {
		return stats, err
	}
	stats.FinalCount = len(final)
	if err := verifyRestored(initial, final, emails); err != nil {
		return stats, err
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, log, stats)

	if stats.SignupsFailed > 0 || stats.RemovalsFailed > 0 {
		return stats, fmt.Errorf("%w: %d signups and %d removals failed",
			ErrUnexpectedStatus, stats.SignupsFailed, stats.RemovalsFailed)
	}
	log.Info(ctx, "roster check completed successfully")
	return stats, nil
}

func roster(ctx context.Context, client *Client, activity string) ([]string, error) {
	activities, err := client.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("activity listing failed: %w", err)
	}
	a, ok := activities[activity]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrActivityMissing, activity)
	}
	return a.Participants, nil
}

func checkDuplicate(ctx context.Context, client *Client, activity, email string) error {
	status, err := client.Signup(ctx, activity, email)
	if err != nil {
		return fmt.Errorf("duplicate signup failed: %w", err)
	}
	if status != http.StatusBadRequest {
		return fmt.Errorf("%w: got status %d for %s", ErrDuplicateAccepted, status, email)
	}
	return nil
}

// generateEmails creates n unique student addresses.
func generateEmails(n int, domain string) []string {
	emails := make([]string, n)
	for i := range emails {
		emails[i] = "student-" + uuid.NewString() + "@" + domain
	}
	return emails
}

func displayFinalStats(ctx context.Context, log logger.Logger, stats *Stats) {
	var successRate float64
	if attempted := stats.SignupsSucceeded + stats.SignupsFailed; attempted > 0 {
		successRate = float64(stats.SignupsSucceeded) / float64(attempted) * percentageMultiplier
	}

	log.Info(ctx, "final statistics",
		logger.Int("initialCount", stats.InitialCount),
		logger.Int("peakCount", stats.PeakCount),
		logger.Int("finalCount", stats.FinalCount),
		logger.Int("signupsSucceeded", stats.SignupsSucceeded),
		logger.Int("signupsFailed", stats.SignupsFailed),
		logger.Int("duplicatesRejected", stats.DuplicatesRejected),
		logger.Int("removalsSucceeded", stats.RemovalsSucceeded),
		logger.Int("removalsFailed", stats.RemovalsFailed),
		logger.Duration("duration", stats.Duration),
		logger.Float64("signupSuccessRate", successRate))
}
