package rostercheck

import (
	"errors"
	"time"
)

// Errors reported by Run.
var (
	ErrUnhealthy         = errors.New("service is not healthy")
	ErrActivityMissing   = errors.New("activity not listed")
	ErrUnexpectedStatus  = errors.New("unexpected response status")
	ErrRosterMismatch    = errors.New("roster does not match expectations")
	ErrDuplicateAccepted = errors.New("duplicate signup was accepted")
)

// Config holds configuration for a roster check.
type Config struct {
	BaseURL     string        // Base URL of the service
	Activity    string        // Activity whose roster is exercised
	Students    int           // Number of generated students to sign up
	Workers     int           // Number of concurrent workers
	Timeout     time.Duration // HTTP request timeout
	EmailDomain string        // Domain used for generated emails
	LogFile     string        // Optional log file mirroring stdout
	Verbose     bool          // Log every request
}

// Stats holds the outcome of a roster check.
type Stats struct {
	InitialCount       int
	PeakCount          int
	FinalCount         int
	SignupsSucceeded   int
	SignupsFailed      int
	DuplicatesRejected int
	RemovalsSucceeded  int
	RemovalsFailed     int
	StartTime          time.Time
	EndTime            time.Time
	Duration           time.Duration
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.Workers <= 0 {
		out.Workers = 1
	}
	if out.Timeout <= 0 {
		out.Timeout = DefaultTimeout
	}
	if out.EmailDomain == "" {
		out.EmailDomain = DefaultEmailDomain
	}
	return out
}
