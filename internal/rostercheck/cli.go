package rostercheck

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mergington/activities/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging initializes the global logger on stdout, mirrored to logFile
// when one is given. The returned function closes the file.
func SetupLogging(logFile string, verbose bool) (func(), error) {
	var (
		w       io.Writer = os.Stdout
		closeFn           = func() {}
	)
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
		if err != nil {
			return closeFn, fmt.Errorf("failed to create log file: %w", err)
		}
		w = io.MultiWriter(os.Stdout, file)
		closeFn = func() { _ = file.Close() }
	}

	if err := logger.InitWithWriter(w, logger.FormatText); err != nil {
		closeFn()
		return func() {}, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		_ = logger.SetLevelString("debug")
	}
	if logFile != "" {
		logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	}
	return closeFn, nil
}

// ShowHelp prints usage information for the roster check tool.
func ShowHelp() {
	_, _ = os.Stdout.WriteString(`Mergington Roster Check
=======================

Drives a complete signup and removal cycle against a running activities service
and verifies the roster ends where it started.

Usage:
  go run ./cmd/roster-check [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:8000")
  -activity string
        Activity whose roster is exercised (default "Chess Club")
  -students int
        Number of generated students to sign up (default 25)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 10s)
  -domain string
        Email domain for generated students (default "mergington.edu")
  -log string
        Also write log output to this file
  -verbose
        Log every request
  -help
        Show this help message

Examples:
  # Check the default activity
  go run ./cmd/roster-check

  # Hammer one roster with more students
  go run ./cmd/roster-check -activity "Programming Class" -students 200 -workers 16
`)
}
