package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/mergington/activities/internal/rostercheck"
)

// Default configuration constants.
const (
	defaultStudents    = 25
	defaultWorkers     = 2 // multiplier for runtime.NumCPU()
	defaultCheckTimeout = 5 * time.Minute
)

func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:8000", "Base URL of the service")
		activity = flag.String("activity", "Chess Club", "Activity whose roster is exercised")
		students = flag.Int("students", defaultStudents, "Number of generated students to sign up")
		workers  = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout  = flag.Duration("timeout", rostercheck.DefaultTimeout, "HTTP request timeout")
		domain   = flag.String("domain", rostercheck.DefaultEmailDomain, "Email domain for generated students")
		logFile  = flag.String("log", "", "Also write log output to this file")
		verbose  = flag.Bool("verbose", false, "Log every request")
		help     = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		rostercheck.ShowHelp()
		return
	}

	closeLog, err := rostercheck.SetupLogging(*logFile, *verbose)
	if err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultCheckTimeout)

	_, err = rostercheck.Run(ctx, &rostercheck.Config{
		BaseURL:     *baseURL,
		Activity:    *activity,
		Students:    *students,
		Workers:     *workers,
		Timeout:     *timeout,
		EmailDomain: *domain,
		LogFile:     *logFile,
		Verbose:     *verbose,
	})
	cancel()
	closeLog()
	if err != nil {
		os.Stderr.WriteString("Roster check failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
