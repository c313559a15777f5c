package rostercheck

import "time"

// Defaults applied when the matching Config field is zero.
const (
	DefaultTimeout     = 10 * time.Second
	DefaultEmailDomain = "mergington.edu"
)

// Worker configuration constants.
const (
	WorkerChannelMultiplier = 2
)

const percentageMultiplier = 100
