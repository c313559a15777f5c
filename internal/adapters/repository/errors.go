package repository

import "errors"

// Sentinel kinds for registry errors.
var (
	ErrNotFound          = errors.New("activity not found")
	ErrAlreadyEnrolled   = errors.New("participant already enrolled")
	ErrNotEnrolled       = errors.New("participant not enrolled")
	ErrDuplicateActivity = errors.New("duplicate activity")
)
