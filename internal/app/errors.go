package app

import "errors"

// Sentinel kinds for roster operations. The HTTP layer maps them to status codes.
var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("student is already signed up for this activity")
	ErrNotEnrolled      = errors.New("student is not enrolled in this activity")
	ErrEmailRequired    = errors.New("email is required")
)
