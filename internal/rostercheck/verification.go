package rostercheck

import (
	"fmt"
	"slices"
)

// verifyEnrolled checks that every generated email is on the roster and that
// the roster has the expected size.
func verifyEnrolled(participants, emails []string, want int) error {
	if len(participants) != want {
		return fmt.Errorf("%w: roster has %d participants, want %d", ErrRosterMismatch, len(participants), want)
	}
	for _, email := range emails {
		if !slices.Contains(participants, email) {
			return fmt.Errorf("%w: %s missing after signup", ErrRosterMismatch, email)
		}
	}
	return nil
}

// verifyRestored checks that the roster matches its starting state and that
// no generated email remains.
func verifyRestored(initial, final, emails []string) error {
	if !slices.Equal(initial, final) {
		return fmt.Errorf("%w: roster changed from %v to %v", ErrRosterMismatch, initial, final)
	}
	for _, email := range emails {
		if slices.Contains(final, email) {
			return fmt.Errorf("%w: %s still enrolled after removal", ErrRosterMismatch, email)
		}
	}
	return nil
}
