// Package model contains domain models passed between layers.
package model

import (
	"slices"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Activity is an extracurricular offering with its roster.
// Name is the registry key and is not part of the JSON body.
type Activity struct {
	Name            string   `json:"-" koanf:"name" validate:"required"`
	Description     string   `json:"description" koanf:"description" validate:"required"`
	Schedule        string   `json:"schedule" koanf:"schedule" validate:"required"`
	MaxParticipants int      `json:"max_participants" koanf:"max_participants" validate:"gt=0"`
	Participants    []string `json:"participants" koanf:"participants" validate:"unique,dive,required"`
}

// Validate checks the seed-time invariants of an activity.
// MaxParticipants is informational and is never compared to the roster size.
func (a Activity) Validate() error {
	return validate.Struct(a)
}

// Has reports whether email is on the roster. Comparison is exact and case-sensitive.
func (a Activity) Has(email string) bool {
	return slices.Contains(a.Participants, email)
}

// Clone returns a deep copy. Participants is never nil so it encodes as [].
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}
