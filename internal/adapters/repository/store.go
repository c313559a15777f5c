// Package repository defines the activity registry interface and its in-memory implementation.
package repository

import (
	"context"

	"github.com/mergington/activities/internal/domain/model"
)

// Store provides read/write access to the activity registry.
type Store interface {
	// Seed replaces the registry contents. Names must be unique.
	Seed(ctx context.Context, activities []model.Activity) error

	// List returns a snapshot of every activity keyed by name.
	List(ctx context.Context) (map[string]model.Activity, error)

	// Get returns one activity or ErrNotFound.
	Get(ctx context.Context, name string) (model.Activity, error)

	// AddParticipant appends email to the roster and returns the updated activity.
	// Returns ErrNotFound or ErrAlreadyEnrolled.
	AddParticipant(ctx context.Context, name, email string) (model.Activity, error)

	// RemoveParticipant drops email from the roster and returns the updated activity.
	// Returns ErrNotFound or ErrNotEnrolled.
	RemoveParticipant(ctx context.Context, name, email string) (model.Activity, error)

	// Count returns the number of activities.
	Count(ctx context.Context) int

	// Participants returns the number of roster entries across all activities.
	Participants(ctx context.Context) int
}
