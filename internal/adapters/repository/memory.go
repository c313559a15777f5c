package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/mergington/activities/internal/domain/model"
)

// MemoryStore keeps the registry in a map guarded by an RWMutex.
// Rosters are copied on every read so callers never share slices with the store.
type MemoryStore struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store and applies opts.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{activities: make(map[string]*model.Activity)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed replaces the registry contents with activities.
func (s *MemoryStore) Seed(_ context.Context, activities []model.Activity) error {
	next := make(map[string]*model.Activity, len(activities))
	for _, a := range activities {
		if _, dup := next[a.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateActivity, a.Name)
		}
		c := a.Clone()
		next[a.Name] = &c
	}

	s.mu.Lock()
	s.activities = next
	s.mu.Unlock()
	return nil
}

// List returns a deep copy of the registry.
func (s *MemoryStore) List(_ context.Context) (map[string]model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]model.Activity, len(s.activities))
	for name, a := range s.activities {
		out[name] = a.Clone()
	}
	return out, nil
}

// Get returns a copy of one activity.
func (s *MemoryStore) Get(_ context.Context, name string) (model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.activities[name]
	if !ok {
		return model.Activity{}, ErrNotFound
	}
	return a.Clone(), nil
}

// AddParticipant appends email to the roster of name.
func (s *MemoryStore) AddParticipant(_ context.Context, name, email string) (model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return model.Activity{}, ErrNotFound
	}
	if a.Has(email) {
		return model.Activity{}, ErrAlreadyEnrolled
	}
	a.Participants = append(a.Participants, email)
	return a.Clone(), nil
}

// RemoveParticipant drops email from the roster of name, keeping the order of the rest.
func (s *MemoryStore) RemoveParticipant(_ context.Context, name, email string) (model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return model.Activity{}, ErrNotFound
	}
	i := slices.Index(a.Participants, email)
	if i < 0 {
		return model.Activity{}, ErrNotEnrolled
	}
	a.Participants = slices.Delete(a.Participants, i, i+1)
	return a.Clone(), nil
}

// Count returns the number of activities.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.activities)
}

// Participants returns the total roster size.
func (s *MemoryStore) Participants(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, a := range s.activities {
		total += len(a.Participants)
	}
	return total
}
