package repository

import "github.com/mergington/activities/internal/domain/model"

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithActivities seeds the store at construction. Later duplicates replace earlier ones;
// use Seed to get duplicate detection.
func WithActivities(activities ...model.Activity) Option {
	return func(s *MemoryStore) {
		for _, a := range activities {
			c := a.Clone()
			s.activities[a.Name] = &c
		}
	}
}
