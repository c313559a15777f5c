// Package catalog provides the activities a registry is seeded with at startup.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mergington/activities/internal/domain/model"
)

// ErrInvalidSeed marks a catalog that cannot be used to seed the registry.
var ErrInvalidSeed = errors.New("invalid activity seed")

// Default returns the built-in Mergington High School catalog.
func Default() []model.Activity {
	return []model.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Soccer Team",
			Description:     "Join the school soccer team and compete in matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 22,
			Participants:    []string{},
		},
		{
			Name:            "Basketball Club",
			Description:     "Practice basketball skills and play friendly games",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{},
		},
		{
			Name:            "Art Club",
			Description:     "Explore your creativity through painting and drawing",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{},
		},
		{
			Name:            "Drama Society",
			Description:     "Act, direct, and produce plays and performances",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{},
		},
		{
			Name:            "Math Olympiad",
			Description:     "Solve challenging problems and participate in math competitions",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 10,
			Participants:    []string{},
		},
		{
			Name:            "Debate Club",
			Description:     "Develop public speaking and argumentation skills",
			Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{},
		},
	}
}

// LoadFile reads a YAML catalog of the form:
//
//	activities:
//	  - name: Chess Club
//	    description: ...
//	    schedule: ...
//	    max_participants: 12
//	    participants: [michael@mergington.edu]
func LoadFile(_ context.Context, path string) ([]model.Activity, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrInvalidSeed, path, err)
	}
	if !k.Exists("activities") {
		return nil, fmt.Errorf("%w: %s has no activities list", ErrInvalidSeed, path)
	}

	var out []model.Activity
	if err := k.UnmarshalWithConf("activities", &out, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrInvalidSeed, path, err)
	}
	if err := Validate(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Validate checks every activity and rejects duplicate names.
func Validate(activities []model.Activity) error {
	seen := make(map[string]struct{}, len(activities))
	for i, a := range activities {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("%w: activity #%d (%q): %w", ErrInvalidSeed, i, a.Name, err)
		}
		if _, dup := seen[a.Name]; dup {
			return fmt.Errorf("%w: duplicate activity %q", ErrInvalidSeed, a.Name)
		}
		seen[a.Name] = struct{}{}
	}
	return nil
}
