// Package app provides the roster service that implements the dependencies
// required by the HTTP API.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	repository "github.com/mergington/activities/internal/adapters/repository"
	"github.com/mergington/activities/internal/domain/catalog"
	"github.com/mergington/activities/internal/domain/model"
	"github.com/mergington/activities/pkg/logger"
	"github.com/mergington/activities/pkg/metrics"
)

// Operation names used in logs and metric labels.
const (
	opSignup = "signup"
	opRemove = "remove"
)

// Service owns the activity registry and exposes the roster operations.
type Service struct {
	mu sync.RWMutex

	store   repository.Store
	seed    []model.Activity
	started bool

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore replaces the default in-memory registry.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithCatalog sets the activities seeded on Start.
func WithCatalog(activities []model.Activity) Option {
	return func(s *Service) {
		if activities != nil {
			s.seed = activities
		}
	}
}

// New constructs a Service backed by an empty MemoryStore and the built-in catalog.
func New(opts ...Option) *Service {
	s := &Service{
		store: repository.NewMemoryStore(),
		seed:  catalog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start validates the catalog and seeds the registry. Calling Start twice is a no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	if err := catalog.Validate(s.seed); err != nil {
		return err
	}
	if err := s.store.Seed(ctx, s.seed); err != nil {
		return fmt.Errorf("seed registry: %w", err)
	}

	metrics.UpdateActivityCount(len(s.seed))
	for _, a := range s.seed {
		metrics.UpdateParticipants(a.Name, len(a.Participants))
	}

	s.started = true
	s.logger.Info(ctx, "activity registry seeded",
		logger.Int("activities", s.store.Count(ctx)),
		logger.Int("participants", s.store.Participants(ctx)),
	)
	return nil
}

// Stop marks the service as stopped. The registry is kept in memory until the process exits.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.log().Info(context.Background(), "activity service stopped")
}

// List returns every activity keyed by name.
func (s *Service) List(ctx context.Context) (map[string]model.Activity, error) {
	return s.store.List(ctx)
}

// Signup enrolls email in activity and returns a confirmation message.
func (s *Service) Signup(ctx context.Context, activity, email string) (string, error) {
	if strings.TrimSpace(email) == "" {
		metrics.RecordRejection(opSignup, "email_required")
		return "", ErrEmailRequired
	}

	a, err := s.store.AddParticipant(ctx, activity, email)
	if err != nil {
		err = translate(err)
		s.reject(ctx, opSignup, activity, email, err)
		return "", err
	}

	metrics.RecordSignup(activity)
	metrics.UpdateParticipants(activity, len(a.Participants))
	s.log().Debug(ctx, "participant signed up",
		logger.String("activity", activity),
		logger.String("email", email),
		logger.Int("participants", len(a.Participants)),
	)
	return fmt.Sprintf("Signed up %s for %s", email, activity), nil
}

// Remove drops email from activity and returns a confirmation message.
func (s *Service) Remove(ctx context.Context, activity, email string) (string, error) {
	a, err := s.store.RemoveParticipant(ctx, activity, email)
	if err != nil {
		err = translate(err)
		s.reject(ctx, opRemove, activity, email, err)
		return "", err
	}

	metrics.RecordRemoval(activity)
	metrics.UpdateParticipants(activity, len(a.Participants))
	s.log().Debug(ctx, "participant removed",
		logger.String("activity", activity),
		logger.String("email", email),
		logger.Int("participants", len(a.Participants)),
	)
	return fmt.Sprintf("Removed %s from %s", email, activity), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	return map[string]interface{}{
		"started":      s.started,
		"activities":   s.store.Count(ctx),
		"participants": s.store.Participants(ctx),
	}
}

func (s *Service) reject(ctx context.Context, op, activity, email string, err error) {
	metrics.RecordRejection(op, reason(err))
	s.log().Info(ctx, "roster operation rejected",
		logger.String("operation", op),
		logger.String("activity", activity),
		logger.String("email", email),
		logger.Error(err),
	)
}

func (s *Service) log() logger.Logger {
	if s.logger == nil {
		return logger.Get()
	}
	return s.logger
}

// translate maps registry errors onto service errors.
func translate(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrActivityNotFound, err)
	case errors.Is(err, repository.ErrAlreadyEnrolled):
		return fmt.Errorf("%w: %w", ErrAlreadySignedUp, err)
	case errors.Is(err, repository.ErrNotEnrolled):
		return fmt.Errorf("%w: %w", ErrNotEnrolled, err)
	default:
		return err
	}
}

func reason(err error) string {
	switch {
	case errors.Is(err, ErrActivityNotFound):
		return "not_found"
	case errors.Is(err, ErrAlreadySignedUp):
		return "already_signed_up"
	case errors.Is(err, ErrNotEnrolled):
		return "not_enrolled"
	default:
		return "internal"
	}
}
