package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/store"
	"github.com/MKhiriev/go-job-tracker/models"
	"github.com/google/uuid"
)

type applicationService struct {
	applicationRepository store.ApplicationRepository
	ids                   IDGenerator
	logger                *logger.Logger
}

func NewApplicationService(applicationRepository store.ApplicationRepository, ids IDGenerator, logger *logger.Logger) ApplicationService {
	return &applicationService{
		applicationRepository: applicationRepository,
		ids:                   ids,
		logger:                logger,
	}
}

// Create stores app for userID. ID, owner and creation time are always set
// here; values supplied by the caller are overwritten.
func (s *applicationService) Create(ctx context.Context, userID string, app models.Application) (models.Application, error) {
	app.ID = s.ids.Generate()
	app.UserID = userID
	app.CreatedAt = now()
	if app.Notes != nil && *app.Notes == "" {
		app.Notes = nil
	}

	created, err := s.applicationRepository.Create(ctx, app)
	if err != nil {
		logger.FromContextOr(ctx, s.logger).Err(err).Str("func", "*applicationService.Create").Str("user_id", userID).Msg("application creation failed")
		return models.Application{}, mapStoreError(err)
	}

	return created, nil
}

func (s *applicationService) List(ctx context.Context, userID string, filter models.ApplicationFilter) ([]models.Application, error) {
	apps, err := s.applicationRepository.FindByUserID(ctx, userID, filter.Normalized())
	if err != nil {
		return nil, mapStoreError(err)
	}
	return apps, nil
}

// Get returns ErrApplicationNotFound for ids that are not UUIDs, so that
// such ids never reach the database.
func (s *applicationService) Get(ctx context.Context, id, userID string) (models.Application, error) {
	if uuid.Validate(id) != nil {
		return models.Application{}, ErrApplicationNotFound
	}

	app, err := s.applicationRepository.FindByID(ctx, id, userID)
	if err != nil {
		return models.Application{}, mapStoreError(err)
	}
	return app, nil
}

// Update applies the present fields of update. An empty update is rejected
// before the id is looked at.
func (s *applicationService) Update(ctx context.Context, id, userID string, update models.ApplicationUpdate) (models.Application, error) {
	if update.IsEmpty() {
		return models.Application{}, ErrNoFieldsToUpdate
	}
	if uuid.Validate(id) != nil {
		return models.Application{}, ErrApplicationNotFound
	}

	app, err := s.applicationRepository.Update(ctx, id, userID, update)
	if err != nil {
		return models.Application{}, mapStoreError(err)
	}

	logger.FromContextOr(ctx, s.logger).Debug().Str("id", id).Msg("application updated")
	return app, nil
}

func (s *applicationService) Delete(ctx context.Context, id, userID string) (models.Application, error) {
	if uuid.Validate(id) != nil {
		return models.Application{}, ErrApplicationNotFound
	}

	app, err := s.applicationRepository.Delete(ctx, id, userID)
	if err != nil {
		return models.Application{}, mapStoreError(err)
	}
	return app, nil
}

// GetStats counts the user's applications for every status, including the
// ones with no applications.
func (s *applicationService) GetStats(ctx context.Context, userID string) (models.ApplicationStats, error) {
	counts, err := s.applicationRepository.GetStats(ctx, userID)
	if err != nil {
		return models.ApplicationStats{}, mapStoreError(err)
	}
	return models.NewApplicationStats(counts), nil
}

// mapStoreError translates store sentinels into service errors and wraps
// everything else.
func mapStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrApplicationNotFound):
		return ErrApplicationNotFound
	case errors.Is(err, store.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, store.ErrNoFieldsToUpdate):
		return ErrNoFieldsToUpdate
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return ErrEmailAlreadyExists
	}
	return fmt.Errorf("storage error: %w", err)
}
