package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

// Save replaces the stored session with session.
func (s *sessionRepository) Save(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveSessionQuery(s.builder, session)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.Save").
			Str("user_id", session.UserID).
			Msg("failed to save local session")
		return fmt.Errorf("failed to save local session: %w", err)
	}

	return nil
}

func (s *sessionRepository) Load(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLoadSessionQuery(s.builder)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var session models.Session
	err = s.QueryRowContext(ctx, query, args...).Scan(&session.UserID, &session.Email, &session.Token, &session.SavedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrLocalSessionNotFound
		}
		log.Err(err).
			Str("func", "sessionRepository.Load").
			Msg("failed to load local session")
		return models.Session{}, fmt.Errorf("failed to load local session: %w", err)
	}

	return session, nil
}

func (s *sessionRepository) Clear(ctx context.Context) error {
	query, args, err := buildClearSessionQuery(s.builder)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sessionRepository.Clear").
			Msg("failed to clear local session")
		return fmt.Errorf("failed to clear local session: %w", err)
	}

	return nil
}
