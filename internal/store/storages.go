package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
)

// Storages groups the server-side repositories over one database handle.
type Storages struct {
	UserRepository        UserRepository
	ApplicationRepository ApplicationRepository

	db *DB
}

// NewStorages connects to the database named by cfg, applies pending
// migrations and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectDB(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	logger.Info().Str("dialect", string(db.Dialect())).Msg("database schema is up to date")

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(db, logger),
		ApplicationRepository: NewApplicationRepository(db, logger),
		db:                    db,
	}
}

func (s *Storages) Close() error {
	return s.db.Close()
}
