package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/models"
)

// applicationRepository is the SQL implementation of [ApplicationRepository]
// over the "job_applications" table. Every statement except the insert
// filters on both id and user_id.
type applicationRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewApplicationRepository(db *DB, logger *logger.Logger) ApplicationRepository {
	logger.Debug().Msg("creating application repository")
	return &applicationRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts app as is. ID and CreatedAt are expected to be set by the
// caller. A missing owner yields [ErrUserNotFound].
func (r *applicationRepository) Create(ctx context.Context, app models.Application) (models.Application, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertApplicationQuery(r.db.builder, app)
	if err != nil {
		log.Err(err).Str("func", "*applicationRepository.Create").Msg("error building query")
		return models.Application{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanApplication(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*applicationRepository.Create").Str("user_id", app.UserID).Msg("error inserting application")
		return models.Application{}, r.mapWriteError(err)
	}

	return created, nil
}

// FindByUserID lists the applications owned by userID narrowed and ordered
// by filter. It returns an empty, non-nil slice when nothing matches.
func (r *applicationRepository) FindByUserID(ctx context.Context, userID string, filter models.ApplicationFilter) ([]models.Application, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectApplicationsQuery(r.db.builder, userID, filter)
	if err != nil {
		log.Err(err).Str("func", "*applicationRepository.FindByUserID").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*applicationRepository.FindByUserID").Str("user_id", userID).Msg("error querying applications")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	apps := make([]models.Application, 0)
	for rows.Next() {
		app, scanErr := scanApplication(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*applicationRepository.FindByUserID").Str("user_id", userID).Msg("error scanning application row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		apps = append(apps, app)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*applicationRepository.FindByUserID").Str("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return apps, nil
}

func (r *applicationRepository) FindByID(ctx context.Context, id, userID string) (models.Application, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectApplicationQuery(r.db.builder, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*applicationRepository.FindByID").Msg("error building query")
		return models.Application{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	app, err := scanApplication(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Application{}, ErrApplicationNotFound
		}
		log.Err(err).Str("func", "*applicationRepository.FindByID").Str("id", id).Msg("error finding application")
		return models.Application{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return app, nil
}

// Update writes the present fields of update and returns the stored row.
func (r *applicationRepository) Update(ctx context.Context, id, userID string, update models.ApplicationUpdate) (models.Application, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateApplicationQuery(r.db.builder, id, userID, update)
	if err != nil {
		if errors.Is(err, ErrNoFieldsToUpdate) {
			return models.Application{}, err
		}
		log.Err(err).Str("func", "*applicationRepository.Update").Msg("error building query")
		return models.Application{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	app, err := scanApplication(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Application{}, ErrApplicationNotFound
		}
		log.Err(err).Str("func", "*applicationRepository.Update").Str("id", id).Msg("error updating application")
		return models.Application{}, r.mapWriteError(err)
	}

	return app, nil
}

// Delete removes the application and returns it as it was before removal.
func (r *applicationRepository) Delete(ctx context.Context, id, userID string) (models.Application, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteApplicationQuery(r.db.builder, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*applicationRepository.Delete").Msg("error building query")
		return models.Application{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	app, err := scanApplication(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Application{}, ErrApplicationNotFound
		}
		log.Err(err).Str("func", "*applicationRepository.Delete").Str("id", id).Msg("error deleting application")
		return models.Application{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return app, nil
}

func (r *applicationRepository) GetStats(ctx context.Context, userID string) (map[models.Status]int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildStatsQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*applicationRepository.GetStats").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*applicationRepository.GetStats").Str("user_id", userID).Msg("error querying stats")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make(map[models.Status]int)
	for rows.Next() {
		var (
			status models.Status
			count  int
		)
		if err = rows.Scan(&status, &count); err != nil {
			log.Err(err).Str("func", "*applicationRepository.GetStats").Msg("error scanning stats row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		counts[status] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return counts, nil
}

func (r *applicationRepository) mapWriteError(err error) error {
	switch r.db.classify(err) {
	case ClassForeignKeyViolation:
		return ErrUserNotFound
	case ClassCheckViolation:
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
