package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/migrations"
)

// DB is a database handle shared by all repositories. It carries the
// squirrel statement builder configured for the dialect's placeholders and
// the classifier that maps driver errors to [ErrorClass] values.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect Dialect, classificator ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(dialect.placeholder()),
		errorClassificator: classificator,
		logger:             log,
	}
}

// NewConnectDB opens the database named by cfg.DSN, choosing the driver
// from the DSN (see [ParseDSN]).
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, dsn, err := ParseDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	switch dialect {
	case DialectPostgres:
		return NewConnectPostgres(ctx, dsn, log)
	default:
		return NewConnectSQLite(ctx, dsn, log)
	}
}

// Dialect reports which backend the handle talks to.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the server schema for the handle's dialect.
func (db *DB) Migrate() error {
	return db.migrate(db.dialect.migrations())
}

func (db *DB) migrate(set migrations.Set) error {
	if err := migrations.Migrate(db.DB, set); err != nil {
		return fmt.Errorf("error migrating %s schema: %w", set.Dir, err)
	}
	return nil
}

func (db *DB) classify(err error) ErrorClass {
	if db.errorClassificator == nil {
		return ClassUnknown
	}
	return db.errorClassificator.Classify(err)
}
