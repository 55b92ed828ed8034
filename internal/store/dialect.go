package store

import (
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-job-tracker/migrations"
)

// Dialect identifies the SQL backend behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

var ErrUnsupportedDSN = errors.New("unsupported database DSN")

// ParseDSN detects the backend from dsn and returns the dialect together with
// the DSN to hand to the driver.
//
//	postgres://..., postgresql://..., "host=... dbname=..."  -> PostgreSQL
//	sqlite://path, sqlite3://path, file:path, :memory:, path -> SQLite
func ParseDSN(dsn string) (Dialect, string, error) {
	dsn = strings.TrimSpace(dsn)
	lower := strings.ToLower(dsn)

	switch {
	case dsn == "":
		return "", "", fmt.Errorf("%w: empty", ErrUnsupportedDSN)
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DialectPostgres, dsn, nil
	case strings.HasPrefix(lower, "sqlite3://"):
		return DialectSQLite, dsn[len("sqlite3://"):], nil
	case strings.HasPrefix(lower, "sqlite://"):
		return DialectSQLite, dsn[len("sqlite://"):], nil
	case strings.Contains(lower, "://"):
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedDSN, dsn[:strings.Index(dsn, "://")])
	case strings.Contains(lower, "host=") || strings.Contains(lower, "dbname="):
		return DialectPostgres, dsn, nil
	default:
		return DialectSQLite, dsn, nil
	}
}

func (d Dialect) placeholder() sq.PlaceholderFormat {
	if d == DialectPostgres {
		return sq.Dollar
	}
	return sq.Question
}

func (d Dialect) migrations() migrations.Set {
	if d == DialectPostgres {
		return migrations.Postgres
	}
	return migrations.SQLite
}
