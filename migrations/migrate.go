// Package migrations embeds the SQL schema of the server and the terminal
// client and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql client/*.sql
var embedMigrations embed.FS

// Set names a directory of migrations together with the goose dialect
// it is written for.
type Set struct {
	Dir     string
	Dialect string
}

var (
	// Postgres is the server schema for PostgreSQL.
	Postgres = Set{Dir: "postgres", Dialect: "pgx"}
	// SQLite is the server schema for SQLite.
	SQLite = Set{Dir: "sqlite", Dialect: "sqlite3"}
	// Client is the local session schema of the terminal client (SQLite).
	Client = Set{Dir: "client", Dialect: "sqlite3"}
)

var ErrNilDB = errors.New("db is nil")

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// Migrate applies every pending migration of set to db.
func Migrate(db *sql.DB, set Set) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(set.Dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, set.Dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
