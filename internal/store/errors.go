package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup, or when an
	// application references a user that does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrApplicationNotFound is returned when no application matches the
	// (id, user_id) pair. Records owned by other users are reported the same
	// way as records that do not exist.
	ErrApplicationNotFound = errors.New("application not found")

	// ErrNoFieldsToUpdate is returned by Update when the update carries no fields.
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrConstraintViolation is returned when the database rejects a row
	// through a CHECK or NOT NULL constraint.
	ErrConstraintViolation = errors.New("constraint violation")

	ErrLocalSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
