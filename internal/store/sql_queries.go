package store

import (
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-job-tracker/models"
)

var (
	userColumns        = []string{"id", "email", "password_hash", "created_at"}
	applicationColumns = []string{"id", "user_id", "company", "job_title", "application_date", "status", "notes", "created_at"}
	sessionColumns     = []string{"user_id", "email", "token", "saved_at"}
)

// sessionRowID is the primary key of the only row of the session table.
const sessionRowID = 1

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(models.User{}.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Email, user.PasswordHash, user.CreatedAt).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
}

func buildInsertApplicationQuery(b sq.StatementBuilderType, app models.Application) (string, []any, error) {
	return b.Insert(models.Application{}.TableName()).
		Columns(applicationColumns...).
		Values(
			app.ID,
			app.UserID,
			app.Company,
			app.JobTitle,
			app.ApplicationDate,
			app.Status,
			nullString(app.Notes),
			app.CreatedAt,
		).
		Suffix(returning(applicationColumns)).
		ToSql()
}

// buildSelectApplicationsQuery lists the applications of userID narrowed by
// filter. Ties on the sort column are broken by id in the same direction so
// that the order is stable.
func buildSelectApplicationsQuery(b sq.StatementBuilderType, userID string, filter models.ApplicationFilter) (string, []any, error) {
	filter = filter.Normalized()

	query := b.Select(applicationColumns...).
		From(models.Application{}.TableName()).
		Where(sq.Eq{"user_id": userID})

	if filter.Status != nil {
		query = query.Where(sq.Eq{"status": *filter.Status})
	}
	if filter.DateFrom != nil {
		query = query.Where(sq.GtOrEq{"application_date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		query = query.Where(sq.LtOrEq{"application_date": *filter.DateTo})
	}

	return query.
		OrderBy(
			fmt.Sprintf("%s %s", filter.SortBy, filter.SortOrder),
			fmt.Sprintf("id %s", filter.SortOrder),
		).
		ToSql()
}

func buildSelectApplicationQuery(b sq.StatementBuilderType, id, userID string) (string, []any, error) {
	return b.Select(applicationColumns...).
		From(models.Application{}.TableName()).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

// buildUpdateApplicationQuery sets only the fields present in update.
// An empty update yields ErrNoFieldsToUpdate.
func buildUpdateApplicationQuery(b sq.StatementBuilderType, id, userID string, update models.ApplicationUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNoFieldsToUpdate
	}

	query := b.Update(models.Application{}.TableName())
	if update.Company != nil {
		query = query.Set("company", *update.Company)
	}
	if update.JobTitle != nil {
		query = query.Set("job_title", *update.JobTitle)
	}
	if update.ApplicationDate != nil {
		query = query.Set("application_date", *update.ApplicationDate)
	}
	if update.Status != nil {
		query = query.Set("status", *update.Status)
	}
	if update.Notes != nil {
		query = query.Set("notes", nullString(update.Notes))
	}

	return query.
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix(returning(applicationColumns)).
		ToSql()
}

func buildDeleteApplicationQuery(b sq.StatementBuilderType, id, userID string) (string, []any, error) {
	return b.Delete(models.Application{}.TableName()).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix(returning(applicationColumns)).
		ToSql()
}

func buildStatsQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select("status", "COUNT(*)").
		From(models.Application{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		GroupBy("status").
		ToSql()
}

func buildSaveSessionQuery(b sq.StatementBuilderType, session models.Session) (string, []any, error) {
	return b.Insert("session").
		Columns(append([]string{"id"}, sessionColumns...)...).
		Values(sessionRowID, session.UserID, session.Email, session.Token, session.SavedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET " +
			"user_id = excluded.user_id, email = excluded.email, " +
			"token = excluded.token, saved_at = excluded.saved_at").
		ToSql()
}

func buildLoadSessionQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(sessionColumns...).
		From("session").
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}

func buildClearSessionQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Delete("session").ToSql()
}

// nullString stores empty notes as NULL.
func nullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
		return models.User{}, err
	}
	user.CreatedAt = user.CreatedAt.UTC()
	return user, nil
}

func scanApplication(row rowScanner) (models.Application, error) {
	var (
		app   models.Application
		notes sql.NullString
	)
	err := row.Scan(
		&app.ID,
		&app.UserID,
		&app.Company,
		&app.JobTitle,
		&app.ApplicationDate,
		&app.Status,
		&notes,
		&app.CreatedAt,
	)
	if err != nil {
		return models.Application{}, err
	}

	if notes.Valid {
		app.Notes = &notes.String
	}
	app.CreatedAt = app.CreatedAt.UTC()
	return app, nil
}
