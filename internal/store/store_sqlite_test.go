package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	s, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: ":memory:"}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func seedUser(t *testing.T, s *Storages, id, email string) models.User {
	t.Helper()

	user, err := s.UserRepository.CreateUser(context.Background(), models.User{
		ID:           id,
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	})
	require.NoError(t, err)
	return user
}

func seedApplication(t *testing.T, s *Storages, id, userID, company string, date models.Date, status models.Status, createdAt time.Time) models.Application {
	t.Helper()

	app, err := s.ApplicationRepository.Create(context.Background(), models.Application{
		ID:              id,
		UserID:          userID,
		Company:         company,
		JobTitle:        "Engineer",
		ApplicationDate: date,
		Status:          status,
		CreatedAt:       createdAt,
	})
	require.NoError(t, err)
	return app
}

func TestSQLite_Users(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	created := seedUser(t, s, "user-1", "alice@example.com")

	byEmail, err := s.UserRepository.FindUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.Equal(t, "hash", byEmail.PasswordHash)

	byID, err := s.UserRepository.FindUserByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", byID.Email)

	_, err = s.UserRepository.CreateUser(ctx, models.User{ID: "user-2", Email: "alice@example.com", PasswordHash: "x", CreatedAt: time.Now().UTC()})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	_, err = s.UserRepository.FindUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSQLite_ApplicationLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()
	seedUser(t, s, "user-1", "alice@example.com")

	now := time.Now().UTC().Truncate(time.Microsecond)
	notes := "via referral"
	created, err := s.ApplicationRepository.Create(ctx, models.Application{
		ID:              "app-1",
		UserID:          "user-1",
		Company:         "Acme",
		JobTitle:        "Engineer",
		ApplicationDate: models.NewDate(2024, time.January, 15),
		Status:          models.StatusApplied,
		Notes:           &notes,
		CreatedAt:       now,
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", created.ApplicationDate.String())
	require.NotNil(t, created.Notes)
	assert.Equal(t, notes, *created.Notes)
	assert.True(t, created.CreatedAt.Equal(now))

	status := models.StatusInterview
	empty := ""
	updated, err := s.ApplicationRepository.Update(ctx, "app-1", "user-1", models.ApplicationUpdate{Status: &status, Notes: &empty})
	require.NoError(t, err)
	assert.Equal(t, models.StatusInterview, updated.Status)
	assert.Equal(t, "Acme", updated.Company)
	assert.Nil(t, updated.Notes)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))

	deleted, err := s.ApplicationRepository.Delete(ctx, "app-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, "app-1", deleted.ID)

	_, err = s.ApplicationRepository.FindByID(ctx, "app-1", "user-1")
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestSQLite_ApplicationsAreIsolatedPerUser(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()
	seedUser(t, s, "alice", "alice@example.com")
	seedUser(t, s, "bob", "bob@example.com")

	now := time.Now().UTC()
	seedApplication(t, s, "app-a", "alice", "Acme", models.NewDate(2024, 1, 1), models.StatusApplied, now)

	_, err := s.ApplicationRepository.FindByID(ctx, "app-a", "bob")
	assert.ErrorIs(t, err, ErrApplicationNotFound)

	company := "Hijacked"
	_, err = s.ApplicationRepository.Update(ctx, "app-a", "bob", models.ApplicationUpdate{Company: &company})
	assert.ErrorIs(t, err, ErrApplicationNotFound)

	_, err = s.ApplicationRepository.Delete(ctx, "app-a", "bob")
	assert.ErrorIs(t, err, ErrApplicationNotFound)

	bobs, err := s.ApplicationRepository.FindByUserID(ctx, "bob", models.ApplicationFilter{})
	require.NoError(t, err)
	assert.Empty(t, bobs)

	stats, err := s.ApplicationRepository.GetStats(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, stats)

	alices, err := s.ApplicationRepository.FindByUserID(ctx, "alice", models.ApplicationFilter{})
	require.NoError(t, err)
	require.Len(t, alices, 1)
	assert.Equal(t, "Acme", alices[0].Company)
}

func TestSQLite_FilterSortAndStats(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()
	seedUser(t, s, "alice", "alice@example.com")

	base := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	seedApplication(t, s, "a1", "alice", "Charlie Corp", models.NewDate(2024, 1, 10), models.StatusApplied, base)
	seedApplication(t, s, "a2", "alice", "Acme", models.NewDate(2024, 1, 20), models.StatusInterview, base.Add(time.Minute))
	seedApplication(t, s, "a3", "alice", "Bravo", models.NewDate(2024, 1, 31), models.StatusApplied, base.Add(2*time.Minute))
	seedApplication(t, s, "a4", "alice", "Delta", models.NewDate(2024, 2, 5), models.StatusRejected, base.Add(3*time.Minute))

	ids := func(apps []models.Application) []string {
		out := make([]string, 0, len(apps))
		for _, a := range apps {
			out = append(out, a.ID)
		}
		return out
	}

	// default: newest first
	apps, err := s.ApplicationRepository.FindByUserID(ctx, "alice", models.ApplicationFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a4", "a3", "a2", "a1"}, ids(apps))

	apps, err = s.ApplicationRepository.FindByUserID(ctx, "alice", models.NewApplicationFilter("", "", "", "company", "asc"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a2", "a3", "a1", "a4"}, ids(apps))

	apps, err = s.ApplicationRepository.FindByUserID(ctx, "alice", models.NewApplicationFilter("applied", "", "", "", ""))
	require.NoError(t, err)
	assert.Equal(t, []string{"a3", "a1"}, ids(apps))

	// both bounds are inclusive
	apps, err = s.ApplicationRepository.FindByUserID(ctx, "alice", models.NewApplicationFilter("", "2024-01-10", "2024-01-31", "application_date", "ASC"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2", "a3"}, ids(apps))

	counts, err := s.ApplicationRepository.GetStats(ctx, "alice")
	require.NoError(t, err)
	stats := models.NewApplicationStats(counts)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Stats[models.StatusApplied])
	assert.Equal(t, 1, stats.Stats[models.StatusInterview])
	assert.Equal(t, 0, stats.Stats[models.StatusOffered])
	assert.Equal(t, 1, stats.Stats[models.StatusRejected])
}

func TestSQLite_CreateForUnknownUser(t *testing.T) {
	s := newSQLiteStorages(t)

	_, err := s.ApplicationRepository.Create(context.Background(), models.Application{
		ID:              "app-1",
		UserID:          "ghost",
		Company:         "Acme",
		JobTitle:        "Engineer",
		ApplicationDate: models.NewDate(2024, 1, 1),
		Status:          models.StatusApplied,
		CreatedAt:       time.Now().UTC(),
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSQLite_SessionRepository(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "nested", "client.db")
	cs, err := NewClientStorages(config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { cs.Close() })

	ctx := context.Background()
	repo := cs.SessionRepository

	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)

	first := models.Session{UserID: "u1", Email: "a@example.com", Token: "t1", SavedAt: time.Now().UTC().Truncate(time.Second)}
	require.NoError(t, repo.Save(ctx, first))

	second := models.Session{UserID: "u2", Email: "b@example.com", Token: "t2", SavedAt: first.SavedAt.Add(time.Hour)}
	require.NoError(t, repo.Save(ctx, second))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u2", loaded.UserID)
	assert.Equal(t, "t2", loaded.Token)
	assert.True(t, loaded.SavedAt.Equal(second.SavedAt))

	require.NoError(t, repo.Clear(ctx))
	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestNewClientStorages_RejectsPostgres(t *testing.T) {
	_, err := NewClientStorages(config.ClientStorage{DB: config.ClientDB{DSN: "postgres://localhost/db"}}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}
