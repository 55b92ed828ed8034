package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/mock"
	"github.com/MKhiriev/go-job-tracker/internal/store"
	"github.com/MKhiriev/go-job-tracker/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApplicationSvc(t *testing.T) (ApplicationService, *mock.MockApplicationRepository, *mock.MockIDGenerator) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := mock.NewMockApplicationRepository(ctrl)
	ids := mock.NewMockIDGenerator(ctrl)
	return NewApplicationService(repo, ids, logger.Nop()), repo, ids
}

func newApplication() models.Application {
	return models.Application{
		Company:         "Acme",
		JobTitle:        "Engineer",
		ApplicationDate: models.NewDate(2024, time.March, 1),
		Status:          models.StatusApplied,
	}
}

func ptr[T any](v T) *T { return &v }

// ── Create ───────────────────────────────────────────────────────────────────

func TestApplicationService_Create_AssignsIdentity(t *testing.T) {
	svc, repo, ids := newTestApplicationSvc(t)
	ctx := context.Background()

	in := newApplication()
	in.ID = "client-supplied"
	in.UserID = "someone-else"
	in.Notes = ptr("")

	ids.EXPECT().Generate().Return(testAppID)
	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, app models.Application) (models.Application, error) {
			assert.Equal(t, testAppID, app.ID)
			assert.Equal(t, testUserID, app.UserID)
			assert.Nil(t, app.Notes, "empty notes are stored as NULL")
			assert.False(t, app.CreatedAt.IsZero())
			return app, nil
		},
	)

	got, err := svc.Create(ctx, testUserID, in)
	require.NoError(t, err)
	assert.Equal(t, testAppID, got.ID)
	assert.Equal(t, testUserID, got.UserID)
}

func TestApplicationService_Create_StoreErrors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		want    error
	}{
		{name: "owner missing", repoErr: store.ErrUserNotFound, want: ErrUserNotFound},
		{name: "other", repoErr: store.ErrExecutingQuery, want: store.ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, ids := newTestApplicationSvc(t)
			ids.EXPECT().Generate().Return(testAppID)
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Application{}, tt.repoErr)

			_, err := svc.Create(context.Background(), testUserID, newApplication())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestApplicationService_Create_LogsWithoutRequestLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockApplicationRepository(ctrl)
	ids := mock.NewMockIDGenerator(ctrl)

	var buf bytes.Buffer
	svc := NewApplicationService(repo, ids, &logger.Logger{Logger: zerolog.New(&buf)})

	ids.EXPECT().Generate().Return(testAppID)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Application{}, store.ErrExecutingQuery)

	_, err := svc.Create(context.Background(), testUserID, newApplication())
	require.Error(t, err)
	assert.Contains(t, buf.String(), "application creation failed")
	assert.Contains(t, buf.String(), testUserID)
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestApplicationService_List_NormalizesFilter(t *testing.T) {
	svc, repo, _ := newTestApplicationSvc(t)

	bad := models.Status("hired")
	repo.EXPECT().FindByUserID(gomock.Any(), testUserID, models.ApplicationFilter{
		SortBy:    models.SortByCreatedAt,
		SortOrder: models.SortDesc,
	}).Return([]models.Application{}, nil)

	apps, err := svc.List(context.Background(), testUserID, models.ApplicationFilter{Status: &bad, SortBy: "salary; DROP TABLE users"})
	require.NoError(t, err)
	assert.NotNil(t, apps)
}

func TestApplicationService_List_Error(t *testing.T) {
	svc, repo, _ := newTestApplicationSvc(t)
	repo.EXPECT().FindByUserID(gomock.Any(), testUserID, gomock.Any()).Return(nil, store.ErrScanningRows)

	_, err := svc.List(context.Background(), testUserID, models.ApplicationFilter{})
	assert.ErrorIs(t, err, store.ErrScanningRows)
}

// ── Get / Update / Delete ────────────────────────────────────────────────────

func TestApplicationService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, repo, _ := newTestApplicationSvc(t)
		want := newApplication()
		want.ID = testAppID
		repo.EXPECT().FindByID(gomock.Any(), testAppID, testUserID).Return(want, nil)

		got, err := svc.Get(context.Background(), testAppID, testUserID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("other user or missing", func(t *testing.T) {
		svc, repo, _ := newTestApplicationSvc(t)
		repo.EXPECT().FindByID(gomock.Any(), testAppID, testUserID).Return(models.Application{}, store.ErrApplicationNotFound)

		_, err := svc.Get(context.Background(), testAppID, testUserID)
		assert.ErrorIs(t, err, ErrApplicationNotFound)
	})

	t.Run("malformed id never reaches the store", func(t *testing.T) {
		svc, _, _ := newTestApplicationSvc(t)

		_, err := svc.Get(context.Background(), "42", testUserID)
		assert.ErrorIs(t, err, ErrApplicationNotFound)
	})
}

func TestApplicationService_Update(t *testing.T) {
	t.Run("applies present fields", func(t *testing.T) {
		svc, repo, _ := newTestApplicationSvc(t)
		update := models.ApplicationUpdate{Status: ptr(models.StatusInterview)}

		want := newApplication()
		want.Status = models.StatusInterview
		repo.EXPECT().Update(gomock.Any(), testAppID, testUserID, update).Return(want, nil)

		got, err := svc.Update(context.Background(), testAppID, testUserID, update)
		require.NoError(t, err)
		assert.Equal(t, models.StatusInterview, got.Status)
	})

	t.Run("empty update", func(t *testing.T) {
		svc, _, _ := newTestApplicationSvc(t)

		_, err := svc.Update(context.Background(), testAppID, testUserID, models.ApplicationUpdate{})
		assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
	})

	t.Run("empty update with malformed id", func(t *testing.T) {
		svc, _, _ := newTestApplicationSvc(t)

		_, err := svc.Update(context.Background(), "nope", testUserID, models.ApplicationUpdate{})
		assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo, _ := newTestApplicationSvc(t)
		repo.EXPECT().Update(gomock.Any(), testAppID, testUserID, gomock.Any()).Return(models.Application{}, store.ErrApplicationNotFound)

		_, err := svc.Update(context.Background(), testAppID, testUserID, models.ApplicationUpdate{Company: ptr("X")})
		assert.ErrorIs(t, err, ErrApplicationNotFound)
	})
}

func TestApplicationService_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc, repo, _ := newTestApplicationSvc(t)
		repo.EXPECT().Delete(gomock.Any(), testAppID, testUserID).Return(models.Application{ID: testAppID}, nil)

		got, err := svc.Delete(context.Background(), testAppID, testUserID)
		require.NoError(t, err)
		assert.Equal(t, testAppID, got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo, _ := newTestApplicationSvc(t)
		repo.EXPECT().Delete(gomock.Any(), testAppID, testUserID).Return(models.Application{}, store.ErrApplicationNotFound)

		_, err := svc.Delete(context.Background(), testAppID, testUserID)
		assert.ErrorIs(t, err, ErrApplicationNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc, _, _ := newTestApplicationSvc(t)

		_, err := svc.Delete(context.Background(), "../etc", testUserID)
		assert.ErrorIs(t, err, ErrApplicationNotFound)
	})
}

// ── GetStats ─────────────────────────────────────────────────────────────────

func TestApplicationService_GetStats_FillsMissingStatuses(t *testing.T) {
	svc, repo, _ := newTestApplicationSvc(t)
	repo.EXPECT().GetStats(gomock.Any(), testUserID).Return(map[models.Status]int{
		models.StatusApplied:  3,
		models.StatusRejected: 1,
	}, nil)

	stats, err := svc.GetStats(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, map[models.Status]int{
		models.StatusApplied:   3,
		models.StatusInterview: 0,
		models.StatusOffered:   0,
		models.StatusRejected:  1,
	}, stats.Stats)
}

func TestApplicationService_GetStats_Error(t *testing.T) {
	svc, repo, _ := newTestApplicationSvc(t)
	dbErr := errors.New("timeout")
	repo.EXPECT().GetStats(gomock.Any(), testUserID).Return(nil, dbErr)

	_, err := svc.GetStats(context.Background(), testUserID)
	assert.ErrorIs(t, err, dbErr)
}

func TestMapStoreError(t *testing.T) {
	assert.ErrorIs(t, mapStoreError(store.ErrNoFieldsToUpdate), ErrNoFieldsToUpdate)
	assert.ErrorIs(t, mapStoreError(store.ErrEmailAlreadyExists), ErrEmailAlreadyExists)
	assert.ErrorIs(t, mapStoreError(store.ErrApplicationNotFound), ErrApplicationNotFound)

	wrapped := mapStoreError(store.ErrConstraintViolation)
	assert.ErrorIs(t, wrapped, store.ErrConstraintViolation)
	assert.Contains(t, wrapped.Error(), "storage error")
}
