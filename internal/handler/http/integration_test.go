package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-job-tracker/internal/app"
	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/service"
	"github.com/MKhiriev/go-job-tracker/internal/store"
	"github.com/MKhiriev/go-job-tracker/internal/validators"
	"github.com/MKhiriev/go-job-tracker/models"
)

// newSQLiteEnv wires the router to real services over an in-memory SQLite
// database. Only router is set on the returned env.
func newSQLiteEnv(t *testing.T) *testEnv {
	t.Helper()

	storages, err := store.NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: ":memory:"}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services, err := service.NewServices(storages, config.App{
		TokenSignKey:     "integration-sign-key-0123456789",
		TokenIssuer:      "go-job-tracker-test",
		TokenDuration:    time.Hour,
		PasswordHashCost: 4,
		Environment:      "test",
		Version:          "1.0.0",
	}, logger.Nop())
	require.NoError(t, err)

	h := NewHandler(services, validators.NewRequestValidator(), testServerConfig(), logger.Nop())
	return &testEnv{handler: h, router: h.Init()}
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func signUp(t *testing.T, env *testEnv, email string) string {
	t.Helper()
	rr := env.do(t, http.MethodPost, "/api/auth/signup", models.SignUpRequest{Email: email, Password: "secret1"}, nil)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decodeBody[models.AuthResponse](t, rr).Token
}

func createApplication(t *testing.T, env *testEnv, token, company, date, status string) models.Application {
	t.Helper()
	rr := env.do(t, http.MethodPost, "/api/applications", models.ApplicationRequest{
		Company:         ptr(company),
		JobTitle:        ptr("Backend Engineer"),
		ApplicationDate: ptr(date),
		Status:          ptr(status),
	}, bearer(token))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decodeBody[models.ApplicationResponse](t, rr).Application
}

// ── end to end over SQLite ──

func TestIntegration_ApplicationLifecycle(t *testing.T) {
	env := newSQLiteEnv(t)

	signUp(t, env, "Alice@Example.com")

	rr := env.do(t, http.MethodPost, "/api/auth/signup", models.SignUpRequest{Email: "alice@example.com", Password: "secret1"}, nil)
	assertError(t, rr, http.StatusBadRequest, app.MsgEmailAlreadyExists)

	rr = env.do(t, http.MethodPost, "/api/auth/login", models.LoginRequest{Email: "alice@example.com", Password: "wrong-one"}, nil)
	assertError(t, rr, http.StatusUnauthorized, app.MsgInvalidCredentials)

	rr = env.do(t, http.MethodPost, "/api/auth/login", models.LoginRequest{Email: "alice@example.com", Password: "secret1"}, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	login := decodeBody[models.AuthResponse](t, rr)
	require.NotEmpty(t, login.Token)
	assert.Equal(t, "alice@example.com", login.User.Email)
	token := login.Token

	rr = env.do(t, http.MethodGet, "/api/auth/profile", nil, bearer(token))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, login.User.ID, decodeBody[models.ProfileResponse](t, rr).User.ID)

	acme := createApplication(t, env, token, "Acme", "2024-01-15", "applied")
	assert.NotEmpty(t, acme.ID)
	assert.Equal(t, login.User.ID, acme.UserID)
	assert.Equal(t, "2024-01-15", acme.ApplicationDate.String())
	assert.Nil(t, acme.Notes)
	globex := createApplication(t, env, token, "Globex", "2024-02-01", "interview")

	// filter and sort
	rr = env.do(t, http.MethodGet, "/api/applications?status=applied", nil, bearer(token))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	list := decodeBody[models.ApplicationsResponse](t, rr)
	require.Len(t, list.Applications, 1)
	assert.Equal(t, acme.ID, list.Applications[0].ID)
	assert.Equal(t, 1, list.Total)

	rr = env.do(t, http.MethodGet, "/api/applications?dateFrom=2024-01-20&dateTo=2024-12-31", nil, bearer(token))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	list = decodeBody[models.ApplicationsResponse](t, rr)
	require.Len(t, list.Applications, 1)
	assert.Equal(t, globex.ID, list.Applications[0].ID)

	rr = env.do(t, http.MethodGet, "/api/applications?sortBy=company&sortOrder=desc", nil, bearer(token))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	list = decodeBody[models.ApplicationsResponse](t, rr)
	require.Len(t, list.Applications, 2)
	assert.Equal(t, "Globex", list.Applications[0].Company)
	assert.Equal(t, "Acme", list.Applications[1].Company)

	// partial update keeps the untouched fields
	rr = env.do(t, http.MethodPatch, "/api/applications/"+acme.ID, models.ApplicationRequest{
		Status: ptr("offered"),
		Notes:  ptr("verbal offer"),
	}, bearer(token))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	updated := decodeBody[models.ApplicationResponse](t, rr).Application
	assert.Equal(t, models.StatusOffered, updated.Status)
	assert.Equal(t, "Acme", updated.Company)
	assert.Equal(t, "2024-01-15", updated.ApplicationDate.String())
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "verbal offer", *updated.Notes)

	rr = env.do(t, http.MethodGet, "/api/applications/stats", nil, bearer(token))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	stats := decodeBody[models.ApplicationStats](t, rr)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 0, stats.Stats[models.StatusApplied])
	assert.Equal(t, 1, stats.Stats[models.StatusInterview])
	assert.Equal(t, 1, stats.Stats[models.StatusOffered])
	assert.Equal(t, 0, stats.Stats[models.StatusRejected])

	rr = env.do(t, http.MethodDelete, "/api/applications/"+acme.ID, nil, bearer(token))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, app.MsgApplicationDeleted, decodeBody[models.MessageResponse](t, rr).Message)

	rr = env.do(t, http.MethodGet, "/api/applications/"+acme.ID, nil, bearer(token))
	assertError(t, rr, http.StatusNotFound, app.MsgApplicationNotFound)

	rr = env.do(t, http.MethodDelete, "/api/applications/"+acme.ID, nil, bearer(token))
	assertError(t, rr, http.StatusNotFound, app.MsgApplicationNotFound)
}

func TestIntegration_ApplicationsAreScopedToOwner(t *testing.T) {
	env := newSQLiteEnv(t)

	alice := signUp(t, env, "alice@example.com")
	bob := signUp(t, env, "bob@example.com")
	created := createApplication(t, env, alice, "Acme", "2024-01-15", "applied")

	rr := env.do(t, http.MethodGet, "/api/applications/"+created.ID, nil, bearer(bob))
	assertError(t, rr, http.StatusNotFound, app.MsgApplicationNotFound)

	rr = env.do(t, http.MethodPatch, "/api/applications/"+created.ID, models.ApplicationRequest{Status: ptr("rejected")}, bearer(bob))
	assertError(t, rr, http.StatusNotFound, app.MsgApplicationNotFound)

	rr = env.do(t, http.MethodGet, "/api/applications", nil, bearer(bob))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Empty(t, decodeBody[models.ApplicationsResponse](t, rr).Applications)

	rr = env.do(t, http.MethodGet, "/api/applications/stats", nil, bearer(bob))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, 0, decodeBody[models.ApplicationStats](t, rr).Total)
}

func TestIntegration_YearOneDate(t *testing.T) {
	env := newSQLiteEnv(t)
	token := signUp(t, env, "alice@example.com")
	created := createApplication(t, env, token, "Acme", "2024-01-15", "applied")

	rr := env.do(t, http.MethodPost, "/api/applications", models.ApplicationRequest{
		Company:         ptr("Initech"),
		JobTitle:        ptr("Engineer"),
		ApplicationDate: ptr("0001-01-01"),
		Status:          ptr("applied"),
	}, bearer(token))
	assertError(t, rr, http.StatusBadRequest, app.MsgValidationFailed)
	details := decodeBody[models.ErrorResponse](t, rr).Details
	require.Len(t, details, 1)
	assert.Equal(t, models.FieldApplicationDate, details[0].Field)

	rr = env.do(t, http.MethodPatch, "/api/applications/"+created.ID, models.ApplicationRequest{ApplicationDate: ptr("0001-01-01")}, bearer(token))
	assertError(t, rr, http.StatusBadRequest, app.MsgValidationFailed)

	for _, query := range []string{"?dateFrom=0001-01-01", "?dateTo=0001-01-01", "?dateFrom=0001-01-01T00:00:00Z&dateTo=0001-01-01"} {
		rr = env.do(t, http.MethodGet, "/api/applications"+query, nil, bearer(token))
		require.Equal(t, http.StatusOK, rr.Code, query+": "+rr.Body.String())
		assert.Len(t, decodeBody[models.ApplicationsResponse](t, rr).Applications, 1, query)
	}
}

func TestIntegration_StatusFilterIsCaseSensitive(t *testing.T) {
	env := newSQLiteEnv(t)
	token := signUp(t, env, "alice@example.com")
	createApplication(t, env, token, "Acme", "2024-01-15", "applied")
	createApplication(t, env, token, "Globex", "2024-01-16", "interview")

	rr := env.do(t, http.MethodGet, "/api/applications?status=Interview", nil, bearer(token))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Len(t, decodeBody[models.ApplicationsResponse](t, rr).Applications, 2, "unknown status is ignored")

	rr = env.do(t, http.MethodGet, "/api/applications?status=interview", nil, bearer(token))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Len(t, decodeBody[models.ApplicationsResponse](t, rr).Applications, 1)
}
