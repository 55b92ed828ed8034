// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func testApplication() models.Application {
	notes := "referral"
	return models.Application{
		ID:              "0190a3c4-0000-7000-8000-000000000001",
		UserID:          "0190a3c4-0000-7000-8000-0000000000aa",
		Company:         "Acme",
		JobTitle:        "Engineer",
		ApplicationDate: models.NewDate(2024, time.March, 1),
		Status:          models.StatusApplied,
		Notes:           &notes,
		CreatedAt:       time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC),
	}
}

func strPtr(s string) *string { return &s }

// ── constructor ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "full url", raw: "http://localhost:5000/", want: "http://localhost:5000"},
		{name: "no scheme", raw: "localhost:5000", want: "http://localhost:5000"},
		{name: "https", raw: " https://api.example.com ", want: "https://api.example.com"},
		{name: "empty", raw: "  ", wantErr: ErrEmptyAddress},
		{name: "no host", raw: "http://", wantErr: ErrInvalidAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.Adapter{}, logger.Nop())
	assert.Nil(t, a)
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

func TestSetToken_Trims(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:5000")
	a.SetToken("  abc  ")
	assert.Equal(t, "abc", a.Token())

	a.SetToken("")
	assert.Empty(t, a.Token())
}

// ── auth ────────────────────────────────────────────────────────────────────

func TestSignUp_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, signUpPath, r.URL.Path)

		var req models.SignUpRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@x.io", req.Email)
		assert.Equal(t, "secret1", req.Password)

		writeJSON(t, w, http.StatusCreated, models.AuthResponse{
			Message: "User created successfully",
			User:    models.User{ID: "u1", Email: "a@x.io"},
			Token:   "jwt-token",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.SignUp(context.Background(), models.SignUpRequest{Email: "a@x.io", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "u1", got.User.ID)
	assert.Equal(t, "jwt-token", a.Token())
}

func TestSignUp_ValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{
			Error: "Validation failed",
			Details: []models.ValidationDetail{
				{Field: "password", Message: "Password must be at least 6 characters long"},
			},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SignUp(context.Background(), models.SignUpRequest{Email: "a@x.io", Password: "1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "Validation failed", vErr.Message)
	assert.Equal(t, "Password must be at least 6 characters long", vErr.FieldMessage("password"))
	assert.Empty(t, vErr.FieldMessage("email"))
	assert.Empty(t, a.Token())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, loginPath, r.URL.Path)
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid email or password"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "a@x.io", Password: "nope"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid email or password")
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.AuthResponse{
			Message: "Login successful",
			User:    models.User{ID: "u1", Email: "a@x.io"},
			Token:   "t-1",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.LoginRequest{Email: "a@x.io", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "a@x.io", got.User.Email)
	assert.Equal(t, "t-1", a.Token())
}

func TestProfile_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer t-1", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.ProfileResponse{User: models.User{ID: "u1", Email: "a@x.io"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("t-1")

	user, err := a.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestProfile_NoTokenNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "Access token required"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Profile(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── applications ────────────────────────────────────────────────────────────

func TestListApplications_PassesQuery(t *testing.T) {
	app := testApplication()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, applicationsPath, r.URL.Path)
		assert.Equal(t, "interview", r.URL.Query().Get("status"))
		assert.Equal(t, "company", r.URL.Query().Get("sortBy"))
		writeJSON(t, w, http.StatusOK, models.ApplicationsResponse{Applications: []models.Application{app}, Total: 1})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("t")

	got, err := a.ListApplications(context.Background(), url.Values{"status": {"interview"}, "sortBy": {"company"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, app, got[0])
}

func TestListApplications_EmptyIsNotNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"applications": nil, "total": 0})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ListApplications(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetApplication_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, applicationsPath+"/missing", r.URL.Path)
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: "Application not found"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetApplication(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateApplication_Success(t *testing.T) {
	app := testApplication()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Acme", body["company"])
		assert.NotContains(t, body, "notes")

		writeJSON(t, w, http.StatusCreated, models.ApplicationResponse{Message: "Application created successfully", Application: app})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).CreateApplication(context.Background(), models.ApplicationRequest{
		Company:         strPtr("Acme"),
		JobTitle:        strPtr("Engineer"),
		ApplicationDate: strPtr("2024-03-01"),
		Status:          strPtr("applied"),
	})
	require.NoError(t, err)
	assert.Equal(t, app.ID, got.ID)
}

func TestUpdateApplication_SendsOnlyPresentFields(t *testing.T) {
	app := testApplication()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, applicationsPath+"/"+app.ID, r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"status": "interview", "notes": ""}, body)

		writeJSON(t, w, http.StatusOK, models.ApplicationResponse{Message: "Application updated successfully", Application: app})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).UpdateApplication(context.Background(), app.ID, models.ApplicationRequest{
		Status: strPtr("interview"),
		Notes:  strPtr(""),
	})
	require.NoError(t, err)
}

func TestDeleteApplication(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "Application deleted successfully"})
	}))
	defer srv.Close()

	require.NoError(t, newTestAdapter(t, srv.URL).DeleteApplication(context.Background(), "id-1"))
}

func TestGetStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, statsPath, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"stats":{"applied":2,"interview":1,"offered":0,"rejected":1},"total":4}`))
	}))
	defer srv.Close()

	stats, err := newTestAdapter(t, srv.URL).GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Stats[models.StatusApplied])
	assert.Equal(t, 0, stats.Stats[models.StatusOffered])
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.HealthResponse{Status: "OK", Version: "1.0.0", Environment: "test"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("t")

	h, err := a.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", h.Version)
}

// ── error mapping ───────────────────────────────────────────────────────────

func TestMapHTTPError_Statuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
		msg    string
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{"error":"Too many requests from this IP, please try again later."}`, want: ErrTooManyRequests, msg: "Too many requests"},
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"Internal server error"}`, want: ErrServerError, msg: "Internal server error"},
		{name: "bad gateway plain text", status: http.StatusBadGateway, body: "upstream down", want: ErrServerError, msg: "upstream down"},
		{name: "empty body", status: http.StatusServiceUnavailable, want: ErrServerError, msg: "Service Unavailable"},
		{name: "unexpected", status: http.StatusConflict, body: `{"error":"conflict"}`, want: ErrUnexpectedCode, msg: "409"},
		{name: "bad request without details", status: http.StatusBadRequest, body: `{"error":"No fields to update"}`, want: ErrBadRequest, msg: "No fields to update"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL).DeleteApplication(context.Background(), "x")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Message: "Validation failed",
		Details: []models.ValidationDetail{
			{Field: "company", Message: "Company name is required"},
			{Field: "status", Message: "Status must be one of: applied, interview, offered, rejected"},
		},
	}

	assert.Equal(t, "Validation failed: company: Company name is required; status: Status must be one of: applied, interview, offered, rejected", err.Error())
	assert.Equal(t, "No fields to update", (&ValidationError{Message: "No fields to update"}).Error())
}
