package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/models"
	"github.com/go-resty/resty/v2"
)

const (
	signUpPath       = "/api/auth/signup"
	loginPath        = "/api/auth/login"
	profilePath      = "/api/auth/profile"
	applicationsPath = "/api/applications"
	statsPath        = "/api/applications/stats"
	healthPath       = "/health"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying resty client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// SignUp implements [ServerAdapter]. It POSTs the credentials to
// /api/auth/signup and stores the token of the 201 response.
func (h *httpServerAdapter) SignUp(ctx context.Context, req models.SignUpRequest) (models.AuthResponse, error) {
	var out models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post(signUpPath)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(out.Token)
	return out, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// /api/auth/login and stores the token of the response.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var out models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post(loginPath)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(out.Token)
	return out, nil
}

func (h *httpServerAdapter) Profile(ctx context.Context) (models.User, error) {
	var out models.ProfileResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&out).
		Get(profilePath)
	if err != nil {
		return models.User{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return out.User, nil
}

func (h *httpServerAdapter) ListApplications(ctx context.Context, params url.Values) ([]models.Application, error) {
	var out models.ApplicationsResponse

	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(params).
		SetResult(&out).
		Get(applicationsPath)
	if err != nil {
		return nil, fmt.Errorf("list applications request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if out.Applications == nil {
		out.Applications = []models.Application{}
	}
	return out.Applications, nil
}

func (h *httpServerAdapter) GetApplication(ctx context.Context, id string) (models.Application, error) {
	var out models.ApplicationResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetResult(&out).
		Get(applicationsPath + "/{id}")
	if err != nil {
		return models.Application{}, fmt.Errorf("get application request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Application{}, err
	}

	return out.Application, nil
}

func (h *httpServerAdapter) CreateApplication(ctx context.Context, req models.ApplicationRequest) (models.Application, error) {
	var out models.ApplicationResponse

	resp, err := h.authedRequest(ctx).
		SetBody(req).
		SetResult(&out).
		Post(applicationsPath)
	if err != nil {
		return models.Application{}, fmt.Errorf("create application request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Application{}, err
	}

	return out.Application, nil
}

// UpdateApplication implements [ServerAdapter] with PATCH; the server treats
// PUT and PATCH alike.
func (h *httpServerAdapter) UpdateApplication(ctx context.Context, id string, req models.ApplicationRequest) (models.Application, error) {
	var out models.ApplicationResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetBody(req).
		SetResult(&out).
		Patch(applicationsPath + "/{id}")
	if err != nil {
		return models.Application{}, fmt.Errorf("update application request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Application{}, err
	}

	return out.Application, nil
}

func (h *httpServerAdapter) DeleteApplication(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete(applicationsPath + "/{id}")
	if err != nil {
		return fmt.Errorf("delete application request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetStats(ctx context.Context) (models.ApplicationStats, error) {
	var out models.ApplicationStats

	resp, err := h.authedRequest(ctx).
		SetResult(&out).
		Get(statsPath)
	if err != nil {
		return models.ApplicationStats{}, fmt.Errorf("stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ApplicationStats{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var out models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get(healthPath)
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
