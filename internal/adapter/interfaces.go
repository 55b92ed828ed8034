// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the job tracker API.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404). A 400
// response additionally yields a [*ValidationError] with the rejected fields.
package adapter

import (
	"context"
	"net/url"

	"github.com/MKhiriev/go-job-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the job tracker
// API. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. An empty token logs the adapter out.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// SignUp creates an account. On success the returned token is stored via
	// SetToken.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.AuthResponse, error)

	// Login authenticates with email and password. On success the returned
	// token is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Profile returns the account the current token belongs to.
	Profile(ctx context.Context) (models.User, error)

	// ListApplications fetches the user's applications. params carries the
	// server-side filter and sort (status, dateFrom, dateTo, sortBy, sortOrder).
	ListApplications(ctx context.Context, params url.Values) ([]models.Application, error)

	GetApplication(ctx context.Context, id string) (models.Application, error)
	CreateApplication(ctx context.Context, req models.ApplicationRequest) (models.Application, error)

	// UpdateApplication sends only the non-nil fields of req.
	UpdateApplication(ctx context.Context, id string, req models.ApplicationRequest) (models.Application, error)

	DeleteApplication(ctx context.Context, id string) error
	GetStats(ctx context.Context) (models.ApplicationStats, error)

	// Health reports the server status and version. It needs no token.
	Health(ctx context.Context) (models.HealthResponse, error)
}
