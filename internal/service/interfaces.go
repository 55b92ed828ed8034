package service

import (
	"context"

	"github.com/MKhiriev/go-job-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService covers signup, login and the bearer tokens of the API.
type AuthService interface {
	// RegisterUser creates an account for a normalized, validated request.
	RegisterUser(ctx context.Context, req models.SignUpRequest) (models.User, error)
	// Login returns [ErrInvalidCredentials] for both an unknown email and a
	// wrong password.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	GetProfile(ctx context.Context, userID string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ApplicationService manages the job applications of a single user.
// Every method takes the acting user's id and never touches other users' rows.
type ApplicationService interface {
	Create(ctx context.Context, userID string, app models.Application) (models.Application, error)
	List(ctx context.Context, userID string, filter models.ApplicationFilter) ([]models.Application, error)
	Get(ctx context.Context, id, userID string) (models.Application, error)
	Update(ctx context.Context, id, userID string, update models.ApplicationUpdate) (models.Application, error)
	Delete(ctx context.Context, id, userID string) (models.Application, error)
	GetStats(ctx context.Context, userID string) (models.ApplicationStats, error)
}

// AppInfoService reports build and runtime information for / and /health.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthResponse
}

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}
