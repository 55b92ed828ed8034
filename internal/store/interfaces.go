package store

import (
	"context"

	"github.com/MKhiriev/go-job-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser stores user and returns it as saved.
	// A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns [ErrUserNotFound] if no account uses email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// ApplicationRepository persists job applications. Every method except
// Create is scoped by the owning user; rows of other users are invisible.
type ApplicationRepository interface {
	Create(ctx context.Context, app models.Application) (models.Application, error)
	FindByUserID(ctx context.Context, userID string, filter models.ApplicationFilter) ([]models.Application, error)
	FindByID(ctx context.Context, id, userID string) (models.Application, error)
	Update(ctx context.Context, id, userID string, update models.ApplicationUpdate) (models.Application, error)
	Delete(ctx context.Context, id, userID string) (models.Application, error)
	// GetStats counts the user's applications per status. Statuses without
	// applications are absent from the map.
	GetStats(ctx context.Context, userID string) (map[models.Status]int, error)
}

// ErrorClassificator maps a driver error to an [ErrorClass].
type ErrorClassificator interface {
	Classify(err error) ErrorClass
}
