package service

import (
	"context"

	"github.com/MKhiriev/go-job-tracker/internal/listview"
	"github.com/MKhiriev/go-job-tracker/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the terminal client's account flows. A successful
// SignUp or Login leaves the adapter authenticated and the session persisted
// locally, so the next start can Restore it.
type ClientAuthService interface {
	// SignUp creates an account and logs it in.
	// Field errors come back as *adapter.ValidationError.
	SignUp(ctx context.Context, email, password string) (models.Session, error)

	// Login authenticates with email and password.
	Login(ctx context.Context, email, password string) (models.Session, error)

	// Restore loads the persisted session and checks it against the server.
	// It returns ErrNotLoggedIn when there is no session or the server
	// rejects its token; in the latter case the session is cleared.
	Restore(ctx context.Context) (models.Session, error)

	// Profile fetches the account of the current token.
	Profile(ctx context.Context) (models.User, error)

	// Logout forgets the token and clears the persisted session.
	Logout(ctx context.Context) error
}

// ClientApplicationService defines the client-side application operations.
// Every mutation re-fetches the stats so that the list screen can refresh its
// counters from the same call. adapter.ErrUnauthorized is passed through so
// that the caller can force a logout.
type ClientApplicationService interface {
	List(ctx context.Context, query listview.Query) ([]models.Application, error)
	Get(ctx context.Context, id string) (models.Application, error)
	Create(ctx context.Context, req models.ApplicationRequest) (models.Application, models.ApplicationStats, error)
	Update(ctx context.Context, id string, req models.ApplicationRequest) (models.Application, models.ApplicationStats, error)
	Delete(ctx context.Context, id string) (models.ApplicationStats, error)
	Stats(ctx context.Context) (models.ApplicationStats, error)
}
