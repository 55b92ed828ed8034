package store

import (
	"context"

	"github.com/MKhiriev/go-job-tracker/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository keeps the terminal client's login session between runs.
// At most one session is stored at a time.
type SessionRepository interface {
	Save(ctx context.Context, session models.Session) error
	// Load returns [ErrLocalSessionNotFound] when nobody is logged in.
	Load(ctx context.Context) (models.Session, error)
	Clear(ctx context.Context) error
}
