package client

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/service"
	"github.com/MKhiriev/go-job-tracker/internal/tui"
	"github.com/MKhiriev/go-job-tracker/models"
)

var (
	errNoServices = errors.New("client services are not provided")
	errNoUI       = errors.New("no user interface is provided")
)

type App struct {
	auth service.ClientAuthService
	ui   UI

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.AuthService == nil {
		return nil, errNoServices
	}
	if ui == nil {
		return nil, errNoUI
	}
	return &App{auth: services.AuthService, ui: ui, logger: logger}, nil
}

// Run restores the saved session and blocks in the UI. Quitting from the
// login screen is not an error.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	session, err := a.auth.Restore(ctx)
	switch {
	case errors.Is(err, service.ErrNotLoggedIn):
		a.logger.Debug().Msg("no saved session")
		session = models.Session{}
	case err != nil:
		a.logger.Warn().Err(err).Msg("saved session could not be restored")
		session = models.Session{}
	default:
		a.logger.Info().Str("user_id", session.UserID).Msg("session restored")
	}

	if err = a.ui.Run(ctx, session); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return err
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
