// Package tui implements the terminal user interface of the job tracker
// client on top of bubbletea.
//
// A single program drives every screen: login/signup, the application list,
// the detail view and the create/edit form. Service calls run as tea.Cmd
// functions and report back through messages.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/service"
	"github.com/MKhiriev/go-job-tracker/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.BuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.BuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.AuthService == nil || services.ApplicationService == nil {
		return nil, errNoServices
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run blocks until the user quits. A session with a token opens the list
// screen directly; otherwise the login screen is shown first.
func (t *TUI) Run(ctx context.Context, session models.Session) error {
	model := newAppModel(ctx, t.services, t.buildInfo, t.logger, session)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	return result.err
}
