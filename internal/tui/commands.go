package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-job-tracker/internal/listview"
	"github.com/MKhiriev/go-job-tracker/models"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func (m appModel) cmdAuth(mode authMode, email, password string) tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		var (
			session models.Session
			err     error
		)
		if mode == authSignUp {
			session, err = auth.SignUp(ctx, email, password)
		} else {
			session, err = auth.Login(ctx, email, password)
		}
		return authDoneMsg{session: session, err: err}
	}
}

func (m appModel) cmdLoadList(query listview.Query) tea.Cmd {
	ctx, apps := m.ctx, m.apps
	return func() tea.Msg {
		items, err := apps.List(ctx, query)
		return listLoadedMsg{items: items, err: err}
	}
}

func (m appModel) cmdLoadStats() tea.Cmd {
	ctx, apps := m.ctx, m.apps
	return func() tea.Msg {
		stats, err := apps.Stats(ctx)
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func (m appModel) cmdLoadDetail(id string) tea.Cmd {
	ctx, apps := m.ctx, m.apps
	return func() tea.Msg {
		app, err := apps.Get(ctx, id)
		return detailLoadedMsg{app: app, err: err}
	}
}

func (m appModel) cmdCreate(req models.ApplicationRequest) tea.Cmd {
	ctx, apps := m.ctx, m.apps
	return func() tea.Msg {
		app, stats, err := apps.Create(ctx, req)
		return savedMsg{app: app, stats: stats, created: true, err: err}
	}
}

func (m appModel) cmdUpdate(id string, req models.ApplicationRequest) tea.Cmd {
	ctx, apps := m.ctx, m.apps
	return func() tea.Msg {
		app, stats, err := apps.Update(ctx, id, req)
		return savedMsg{app: app, stats: stats, err: err}
	}
}

func (m appModel) cmdDelete(id string) tea.Cmd {
	ctx, apps := m.ctx, m.apps
	return func() tea.Msg {
		stats, err := apps.Delete(ctx, id)
		return deletedMsg{id: id, stats: stats, err: err}
	}
}

func (m appModel) cmdLogout(forced bool) tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		return loggedOutMsg{forced: forced, err: auth.Logout(ctx)}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}
