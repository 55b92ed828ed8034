package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/service"
	"github.com/MKhiriev/go-job-tracker/models"
)

type screen int

const (
	screenAuth screen = iota
	screenList
	screenDetail
	screenForm
)

type appModel struct {
	ctx       context.Context
	auth      service.ClientAuthService
	apps      service.ClientApplicationService
	buildInfo models.BuildInfo
	logger    *logger.Logger
	now       func() time.Time

	screen  screen
	session models.Session

	authForm   authModel
	list       listModel
	detail     detailModel
	form       formModel
	formReturn screen

	showConfirm bool
	confirm     confirmModel

	toast   toastModel
	spinner spinner.Model
	help    help.Model

	err error
}

func newAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.BuildInfo, log *logger.Logger, session models.Session) appModel {
	m := appModel{
		ctx:       ctx,
		auth:      services.AuthService,
		apps:      services.ApplicationService,
		buildInfo: buildInfo,
		logger:    log,
		now:       time.Now,
		screen:    screenAuth,
		session:   session,
		authForm:  newAuthModel(),
		list:      newListModel(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:      help.New(),
	}

	if !session.IsZero() {
		m.screen = screenList
		m.list.loading = true
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.screen == screenAuth {
		return textinput.Blink
	}
	return tea.Batch(m.cmdLoadList(m.list.query), m.cmdLoadStats(), m.spinner.Tick)
}

func (m appModel) busy() bool {
	return m.list.loading || m.form.submitting || m.authForm.submitting
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			if m.session.IsZero() {
				m.err = ErrUserQuit
			}
			return m, tea.Quit
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case authDoneMsg:
		return m.onAuthDone(msg)
	case listLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			return m.handleError(msg.err)
		}
		m.list = m.list.setItems(msg.items)
		return m, nil
	case statsLoadedMsg:
		if msg.err != nil {
			return m.handleError(msg.err)
		}
		m.list.stats = msg.stats
		return m, nil
	case detailLoadedMsg:
		return m.onDetailLoaded(msg)
	case savedMsg:
		return m.onSaved(msg)
	case deletedMsg:
		return m.onDeleted(msg)
	case loggedOutMsg:
		return m.onLoggedOut(msg)
	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("clipboard write failed")
			return m.showToast("Could not copy to the clipboard", true)
		}
		return m.showToast("Copied to the clipboard", false)
	case clearToastMsg:
		m.toast = m.toast.clear(msg.id)
		return m, nil
	}

	switch m.screen {
	case screenAuth:
		return m.updateAuth(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	}
	return m, nil
}

func (m appModel) View() string {
	var body string
	var bindings []key.Binding

	switch m.screen {
	case screenAuth:
		body, bindings = m.authForm.View(), authHelp
	case screenList:
		body, bindings = m.list.View(), listHelp
	case screenDetail:
		body, bindings = m.detail.View(), detailHelp
	case screenForm:
		body, bindings = m.form.View(), formHelp
	}

	var b strings.Builder
	b.WriteString(body)

	if m.busy() {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
	}
	if m.showConfirm {
		b.WriteString("\n\n")
		b.WriteString(m.confirm.View())
	}
	if toast := m.toast.View(); toast != "" {
		b.WriteString("\n\n")
		b.WriteString(toast)
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.ShortHelpView(bindings))
	b.WriteString("\n")
	b.WriteString(renderFooter(m.buildInfo, m.session.Email))

	return appStyle.Render(b.String())
}

func (m appModel) showToast(message string, isError bool) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.toast, cmd = m.toast.show(message, isError)
	return m, cmd
}

// handleError forces a logout when the server no longer accepts the token
// and shows a toast for anything else.
func (m appModel) handleError(err error) (tea.Model, tea.Cmd) {
	if isUnauthorized(err) {
		m.logger.Info().Err(err).Msg("token rejected, logging out")
		return m, m.cmdLogout(true)
	}
	m.logger.Warn().Err(err).Msg("request failed")
	return m.showToast(humanizeError(err), true)
}

// reload refetches the list with the current query.
func (m appModel) reload() (appModel, tea.Cmd) {
	m.list.loading = true
	return m, tea.Batch(m.cmdLoadList(m.list.query), m.spinner.Tick)
}

// ── message handlers ──

func (m appModel) onAuthDone(msg authDoneMsg) (tea.Model, tea.Cmd) {
	m.authForm.submitting = false

	if msg.err != nil {
		m.logger.Debug().Err(msg.err).Msg("authentication failed")
		if errs := fieldErrors(msg.err, authFieldEmail, authFieldPassword); len(errs) > 0 {
			m.authForm.errors = errs
			return m, nil
		}
		m.authForm.errors = nil
		m.authForm.notice = humanizeError(msg.err)
		return m, nil
	}

	m.session = msg.session
	m.authForm = m.authForm.reset()
	m.authForm.notice = ""
	m.list = newListModel()
	m.screen = screenList

	m, cmd := m.reload()
	m2, toastCmd := m.showToast("Logged in as "+msg.session.Email, false)
	return m2, tea.Batch(cmd, m.cmdLoadStats(), toastCmd)
}

func (m appModel) onDetailLoaded(msg detailLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, service.ErrApplicationNotFound) {
			m.screen = screenList
			m, cmd := m.reload()
			m2, toastCmd := m.showToast(humanizeError(msg.err), true)
			return m2, tea.Batch(cmd, toastCmd)
		}
		return m.handleError(msg.err)
	}
	if m.screen == screenDetail && m.detail.app.ID == msg.app.ID {
		m.detail.app = msg.app
	}
	return m, nil
}

func (m appModel) onSaved(msg savedMsg) (tea.Model, tea.Cmd) {
	m.form.submitting = false

	partial := errors.Is(msg.err, service.ErrStatsRefresh)
	if msg.err != nil && !partial {
		if errs := fieldErrors(msg.err, formFields...); len(errs) > 0 {
			m.form.errors = errs
			return m, nil
		}
		return m.handleError(msg.err)
	}

	if !partial {
		m.list.stats = msg.stats
	}
	if m.formReturn == screenDetail {
		m.detail.app = msg.app
	}
	m.screen = m.formReturn

	text := "Application updated"
	if msg.created {
		text = "Application created"
	}
	if partial {
		text = humanizeError(msg.err)
	}

	m, cmd := m.reload()
	m2, toastCmd := m.showToast(text, partial)
	return m2, tea.Batch(cmd, toastCmd)
}

func (m appModel) onDeleted(msg deletedMsg) (tea.Model, tea.Cmd) {
	partial := errors.Is(msg.err, service.ErrStatsRefresh)
	if msg.err != nil && !partial {
		return m.handleError(msg.err)
	}

	if !partial {
		m.list.stats = msg.stats
	}
	m.screen = screenList

	text := "Application deleted"
	if partial {
		text = humanizeError(msg.err)
	}

	m, cmd := m.reload()
	m2, toastCmd := m.showToast(text, partial)
	return m2, tea.Batch(cmd, toastCmd)
}

func (m appModel) onLoggedOut(msg loggedOutMsg) (tea.Model, tea.Cmd) {
	m.session = models.Session{}
	m.screen = screenAuth
	m.showConfirm = false
	m.list = newListModel()
	m.form = formModel{}
	m.authForm = m.authForm.reset()
	m.authForm.notice = ""
	if msg.forced {
		m.authForm.notice = "Your session has expired, please log in again"
	}

	if msg.err != nil {
		m.logger.Error().Err(msg.err).Msg("clearing the local session failed")
		return m.showToast("Logged out, but the saved session could not be removed", true)
	}
	return m, textinput.Blink
}

// ── screens ──

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		if m.confirm.id == "" {
			return m, nil
		}
		return m, m.cmdDelete(m.confirm.id)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.confirm = confirmModel{}
	}
	return m, nil
}

func (m appModel) askDelete(app models.Application) appModel {
	m.showConfirm = true
	m.confirm = confirmModel{id: app.ID, message: app.Company + " / " + app.JobTitle}
	return m
}

func (m appModel) openForm(form formModel, back screen) (tea.Model, tea.Cmd) {
	m.form = form
	m.formReturn = back
	m.screen = screenForm
	return m, textinput.Blink
}

func (m appModel) updateAuth(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.authForm.submitting {
			return m, nil
		}

		switch {
		case key.Matches(keyMsg, keys.esc):
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.tab):
			m.authForm = m.authForm.setFocus(m.authForm.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.authForm = m.authForm.setFocus(m.authForm.focus - 1)
			return m, nil
		case key.Matches(keyMsg, keys.switchTo):
			m.authForm = m.authForm.toggleMode()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.authForm.focus == 0 {
				m.authForm = m.authForm.setFocus(1)
				return m, nil
			}
			if errs := m.authForm.check(); errs != nil {
				m.authForm.errors = errs
				return m, nil
			}
			m.authForm.errors = nil
			m.authForm.notice = ""
			m.authForm.submitting = true
			return m, tea.Batch(
				m.cmdAuth(m.authForm.mode, m.authForm.email(), m.authForm.password()),
				m.spinner.Tick,
			)
		}
	}

	var cmd tea.Cmd
	m.authForm.inputs[m.authForm.focus], cmd = m.authForm.inputs[m.authForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.list.searching {
		return m.updateSearch(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list.table, cmd = m.list.table.Update(msg)
		return m, cmd
	}

	selected, hasSelected := m.list.selected()

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout(false)
	case key.Matches(keyMsg, keys.search):
		m.list.searching = true
		return m, m.list.search.Focus()
	case key.Matches(keyMsg, keys.esc):
		if m.list.view.Search() != "" {
			m.list.search.SetValue("")
			m.list = m.list.withView(m.list.view.SetSearch(""))
		}
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if !hasSelected {
			return m, nil
		}
		m.detail = detailModel{app: selected}
		m.screen = screenDetail
		return m, m.cmdLoadDetail(selected.ID)
	case key.Matches(keyMsg, keys.newItem):
		return m.openForm(newCreateForm(m.now()), screenList)
	case key.Matches(keyMsg, keys.edit):
		if !hasSelected {
			return m, nil
		}
		return m.openForm(newEditForm(selected), screenList)
	case key.Matches(keyMsg, keys.delete):
		if !hasSelected {
			return m, nil
		}
		return m.askDelete(selected), nil
	case key.Matches(keyMsg, keys.copy):
		if !hasSelected {
			return m, nil
		}
		return m, cmdCopy(summaryLine(selected))
	case key.Matches(keyMsg, keys.filter):
		m.list.query = m.list.query.CycleStatus()
		return m.reload()
	case key.Matches(keyMsg, keys.sortBy):
		m.list.query = m.list.query.CycleSortBy()
		return m.reload()
	case key.Matches(keyMsg, keys.sortOrder):
		m.list.query = m.list.query.ToggleOrder()
		return m.reload()
	case key.Matches(keyMsg, keys.localSort):
		idx := int(keyMsg.String()[0] - '1')
		m.list = m.list.withView(m.list.view.ToggleSort(listColumns[idx].column))
		return m, nil
	case key.Matches(keyMsg, keys.clearSort):
		m.list = m.list.withView(m.list.view.ClearSort())
		return m, nil
	case key.Matches(keyMsg, keys.prevPage):
		m.list = m.list.withView(m.list.view.PrevPage())
		m.list.table.SetCursor(0)
		return m, nil
	case key.Matches(keyMsg, keys.nextPage):
		m.list = m.list.withView(m.list.view.NextPage())
		m.list.table.SetCursor(0)
		return m, nil
	case key.Matches(keyMsg, keys.refresh):
		m, cmd := m.reload()
		return m, tea.Batch(cmd, m.cmdLoadStats())
	}

	var cmd tea.Cmd
	m.list.table, cmd = m.list.table.Update(msg)
	return m, cmd
}

// updateSearch edits the search term; the list narrows on every keystroke.
func (m appModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.enter):
			m.list.searching = false
			m.list.search.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.esc):
			m.list.searching = false
			m.list.search.Blur()
			m.list.search.SetValue("")
			m.list = m.list.withView(m.list.view.SetSearch(""))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list.search, cmd = m.list.search.Update(msg)
	m.list = m.list.withView(m.list.view.SetSearch(m.list.search.Value()))
	m.list.table.SetCursor(0)
	return m, cmd
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		m.screen = screenList
	case key.Matches(keyMsg, keys.edit):
		return m.openForm(newEditForm(m.detail.app), screenDetail)
	case key.Matches(keyMsg, keys.delete):
		return m.askDelete(m.detail.app), nil
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopy(summaryLine(m.detail.app))
	}
	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.form.submitting {
			return m, nil
		}

		switch {
		case key.Matches(keyMsg, keys.esc):
			m.screen = m.formReturn
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = m.form.setFocus(m.form.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = m.form.setFocus(m.form.focus - 1)
			return m, nil
		case key.Matches(keyMsg, keys.save):
			return m.submitForm()
		case key.Matches(keyMsg, keys.enter) && !m.form.notesFocused():
			m.form = m.form.setFocus(m.form.focus + 1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.form.notesFocused() {
		m.form.notes, cmd = m.form.notes.Update(msg)
	} else {
		m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	}
	return m, cmd
}

func (m appModel) submitForm() (tea.Model, tea.Cmd) {
	if errs := m.form.check(); errs != nil {
		m.form.errors = errs
		return m, nil
	}

	m.form.errors = nil
	m.form.submitting = true

	req := m.form.request()
	if m.form.editing() {
		return m, tea.Batch(m.cmdUpdate(m.form.id, req), m.spinner.Tick)
	}
	return m, tea.Batch(m.cmdCreate(req), m.spinner.Tick)
}
