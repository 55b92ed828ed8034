package tui

import (
	"context"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-job-tracker/internal/adapter"
	"github.com/MKhiriev/go-job-tracker/internal/listview"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/mock"
	"github.com/MKhiriev/go-job-tracker/internal/service"
	"github.com/MKhiriev/go-job-tracker/models"
)

// ── helpers ──

type testEnv struct {
	auth *mock.MockClientAuthService
	apps *mock.MockClientApplicationService
	m    appModel
}

var testSession = models.Session{UserID: "u-1", Email: "jane@example.com", Token: "token"}

func newTestEnv(t *testing.T, session models.Session) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		auth: mock.NewMockClientAuthService(ctrl),
		apps: mock.NewMockClientApplicationService(ctrl),
	}
	services := &service.ClientServices{AuthService: env.auth, ApplicationService: env.apps}
	env.m = newAppModel(context.Background(), services, models.NewBuildInfo("1.0.0", "2026-01-01", "abc"), logger.Nop(), session)
	env.m.now = func() time.Time { return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC) }
	return env
}

// send feeds msg to the model and returns the updated model and command.
func (e *testEnv) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := e.m.Update(msg)
	m, ok := next.(appModel)
	require.True(t, ok)
	e.m = m
	return cmd
}

func (e *testEnv) press(t *testing.T, k string) tea.Cmd {
	t.Helper()
	return e.send(t, keyMsg(k))
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func (e *testEnv) typeText(t *testing.T, s string) {
	t.Helper()
	for _, r := range s {
		e.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func testApps(n int) []models.Application {
	apps := make([]models.Application, n)
	for i := range apps {
		apps[i] = models.Application{
			ID:              fmt.Sprintf("app-%02d", i),
			Company:         fmt.Sprintf("Company %02d", i),
			JobTitle:        "Engineer",
			ApplicationDate: models.NewDate(2026, time.March, i%28+1),
			Status:          models.StatusApplied,
			CreatedAt:       time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		}
	}
	return apps
}

func stats(applied int) models.ApplicationStats {
	return models.NewApplicationStats(map[models.Status]int{models.StatusApplied: applied})
}

// ── start ──

func TestNewAppModel_StartScreen(t *testing.T) {
	env := newTestEnv(t, models.Session{})
	assert.Equal(t, screenAuth, env.m.screen)
	assert.NotNil(t, env.m.Init())

	env = newTestEnv(t, testSession)
	assert.Equal(t, screenList, env.m.screen)
	assert.True(t, env.m.list.loading)
	assert.NotNil(t, env.m.Init())
}

func TestNew_RequiresServices(t *testing.T) {
	_, err := New(nil, models.BuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServices)

	_, err = New(&service.ClientServices{}, models.BuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServices)
}

// ── auth ──

func TestAuth_LoginSuccess(t *testing.T) {
	env := newTestEnv(t, models.Session{})

	env.typeText(t, "jane@example.com")
	env.press(t, "enter")
	assert.Equal(t, 1, env.m.authForm.focus)

	env.typeText(t, "secret123")
	cmd := env.press(t, "enter")
	require.NotNil(t, cmd)
	assert.True(t, env.m.authForm.submitting)

	env.auth.EXPECT().Login(gomock.Any(), "jane@example.com", "secret123").Return(testSession, nil)
	msg := env.m.cmdAuth(authLogin, env.m.authForm.email(), env.m.authForm.password())()
	done, ok := msg.(authDoneMsg)
	require.True(t, ok)

	cmd = env.send(t, done)
	assert.NotNil(t, cmd)
	assert.Equal(t, screenList, env.m.screen)
	assert.Equal(t, testSession, env.m.session)
	assert.True(t, env.m.list.loading)
	assert.Empty(t, env.m.authForm.password())
	assert.Contains(t, env.m.toast.message, "jane@example.com")
}

func TestAuth_SignUpUsesSignUp(t *testing.T) {
	env := newTestEnv(t, models.Session{})
	env.press(t, "ctrl+t")
	require.Equal(t, authSignUp, env.m.authForm.mode)

	env.auth.EXPECT().SignUp(gomock.Any(), "new@example.com", "secret123").Return(testSession, nil)
	msg := env.m.cmdAuth(env.m.authForm.mode, "new@example.com", "secret123")()
	assert.Equal(t, authDoneMsg{session: testSession}, msg)
}

func TestAuth_LocalCheck(t *testing.T) {
	env := newTestEnv(t, models.Session{})
	env.press(t, "tab")

	cmd := env.press(t, "enter")
	assert.Nil(t, cmd)
	assert.False(t, env.m.authForm.submitting)
	assert.Contains(t, env.m.authForm.errors, authFieldEmail)
	assert.Contains(t, env.m.authForm.errors, authFieldPassword)
}

func TestAuth_InvalidCredentialsDoesNotLogout(t *testing.T) {
	env := newTestEnv(t, models.Session{})
	env.m.authForm.submitting = true

	err := fmt.Errorf("%w: %w", service.ErrInvalidCredentials, adapter.ErrUnauthorized)
	cmd := env.send(t, authDoneMsg{err: err})

	assert.Nil(t, cmd)
	assert.Equal(t, screenAuth, env.m.screen)
	assert.False(t, env.m.authForm.submitting)
	assert.Equal(t, "Invalid email or password", env.m.authForm.notice)
}

func TestAuth_FieldErrors(t *testing.T) {
	env := newTestEnv(t, models.Session{})

	err := &adapter.ValidationError{
		Message: "Validation failed",
		Details: []models.ValidationDetail{{Field: "password", Message: "Password must be at least 6 characters long"}},
	}
	env.send(t, authDoneMsg{err: err})

	assert.Equal(t, map[string]string{authFieldPassword: "Password must be at least 6 characters long"}, env.m.authForm.errors)
	assert.Empty(t, env.m.authForm.notice)
}

func TestAuth_EscQuits(t *testing.T) {
	env := newTestEnv(t, models.Session{})
	cmd := env.press(t, "esc")
	require.NotNil(t, cmd)
	assert.ErrorIs(t, env.m.err, ErrUserQuit)
}

// ── list ──

func TestList_LoadedAndPaging(t *testing.T) {
	env := newTestEnv(t, testSession)
	env.send(t, listLoadedMsg{items: testApps(15)})
	env.send(t, statsLoadedMsg{stats: stats(15)})

	assert.False(t, env.m.list.loading)
	assert.Equal(t, 15, env.m.list.stats.Total)
	page, pages := env.m.list.view.Page()
	assert.Equal(t, 1, page)
	assert.Equal(t, 2, pages)

	env.press(t, "right")
	page, _ = env.m.list.view.Page()
	assert.Equal(t, 2, page)
	assert.Len(t, env.m.list.view.Rows(), 5)

	env.press(t, "left")
	page, _ = env.m.list.view.Page()
	assert.Equal(t, 1, page)
}

func TestList_Search(t *testing.T) {
	env := newTestEnv(t, testSession)
	env.send(t, listLoadedMsg{items: testApps(15)})

	env.press(t, "/")
	require.True(t, env.m.list.searching)
	env.typeText(t, "company 1")
	assert.Equal(t, "company 1", env.m.list.view.Search())
	assert.Equal(t, 5, env.m.list.view.Matched())

	env.press(t, "enter")
	assert.False(t, env.m.list.searching)
	assert.Equal(t, 5, env.m.list.view.Matched())

	env.press(t, "esc")
	assert.Empty(t, env.m.list.view.Search())
	assert.Equal(t, 15, env.m.list.view.Matched())
}

func TestList_ServerQueryRefetches(t *testing.T) {
	env := newTestEnv(t, testSession)
	env.send(t, listLoadedMsg{items: testApps(3)})

	cmd := env.press(t, "f")
	assert.NotNil(t, cmd)
	require.NotNil(t, env.m.list.query.Status)
	assert.Equal(t, models.StatusApplied, *env.m.list.query.Status)
	assert.True(t, env.m.list.loading)

	env.press(t, "o")
	assert.NotEqual(t, listview.DefaultQuery().SortOrder, env.m.list.query.SortOrder)

	env.apps.EXPECT().List(gomock.Any(), env.m.list.query).Return(testApps(1), nil)
	msg := env.m.cmdLoadList(env.m.list.query)()
	env.send(t, msg)
	assert.False(t, env.m.list.loading)
	assert.Equal(t, 1, env.m.list.view.Total())
}

func TestList_LocalSort(t *testing.T) {
	env := newTestEnv(t, testSession)
	env.send(t, listLoadedMsg{items: testApps(3)})

	env.press(t, "1")
	col, dir, ok := env.m.list.view.Sort()
	require.True(t, ok)
	assert.Equal(t, listview.ColumnCompany, col)
	assert.Equal(t, listview.Ascending, dir)

	env.press(t, "1")
	_, dir, _ = env.m.list.view.Sort()
	assert.Equal(t, listview.Descending, dir)
	assert.Equal(t, "Company 02", env.m.list.view.Rows()[0].Company)

	env.press(t, "4")
	col, _, _ = env.m.list.view.Sort()
	assert.Equal(t, listview.ColumnStatus, col)

	env.press(t, "0")
	_, _, ok = env.m.list.view.Sort()
	assert.False(t, ok)
}

func TestList_EnterOpensDetail(t *testing.T) {
	env := newTestEnv(t, testSession)
	apps := testApps(2)
	env.send(t, listLoadedMsg{items: apps})

	cmd := env.press(t, "enter")
	require.NotNil(t, cmd)
	assert.Equal(t, screenDetail, env.m.screen)
	assert.Equal(t, apps[0].ID, env.m.detail.app.ID)

	fresh := apps[0]
	fresh.Notes = ptr("called back")
	env.apps.EXPECT().Get(gomock.Any(), apps[0].ID).Return(fresh, nil)
	env.send(t, cmd())
	assert.Equal(t, "called back", *env.m.detail.app.Notes)

	env.press(t, "esc")
	assert.Equal(t, screenList, env.m.screen)
}

func TestDetail_NotFoundReturnsToList(t *testing.T) {
	env := newTestEnv(t, testSession)
	env.send(t, listLoadedMsg{items: testApps(1)})
	env.press(t, "enter")

	err := fmt.Errorf("%w: %w", service.ErrApplicationNotFound, adapter.ErrNotFound)
	cmd := env.send(t, detailLoadedMsg{err: err})

	assert.NotNil(t, cmd)
	assert.Equal(t, screenList, env.m.screen)
	assert.True(t, env.m.toast.isError)
}

func TestList_CopySelected(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { writeClipboard = orig })

	env := newTestEnv(t, testSession)
	apps := testApps(1)
	env.send(t, listLoadedMsg{items: apps})

	cmd := env.press(t, "y")
	require.NotNil(t, cmd)
	env.send(t, cmd())

	assert.Equal(t, summaryLine(apps[0]), copied)
	assert.Equal(t, "Copied to the clipboard", env.m.toast.message)
}

// ── form ──

func TestForm_CreateFlow(t *testing.T) {
	env := newTestEnv(t, testSession)
	env.send(t, listLoadedMsg{items: nil})

	env.press(t, "n")
	require.Equal(t, screenForm, env.m.screen)
	assert.False(t, env.m.form.editing())
	assert.Equal(t, "2026-03-14", env.m.form.inputs[2].Value())

	env.typeText(t, "Acme")
	env.press(t, "enter")
	env.typeText(t, "Backend Engineer")

	req := env.m.form.request()
	cmd := env.press(t, "ctrl+s")
	require.NotNil(t, cmd)
	assert.True(t, env.m.form.submitting)
	assert.Equal(t, "Acme", *req.Company)

	created := models.Application{ID: "new", Company: "Acme", JobTitle: "Backend Engineer", Status: models.StatusApplied}
	env.apps.EXPECT().Create(gomock.Any(), req).Return(created, stats(1), nil)
	env.send(t, env.m.cmdCreate(req)())

	assert.Equal(t, screenList, env.m.screen)
	assert.Equal(t, 1, env.m.list.stats.Total)
	assert.True(t, env.m.list.loading)
	assert.Equal(t, "Application created", env.m.toast.message)
}

func TestForm_LocalCheckBlocksSubmit(t *testing.T) {
	env := newTestEnv(t, testSession)
	env.press(t, "n")

	cmd := env.press(t, "ctrl+s")
	assert.Nil(t, cmd)
	assert.Contains(t, env.m.form.errors, models.FieldCompany)
	assert.Contains(t, env.m.form.errors, models.FieldJobTitle)
	assert.False(t, env.m.form.submitting)
}

func TestForm_ServerFieldErrors(t *testing.T) {
	env := newTestEnv(t, testSession)
	env.press(t, "n")
	env.m.form.submitting = true

	err := &adapter.ValidationError{
		Message: "Validation failed",
		Details: []models.ValidationDetail{{Field: "company", Message: "Company name is required"}},
	}
	env.send(t, savedMsg{err: err, created: true})

	assert.Equal(t, screenForm, env.m.screen)
	assert.False(t, env.m.form.submitting)
	assert.Equal(t, "Company name is required", env.m.form.errors[models.FieldCompany])
}

func TestForm_EditFromDetailReturnsToDetail(t *testing.T) {
	env := newTestEnv(t, testSession)
	apps := testApps(1)
	env.send(t, listLoadedMsg{items: apps})
	env.press(t, "enter")
	env.press(t, "e")

	require.Equal(t, screenForm, env.m.screen)
	assert.True(t, env.m.form.editing())
	assert.Equal(t, apps[0].Company, env.m.form.inputs[0].Value())

	updated := apps[0]
	updated.Status = models.StatusInterview
	env.send(t, savedMsg{app: updated, stats: stats(0)})

	assert.Equal(t, screenDetail, env.m.screen)
	assert.Equal(t, models.StatusInterview, env.m.detail.app.Status)
	assert.Equal(t, "Application updated", env.m.toast.message)
}

func TestForm_StatsRefreshFailureIsPartialSuccess(t *testing.T) {
	env := newTestEnv(t, testSession)
	env.send(t, statsLoadedMsg{stats: stats(4)})
	env.press(t, "n")

	env.send(t, savedMsg{app: testApps(1)[0], created: true, err: service.ErrStatsRefresh})

	assert.Equal(t, screenList, env.m.screen)
	assert.Equal(t, 4, env.m.list.stats.Total)
	assert.True(t, env.m.toast.isError)
}

func TestForm_EscCancels(t *testing.T) {
	env := newTestEnv(t, testSession)
	env.press(t, "n")
	env.press(t, "esc")
	assert.Equal(t, screenList, env.m.screen)
}

// ── delete ──

func TestDelete_ConfirmFlow(t *testing.T) {
	env := newTestEnv(t, testSession)
	apps := testApps(2)
	env.send(t, listLoadedMsg{items: apps})

	env.press(t, "d")
	require.True(t, env.m.showConfirm)
	assert.Equal(t, apps[0].ID, env.m.confirm.id)

	cmd := env.press(t, "y")
	require.NotNil(t, cmd)
	assert.False(t, env.m.showConfirm)

	env.apps.EXPECT().Delete(gomock.Any(), apps[0].ID).Return(stats(1), nil)
	env.send(t, cmd())

	assert.Equal(t, 1, env.m.list.stats.Total)
	assert.Equal(t, "Application deleted", env.m.toast.message)
	assert.True(t, env.m.list.loading)
}

func TestDelete_Cancel(t *testing.T) {
	env := newTestEnv(t, testSession)
	env.send(t, listLoadedMsg{items: testApps(1)})

	env.press(t, "d")
	cmd := env.press(t, "n")
	assert.Nil(t, cmd)
	assert.False(t, env.m.showConfirm)
	assert.Equal(t, screenList, env.m.screen)
}

// ── session ──

func TestUnauthorizedForcesLogout(t *testing.T) {
	env := newTestEnv(t, testSession)

	cmd := env.send(t, listLoadedMsg{err: fmt.Errorf("list: %w", adapter.ErrUnauthorized)})
	require.NotNil(t, cmd)

	env.auth.EXPECT().Logout(gomock.Any()).Return(nil)
	msg := cmd()
	assert.Equal(t, loggedOutMsg{forced: true}, msg)

	env.send(t, msg)
	assert.Equal(t, screenAuth, env.m.screen)
	assert.True(t, env.m.session.IsZero())
	assert.Equal(t, "Your session has expired, please log in again", env.m.authForm.notice)
}

func TestOtherErrorsShowToast(t *testing.T) {
	env := newTestEnv(t, testSession)

	cmd := env.send(t, statsLoadedMsg{err: adapter.ErrServerError})
	assert.NotNil(t, cmd)
	assert.Equal(t, screenList, env.m.screen)
	assert.Equal(t, "The server failed to process the request", env.m.toast.message)
}

func TestLogoutKey(t *testing.T) {
	env := newTestEnv(t, testSession)
	cmd := env.press(t, "L")
	require.NotNil(t, cmd)

	env.auth.EXPECT().Logout(gomock.Any()).Return(nil)
	env.send(t, cmd())
	assert.Equal(t, screenAuth, env.m.screen)
	assert.Empty(t, env.m.authForm.notice)
}

// ── toast ──

func TestToast_StaleTimerKeepsNewerMessage(t *testing.T) {
	var toast toastModel
	toast, _ = toast.show("first", false)
	firstID := toast.id
	toast, _ = toast.show("second", true)

	toast = toast.clear(firstID)
	assert.Equal(t, "second", toast.message)

	toast = toast.clear(toast.id)
	assert.Empty(t, toast.message)
	assert.Empty(t, toast.View())
}

func TestView_RendersFooter(t *testing.T) {
	env := newTestEnv(t, testSession)
	env.send(t, listLoadedMsg{items: testApps(1)})

	out := env.m.View()
	assert.Contains(t, out, "Company 00")
	assert.Contains(t, out, "jane@example.com")
	assert.Contains(t, out, "1.0.0")
}

func ptr[T any](v T) *T { return &v }
