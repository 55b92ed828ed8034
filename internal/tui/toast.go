package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// toastDuration is how long a toast stays on screen.
const toastDuration = 4 * time.Second

// toastModel is a transient one-line notice. id distinguishes toasts so that
// the timer of an older toast does not clear a newer one.
type toastModel struct {
	id      int
	message string
	isError bool
}

func (m toastModel) show(message string, isError bool) (toastModel, tea.Cmd) {
	m.id++
	m.message = message
	m.isError = isError

	id := m.id
	return m, tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return clearToastMsg{id: id}
	})
}

func (m toastModel) clear(id int) toastModel {
	if id == m.id {
		m.message = ""
	}
	return m
}

func (m toastModel) View() string {
	if m.message == "" {
		return ""
	}
	if m.isError {
		return toastStyle.Render(errorStyle.Render(m.message))
	}
	return toastStyle.Render(m.message)
}
