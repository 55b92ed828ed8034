package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type authMode int

const (
	authLogin authMode = iota
	authSignUp
)

func (m authMode) String() string {
	if m == authSignUp {
		return "Sign up"
	}
	return "Log in"
}

const (
	authFieldEmail    = "email"
	authFieldPassword = "password"
)

// authModel is the login/signup form. Both modes share the same two inputs.
type authModel struct {
	mode       authMode
	inputs     []textinput.Model
	focus      int
	errors     map[string]string
	notice     string
	submitting bool
}

func newAuthModel() authModel {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return authModel{inputs: []textinput.Model{email, password}}
}

func (m authModel) email() string    { return strings.TrimSpace(m.inputs[0].Value()) }
func (m authModel) password() string { return m.inputs[1].Value() }

func (m authModel) setFocus(i int) authModel {
	n := len(m.inputs)
	m.focus = ((i % n) + n) % n
	for idx := range m.inputs {
		if idx == m.focus {
			m.inputs[idx].Focus()
		} else {
			m.inputs[idx].Blur()
		}
	}
	return m
}

func (m authModel) toggleMode() authModel {
	if m.mode == authLogin {
		m.mode = authSignUp
	} else {
		m.mode = authLogin
	}
	m.errors = nil
	return m
}

// reset clears the password and errors but keeps the email for convenience.
func (m authModel) reset() authModel {
	m.inputs[1].SetValue("")
	m.errors = nil
	m.submitting = false
	return m.setFocus(0)
}

// check performs the local checks that do not need the server.
func (m authModel) check() map[string]string {
	errs := map[string]string{}
	if m.email() == "" {
		errs[authFieldEmail] = "Please provide a valid email"
	}
	if m.password() == "" {
		errs[authFieldPassword] = "Password is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (m authModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.mode.String()))
	b.WriteString("\n\n")

	labels := []string{"Email", "Password"}
	fields := []string{authFieldEmail, authFieldPassword}
	for i, input := range m.inputs {
		label := labelStyle.Render(labels[i])
		if i == m.focus {
			label = focusedStyle.Render(labelStyle.Render(labels[i]))
		}
		b.WriteString(label)
		b.WriteString(input.View())
		b.WriteString("\n")
		if msg := m.errors[fields[i]]; msg != "" {
			b.WriteString(labelStyle.Render(""))
			b.WriteString(errorStyle.Render(msg))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	switch {
	case m.submitting:
		b.WriteString(helpStyle.Render("Please wait..."))
	case m.notice != "":
		b.WriteString(errorStyle.Render(m.notice))
	}

	return b.String()
}
