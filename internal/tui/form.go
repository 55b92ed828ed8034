package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-job-tracker/models"
)

// formFields are the JSON names of the form inputs in focus order. Notes is
// the textarea and always comes last.
var formFields = []string{
	models.FieldCompany,
	models.FieldJobTitle,
	models.FieldApplicationDate,
	models.FieldStatus,
	models.FieldNotes,
}

var formLabels = map[string]string{
	models.FieldCompany:         "Company",
	models.FieldJobTitle:        "Job title",
	models.FieldApplicationDate: "Applied on",
	models.FieldStatus:          "Status",
	models.FieldNotes:           "Notes",
}

// formModel is the create/edit form. id is empty when creating.
type formModel struct {
	id         string
	inputs     []textinput.Model
	notes      textarea.Model
	focus      int
	errors     map[string]string
	submitting bool
}

func newFormModel() formModel {
	company := textinput.New()
	company.Placeholder = "Acme Inc."
	company.CharLimit = 255

	jobTitle := textinput.New()
	jobTitle.Placeholder = "Backend Engineer"
	jobTitle.CharLimit = 255

	date := textinput.New()
	date.Placeholder = models.DateLayout
	date.CharLimit = len(time.RFC3339)

	status := textinput.New()
	status.Placeholder = "applied | interview | offered | rejected"
	status.CharLimit = 16

	inputs := []textinput.Model{company, jobTitle, date, status}
	for i := range inputs {
		inputs[i].Width = 48
	}

	notes := textarea.New()
	notes.Placeholder = "optional"
	notes.CharLimit = 5000
	notes.SetWidth(60)
	notes.SetHeight(4)
	notes.ShowLineNumbers = false

	return formModel{inputs: inputs, notes: notes}
}

// newCreateForm pre-fills today's date and the first status.
func newCreateForm(today time.Time) formModel {
	m := newFormModel()
	m.inputs[2].SetValue(models.DateOf(today).String())
	m.inputs[3].SetValue(string(models.StatusApplied))
	return m.setFocus(0)
}

func newEditForm(app models.Application) formModel {
	m := newFormModel()
	m.id = app.ID
	m.inputs[0].SetValue(app.Company)
	m.inputs[1].SetValue(app.JobTitle)
	m.inputs[2].SetValue(app.ApplicationDate.String())
	m.inputs[3].SetValue(string(app.Status))
	if app.Notes != nil {
		m.notes.SetValue(*app.Notes)
	}
	return m.setFocus(0)
}

func (m formModel) editing() bool { return m.id != "" }

func (m formModel) notesFocused() bool { return m.focus == len(m.inputs) }

func (m formModel) setFocus(i int) formModel {
	n := len(m.inputs) + 1
	m.focus = ((i % n) + n) % n
	for idx := range m.inputs {
		if idx == m.focus {
			m.inputs[idx].Focus()
		} else {
			m.inputs[idx].Blur()
		}
	}
	if m.notesFocused() {
		m.notes.Focus()
	} else {
		m.notes.Blur()
	}
	return m
}

// request builds the body sent to the API. Every field is present, so an
// edit also clears notes that were emptied.
func (m formModel) request() models.ApplicationRequest {
	value := func(i int) *string {
		v := m.inputs[i].Value()
		return &v
	}
	notes := m.notes.Value()
	return models.ApplicationRequest{
		Company:         value(0),
		JobTitle:        value(1),
		ApplicationDate: value(2),
		Status:          value(3),
		Notes:           &notes,
	}.Normalized()
}

// check catches the mistakes that do not need a round trip. The server
// repeats every check.
func (m formModel) check() map[string]string {
	req := m.request()
	errs := map[string]string{}

	if *req.Company == "" {
		errs[models.FieldCompany] = "Company name is required"
	}
	if *req.JobTitle == "" {
		errs[models.FieldJobTitle] = "Job title is required"
	}
	if _, err := models.ParseDate(*req.ApplicationDate); err != nil {
		errs[models.FieldApplicationDate] = "Please provide a valid date (YYYY-MM-DD)"
	}
	if _, ok := models.ParseStatus(*req.Status); !ok {
		errs[models.FieldStatus] = "Status must be one of: applied, interview, offered, rejected"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (m formModel) View() string {
	var b strings.Builder

	title := "New application"
	if m.editing() {
		title = "Edit application"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	for i, field := range formFields {
		label := labelStyle.Render(formLabels[field])
		if i == m.focus {
			label = focusedStyle.Render(label)
		}
		b.WriteString(label)
		if i < len(m.inputs) {
			b.WriteString(m.inputs[i].View())
		} else {
			b.WriteString("\n")
			b.WriteString(m.notes.View())
		}
		b.WriteString("\n")
		if msg := m.errors[field]; msg != "" {
			b.WriteString(labelStyle.Render(""))
			b.WriteString(errorStyle.Render(msg))
			b.WriteString("\n")
		}
	}

	if m.submitting {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Saving..."))
	}

	return b.String()
}
