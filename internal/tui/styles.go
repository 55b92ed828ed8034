package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-job-tracker/models"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	labelStyle      = lipgloss.NewStyle().Width(18)
	focusedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	toastStyle      = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	statStyle       = lipgloss.NewStyle().Padding(0, 1)
)

// statusColors colour each pipeline stage in the stats bar and the table.
var statusColors = map[models.Status]lipgloss.Color{
	models.StatusApplied:   lipgloss.Color("39"),
	models.StatusInterview: lipgloss.Color("214"),
	models.StatusOffered:   lipgloss.Color("42"),
	models.StatusRejected:  lipgloss.Color("203"),
}

func statusStyle(s models.Status) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(statusColors[s])
}
