package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-job-tracker/models"
)

type detailModel struct {
	app models.Application
}

func (m detailModel) View() string {
	var b strings.Builder
	a := m.app

	b.WriteString(titleStyle.Render(a.Company))
	b.WriteString("\n\n")

	rows := [][2]string{
		{"Job title", a.JobTitle},
		{"Applied on", a.ApplicationDate.String()},
		{"Status", statusStyle(a.Status).Render(string(a.Status))},
		{"Created", a.CreatedAt.Local().Format("2006-01-02 15:04")},
		{"ID", a.ID},
	}
	for _, r := range rows {
		b.WriteString(labelStyle.Render(r[0]))
		b.WriteString(r[1])
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Notes"))
	b.WriteString("\n")
	b.WriteString(valueOrDash(a.Notes))
	b.WriteString("\n")

	return b.String()
}

// summaryLine is the one-line form copied to the clipboard.
func summaryLine(a models.Application) string {
	line := fmt.Sprintf("%s | %s | %s | applied %s", a.Company, a.JobTitle, a.Status, a.ApplicationDate)
	if a.Notes != nil && *a.Notes != "" {
		line += " | " + strings.Join(strings.Fields(*a.Notes), " ")
	}
	return line
}
