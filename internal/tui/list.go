package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-job-tracker/internal/listview"
	"github.com/MKhiriev/go-job-tracker/models"
)

// listColumns pairs the table headers with the local sort columns; the digit
// keys 1-5 pick them in this order.
var listColumns = []struct {
	title  string
	width  int
	column listview.Column
}{
	{"Company", 22, listview.ColumnCompany},
	{"Job title", 26, listview.ColumnJobTitle},
	{"Applied on", 12, listview.ColumnApplicationDate},
	{"Status", 10, listview.ColumnStatus},
	{"Created", 16, listview.ColumnCreatedAt},
}

type listModel struct {
	view  listview.View
	query listview.Query
	stats models.ApplicationStats

	table     table.Model
	search    textinput.Model
	searching bool
	loading   bool
}

func newListModel() listModel {
	search := textinput.New()
	search.Placeholder = "company or job title"
	search.Prompt = "/ "
	search.CharLimit = 100
	search.Width = 40

	m := listModel{
		view:   listview.NewView(),
		query:  listview.DefaultQuery(),
		stats:  models.NewApplicationStats(nil),
		search: search,
		table: table.New(
			table.WithFocused(true),
			table.WithHeight(listview.DefaultPerPage+1),
			table.WithKeyMap(table.KeyMap{
				LineUp:     keys.up,
				LineDown:   keys.down,
				GotoTop:    key.NewBinding(key.WithKeys("home", "g")),
				GotoBottom: key.NewBinding(key.WithKeys("end", "G")),
			}),
		),
	}
	return m.refreshTable()
}

func (m listModel) setItems(items []models.Application) listModel {
	m.view = m.view.SetItems(items)
	return m.refreshTable()
}

func (m listModel) withView(v listview.View) listModel {
	m.view = v
	return m.refreshTable()
}

// selected returns the application under the table cursor.
func (m listModel) selected() (models.Application, bool) {
	rows := m.view.Rows()
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(rows) {
		return models.Application{}, false
	}
	return rows[idx], true
}

// refreshTable rebuilds columns and rows from the view. Column headers carry
// the local sort marker.
func (m listModel) refreshTable() listModel {
	sortCol, dir, sorted := m.view.Sort()

	cols := make([]table.Column, len(listColumns))
	for i, c := range listColumns {
		title := c.title
		if sorted && sortCol == c.column {
			if dir == listview.Ascending {
				title += " ▲"
			} else {
				title += " ▼"
			}
		}
		cols[i] = table.Column{Title: title, Width: c.width}
	}

	apps := m.view.Rows()
	rows := make([]table.Row, len(apps))
	for i, a := range apps {
		rows[i] = table.Row{
			fitText(a.Company, listColumns[0].width),
			fitText(a.JobTitle, listColumns[1].width),
			a.ApplicationDate.String(),
			string(a.Status),
			a.CreatedAt.Local().Format("2006-01-02 15:04"),
		}
	}

	cursor := m.table.Cursor()
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	switch {
	case len(rows) == 0:
		m.table.SetCursor(0)
	case cursor >= len(rows):
		m.table.SetCursor(len(rows) - 1)
	case cursor < 0:
		m.table.SetCursor(0)
	}
	return m
}

func (m listModel) statsBar() string {
	parts := make([]string, 0, len(models.Statuses)+1)
	for _, s := range models.Statuses {
		label := strings.ToUpper(string(s[:1])) + string(s[1:])
		parts = append(parts, statStyle.Render(statusStyle(s).Render(fmt.Sprintf("%s %d", label, m.stats.Stats[s]))))
	}
	parts = append(parts, statStyle.Render(titleStyle.Render(fmt.Sprintf("Total %d", m.stats.Total))))
	return strings.Join(parts, "│")
}

func (m listModel) queryLine() string {
	status := "all"
	if m.query.Status != nil {
		status = m.query.Status.String()
	}
	return fmt.Sprintf("status: %s   server sort: %s %s", status, m.query.SortBy, strings.ToLower(string(m.query.SortOrder)))
}

func (m listModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Job applications"))
	b.WriteString("\n")
	b.WriteString(m.statsBar())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.queryLine()))
	b.WriteString("\n")

	if m.searching || m.view.Search() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.loading && m.view.Total() == 0:
		b.WriteString("Loading...\n")
	case m.view.Total() == 0:
		b.WriteString("No applications yet. Press n to add one.\n")
	case m.view.Matched() == 0:
		b.WriteString("Nothing matches the search.\n")
	default:
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	page, pages := m.view.Page()
	b.WriteString(helpStyle.Render(fmt.Sprintf("page %d/%d   %d of %d shown", page, pages, m.view.Matched(), m.view.Total())))

	return b.String()
}
