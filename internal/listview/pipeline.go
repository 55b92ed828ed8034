package listview

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-job-tracker/models"
)

// DefaultPerPage is the page size of a new [View].
const DefaultPerPage = 10

// Column is a sortable column of the list.
type Column string

const (
	ColumnCompany         Column = "company"
	ColumnJobTitle        Column = "job_title"
	ColumnApplicationDate Column = "application_date"
	ColumnStatus          Column = "status"
	ColumnCreatedAt       Column = "created_at"
)

// Columns lists the sortable columns in display order.
var Columns = []Column{ColumnCompany, ColumnJobTitle, ColumnApplicationDate, ColumnStatus, ColumnCreatedAt}

// Direction is the direction of a local sort.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Filter keeps the applications whose company or job title contains term,
// ignoring case. An empty or blank term keeps everything.
func Filter(apps []models.Application, term string) []models.Application {
	needle := fold(strings.TrimSpace(term))
	if needle == "" {
		return slices.Clone(apps)
	}

	out := make([]models.Application, 0, len(apps))
	for _, app := range apps {
		if strings.Contains(fold(app.Company), needle) || strings.Contains(fold(app.JobTitle), needle) {
			out = append(out, app)
		}
	}
	return out
}

// fold maps s to a form in which case-insensitive substring search is a plain
// substring search.
func fold(s string) string {
	return strings.ToLower(strings.ToUpper(s))
}

// Sort returns a copy of apps stably ordered by col. An unknown column leaves
// the order unchanged.
func Sort(apps []models.Application, col Column, dir Direction) []models.Application {
	out := slices.Clone(apps)

	cmp := comparator(col)
	if cmp == nil {
		return out
	}

	slices.SortStableFunc(out, func(a, b models.Application) int {
		if dir == Descending {
			return cmp(b, a)
		}
		return cmp(a, b)
	})
	return out
}

func comparator(col Column) func(a, b models.Application) int {
	switch col {
	case ColumnCompany:
		return func(a, b models.Application) int { return strings.Compare(fold(a.Company), fold(b.Company)) }
	case ColumnJobTitle:
		return func(a, b models.Application) int { return strings.Compare(fold(a.JobTitle), fold(b.JobTitle)) }
	case ColumnApplicationDate:
		return func(a, b models.Application) int { return a.ApplicationDate.Compare(b.ApplicationDate.Time) }
	case ColumnStatus:
		return func(a, b models.Application) int { return strings.Compare(string(a.Status), string(b.Status)) }
	case ColumnCreatedAt:
		return func(a, b models.Application) int { return a.CreatedAt.Compare(b.CreatedAt) }
	}
	return nil
}

// Paginate returns the rows of page (1-based) together with the clamped page
// number and the page count. The page count is at least 1, so an empty list
// has one empty page. A non-positive perPage falls back to [DefaultPerPage].
func Paginate(apps []models.Application, page, perPage int) ([]models.Application, int, int) {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	pages := max(1, (len(apps)+perPage-1)/perPage)
	page = min(max(page, 1), pages)

	start := (page - 1) * perPage
	end := min(start+perPage, len(apps))
	if start >= end {
		return []models.Application{}, page, pages
	}
	return slices.Clone(apps[start:end]), page, pages
}
