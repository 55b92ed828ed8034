package listview

import "github.com/MKhiriev/go-job-tracker/models"

// View is the local state of the application list. It is a value type: every
// mutator returns the updated copy.
type View struct {
	items   []models.Application
	search  string
	column  Column
	dir     Direction
	sorted  bool
	page    int
	perPage int
}

// NewView returns an empty view on page 1 with [DefaultPerPage] rows per page
// and no local sort, so rows keep the server order.
func NewView() View {
	return View{page: 1, perPage: DefaultPerPage}
}

// SetItems replaces the list. The page is kept but clamped to the new page count.
func (v View) SetItems(items []models.Application) View {
	v.items = items
	v.page = v.clampPage(v.page)
	return v
}

// SetSearch changes the search term and returns to page 1.
func (v View) SetSearch(term string) View {
	v.search = term
	v.page = 1
	return v
}

// ToggleSort flips the direction when col is already the sort column and
// otherwise sorts by col ascending.
func (v View) ToggleSort(col Column) View {
	if v.sorted && v.column == col {
		if v.dir == Ascending {
			v.dir = Descending
		} else {
			v.dir = Ascending
		}
		return v
	}

	v.column = col
	v.dir = Ascending
	v.sorted = true
	return v
}

// ClearSort restores the server order.
func (v View) ClearSort() View {
	v.sorted = false
	v.column = ""
	v.dir = Ascending
	return v
}

func (v View) SetPage(page int) View {
	v.page = v.clampPage(page)
	return v
}

func (v View) NextPage() View { return v.SetPage(v.page + 1) }
func (v View) PrevPage() View { return v.SetPage(v.page - 1) }

// SetPerPage changes the page size and returns to page 1.
func (v View) SetPerPage(perPage int) View {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	v.perPage = perPage
	v.page = 1
	return v
}

// Rows filters, sorts and pages the list, in that order.
func (v View) Rows() []models.Application {
	rows, _, _ := Paginate(v.visible(), v.page, v.perPage)
	return rows
}

// Page returns the current page and the page count of the filtered list.
func (v View) Page() (page, pages int) {
	_, page, pages = Paginate(v.visible(), v.page, v.perPage)
	return page, pages
}

// Matched is the number of records that pass the search.
func (v View) Matched() int {
	return len(Filter(v.items, v.search))
}

// Total is the number of records in the list, ignoring the search.
func (v View) Total() int {
	return len(v.items)
}

func (v View) Search() string { return v.search }

// Sort returns the local sort column and direction; ok is false when rows
// keep the server order.
func (v View) Sort() (col Column, dir Direction, ok bool) {
	return v.column, v.dir, v.sorted
}

func (v View) visible() []models.Application {
	rows := Filter(v.items, v.search)
	if v.sorted {
		rows = Sort(rows, v.column, v.dir)
	}
	return rows
}

func (v View) clampPage(page int) int {
	_, page, _ = Paginate(v.visible(), page, v.perPage)
	return page
}
