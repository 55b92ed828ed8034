package models

import "strings"

// SortField names a column the application list may be ordered by.
type SortField string

const (
	SortByCompany         SortField = "company"
	SortByJobTitle        SortField = "job_title"
	SortByApplicationDate SortField = "application_date"
	SortByStatus          SortField = "status"
	SortByCreatedAt       SortField = "created_at"
)

// SortFields lists every accepted sort column.
var SortFields = []SortField{SortByCompany, SortByJobTitle, SortByApplicationDate, SortByStatus, SortByCreatedAt}

func (f SortField) IsValid() bool {
	switch f {
	case SortByCompany, SortByJobTitle, SortByApplicationDate, SortByStatus, SortByCreatedAt:
		return true
	}
	return false
}

// SortOrder is the direction of the list ordering.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}

const (
	DefaultSortField = SortByCreatedAt
	DefaultSortOrder = SortDesc
)

// ApplicationFilter narrows and orders the applications of a single user.
// Nil pointers mean "no constraint"; both date bounds are inclusive.
type ApplicationFilter struct {
	Status    *Status
	DateFrom  *Date
	DateTo    *Date
	SortBy    SortField
	SortOrder SortOrder
}

// NewApplicationFilter builds a filter from raw query values.
// Unknown statuses, sort fields, sort orders and unparsable dates are ignored.
func NewApplicationFilter(status, dateFrom, dateTo, sortBy, sortOrder string) ApplicationFilter {
	filter := ApplicationFilter{
		SortBy:    DefaultSortField,
		SortOrder: DefaultSortOrder,
	}

	if s, ok := ParseStatus(status); ok {
		filter.Status = &s
	}
	if d, err := ParseDate(dateFrom); dateFrom != "" && err == nil {
		filter.DateFrom = &d
	}
	if d, err := ParseDate(dateTo); dateTo != "" && err == nil {
		filter.DateTo = &d
	}
	if f := SortField(strings.TrimSpace(sortBy)); f.IsValid() {
		filter.SortBy = f
	}
	if o := SortOrder(strings.ToUpper(strings.TrimSpace(sortOrder))); o.IsValid() {
		filter.SortOrder = o
	}

	return filter
}

// Normalized replaces invalid sort settings with the defaults.
func (f ApplicationFilter) Normalized() ApplicationFilter {
	if !f.SortBy.IsValid() {
		f.SortBy = DefaultSortField
	}
	if !f.SortOrder.IsValid() {
		f.SortOrder = DefaultSortOrder
	}
	if f.Status != nil && !f.Status.IsValid() {
		f.Status = nil
	}
	return f
}
