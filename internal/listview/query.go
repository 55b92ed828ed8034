package listview

import (
	"net/url"

	"github.com/MKhiriev/go-job-tracker/models"
)

// Query is the server-side part of the list state. Changing it requires a
// refetch.
type Query struct {
	Status    *models.Status
	SortBy    models.SortField
	SortOrder models.SortOrder
}

// DefaultQuery is newest first with no status filter, matching the server
// defaults.
func DefaultQuery() Query {
	return Query{SortBy: models.DefaultSortField, SortOrder: models.DefaultSortOrder}
}

// Params encodes q as the query string of GET /api/applications. Unset or
// invalid values are left out so that the server applies its defaults.
func (q Query) Params() url.Values {
	params := url.Values{}
	if q.Status != nil && q.Status.IsValid() {
		params.Set("status", q.Status.String())
	}
	if q.SortBy.IsValid() {
		params.Set("sortBy", string(q.SortBy))
	}
	if q.SortOrder.IsValid() {
		params.Set("sortOrder", string(q.SortOrder))
	}
	return params
}

// CycleStatus moves the status filter to the next status in pipeline order;
// after the last status the filter is cleared.
func (q Query) CycleStatus() Query {
	if q.Status == nil {
		s := models.Statuses[0]
		q.Status = &s
		return q
	}

	for i, s := range models.Statuses {
		if s == *q.Status && i+1 < len(models.Statuses) {
			next := models.Statuses[i+1]
			q.Status = &next
			return q
		}
	}
	q.Status = nil
	return q
}

// CycleSortBy moves the server sort to the next field of [models.SortFields].
func (q Query) CycleSortBy() Query {
	idx := 0
	for i, f := range models.SortFields {
		if f == q.SortBy {
			idx = (i + 1) % len(models.SortFields)
			break
		}
	}
	q.SortBy = models.SortFields[idx]
	return q
}

// ToggleOrder flips the server sort direction.
func (q Query) ToggleOrder() Query {
	if q.SortOrder == models.SortAsc {
		q.SortOrder = models.SortDesc
	} else {
		q.SortOrder = models.SortAsc
	}
	return q
}
