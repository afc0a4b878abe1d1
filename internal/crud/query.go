// Package crud implements a generic tabular CRUD data-flow engine: a list
// controller owning pagination/search/sort state, a form controller owning
// one edit/create session, and a submit coordinator dispatching inserts and
// updates. Entity screens parameterize the engine with a schema descriptor
// and a Collaborator instead of re-implementing the workflow per entity.
package crud

import (
	"net/url"
	"strconv"
)

// Sort orders accepted by Query.SortOrder. The empty string means "no sort
// applied", not an error.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Query is the client-held filter/sort/page state driving a list fetch.
// Empty Search/SortField mean no filter/sort applied.
type Query struct {
	Page      int    `json:"page"`
	Search    string `json:"search"`
	SortField string `json:"sort_field"`
	SortOrder string `json:"sort_order"`
}

// DefaultQuery returns a Query pointing at the first page with no filters.
func DefaultQuery() Query {
	return Query{Page: 1}
}

// QueryUpdate is a partial Query. Nil fields are left untouched by Apply.
type QueryUpdate struct {
	Page      *int
	Search    *string
	SortField *string
	SortOrder *string
}

// WithPage returns a QueryUpdate changing only the page number.
func WithPage(page int) QueryUpdate {
	return QueryUpdate{Page: &page}
}

// WithSearch returns a QueryUpdate changing only the search term.
func WithSearch(search string) QueryUpdate {
	return QueryUpdate{Search: &search}
}

// WithSort returns a QueryUpdate changing the sort field and order.
func WithSort(field, order string) QueryUpdate {
	return QueryUpdate{SortField: &field, SortOrder: &order}
}

// Apply merges an update into the query and returns the result. Any change
// to Search, SortField, or SortOrder resets Page to 1: a page number from a
// stale filter is meaningless. An explicit Page in the update is honored
// only when no filter field changed in the same call.
func (q Query) Apply(u QueryUpdate) Query {
	filtersChanged := false

	if u.Search != nil && *u.Search != q.Search {
		q.Search = *u.Search
		filtersChanged = true
	}
	if u.SortField != nil && *u.SortField != q.SortField {
		q.SortField = *u.SortField
		filtersChanged = true
	}
	if u.SortOrder != nil && *u.SortOrder != q.SortOrder {
		q.SortOrder = *u.SortOrder
		filtersChanged = true
	}

	if filtersChanged {
		q.Page = 1
	} else if u.Page != nil {
		q.Page = *u.Page
	}

	return q.Normalize()
}

// Normalize clamps the page to at least 1 and discards unknown sort orders.
func (q Query) Normalize() Query {
	if q.Page < 1 {
		q.Page = 1
	}
	switch q.SortOrder {
	case SortAsc, SortDesc, "":
	default:
		q.SortOrder = ""
	}
	return q
}

// Values encodes the query as URL query parameters. Empty filter fields are
// omitted so the encoded form stays shareable and minimal.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Page > 1 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.SortField != "" {
		v.Set("sort_field", q.SortField)
	}
	if q.SortOrder != "" {
		v.Set("sort_order", q.SortOrder)
	}
	return v
}

// ParseValues decodes a Query from URL query parameters. Missing or invalid
// page values fall back to 1, so filter state restored from an address
// string always starts at the first page.
func ParseValues(v url.Values) Query {
	q := Query{
		Search:    v.Get("search"),
		SortField: v.Get("sort_field"),
		SortOrder: v.Get("sort_order"),
	}
	if page, err := strconv.Atoi(v.Get("page")); err == nil {
		q.Page = page
	}
	return q.Normalize()
}
