package shared

import (
	"net/http"
	"strconv"
)

// Page is the envelope every list endpoint returns. Count is the total number
// of matching rows ignoring pagination; CurrentPage is 1-based.
type Page[T any] struct {
	Values      []T `json:"values"`
	Count       int `json:"count"`
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
}

// NewPage computes the pagination metadata for a result window.
// totalPages is ceil(count/limit); a zero count legitimately yields zero pages.
// An empty window always serializes as values: [], never null.
func NewPage[T any](values []T, count, offset, limit int) Page[T] {
	if values == nil {
		values = []T{}
	}
	totalPages := count / limit
	if count%limit != 0 {
		totalPages++
	}
	return Page[T]{
		Values:      values,
		Count:       count,
		CurrentPage: offset/limit + 1,
		TotalPages:  totalPages,
	}
}

// ListParams is the filter/window triple shared by all list endpoints.
type ListParams struct {
	Name   string
	Offset int
	Limit  int
}

// DefaultLimit mirrors the API's documented default page size.
const DefaultLimit = 1000

// ParseListParams reads name/offset/limit query parameters, applying the
// default window and clamping limit to maxLimit. A maxLimit of zero leaves
// the caller-supplied limit unchecked.
func ParseListParams(r *http.Request, maxLimit int) ListParams {
	p := ListParams{Name: r.URL.Query().Get("name"), Limit: DefaultLimit}
	if v := r.URL.Query().Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			p.Offset = parsed
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			p.Limit = parsed
		}
	}
	if maxLimit > 0 && p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}
