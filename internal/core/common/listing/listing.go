package listing

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params carries the shared list contract: pagination, free-text search and
// sorting. Every admin list endpoint parses into this shape.
type Params struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
}

// ParseQuery builds Params from an HTTP query string, clamping out-of-range
// values back to defaults instead of failing.
func ParseQuery(q url.Values) Params {
	p := Params{
		Page:      DefaultPage,
		Limit:     DefaultLimit,
		Search:    strings.TrimSpace(q.Get("search")),
		SortBy:    strings.TrimSpace(q.Get("sortBy")),
		SortOrder: strings.ToLower(strings.TrimSpace(q.Get("sortOrder"))),
	}

	if v := q.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.Page = n
		}
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= MaxLimit {
			p.Limit = n
		}
	}
	if p.SortOrder != "asc" && p.SortOrder != "desc" {
		p.SortOrder = "desc"
	}
	return p
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// OrderClause returns a SQL ORDER BY fragment, restricted to the given column
// allowlist. Unknown sort fields fall back to the first allowed column.
func (p Params) OrderClause(allowed map[string]string, fallback string) string {
	column, ok := allowed[p.SortBy]
	if !ok {
		column = fallback
	}
	if p.SortOrder == "asc" {
		return column + " ASC"
	}
	return column + " DESC"
}

// Result is the uniform list payload shape.
type Result[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

func NewResult[T any](items []T, total int64, p Params) Result[T] {
	if items == nil {
		items = []T{}
	}
	limit := p.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	return Result[T]{
		Items:      items,
		Total:      total,
		Page:       p.Page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
