package table

import (
	"errors"
	"fmt"
	"maps"
	"strings"
)

// DefaultPageSize is the page size used by every list view.
const DefaultPageSize = 10

// Scope selects which fields a search term is matched against.
type Scope string

const (
	ScopeAll   Scope = "all"
	ScopeField Scope = "field"
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection accepts "asc" or "desc" in any case. Empty means Asc.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	default:
		return "", &InvalidQueryError{Param: "direction", Value: s, Reason: "must be asc or desc"}
	}
}

// ErrInvalidQuery is matched by every *InvalidQueryError via errors.Is.
var ErrInvalidQuery = errors.New("invalid query")

// InvalidQueryError reports a structurally invalid query parameter.
type InvalidQueryError struct {
	Param  string
	Value  string
	Reason string
}

func (e *InvalidQueryError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid query: %s %s", e.Param, e.Reason)
	}
	return fmt.Sprintf("invalid query: %s %q %s", e.Param, e.Value, e.Reason)
}

// Is reports whether target is ErrInvalidQuery.
func (e *InvalidQueryError) Is(target error) bool {
	return target == ErrInvalidQuery
}

// Query is one filter, sort and page request.
type Query struct {
	// Search is trimmed and matched case-insensitively. Empty disables search.
	Search string
	// Scope defaults to ScopeAll. ScopeField matches Field only.
	Scope Scope
	Field string
	// SortKey empty keeps the snapshot order.
	SortKey   string
	Direction Direction
	// Page values below 1 read as 1; values past the last page read as the
	// last page.
	Page     int
	PageSize int
	// Where holds exact, case-insensitive field filters applied before search.
	Where map[string]string
}

// NewQuery returns a query for the first page with DefaultPageSize.
func NewQuery() Query {
	return Query{Scope: ScopeAll, Direction: Asc, Page: 1, PageSize: DefaultPageSize}
}

// WithSearch returns a copy searching term within scope, reset to page 1.
func (q Query) WithSearch(term string, scope Scope, field string) Query {
	q.Search = term
	q.Scope = scope
	q.Field = field
	q.Page = 1
	return q
}

// WithSort returns a copy sorted by key, reset to page 1.
func (q Query) WithSort(key string, dir Direction) Query {
	q.SortKey = key
	q.Direction = dir
	q.Page = 1
	return q
}

// WithWhere returns a copy with an added exact filter, reset to page 1.
func (q Query) WithWhere(field, value string) Query {
	where := make(map[string]string, len(q.Where)+1)
	maps.Copy(where, q.Where)
	where[field] = value
	q.Where = where
	q.Page = 1
	return q
}

// WithPage returns a copy requesting page.
func (q Query) WithPage(page int) Query {
	q.Page = page
	return q
}

// Validate checks the query against schema.
func (q Query) Validate(schema *Schema) error {
	if schema == nil {
		return &InvalidQueryError{Param: "schema", Reason: "is required"}
	}
	if q.PageSize <= 0 {
		return &InvalidQueryError{Param: "page_size", Value: fmt.Sprint(q.PageSize), Reason: "must be positive"}
	}
	if err := validateScope(q.Scope, q.Field, schema); err != nil {
		return err
	}
	switch q.Direction {
	case "", Asc, Desc:
	default:
		return &InvalidQueryError{Param: "direction", Value: string(q.Direction), Reason: "must be asc or desc"}
	}
	if q.SortKey != "" {
		if _, ok := schema.Field(q.SortKey); !ok {
			return &InvalidQueryError{Param: "sort", Value: q.SortKey, Reason: "is not a field of " + schema.Name()}
		}
	}
	for key := range q.Where {
		if _, ok := schema.Field(key); !ok {
			return &InvalidQueryError{Param: "filter", Value: key, Reason: "is not a field of " + schema.Name()}
		}
	}
	return nil
}

func validateScope(scope Scope, field string, schema *Schema) error {
	switch scope {
	case "", ScopeAll:
		return nil
	case ScopeField:
		if _, ok := schema.Field(field); !ok {
			return &InvalidQueryError{Param: "search_field", Value: field, Reason: "is not a field of " + schema.Name()}
		}
		return nil
	default:
		return &InvalidQueryError{Param: "scope", Value: string(scope), Reason: "must be all or field"}
	}
}
