package pkg

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/stockroom/internal/domain"
	"github.com/simp-lee/stockroom/internal/table"
)

// QueryDefaults bounds list query parameters.
type QueryDefaults struct {
	PageSize    int
	MaxPageSize int
}

// DefaultQueryDefaults returns page size 10, capped at 100.
func DefaultQueryDefaults() QueryDefaults {
	return QueryDefaults{PageSize: table.DefaultPageSize, MaxPageSize: 100}
}

// ParseTableQuery reads search, search_field, sort, order, page and
// page_size from the query string. Each name in filters becomes an exact
// Where filter when present and not "all".
//
// A missing or malformed page reads as 1. page_size above the maximum is
// capped. A malformed page_size or order is a validation error.
func ParseTableQuery(c *gin.Context, defaults QueryDefaults, filters ...string) (table.Query, error) {
	if defaults.PageSize <= 0 {
		defaults.PageSize = table.DefaultPageSize
	}

	q := table.NewQuery()
	q.PageSize = defaults.PageSize

	if field := strings.TrimSpace(c.Query("search_field")); field != "" && !strings.EqualFold(field, string(table.ScopeAll)) {
		q = q.WithSearch(c.Query("search"), table.ScopeField, field)
	} else {
		q = q.WithSearch(c.Query("search"), table.ScopeAll, "")
	}

	dir, err := table.ParseDirection(c.Query("order"))
	if err != nil {
		return table.Query{}, QueryError(err)
	}
	q = q.WithSort(strings.TrimSpace(c.Query("sort")), dir)

	for _, name := range filters {
		v := strings.TrimSpace(c.Query(name))
		if v == "" || strings.EqualFold(v, "all") {
			continue
		}
		q = q.WithWhere(name, v)
	}

	if raw := strings.TrimSpace(c.Query("page_size")); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return table.Query{}, domain.NewAppError(domain.CodeValidation, "page_size must be a positive integer", err)
		}
		if defaults.MaxPageSize > 0 && size > defaults.MaxPageSize {
			size = defaults.MaxPageSize
		}
		q.PageSize = size
	}

	if page, err := strconv.Atoi(strings.TrimSpace(c.Query("page"))); err == nil {
		q = q.WithPage(page)
	}

	return q, nil
}

// QueryError converts a table query error to a validation AppError. Other
// errors become internal errors.
func QueryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, table.ErrInvalidQuery) {
		return domain.NewAppError(domain.CodeValidation, err.Error(), err)
	}
	return domain.NewAppError(domain.CodeInternal, "query failed", err)
}

// RunList converts rows to records, runs q over them and maps the page back
// to the typed rows.
func RunList[T any](engine *table.Engine, rows []T, schema *table.Schema, toRecord func(T) table.Record, q table.Query) (*domain.PageResult[T], error) {
	records := make([]table.Record, len(rows))
	for i, row := range rows {
		records[i] = table.TagRow(toRecord(row), i)
	}

	page, err := engine.Run(records, q, schema)
	if err != nil {
		return nil, QueryError(err)
	}

	items := make([]T, 0, len(page.Items))
	for _, r := range page.Items {
		if i, ok := table.RowOf(r); ok {
			items = append(items, rows[i])
		}
	}

	return &domain.PageResult[T]{
		Items:      items,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}, nil
}
