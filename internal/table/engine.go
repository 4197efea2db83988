package table

import (
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ResultPage is one page of a filtered, sorted snapshot.
type ResultPage struct {
	Items      []Record `json:"items"`
	TotalCount int      `json:"total_count"`
	TotalPages int      `json:"total_pages"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
}

// Engine runs queries over record snapshots. It holds no per-query state
// and is safe for concurrent use.
type Engine struct {
	lang      language.Tag
	collators sync.Pool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLanguage sets the collation language used for string sorting.
func WithLanguage(tag language.Tag) Option {
	return func(e *Engine) {
		e.lang = tag
	}
}

// NewEngine creates an Engine. The default collation language is
// language.Und (root collation order).
func NewEngine(opts ...Option) *Engine {
	e := &Engine{lang: language.Und}
	for _, opt := range opts {
		opt(e)
	}
	// collate.Collator keeps internal buffers, so each sort borrows its own.
	e.collators.New = func() any {
		return collate.New(e.lang)
	}
	return e
}

// Language returns the collation language.
func (e *Engine) Language() language.Tag { return e.lang }

// Run applies Where filters, search, sort and pagination, in that order.
func (e *Engine) Run(records []Record, q Query, schema *Schema) (*ResultPage, error) {
	if err := q.Validate(schema); err != nil {
		return nil, err
	}

	filtered, err := Filter(records, q.Where, schema)
	if err != nil {
		return nil, err
	}
	filtered, err = Search(filtered, q.Search, q.Scope, q.Field, schema)
	if err != nil {
		return nil, err
	}
	sorted, err := e.Sort(filtered, q.SortKey, q.Direction, schema)
	if err != nil {
		return nil, err
	}
	return Paginate(sorted, q.Page, q.PageSize)
}

// Filter keeps records whose field text equals the wanted value, ignoring
// case, for every entry of where. An empty where returns records unchanged.
func Filter(records []Record, where map[string]string, schema *Schema) ([]Record, error) {
	if len(where) == 0 {
		return records, nil
	}
	if schema == nil {
		return nil, &InvalidQueryError{Param: "schema", Reason: "is required"}
	}
	for key := range where {
		if _, ok := schema.Field(key); !ok {
			return nil, &InvalidQueryError{Param: "filter", Value: key, Reason: "is not a field of " + schema.Name()}
		}
	}

	out := make([]Record, 0, len(records))
	for _, r := range records {
		keep := true
		for key, want := range where {
			if !strings.EqualFold(Text(r.Get(key)), strings.TrimSpace(want)) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, r)
		}
	}
	return out, nil
}

// Search returns the records whose scope-selected fields contain term,
// case-insensitively, in their original order. A blank term returns
// records unchanged.
func Search(records []Record, term string, scope Scope, field string, schema *Schema) ([]Record, error) {
	if schema == nil {
		return nil, &InvalidQueryError{Param: "schema", Reason: "is required"}
	}
	if err := validateScope(scope, field, schema); err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return records, nil
	}

	var fields []Field
	if scope == ScopeField {
		f, _ := schema.Field(field)
		fields = []Field{f}
	} else {
		fields = schema.SearchFields()
	}

	out := make([]Record, 0, len(records))
	for _, r := range records {
		for _, f := range fields {
			if strings.Contains(f.text(r.Get(f.Name)), needle) {
				out = append(out, r)
				break
			}
		}
	}
	return out, nil
}

// Sort returns a stably sorted copy of records ordered by key. Desc is the
// exact reverse of Asc. An empty key returns an unsorted copy.
func (e *Engine) Sort(records []Record, key string, dir Direction, schema *Schema) ([]Record, error) {
	if schema == nil {
		return nil, &InvalidQueryError{Param: "schema", Reason: "is required"}
	}
	switch dir {
	case "", Asc, Desc:
	default:
		return nil, &InvalidQueryError{Param: "direction", Value: string(dir), Reason: "must be asc or desc"}
	}

	out := slices.Clone(records)
	if key == "" {
		return out, nil
	}
	f, ok := schema.Field(key)
	if !ok {
		return nil, &InvalidQueryError{Param: "sort", Value: key, Reason: "is not a field of " + schema.Name()}
	}

	col := e.collators.Get().(*collate.Collator)
	defer e.collators.Put(col)

	slices.SortStableFunc(out, compareFunc(f, out, col))
	if dir == Desc {
		slices.Reverse(out)
	}
	return out, nil
}

// Paginate slices one page out of records. page is clamped into
// [1, max(1, totalPages)].
func Paginate(records []Record, page, pageSize int) (*ResultPage, error) {
	if pageSize <= 0 {
		return nil, &InvalidQueryError{Param: "page_size", Value: Text(float64(pageSize)), Reason: "must be positive"}
	}

	total := len(records)
	totalPages := (total + pageSize - 1) / pageSize
	page = clampPage(page, totalPages)

	start := (page - 1) * pageSize
	end := min(start+pageSize, total)
	items := make([]Record, 0, end-start)
	items = append(items, records[start:end]...)

	return &ResultPage{
		Items:      items,
		TotalCount: total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

func clampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
