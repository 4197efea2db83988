// Package table implements an in-memory filter, sort and paginate pipeline
// over snapshots of homogeneous records.
//
// Records enter the package through a Schema, which coerces every declared
// field to its scalar kind. Nothing in this package mutates a record or
// returns an error for dirty data: missing or malformed values degrade to ""
// for text, 0 for numbers and the zero time for dates. Only structurally
// invalid queries are reported, as *InvalidQueryError.
package table

import (
	"fmt"
	"strings"
	"time"
)

// Record is one row of a snapshot: field name to scalar value.
// Values are string, float64, time.Time or nil.
type Record map[string]any

// Get returns the value stored under name, or nil.
func (r Record) Get(name string) any {
	if r == nil {
		return nil
	}
	return r[name]
}

// rowKey holds a record's position in its source collection. It is never a
// schema field, so searches and sorts ignore it.
const rowKey = "\x00row"

// TagRow stores i as r's source position and returns r.
func TagRow(r Record, i int) Record {
	r[rowKey] = i
	return r
}

// RowOf returns the source position stored by TagRow.
func RowOf(r Record) (int, bool) {
	i, ok := r[rowKey].(int)
	return i, ok
}

// Kind is the scalar kind a field is coerced to at the boundary.
type Kind int

const (
	// KindAuto keeps the value's own shape. Sorts pick one comparison for
	// the whole column from the values present.
	KindAuto Kind = iota
	KindString
	KindNumber
	KindTime
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindTime:
		return "time"
	default:
		return "auto"
	}
}

// Field describes one column of a record type.
type Field struct {
	// Name is the key used in Record, queries and sort keys.
	Name string
	Kind Kind
	// Path is the dotted source path used when decoding upstream JSON
	// (for example "Supplier.name"). Empty means Name.
	Path string
	// Searchable marks the field as part of the ALL search set. Any field
	// can still be searched on its own with ScopeField.
	Searchable bool
	// Format renders the value as search text. Nil uses Text.
	Format func(v any) string
}

// SourcePath returns Path, or Name when Path is empty.
func (f Field) SourcePath() string {
	if f.Path != "" {
		return f.Path
	}
	return f.Name
}

// coerce converts a raw value into the field's kind.
func (f Field) coerce(v any) any {
	switch f.Kind {
	case KindString:
		if v == nil {
			return nil
		}
		return ToString(v)
	case KindNumber:
		return ToNumber(v)
	case KindTime:
		t, ok := ToTime(v)
		if !ok {
			return nil
		}
		return t
	default:
		return normalizeAuto(v)
	}
}

// text renders the value as lower-cased search text.
func (f Field) text(v any) string {
	if v == nil {
		return ""
	}
	if f.Format != nil {
		return strings.ToLower(f.Format(v))
	}
	return strings.ToLower(Text(v))
}

// Text renders a coerced value for display and matching. nil is "",
// numbers use the shortest decimal form and times use 2006-01-02.
func Text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case time.Time:
		if x.IsZero() {
			return ""
		}
		return x.Format(time.DateOnly)
	default:
		return ToString(v)
	}
}

// Schema is the explicit, ordered field list of one record type.
type Schema struct {
	name   string
	fields []Field
	index  map[string]int
}

// NewSchema builds a Schema. It panics on an empty or duplicate field name,
// since schemas are declared once at package level.
func NewSchema(name string, fields ...Field) *Schema {
	s := &Schema{
		name:   name,
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if strings.TrimSpace(f.Name) == "" {
			panic(fmt.Sprintf("table.NewSchema(%s): field name must not be empty", name))
		}
		if _, dup := s.index[f.Name]; dup {
			panic(fmt.Sprintf("table.NewSchema(%s): duplicate field %q", name, f.Name))
		}
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s
}

// Name returns the record type name.
func (s *Schema) Name() string { return s.name }

// Field looks up a field by name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Fields returns a copy of the declared fields in order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// SearchFields returns the fields matched by an ALL-scope search.
func (s *Schema) SearchFields() []Field {
	out := make([]Field, 0, len(s.fields))
	for _, f := range s.fields {
		if f.Searchable {
			out = append(out, f)
		}
	}
	return out
}

// Normalize builds a Record from raw values keyed by field name, coercing
// each declared field. Keys not declared in the schema are dropped.
func (s *Schema) Normalize(raw map[string]any) Record {
	r := make(Record, len(s.fields))
	for _, f := range s.fields {
		r[f.Name] = f.coerce(raw[f.Name])
	}
	return r
}

// NormalizeAll applies Normalize to every raw row, preserving order.
func (s *Schema) NormalizeAll(rows []map[string]any) []Record {
	out := make([]Record, 0, len(rows))
	for _, raw := range rows {
		out = append(out, s.Normalize(raw))
	}
	return out
}
