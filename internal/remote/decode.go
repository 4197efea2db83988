package remote

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/simp-lee/stockroom/internal/catalog"
	"github.com/simp-lee/stockroom/internal/table"
)

// Items returns the collection array inside body. It accepts a bare array,
// {"data": [...]}, {"data": {"items": [...]}} and the per-resource envelope
// key, at the top level or under "data". Anything else is an empty
// collection.
func Items(body []byte, envelope string) []gjson.Result {
	root := gjson.ParseBytes(body)
	if root.IsArray() {
		return root.Array()
	}

	paths := []string{"data", "data.items", "items"}
	if envelope != "" {
		paths = append(paths, envelope, "data."+envelope)
	}
	for _, p := range paths {
		if v := root.Get(p); v.IsArray() {
			return v.Array()
		}
	}
	return nil
}

// Decode reads every item through the resource schema. Each field is taken
// from its source path; numeric paths that select several values, such as
// "items.#.qty", are summed.
func Decode(res catalog.Resource, items []gjson.Result) []table.Record {
	fields := res.Schema.Fields()
	out := make([]table.Record, 0, len(items))
	for _, item := range items {
		raw := make(map[string]any, len(fields))
		for _, f := range fields {
			raw[f.Name] = value(item.Get(f.SourcePath()), f.Kind)
		}
		out = append(out, res.Decode(raw))
	}
	return out
}

func value(v gjson.Result, kind table.Kind) any {
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}
	if v.IsArray() {
		elems := v.Array()
		if kind == table.KindNumber {
			sum := 0.0
			for _, e := range elems {
				sum += table.ToNumber(e.Value())
			}
			return sum
		}
		if len(elems) == 0 {
			return nil
		}
		return value(elems[0], kind)
	}
	if v.IsObject() {
		return v.Raw
	}
	return v.Value()
}

// ReadFile decodes res from a local JSON file in any of the shapes Items
// accepts.
func ReadFile(path string, res catalog.Resource) ([]table.Record, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("remote: read %s: %w", path, err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("remote: %s is not valid JSON", path)
	}
	return Decode(res, Items(body, res.Envelope)), nil
}
