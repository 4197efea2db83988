// Package catalog declares the record types the list views run over: their
// table schemas, the exact-match filters each accepts, and the converters
// from stored rows and upstream JSON into table records and analytics
// inputs.
package catalog

import (
	"slices"
	"sort"
	"strings"

	"github.com/simp-lee/stockroom/internal/table"
)

// Resource describes one listable collection.
type Resource struct {
	// Name is the collection name used in URLs and on the command line.
	Name   string
	Schema *table.Schema
	// Filters lists the fields accepted as exact-match query filters.
	Filters []string
	// Envelope names the key upstream backends wrap this collection in,
	// besides the generic "data".
	Envelope string
	// Fixup adjusts a record decoded from upstream JSON after schema
	// coercion. Nil means no adjustment.
	Fixup func(table.Record)
}

// Decode coerces raw values through the schema and applies Fixup.
func (r Resource) Decode(raw map[string]any) table.Record {
	rec := r.Schema.Normalize(raw)
	if r.Fixup != nil {
		r.Fixup(rec)
	}
	return rec
}

// HasFilter reports whether name is an accepted filter.
func (r Resource) HasFilter(name string) bool {
	return slices.Contains(r.Filters, name)
}

var resources = map[string]Resource{
	"products":  {Name: "products", Schema: ProductSchema, Envelope: "product"},
	"customers": {Name: "customers", Schema: CustomerSchema, Envelope: "customer"},
	"suppliers": {Name: "suppliers", Schema: SupplierSchema, Filters: []string{"status"}, Envelope: "supplier", Fixup: fixSupplier},
	"staff":     {Name: "staff", Schema: StaffSchema, Filters: []string{"status"}, Envelope: "staff", Fixup: fixStaff},
	"users":     {Name: "users", Schema: UserSchema, Filters: []string{"role", "status"}, Envelope: "user"},
	"purchases": {Name: "purchases", Schema: PurchaseSchema, Envelope: "purchase"},
	"sales":     {Name: "sales", Schema: SaleSchema, Envelope: "sale"},
}

// Lookup returns the resource registered under name, ignoring case.
func Lookup(name string) (Resource, bool) {
	r, ok := resources[strings.ToLower(strings.TrimSpace(name))]
	return r, ok
}

// Names returns the registered resource names in order.
func Names() []string {
	names := make([]string, 0, len(resources))
	for name := range resources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func fixSupplier(r table.Record) {
	if s, _ := r["status"].(string); strings.TrimSpace(s) == "" {
		r["status"] = "active"
	}
}

func fixStaff(r table.Record) {
	r["status"] = StaffStatusText(r["status"])
}
