package catalog

import (
	"time"

	"github.com/simp-lee/stockroom/internal/table"
)

// usDate renders dates the way the purchase list prints them.
func usDate(v any) string {
	t, ok := v.(time.Time)
	if !ok || t.IsZero() {
		return ""
	}
	return t.Format("1/2/2006")
}

var (
	ProductSchema = table.NewSchema("product",
		table.Field{Name: "id", Kind: table.KindNumber},
		table.Field{Name: "name", Kind: table.KindString, Searchable: true},
		table.Field{Name: "brand", Kind: table.KindString, Searchable: true},
		table.Field{Name: "barcode", Kind: table.KindString, Searchable: true},
		table.Field{Name: "qty", Kind: table.KindNumber},
		table.Field{Name: "cost_price", Kind: table.KindNumber},
		table.Field{Name: "price", Kind: table.KindNumber},
		table.Field{Name: "expire_date", Kind: table.KindTime},
		table.Field{Name: "created_at", Kind: table.KindTime},
	)

	CustomerSchema = table.NewSchema("customer",
		table.Field{Name: "id", Kind: table.KindNumber},
		table.Field{Name: "name", Kind: table.KindString, Searchable: true},
		table.Field{Name: "phone", Kind: table.KindString, Searchable: true},
		table.Field{Name: "address", Kind: table.KindString, Searchable: true},
		table.Field{Name: "created_at", Kind: table.KindTime},
	)

	SupplierSchema = table.NewSchema("supplier",
		table.Field{Name: "id", Kind: table.KindNumber},
		table.Field{Name: "name", Kind: table.KindString, Searchable: true},
		table.Field{Name: "phone_first", Kind: table.KindString, Searchable: true},
		table.Field{Name: "phone_second", Kind: table.KindString, Searchable: true},
		table.Field{Name: "address", Kind: table.KindString, Searchable: true},
		table.Field{Name: "status", Kind: table.KindString},
		table.Field{Name: "created_at", Kind: table.KindTime},
	)

	// StaffSchema keeps status as text ("active" or "inactive") so the
	// status filter and sort read the way the list shows them.
	StaffSchema = table.NewSchema("staff",
		table.Field{Name: "id", Kind: table.KindNumber},
		table.Field{Name: "staff_id", Kind: table.KindString, Searchable: true},
		table.Field{Name: "name", Kind: table.KindString, Searchable: true},
		table.Field{Name: "phone", Kind: table.KindString, Searchable: true},
		table.Field{Name: "position", Kind: table.KindString},
		table.Field{Name: "status", Kind: table.KindString},
		table.Field{Name: "created_at", Kind: table.KindTime},
	)

	UserSchema = table.NewSchema("user",
		table.Field{Name: "id", Kind: table.KindNumber},
		table.Field{Name: "name", Kind: table.KindString, Searchable: true},
		table.Field{Name: "username", Kind: table.KindString, Searchable: true},
		table.Field{Name: "email", Kind: table.KindString, Searchable: true},
		table.Field{Name: "phone", Kind: table.KindString, Searchable: true},
		table.Field{Name: "role", Kind: table.KindString},
		table.Field{Name: "status", Kind: table.KindString},
		table.Field{Name: "created_at", Kind: table.KindTime},
	)

	// PurchaseSchema searches the supplier name, the printed date and the id.
	PurchaseSchema = table.NewSchema("purchase",
		table.Field{Name: "id", Kind: table.KindNumber, Searchable: true},
		table.Field{Name: "supplier", Kind: table.KindString, Path: "supplier.name", Searchable: true},
		table.Field{Name: "date", Kind: table.KindTime, Path: "created_at", Searchable: true, Format: usDate},
		table.Field{Name: "total", Kind: table.KindNumber},
		table.Field{Name: "paid", Kind: table.KindNumber},
		table.Field{Name: "balance", Kind: table.KindNumber},
		table.Field{Name: "qty", Kind: table.KindNumber, Path: "items.#.qty"},
		table.Field{Name: "created_at", Kind: table.KindTime},
	)

	SaleSchema = table.NewSchema("sale",
		table.Field{Name: "id", Kind: table.KindNumber, Searchable: true},
		table.Field{Name: "customer", Kind: table.KindString, Path: "customer.name", Searchable: true},
		table.Field{Name: "product", Kind: table.KindString, Path: "items.0.product.name", Searchable: true},
		table.Field{Name: "sale_date", Kind: table.KindTime, Searchable: true, Format: usDate},
		table.Field{Name: "items", Kind: table.KindNumber, Path: "items.#.qty"},
		table.Field{Name: "total", Kind: table.KindNumber},
		table.Field{Name: "created_at", Kind: table.KindTime},
	)
)
