package catalog

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/simp-lee/stockroom/internal/domain"
	"github.com/simp-lee/stockroom/internal/table"
)

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		r, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) failed", name)
		}
		if r.Schema == nil || len(r.Schema.SearchFields()) == 0 {
			t.Errorf("%s: expected a schema with search fields", name)
		}
		for _, f := range r.Filters {
			if _, ok := r.Schema.Field(f); !ok {
				t.Errorf("%s: filter %q is not a schema field", name, f)
			}
		}
	}

	if _, ok := Lookup(" Products "); !ok {
		t.Error("expected lookup to ignore case and spaces")
	}
	if _, ok := Lookup("invoices"); ok {
		t.Error("expected unknown resource to fail")
	}
}

func TestDecodeFixups(t *testing.T) {
	suppliers, _ := Lookup("suppliers")
	tests := []struct {
		raw  any
		want string
	}{
		{nil, "active"},
		{"", "active"},
		{"blocked", "blocked"},
	}
	for _, tt := range tests {
		r := suppliers.Decode(map[string]any{"name": "Acme", "status": tt.raw})
		if got := r["status"]; got != tt.want {
			t.Errorf("supplier status %v: got %v, want %q", tt.raw, got, tt.want)
		}
	}

	staff, _ := Lookup("staff")
	for raw, want := range map[any]string{1.0: "active", 0.0: "inactive", "active": "active", nil: "inactive"} {
		r := staff.Decode(map[string]any{"status": raw})
		if got := r["status"]; got != want {
			t.Errorf("staff status %v: got %v, want %q", raw, got, want)
		}
	}
}

func TestPurchaseSearchByPrintedDate(t *testing.T) {
	created := time.Date(2026, 3, 9, 14, 0, 0, 0, time.UTC)
	records := []table.Record{
		PurchaseRecord(domain.Purchase{BaseModel: domain.BaseModel{ID: 1, CreatedAt: created}, Supplier: &domain.Supplier{Name: "Acme"}}),
		PurchaseRecord(domain.Purchase{BaseModel: domain.BaseModel{ID: 2, CreatedAt: created.AddDate(0, 1, 0)}}),
	}

	got, err := table.Search(records, "3/9/2026", table.ScopeField, "date", PurchaseSchema)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0]["id"] != 1.0 {
		t.Fatalf("expected purchase 1, got %v", got)
	}
	if got[0]["supplier"] != "Acme" {
		t.Errorf("expected supplier name, got %v", got[0]["supplier"])
	}
	if records[1]["supplier"] != nil {
		t.Errorf("expected nil supplier, got %v", records[1]["supplier"])
	}
}

func TestRecords(t *testing.T) {
	expire := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	p := ProductRecord(domain.Product{
		BaseModel:  domain.BaseModel{ID: 3},
		Name:       "Paracetamol",
		Qty:        5,
		Price:      decimal.RequireFromString("2.50"),
		ExpireDate: &expire,
	})
	if p["id"] != 3.0 || p["qty"] != 5.0 || p["price"] != 2.5 {
		t.Errorf("unexpected product record %v", p)
	}
	if p["expire_date"] != expire {
		t.Errorf("expected expire_date %v, got %v", expire, p["expire_date"])
	}
	if none := ProductRecord(domain.Product{Name: "Gauze"}); none["expire_date"] != nil {
		t.Errorf("expected nil expire_date, got %v", none["expire_date"])
	}

	if s := SupplierRecord(domain.Supplier{Name: "Acme"}); s["status"] != "active" {
		t.Errorf("expected default supplier status, got %v", s["status"])
	}
	if s := StaffRecord(domain.Staff{Status: domain.StaffInactive}); s["status"] != "inactive" {
		t.Errorf("expected inactive staff, got %v", s["status"])
	}

	sale := SaleRecord(domain.Sale{
		BaseModel: domain.BaseModel{ID: 9},
		Customer:  &domain.Customer{Name: "Dara"},
		Total:     decimal.NewFromInt(12),
		Items: []domain.SaleItem{
			{Qty: 2, Product: &domain.Product{Name: "Paracetamol"}},
			{Qty: 3},
		},
	})
	if sale["customer"] != "Dara" || sale["product"] != "Paracetamol" || sale["items"] != 5.0 {
		t.Errorf("unexpected sale record %v", sale)
	}
}

func TestFromRecord(t *testing.T) {
	products, _ := Lookup("products")
	p := ProductFromRecord(products.Decode(map[string]any{
		"id": 4.0, "name": "Aspirin", "qty": "7", "expire_date": "2026-05-01",
	}))
	if p.ID != 4 || p.Name != "Aspirin" || p.Qty != 7 {
		t.Errorf("unexpected product %+v", p)
	}
	if p.ExpireDate == nil || p.ExpireDate.Format(time.DateOnly) != "2026-05-01" {
		t.Errorf("unexpected expire date %v", p.ExpireDate)
	}
	if q := ProductFromRecord(products.Decode(map[string]any{"name": "Gauze"})); q.ExpireDate != nil {
		t.Errorf("expected no expire date, got %v", q.ExpireDate)
	}

	sales, _ := Lookup("sales")
	s := SaleFromRecord(sales.Decode(map[string]any{
		"id": 2.0, "total": "19.99", "product": "Aspirin", "items": 3.0, "created_at": "2026-03-01T10:00:00Z",
	}))
	if s.ID != 2 || !s.Total.Equal(decimal.RequireFromString("19.99")) {
		t.Errorf("unexpected sale %+v", s)
	}
	if len(s.Items) != 1 || s.Items[0].ProductName != "Aspirin" || s.Items[0].Qty != 3 {
		t.Errorf("unexpected sale lines %+v", s.Items)
	}
	if s.When().IsZero() {
		t.Error("expected created_at to be used as the sale time")
	}

	purchases, _ := Lookup("purchases")
	pu := PurchaseFromRecord(purchases.Decode(map[string]any{"id": -1.0, "total": 10.0}))
	if pu.ID != 0 || !pu.Total.Equal(decimal.NewFromInt(10)) {
		t.Errorf("unexpected purchase %+v", pu)
	}
}

func TestAnalyticsSales(t *testing.T) {
	sales := AnalyticsSales([]domain.Sale{{
		BaseModel: domain.BaseModel{ID: 1},
		Total:     decimal.NewFromInt(6),
		Items: []domain.SaleItem{
			{ProductID: 3, Qty: 2, Total: decimal.NewFromInt(6), Product: &domain.Product{Name: "Aspirin"}},
			{ProductID: 4, Qty: 1},
		},
	}})
	if len(sales) != 1 || len(sales[0].Items) != 2 {
		t.Fatalf("unexpected sales %+v", sales)
	}
	if sales[0].Items[0].ProductName != "Aspirin" || sales[0].Items[1].ProductName != "" {
		t.Errorf("unexpected product names %+v", sales[0].Items)
	}
}
