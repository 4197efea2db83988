package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/simp-lee/stockroom/internal/analytics"
	"github.com/simp-lee/stockroom/internal/domain"
	"github.com/simp-lee/stockroom/internal/table"
)

// AnalyticsProducts converts stored products for the classifiers.
func AnalyticsProducts(rows []domain.Product) []analytics.Product {
	out := make([]analytics.Product, len(rows))
	for i, p := range rows {
		out[i] = analytics.Product{
			ID:         p.ID,
			Name:       p.Name,
			Brand:      p.Brand,
			Barcode:    p.Barcode,
			Qty:        p.Qty,
			ExpireDate: p.ExpireDate,
		}
	}
	return out
}

// AnalyticsSales converts stored sales. Item product names are read from
// the preloaded Product, when present.
func AnalyticsSales(rows []domain.Sale) []analytics.Sale {
	out := make([]analytics.Sale, len(rows))
	for i, s := range rows {
		lines := make([]analytics.SaleLine, len(s.Items))
		for j, item := range s.Items {
			line := analytics.SaleLine{ProductID: item.ProductID, Qty: item.Qty, Total: item.Total}
			if item.Product != nil {
				line.ProductName = item.Product.Name
			}
			lines[j] = line
		}
		out[i] = analytics.Sale{
			ID:        s.ID,
			Total:     s.Total,
			SaleDate:  s.SaleDate,
			CreatedAt: s.CreatedAt,
			Items:     lines,
		}
	}
	return out
}

// AnalyticsPurchases converts stored purchases.
func AnalyticsPurchases(rows []domain.Purchase) []analytics.Purchase {
	out := make([]analytics.Purchase, len(rows))
	for i, p := range rows {
		out[i] = analytics.Purchase{ID: p.ID, Total: p.Total, CreatedAt: p.CreatedAt}
	}
	return out
}

// ProductFromRecord reads a product record decoded with ProductSchema.
func ProductFromRecord(r table.Record) analytics.Product {
	p := analytics.Product{
		ID:      recordID(r),
		Name:    table.ToString(r.Get("name")),
		Brand:   table.ToString(r.Get("brand")),
		Barcode: table.ToString(r.Get("barcode")),
		Qty:     int(table.ToNumber(r.Get("qty"))),
	}
	if t, ok := r.Get("expire_date").(time.Time); ok && !t.IsZero() {
		p.ExpireDate = &t
	}
	return p
}

// SaleFromRecord reads a sale record decoded with SaleSchema. The record
// carries the first product name and the summed quantity, which become a
// single line.
func SaleFromRecord(r table.Record) analytics.Sale {
	s := analytics.Sale{
		ID:    recordID(r),
		Total: money(r.Get("total")),
	}
	s.SaleDate, _ = r.Get("sale_date").(time.Time)
	s.CreatedAt, _ = r.Get("created_at").(time.Time)
	if name := table.ToString(r.Get("product")); name != "" || table.ToNumber(r.Get("items")) > 0 {
		s.Items = []analytics.SaleLine{{
			ProductName: name,
			Qty:         int(table.ToNumber(r.Get("items"))),
			Total:       s.Total,
		}}
	}
	return s
}

// PurchaseFromRecord reads a purchase record decoded with PurchaseSchema.
func PurchaseFromRecord(r table.Record) analytics.Purchase {
	p := analytics.Purchase{
		ID:    recordID(r),
		Total: money(r.Get("total")),
	}
	p.CreatedAt, _ = r.Get("created_at").(time.Time)
	return p
}

func recordID(r table.Record) uint {
	n := table.ToNumber(r.Get("id"))
	if n <= 0 {
		return 0
	}
	return uint(n)
}

func money(v any) decimal.Decimal {
	return decimal.NewFromFloat(table.ToNumber(v)).Round(2)
}
