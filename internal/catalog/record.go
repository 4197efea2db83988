package catalog

import (
	"strings"

	"github.com/simp-lee/stockroom/internal/domain"
	"github.com/simp-lee/stockroom/internal/table"
)

// StaffStatusText maps a stored staff status to its list label. 1 (or
// "active") is active; anything else is inactive.
func StaffStatusText(v any) string {
	switch strings.ToLower(strings.TrimSpace(table.ToString(v))) {
	case "1", "active":
		return "active"
	default:
		return "inactive"
	}
}

// ProductRecord converts p to a ProductSchema record.
func ProductRecord(p domain.Product) table.Record {
	return ProductSchema.Normalize(map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"brand":       p.Brand,
		"barcode":     p.Barcode,
		"qty":         p.Qty,
		"cost_price":  p.CostPrice.InexactFloat64(),
		"price":       p.Price.InexactFloat64(),
		"expire_date": p.ExpireDate,
		"created_at":  p.CreatedAt,
	})
}

// CustomerRecord converts c to a CustomerSchema record.
func CustomerRecord(c domain.Customer) table.Record {
	return CustomerSchema.Normalize(map[string]any{
		"id":         c.ID,
		"name":       c.Name,
		"phone":      c.Phone,
		"address":    c.Address,
		"created_at": c.CreatedAt,
	})
}

// SupplierRecord converts s to a SupplierSchema record, reading a blank
// status as active.
func SupplierRecord(s domain.Supplier) table.Record {
	return SupplierSchema.Normalize(map[string]any{
		"id":           s.ID,
		"name":         s.Name,
		"phone_first":  s.PhoneFirst,
		"phone_second": s.PhoneSecond,
		"address":      s.Address,
		"status":       s.EffectiveStatus(),
		"created_at":   s.CreatedAt,
	})
}

// StaffRecord converts s to a StaffSchema record with the status as text.
func StaffRecord(s domain.Staff) table.Record {
	return StaffSchema.Normalize(map[string]any{
		"id":         s.ID,
		"staff_id":   s.StaffCode,
		"name":       s.Name,
		"phone":      s.Phone,
		"position":   s.Position,
		"status":     StaffStatusText(s.Status),
		"created_at": s.CreatedAt,
	})
}

// UserRecord converts u to a UserSchema record.
func UserRecord(u domain.User) table.Record {
	return UserSchema.Normalize(map[string]any{
		"id":         u.ID,
		"name":       u.Name,
		"username":   u.Username,
		"email":      u.Email,
		"phone":      u.Phone,
		"role":       u.Role,
		"status":     u.Status,
		"created_at": u.CreatedAt,
	})
}

// PurchaseRecord converts p to a PurchaseSchema record. The supplier name
// needs the Supplier preload and is nil without it.
func PurchaseRecord(p domain.Purchase) table.Record {
	var supplier any
	if p.Supplier != nil {
		supplier = p.Supplier.Name
	}
	return PurchaseSchema.Normalize(map[string]any{
		"id":         p.ID,
		"supplier":   supplier,
		"date":       p.CreatedAt,
		"total":      p.Total.InexactFloat64(),
		"paid":       p.Paid.InexactFloat64(),
		"balance":    p.Balance.InexactFloat64(),
		"qty":        p.TotalQty(),
		"created_at": p.CreatedAt,
	})
}

// SaleRecord converts s to a SaleSchema record, naming the first line's
// product and summing the line quantities.
func SaleRecord(s domain.Sale) table.Record {
	var customer, product any
	if s.Customer != nil {
		customer = s.Customer.Name
	}
	if len(s.Items) > 0 && s.Items[0].Product != nil {
		product = s.Items[0].Product.Name
	}
	qty := 0
	for _, item := range s.Items {
		qty += max(item.Qty, 0)
	}
	return SaleSchema.Normalize(map[string]any{
		"id":         s.ID,
		"customer":   customer,
		"product":    product,
		"sale_date":  s.SaleDate,
		"items":      qty,
		"total":      s.Total.InexactFloat64(),
		"created_at": s.CreatedAt,
	})
}
