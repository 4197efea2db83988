package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the view of a product the classifiers need.
type Product struct {
	ID      uint
	Name    string
	Brand   string
	Barcode string
	Qty     int
	// ExpireDate is read as a calendar date in its own zone. Nil means no
	// expiry information.
	ExpireDate *time.Time
}

// SaleLine is one line item of a sale.
type SaleLine struct {
	ProductID   uint
	ProductName string
	Qty         int
	Total       decimal.Decimal
}

// Sale is the view of a sale used for revenue and activity.
type Sale struct {
	ID    uint
	Total decimal.Decimal
	// SaleDate is preferred over CreatedAt for ordering. Zero means unset.
	SaleDate  time.Time
	CreatedAt time.Time
	Items     []SaleLine
}

// When returns SaleDate, or CreatedAt when SaleDate is unset.
func (s Sale) When() time.Time {
	if !s.SaleDate.IsZero() {
		return s.SaleDate
	}
	return s.CreatedAt
}

// Purchase is the view of a purchase used for spend and activity.
type Purchase struct {
	ID        uint
	Total     decimal.Decimal
	CreatedAt time.Time
}

const (
	unknownBrand   = "Unknown"
	unknownBarcode = "N/A"
	otherProduct   = "Other Product"
)

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
