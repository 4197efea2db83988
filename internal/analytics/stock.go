package analytics

import (
	"slices"
	"time"
)

// StockSeverity ranks stock alerts. Lower values are more urgent.
type StockSeverity int

const (
	StockOut StockSeverity = iota
	StockCritical
	StockLow
)

func (s StockSeverity) String() string {
	switch s {
	case StockOut:
		return "OUT"
	case StockCritical:
		return "CRITICAL"
	case StockLow:
		return "LOW"
	default:
		return "UNKNOWN"
	}
}

// MarshalText renders the severity name in JSON.
func (s StockSeverity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// StockAlert is a product at or below the low-stock threshold.
type StockAlert struct {
	ProductID  uint          `json:"product_id"`
	Name       string        `json:"name"`
	Brand      string        `json:"brand"`
	Barcode    string        `json:"barcode"`
	Qty        int           `json:"qty"`
	ExpireDate *time.Time    `json:"expire_date,omitempty"`
	Severity   StockSeverity `json:"severity"`
}

// StockSeverityOf classifies qty. ok is false above the low threshold.
func (a *Analyzer) StockSeverityOf(qty int) (sev StockSeverity, ok bool) {
	qty = max(qty, 0)
	switch {
	case qty == 0:
		return StockOut, true
	case qty <= a.cfg.CriticalStock:
		return StockCritical, true
	case qty <= a.cfg.LowStock:
		return StockLow, true
	default:
		return 0, false
	}
}

// ClassifyStock returns the stock alerts for products ordered OUT, CRITICAL,
// LOW, keeping product order within a severity.
func (a *Analyzer) ClassifyStock(products []Product) []StockAlert {
	alerts := make([]StockAlert, 0)
	for _, p := range products {
		sev, ok := a.StockSeverityOf(p.Qty)
		if !ok {
			continue
		}
		alerts = append(alerts, StockAlert{
			ProductID:  p.ID,
			Name:       p.Name,
			Brand:      orDefault(p.Brand, unknownBrand),
			Barcode:    orDefault(p.Barcode, unknownBarcode),
			Qty:        max(p.Qty, 0),
			ExpireDate: p.ExpireDate,
			Severity:   sev,
		})
	}
	slices.SortStableFunc(alerts, func(x, y StockAlert) int {
		return int(x.Severity) - int(y.Severity)
	})
	return alerts
}
