package analytics

import (
	"cmp"
	"slices"
	"time"
)

// ExpirySeverity ranks expiry alerts. Lower values are more urgent.
type ExpirySeverity int

const (
	ExpiryExpired ExpirySeverity = iota
	ExpiryCritical
	ExpirySoon
)

func (s ExpirySeverity) String() string {
	switch s {
	case ExpiryExpired:
		return "EXPIRED"
	case ExpiryCritical:
		return "CRITICAL"
	case ExpirySoon:
		return "SOON"
	default:
		return "UNKNOWN"
	}
}

// MarshalText renders the severity name in JSON.
func (s ExpirySeverity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ExpiryAlert is a product that has expired or expires within the soon window.
type ExpiryAlert struct {
	ProductID  uint           `json:"product_id"`
	Name       string         `json:"name"`
	Brand      string         `json:"brand"`
	Barcode    string         `json:"barcode"`
	Qty        int            `json:"qty"`
	ExpireDate time.Time      `json:"expire_date"`
	DaysLeft   int            `json:"days_left"`
	Severity   ExpirySeverity `json:"severity"`
}

// DaysLeft counts whole calendar days from today to the expiry date.
// Negative values are days since expiry.
func (a *Analyzer) DaysLeft(expire time.Time) int {
	return daysBetween(a.now(), expire)
}

// ExpirySeverityOf classifies daysLeft. ok is false beyond the soon window.
func (a *Analyzer) ExpirySeverityOf(daysLeft int) (sev ExpirySeverity, ok bool) {
	switch {
	case daysLeft < 0:
		return ExpiryExpired, true
	case daysLeft == 0 && a.cfg.ExpiresToday == ExpiresTodayExpired:
		return ExpiryExpired, true
	case daysLeft <= a.cfg.ExpireCriticalDays:
		return ExpiryCritical, true
	case daysLeft <= a.cfg.ExpireSoonDays:
		return ExpirySoon, true
	default:
		return 0, false
	}
}

// ClassifyExpiry returns expiry alerts ordered by severity, then by
// daysLeft ascending, keeping product order on ties. Products without an
// expiry date are skipped.
func (a *Analyzer) ClassifyExpiry(products []Product) []ExpiryAlert {
	today := a.now()
	alerts := make([]ExpiryAlert, 0)
	for _, p := range products {
		if p.ExpireDate == nil || p.ExpireDate.IsZero() {
			continue
		}
		days := daysBetween(today, *p.ExpireDate)
		sev, ok := a.ExpirySeverityOf(days)
		if !ok {
			continue
		}
		alerts = append(alerts, ExpiryAlert{
			ProductID:  p.ID,
			Name:       p.Name,
			Brand:      orDefault(p.Brand, unknownBrand),
			Barcode:    orDefault(p.Barcode, unknownBarcode),
			Qty:        max(p.Qty, 0),
			ExpireDate: *p.ExpireDate,
			DaysLeft:   days,
			Severity:   sev,
		})
	}
	slices.SortStableFunc(alerts, func(x, y ExpiryAlert) int {
		if c := cmp.Compare(x.Severity, y.Severity); c != 0 {
			return c
		}
		return cmp.Compare(x.DaysLeft, y.DaysLeft)
	})
	return alerts
}

// daysBetween compares calendar dates, each taken in its own zone, so the
// result does not depend on time of day or DST transitions.
func daysBetween(from, to time.Time) int {
	return int(civilDate(to).Sub(civilDate(from)).Hours() / 24)
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
