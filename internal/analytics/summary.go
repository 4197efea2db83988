package analytics

import "github.com/shopspring/decimal"

// DashboardStats is the aggregate shown at the top of the dashboard.
type DashboardStats struct {
	TotalProducts  int             `json:"total_products"`
	TotalSales     int             `json:"total_sales"`
	TotalPurchases int             `json:"total_purchases"`
	TotalCustomers int             `json:"total_customers"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalSpend     decimal.Decimal `json:"total_spend"`
	TotalStock     int             `json:"total_stock"`
	OutOfStock     int             `json:"out_of_stock"`
	CriticalStock  int             `json:"critical_stock"`
	// LowStock counts every in-stock product at or below the low threshold,
	// critical ones included.
	LowStock int `json:"low_stock"`
	Expired  int `json:"expired"`
	// ExpiringSoon counts every unexpired product within the soon window,
	// critical ones included.
	ExpiringSoon int `json:"expiring_soon"`
}

// Summarize aggregates counts, revenue, spend and stock levels.
func (a *Analyzer) Summarize(products []Product, sales []Sale, purchases []Purchase, customers int) DashboardStats {
	stats := DashboardStats{
		TotalProducts:  len(products),
		TotalSales:     len(sales),
		TotalPurchases: len(purchases),
		TotalCustomers: max(customers, 0),
		TotalRevenue:   decimal.Zero,
		TotalSpend:     decimal.Zero,
	}

	for _, s := range sales {
		stats.TotalRevenue = stats.TotalRevenue.Add(s.Total)
	}
	for _, p := range purchases {
		stats.TotalSpend = stats.TotalSpend.Add(p.Total)
	}
	for _, p := range products {
		stats.TotalStock += max(p.Qty, 0)
	}

	for _, alert := range a.ClassifyStock(products) {
		switch alert.Severity {
		case StockOut:
			stats.OutOfStock++
		case StockCritical:
			stats.CriticalStock++
			stats.LowStock++
		case StockLow:
			stats.LowStock++
		}
	}
	for _, alert := range a.ClassifyExpiry(products) {
		if alert.Severity == ExpiryExpired {
			stats.Expired++
		} else {
			stats.ExpiringSoon++
		}
	}
	return stats
}
