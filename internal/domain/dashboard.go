package domain

import (
	"context"

	"github.com/simp-lee/stockroom/internal/analytics"
)

// Dashboard is the summary panel.
type Dashboard struct {
	Stats       analytics.DashboardStats `json:"stats"`
	RevenueText string                   `json:"revenue_text"`
	SpendText   string                   `json:"spend_text"`
	TopProducts []analytics.ProductSale  `json:"top_products"`
}

// ExpiryAlertView is an expiry alert with its display labels.
type ExpiryAlertView struct {
	analytics.ExpiryAlert
	ExpireDateText string `json:"expire_date_text"`
	DaysLabel      string `json:"days_label"`
}

// Alerts holds the stock and expiry alert panels.
type Alerts struct {
	Stock      []analytics.StockAlert `json:"stock"`
	StockTotal int                    `json:"stock_total"`
	Expiry     []ExpiryAlertView      `json:"expiry"`
}

// ActivityView is an activity entry with its display labels.
type ActivityView struct {
	analytics.ActivityEntry
	AmountText string `json:"amount_text"`
	TimeAgo    string `json:"time_ago"`
}

// DashboardService derives the dashboard panels from current data.
type DashboardService interface {
	Summary(ctx context.Context) (*Dashboard, error)
	Alerts(ctx context.Context) (*Alerts, error)
	Activity(ctx context.Context, limit int) ([]ActivityView, error)
	Notifications(ctx context.Context, limit int) ([]analytics.Notification, error)
}
