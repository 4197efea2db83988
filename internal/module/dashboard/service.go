// Package dashboard serves the summary, alert, activity and notification
// panels. Every call derives its panels from a fresh snapshot of the stored
// products, sales, purchases and customer count.
package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/simp-lee/stockroom/internal/analytics"
	"github.com/simp-lee/stockroom/internal/catalog"
	"github.com/simp-lee/stockroom/internal/domain"
)

const (
	// topProductsLimit is the length of the best-seller panel.
	topProductsLimit  = 5
	defaultAlertLimit = 20
)

// Sources are the repositories a snapshot is read from.
type Sources struct {
	Products  domain.ProductRepository
	Sales     domain.SaleRepository
	Purchases domain.PurchaseRepository
	Customers domain.CustomerRepository
}

// Limits caps the panel lengths. Zero values fall back to the analytics
// defaults.
type Limits struct {
	Alerts        int
	Activity      int
	Notifications int
}

type snapshot struct {
	products  []analytics.Product
	sales     []analytics.Sale
	purchases []analytics.Purchase
	customers int
}

type dashboardService struct {
	src      Sources
	analyzer *analytics.Analyzer
	limits   Limits
}

// NewDashboardService creates a DashboardService.
func NewDashboardService(src Sources, analyzer *analytics.Analyzer, limits Limits) domain.DashboardService {
	if limits.Alerts <= 0 {
		limits.Alerts = defaultAlertLimit
	}
	if limits.Activity <= 0 {
		limits.Activity = analytics.DefaultActivityLimit
	}
	if limits.Notifications <= 0 {
		limits.Notifications = analytics.DefaultNotificationLimit
	}
	return &dashboardService{src: src, analyzer: analyzer, limits: limits}
}

// load reads the selected collections concurrently.
func (s *dashboardService) load(ctx context.Context, products, transactions, customers bool) (*snapshot, error) {
	snap := &snapshot{}
	g, ctx := errgroup.WithContext(ctx)

	if products {
		g.Go(func() error {
			rows, err := s.src.Products.All(ctx)
			if err != nil {
				return err
			}
			snap.products = catalog.AnalyticsProducts(rows)
			return nil
		})
	}
	if transactions {
		g.Go(func() error {
			rows, err := s.src.Sales.All(ctx)
			if err != nil {
				return err
			}
			snap.sales = catalog.AnalyticsSales(rows)
			return nil
		})
		g.Go(func() error {
			rows, err := s.src.Purchases.All(ctx)
			if err != nil {
				return err
			}
			snap.purchases = catalog.AnalyticsPurchases(rows)
			return nil
		})
	}
	if customers {
		g.Go(func() error {
			n, err := s.src.Customers.Count(ctx)
			if err != nil {
				return err
			}
			snap.customers = int(n)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *dashboardService) Summary(ctx context.Context) (*domain.Dashboard, error) {
	snap, err := s.load(ctx, true, true, true)
	if err != nil {
		return nil, err
	}

	stats := s.analyzer.Summarize(snap.products, snap.sales, snap.purchases, snap.customers)
	return &domain.Dashboard{
		Stats:       stats,
		RevenueText: analytics.FormatMoney(stats.TotalRevenue),
		SpendText:   analytics.FormatMoney(stats.TotalSpend),
		TopProducts: analytics.ProductSales(snap.sales, topProductsLimit),
	}, nil
}

// Alerts returns the stock alerts, capped at the alert limit, and every
// expiry alert. StockTotal is the uncapped count.
func (s *dashboardService) Alerts(ctx context.Context) (*domain.Alerts, error) {
	snap, err := s.load(ctx, true, false, false)
	if err != nil {
		return nil, err
	}

	stock := s.analyzer.ClassifyStock(snap.products)
	out := &domain.Alerts{
		Stock:      stock[:min(len(stock), s.limits.Alerts)],
		StockTotal: len(stock),
		Expiry:     expiryViews(s.analyzer.ClassifyExpiry(snap.products)),
	}
	return out, nil
}

// Activity returns the newest limit sales and purchases. A limit of 0 or
// less uses the configured length.
func (s *dashboardService) Activity(ctx context.Context, limit int) ([]domain.ActivityView, error) {
	if limit <= 0 {
		limit = s.limits.Activity
	}
	snap, err := s.load(ctx, false, true, false)
	if err != nil {
		return nil, err
	}

	now := s.analyzer.Config().Now()
	entries := analytics.MergeActivity(snap.sales, snap.purchases, limit)
	views := make([]domain.ActivityView, len(entries))
	for i, e := range entries {
		views[i] = domain.ActivityView{
			ActivityEntry: e,
			AmountText:    analytics.FormatMoney(e.Amount),
			TimeAgo:       analytics.TimeAgo(e.Timestamp, now),
		}
	}
	return views, nil
}

// Notifications derives the notification feed from the current alerts and
// recent activity.
func (s *dashboardService) Notifications(ctx context.Context, limit int) ([]analytics.Notification, error) {
	if limit <= 0 {
		limit = s.limits.Notifications
	}
	snap, err := s.load(ctx, true, true, false)
	if err != nil {
		return nil, err
	}

	return analytics.Notifications(
		s.analyzer.ClassifyStock(snap.products),
		s.analyzer.ClassifyExpiry(snap.products),
		analytics.MergeActivity(snap.sales, snap.purchases, s.limits.Activity),
		limit,
	), nil
}

func expiryViews(alerts []analytics.ExpiryAlert) []domain.ExpiryAlertView {
	views := make([]domain.ExpiryAlertView, len(alerts))
	for i, a := range alerts {
		views[i] = domain.ExpiryAlertView{
			ExpiryAlert:    a,
			ExpireDateText: analytics.FormatDate(a.ExpireDate),
			DaysLabel:      analytics.DaysLabel(a.DaysLeft),
		}
	}
	return views
}
