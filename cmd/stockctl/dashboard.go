package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/simp-lee/stockroom/internal/analytics"
	"github.com/simp-lee/stockroom/internal/catalog"
	"github.com/simp-lee/stockroom/internal/table"
)

// dashboardReport is the dashboard command output.
type dashboardReport struct {
	Stats         analytics.DashboardStats  `json:"stats"`
	RevenueText   string                    `json:"revenue_text"`
	SpendText     string                    `json:"spend_text"`
	TopProducts   []analytics.ProductSale   `json:"top_products"`
	Activity      []analytics.ActivityEntry `json:"activity"`
	Notifications []analytics.Notification  `json:"notifications"`
}

func newDashboardCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Print the dashboard summary, recent activity and notifications.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := e.client()
			if err != nil {
				return err
			}

			names := []string{"products", "sales", "purchases", "customers"}
			collections := make([][]table.Record, len(names))
			g, ctx := errgroup.WithContext(cmd.Context())
			for i, name := range names {
				res, err := resource(name)
				if err != nil {
					return err
				}
				g.Go(func() error {
					records, err := c.Fetch(ctx, res)
					if err != nil {
						return err
					}
					collections[i] = records
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			products := productsOf(collections[0])
			sales := make([]analytics.Sale, len(collections[1]))
			for i, r := range collections[1] {
				sales[i] = catalog.SaleFromRecord(r)
			}
			purchases := make([]analytics.Purchase, len(collections[2]))
			for i, r := range collections[2] {
				purchases[i] = catalog.PurchaseFromRecord(r)
			}

			inv := e.cfg.Inventory
			stats := e.analyzer.Summarize(products, sales, purchases, len(collections[3]))
			activity := analytics.MergeActivity(sales, purchases, inv.ActivityLimit)
			return e.print(dashboardReport{
				Stats:       stats,
				RevenueText: analytics.FormatMoney(stats.TotalRevenue),
				SpendText:   analytics.FormatMoney(stats.TotalSpend),
				TopProducts: analytics.ProductSales(sales, 5),
				Activity:    activity,
				Notifications: analytics.Notifications(
					e.analyzer.ClassifyStock(products),
					e.analyzer.ClassifyExpiry(products),
					activity,
					inv.NotificationLimit,
				),
			})
		},
	}
}
