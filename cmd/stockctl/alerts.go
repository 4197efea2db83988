package main

import (
	"github.com/spf13/cobra"

	"github.com/simp-lee/stockroom/internal/analytics"
	"github.com/simp-lee/stockroom/internal/catalog"
	"github.com/simp-lee/stockroom/internal/table"
)

// alertReport is the alerts command output.
type alertReport struct {
	Stock      []analytics.StockAlert  `json:"stock"`
	StockTotal int                     `json:"stock_total"`
	Expiry     []analytics.ExpiryAlert `json:"expiry"`
}

func newAlertsCmd(e *env) *cobra.Command {
	var (
		file  string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Print stock and expiry alerts for every product.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := resource("products")
			if err != nil {
				return err
			}
			records, err := e.load(cmd, res, file)
			if err != nil {
				return err
			}

			if limit <= 0 {
				limit = e.cfg.Inventory.AlertLimit
			}
			products := productsOf(records)
			stock := e.analyzer.ClassifyStock(products)
			return e.print(alertReport{
				Stock:      stock[:min(len(stock), limit)],
				StockTotal: len(stock),
				Expiry:     e.analyzer.ClassifyExpiry(products),
			})
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "read products from a JSON file instead of the backend")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum stock alerts shown (default: inventory.alert_limit)")
	return cmd
}

func productsOf(records []table.Record) []analytics.Product {
	out := make([]analytics.Product, len(records))
	for i, r := range records {
		out[i] = catalog.ProductFromRecord(r)
	}
	return out
}
