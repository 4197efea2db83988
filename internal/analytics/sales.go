package analytics

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
)

// ProductSale is one product's sold quantity and revenue across sales.
type ProductSale struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// ProductSales ranks products by quantity sold, then revenue, keeping first
// appearance order on ties. Lines without a product id are grouped by name.
// A limit of 0 or less keeps every product.
func ProductSales(sales []Sale, limit int) []ProductSale {
	type key struct {
		id   uint
		name string
	}
	index := make(map[key]int)
	ranked := make([]ProductSale, 0)

	for _, s := range sales {
		for _, line := range s.Items {
			k := key{id: line.ProductID}
			if k.id == 0 {
				k.name = orDefault(line.ProductName, otherProduct)
			}
			i, ok := index[k]
			if !ok {
				i = len(ranked)
				index[k] = i
				ranked = append(ranked, ProductSale{
					ProductID: line.ProductID,
					Name:      orDefault(line.ProductName, otherProduct),
					Revenue:   decimal.Zero,
				})
			}
			ranked[i].Quantity += max(line.Qty, 0)
			ranked[i].Revenue = ranked[i].Revenue.Add(line.Total)
		}
	}

	slices.SortStableFunc(ranked, func(x, y ProductSale) int {
		if c := cmp.Compare(y.Quantity, x.Quantity); c != 0 {
			return c
		}
		return y.Revenue.Cmp(x.Revenue)
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
