package sale

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/simp-lee/stockroom/internal/domain"
)

// SaleItemRequest is one line of a sale. A missing price uses the product's
// price.
type SaleItemRequest struct {
	ProductID uint             `json:"product_id" binding:"required"`
	Qty       int              `json:"qty" binding:"required,min=1"`
	Price     *decimal.Decimal `json:"price"`
}

// CreateSaleRequest is the body of POST /sales. A missing sale date is
// today.
type CreateSaleRequest struct {
	CustomerID *uint             `json:"customer_id"`
	SaleDate   string            `json:"sale_date" binding:"omitempty,datetime=2006-01-02"`
	Items      []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r CreateSaleRequest) input() domain.SaleInput {
	in := domain.SaleInput{
		CustomerID: r.CustomerID,
		Items:      make([]domain.SaleLineInput, len(r.Items)),
	}
	if r.SaleDate != "" {
		if t, err := time.Parse(time.DateOnly, r.SaleDate); err == nil {
			in.SaleDate = &t
		}
	}
	for i, item := range r.Items {
		in.Items[i] = domain.SaleLineInput{ProductID: item.ProductID, Qty: item.Qty, Price: item.Price}
	}
	return in
}
