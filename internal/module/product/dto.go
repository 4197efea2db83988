package product

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/simp-lee/stockroom/internal/domain"
)

// ProductRequest is the body of POST and PUT /products.
type ProductRequest struct {
	Name       string          `json:"name" form:"name" binding:"required,min=1,max=200"`
	Barcode    string          `json:"barcode" form:"barcode" binding:"max=64"`
	Brand      string          `json:"brand" form:"brand" binding:"max=100"`
	Qty        int             `json:"qty" form:"qty" binding:"min=0"`
	CostPrice  decimal.Decimal `json:"cost_price" form:"cost_price"`
	Price      decimal.Decimal `json:"price" form:"price"`
	ExpireDate string          `json:"expire_date" form:"expire_date" binding:"omitempty,datetime=2006-01-02"`
}

// input converts the request. The expire date was already checked by the
// datetime binding.
func (r ProductRequest) input() domain.ProductInput {
	in := domain.ProductInput{
		Name:      r.Name,
		Barcode:   r.Barcode,
		Brand:     r.Brand,
		Qty:       r.Qty,
		CostPrice: r.CostPrice,
		Price:     r.Price,
	}
	if r.ExpireDate != "" {
		if t, err := time.Parse(time.DateOnly, r.ExpireDate); err == nil {
			in.ExpireDate = &t
		}
	}
	return in
}
