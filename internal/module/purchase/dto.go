package purchase

import (
	"github.com/shopspring/decimal"

	"github.com/simp-lee/stockroom/internal/domain"
)

// PurchaseItemRequest is one line of a purchase. A zero cost price uses the
// product's stored cost.
type PurchaseItemRequest struct {
	ProductID uint            `json:"product_id" binding:"required"`
	Qty       int             `json:"qty" binding:"required,min=1"`
	CostPrice decimal.Decimal `json:"cost_price"`
}

// CreatePurchaseRequest is the body of POST /purchases.
type CreatePurchaseRequest struct {
	SupplierID uint                  `json:"supplier_id" binding:"required"`
	Paid       decimal.Decimal       `json:"paid"`
	Note       string                `json:"note" binding:"max=255"`
	Items      []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r CreatePurchaseRequest) input() domain.PurchaseInput {
	in := domain.PurchaseInput{
		SupplierID: r.SupplierID,
		Paid:       r.Paid,
		Note:       r.Note,
		Items:      make([]domain.PurchaseLineInput, len(r.Items)),
	}
	for i, item := range r.Items {
		in.Items[i] = domain.PurchaseLineInput{ProductID: item.ProductID, Qty: item.Qty, CostPrice: item.CostPrice}
	}
	return in
}
