package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/simp-lee/stockroom/internal/table"
)

// Purchase is a stock intake from a supplier. Creating one increases the
// quantity of every purchased product.
type Purchase struct {
	BaseModel
	SupplierID uint            `gorm:"index;not null" json:"supplier_id"`
	Supplier   *Supplier       `json:"supplier,omitempty"`
	Total      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total"`
	Paid       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"paid"`
	Balance    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"balance"`
	Note       string          `gorm:"size:255" json:"note"`
	Items      []PurchaseItem  `gorm:"constraint:OnDelete:CASCADE" json:"items"`
}

// TotalQty sums the item quantities.
func (p Purchase) TotalQty() int {
	n := 0
	for _, item := range p.Items {
		n += max(item.Qty, 0)
	}
	return n
}

// PurchaseItem is one product line of a purchase.
type PurchaseItem struct {
	BaseModel
	PurchaseID uint            `gorm:"index;not null" json:"purchase_id"`
	ProductID  uint            `gorm:"index;not null" json:"product_id"`
	Product    *Product        `json:"product,omitempty"`
	Qty        int             `gorm:"not null" json:"qty"`
	CostPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"cost_price"`
	Total      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total"`
}

// PurchaseInput is a new purchase.
type PurchaseInput struct {
	SupplierID uint
	Paid       decimal.Decimal
	Note       string
	Items      []PurchaseLineInput
}

// PurchaseLineInput is one requested purchase line.
type PurchaseLineInput struct {
	ProductID uint
	Qty       int
	CostPrice decimal.Decimal
}

// PurchaseStats aggregates the purchase collection.
type PurchaseStats struct {
	TotalAmount  decimal.Decimal `json:"total_amount"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	TotalBalance decimal.Decimal `json:"total_balance"`
	TotalQty     int             `json:"total_qty"`
	Count        int             `json:"count"`
}

// PurchaseRepository persists purchases and applies their stock changes.
type PurchaseRepository interface {
	// CreateWithStock inserts p with its items and adds each item's qty to
	// its product in one transaction.
	CreateWithStock(ctx context.Context, p *Purchase) error
	GetByID(ctx context.Context, id uint) (*Purchase, error)
	All(ctx context.Context) ([]Purchase, error)
	// DeleteWithStock removes the purchase and takes its quantities back out
	// of stock, never below zero.
	DeleteWithStock(ctx context.Context, id uint) error
}

// PurchaseService implements purchase use cases.
type PurchaseService interface {
	CreatePurchase(ctx context.Context, in PurchaseInput) (*Purchase, error)
	GetPurchase(ctx context.Context, id uint) (*Purchase, error)
	ListPurchases(ctx context.Context, q table.Query) (*PageResult[Purchase], error)
	DeletePurchase(ctx context.Context, id uint) error
}

// Sale is a checkout. Creating one decreases the quantity of every sold
// product and fails when stock is short.
type Sale struct {
	BaseModel
	CustomerID *uint           `gorm:"index" json:"customer_id"`
	Customer   *Customer       `json:"customer,omitempty"`
	SaleDate   time.Time       `gorm:"index" json:"sale_date"`
	Total      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total"`
	Items      []SaleItem      `gorm:"constraint:OnDelete:CASCADE" json:"items"`
}

// SaleItem is one product line of a sale.
type SaleItem struct {
	BaseModel
	SaleID    uint            `gorm:"index;not null" json:"sale_id"`
	ProductID uint            `gorm:"index;not null" json:"product_id"`
	Product   *Product        `json:"product,omitempty"`
	Qty       int             `gorm:"not null" json:"qty"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"price"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total"`
}

// SaleInput is a new sale. A nil Price on a line uses the product's price.
type SaleInput struct {
	CustomerID *uint
	SaleDate   *time.Time
	Items      []SaleLineInput
}

// SaleLineInput is one requested sale line.
type SaleLineInput struct {
	ProductID uint
	Qty       int
	Price     *decimal.Decimal
}

// SaleStats aggregates the sale collection.
type SaleStats struct {
	Revenue decimal.Decimal `json:"revenue"`
	Items   int             `json:"items"`
	Count   int             `json:"count"`
}

// SaleRepository persists sales and applies their stock changes.
type SaleRepository interface {
	// CreateWithStock inserts s with its items and subtracts each item's qty
	// from its product in one transaction. It fails with
	// ErrInsufficientStock when any product would go below zero.
	CreateWithStock(ctx context.Context, s *Sale) error
	GetByID(ctx context.Context, id uint) (*Sale, error)
	All(ctx context.Context) ([]Sale, error)
}

// SaleService implements sale use cases.
type SaleService interface {
	CreateSale(ctx context.Context, in SaleInput) (*Sale, error)
	GetSale(ctx context.Context, id uint) (*Sale, error)
	ListSales(ctx context.Context, q table.Query) (*PageResult[Sale], error)
}
