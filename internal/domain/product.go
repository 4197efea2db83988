package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/simp-lee/stockroom/internal/table"
)

// Product is a stocked item.
type Product struct {
	BaseModel
	Name       string          `gorm:"size:200;not null" json:"name"`
	Barcode    string          `gorm:"size:64;index" json:"barcode"`
	Brand      string          `gorm:"size:100" json:"brand"`
	Qty        int             `gorm:"not null;default:0" json:"qty"`
	CostPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"cost_price"`
	Price      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"price"`
	ExpireDate *time.Time      `json:"expire_date"`
}

// ProductInput carries the writable product fields.
type ProductInput struct {
	Name       string
	Barcode    string
	Brand      string
	Qty        int
	CostPrice  decimal.Decimal
	Price      decimal.Decimal
	ExpireDate *time.Time
}

// ProductRepository persists products.
type ProductRepository interface {
	Repository[Product]
}

// ProductService implements product use cases.
type ProductService interface {
	CreateProduct(ctx context.Context, in ProductInput) (*Product, error)
	GetProduct(ctx context.Context, id uint) (*Product, error)
	ListProducts(ctx context.Context, q table.Query) (*PageResult[Product], error)
	UpdateProduct(ctx context.Context, id uint, in ProductInput) (*Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}
