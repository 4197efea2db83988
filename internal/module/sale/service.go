package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/simp-lee/stockroom/internal/catalog"
	"github.com/simp-lee/stockroom/internal/domain"
	"github.com/simp-lee/stockroom/internal/pkg"
	"github.com/simp-lee/stockroom/internal/table"
)

type saleService struct {
	repo      domain.SaleRepository
	customers domain.CustomerRepository
	products  domain.ProductRepository
	engine    *table.Engine
	now       func() time.Time
}

// NewSaleService creates a SaleService.
func NewSaleService(repo domain.SaleRepository, customers domain.CustomerRepository, products domain.ProductRepository, engine *table.Engine) domain.SaleService {
	return &saleService{repo: repo, customers: customers, products: products, engine: engine, now: time.Now}
}

// CreateSale prices every line and stores the sale, taking the sold
// quantities out of stock. It fails with a CodeInsufficientStock error,
// leaving stock untouched, when any product is short.
func (s *saleService) CreateSale(ctx context.Context, in domain.SaleInput) (*domain.Sale, error) {
	if len(in.Items) == 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "at least one item is required", nil)
	}
	if in.CustomerID != nil {
		if _, err := s.customers.GetByID(ctx, *in.CustomerID); err != nil {
			if domain.IsNotFound(err) {
				return nil, domain.NewAppError(domain.CodeValidation, fmt.Sprintf("customer %d does not exist", *in.CustomerID), nil)
			}
			return nil, err
		}
	}

	sale := &domain.Sale{
		CustomerID: in.CustomerID,
		SaleDate:   s.now(),
		Items:      make([]domain.SaleItem, 0, len(in.Items)),
	}
	if in.SaleDate != nil && !in.SaleDate.IsZero() {
		sale.SaleDate = *in.SaleDate
	}

	for i, line := range in.Items {
		if line.Qty <= 0 {
			return nil, domain.NewAppError(domain.CodeValidation, fmt.Sprintf("items[%d].qty must be positive", i), nil)
		}
		product, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			if domain.IsNotFound(err) {
				return nil, domain.NewAppError(domain.CodeValidation, fmt.Sprintf("product %d does not exist", line.ProductID), nil)
			}
			return nil, err
		}
		price := product.Price
		if line.Price != nil {
			if line.Price.IsNegative() {
				return nil, domain.NewAppError(domain.CodeValidation, fmt.Sprintf("items[%d].price must not be negative", i), nil)
			}
			price = *line.Price
		}
		total := price.Mul(decimal.NewFromInt(int64(line.Qty))).Round(2)
		sale.Items = append(sale.Items, domain.SaleItem{
			ProductID: line.ProductID,
			Qty:       line.Qty,
			Price:     price.Round(2),
			Total:     total,
		})
		sale.Total = sale.Total.Add(total)
	}

	if err := s.repo.CreateWithStock(ctx, sale); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, sale.ID)
}

func (s *saleService) GetSale(ctx context.Context, id uint) (*domain.Sale, error) {
	return s.repo.GetByID(ctx, id)
}

// ListSales runs q over every sale. Stats cover the whole collection.
func (s *saleService) ListSales(ctx context.Context, q table.Query) (*domain.PageResult[domain.Sale], error) {
	rows, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	result, err := pkg.RunList(s.engine, rows, catalog.SaleSchema, catalog.SaleRecord, q)
	if err != nil {
		return nil, err
	}

	st := domain.SaleStats{Count: len(rows)}
	for _, sale := range rows {
		st.Revenue = st.Revenue.Add(sale.Total)
		for _, item := range sale.Items {
			st.Items += max(item.Qty, 0)
		}
	}
	result.Stats = st
	return result, nil
}
