package purchase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/simp-lee/stockroom/internal/catalog"
	"github.com/simp-lee/stockroom/internal/domain"
	"github.com/simp-lee/stockroom/internal/pkg"
	"github.com/simp-lee/stockroom/internal/table"
)

type purchaseService struct {
	repo      domain.PurchaseRepository
	suppliers domain.SupplierRepository
	products  domain.ProductRepository
	engine    *table.Engine
}

// NewPurchaseService creates a PurchaseService. Suppliers and products are
// read to validate and price new purchases.
func NewPurchaseService(repo domain.PurchaseRepository, suppliers domain.SupplierRepository, products domain.ProductRepository, engine *table.Engine) domain.PurchaseService {
	return &purchaseService{repo: repo, suppliers: suppliers, products: products, engine: engine}
}

// CreatePurchase prices every line, stores the purchase and adds the
// purchased quantities to stock.
func (s *purchaseService) CreatePurchase(ctx context.Context, in domain.PurchaseInput) (*domain.Purchase, error) {
	if in.SupplierID == 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "supplier_id is required", nil)
	}
	if len(in.Items) == 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "at least one item is required", nil)
	}
	if in.Paid.IsNegative() {
		return nil, domain.NewAppError(domain.CodeValidation, "paid must not be negative", nil)
	}
	if _, err := s.suppliers.GetByID(ctx, in.SupplierID); err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewAppError(domain.CodeValidation, fmt.Sprintf("supplier %d does not exist", in.SupplierID), nil)
		}
		return nil, err
	}

	p := &domain.Purchase{
		SupplierID: in.SupplierID,
		Note:       strings.TrimSpace(in.Note),
		Items:      make([]domain.PurchaseItem, 0, len(in.Items)),
	}
	for i, line := range in.Items {
		if line.Qty <= 0 {
			return nil, domain.NewAppError(domain.CodeValidation, fmt.Sprintf("items[%d].qty must be positive", i), nil)
		}
		if line.CostPrice.IsNegative() {
			return nil, domain.NewAppError(domain.CodeValidation, fmt.Sprintf("items[%d].cost_price must not be negative", i), nil)
		}
		product, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			if domain.IsNotFound(err) {
				return nil, domain.NewAppError(domain.CodeValidation, fmt.Sprintf("product %d does not exist", line.ProductID), nil)
			}
			return nil, err
		}
		cost := line.CostPrice
		if cost.IsZero() {
			cost = product.CostPrice
		}
		total := cost.Mul(decimal.NewFromInt(int64(line.Qty))).Round(2)
		p.Items = append(p.Items, domain.PurchaseItem{
			ProductID: line.ProductID,
			Qty:       line.Qty,
			CostPrice: cost.Round(2),
			Total:     total,
		})
		p.Total = p.Total.Add(total)
	}

	p.Paid = in.Paid.Round(2)
	if p.Paid.GreaterThan(p.Total) {
		return nil, domain.NewAppError(domain.CodeValidation, "paid must not exceed the purchase total", nil)
	}
	p.Balance = p.Total.Sub(p.Paid)

	if err := s.repo.CreateWithStock(ctx, p); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, p.ID)
}

func (s *purchaseService) GetPurchase(ctx context.Context, id uint) (*domain.Purchase, error) {
	return s.repo.GetByID(ctx, id)
}

// ListPurchases runs q over every purchase. Stats cover the whole
// collection.
func (s *purchaseService) ListPurchases(ctx context.Context, q table.Query) (*domain.PageResult[domain.Purchase], error) {
	rows, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	result, err := pkg.RunList(s.engine, rows, catalog.PurchaseSchema, catalog.PurchaseRecord, q)
	if err != nil {
		return nil, err
	}

	var st domain.PurchaseStats
	for _, p := range rows {
		st.TotalAmount = st.TotalAmount.Add(p.Total)
		st.TotalPaid = st.TotalPaid.Add(p.Paid)
		st.TotalBalance = st.TotalBalance.Add(p.Balance)
		st.TotalQty += p.TotalQty()
	}
	st.Count = len(rows)
	result.Stats = st
	return result, nil
}

// DeletePurchase removes the purchase and takes its quantities back out of
// stock.
func (s *purchaseService) DeletePurchase(ctx context.Context, id uint) error {
	return s.repo.DeleteWithStock(ctx, id)
}
