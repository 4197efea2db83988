package product

import (
	"context"
	"strings"

	"github.com/simp-lee/stockroom/internal/catalog"
	"github.com/simp-lee/stockroom/internal/domain"
	"github.com/simp-lee/stockroom/internal/pkg"
	"github.com/simp-lee/stockroom/internal/table"
)

type productService struct {
	repo   domain.ProductRepository
	engine *table.Engine
}

// NewProductService creates a ProductService. List queries run on engine.
func NewProductService(repo domain.ProductRepository, engine *table.Engine) domain.ProductService {
	return &productService{repo: repo, engine: engine}
}

func (s *productService) CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	p := &domain.Product{}
	if err := apply(p, in); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productService) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// ListProducts runs q over every stored product.
func (s *productService) ListProducts(ctx context.Context, q table.Query) (*domain.PageResult[domain.Product], error) {
	rows, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	return pkg.RunList(s.engine, rows, catalog.ProductSchema, catalog.ProductRecord, q)
}

func (s *productService) UpdateProduct(ctx context.Context, id uint, in domain.ProductInput) (*domain.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(p, in); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// apply validates in and copies it onto p.
func apply(p *domain.Product, in domain.ProductInput) error {
	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		return domain.NewAppError(domain.CodeValidation, "name is required", nil)
	case in.Qty < 0:
		return domain.NewAppError(domain.CodeValidation, "qty must not be negative", nil)
	case in.CostPrice.IsNegative():
		return domain.NewAppError(domain.CodeValidation, "cost_price must not be negative", nil)
	case in.Price.IsNegative():
		return domain.NewAppError(domain.CodeValidation, "price must not be negative", nil)
	}

	p.Name = name
	p.Barcode = strings.TrimSpace(in.Barcode)
	p.Brand = strings.TrimSpace(in.Brand)
	p.Qty = in.Qty
	p.CostPrice = in.CostPrice.Round(2)
	p.Price = in.Price.Round(2)
	p.ExpireDate = in.ExpireDate
	return nil
}
