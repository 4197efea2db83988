package product

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/simp-lee/stockroom/internal/domain"
	"github.com/simp-lee/stockroom/internal/table"
)

// --- mock repository ---

type mockProductRepo struct {
	products map[uint]*domain.Product
	nextID   uint
	allErr   error
}

func newMockRepo() *mockProductRepo {
	return &mockProductRepo{products: make(map[uint]*domain.Product), nextID: 1}
}

func (m *mockProductRepo) Create(_ context.Context, p *domain.Product) error {
	p.ID = m.nextID
	m.nextID++
	m.products[p.ID] = p
	return nil
}

func (m *mockProductRepo) GetByID(_ context.Context, id uint) (*domain.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

// All returns rows newest first, like the gorm repository.
func (m *mockProductRepo) All(_ context.Context) ([]domain.Product, error) {
	if m.allErr != nil {
		return nil, m.allErr
	}
	out := make([]domain.Product, 0, len(m.products))
	for id := m.nextID; id > 0; id-- {
		if p, ok := m.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProductRepo) Update(_ context.Context, p *domain.Product) error {
	if _, ok := m.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	m.products[p.ID] = p
	return nil
}

func (m *mockProductRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.products, id)
	return nil
}

// --- tests ---

func TestCreateProduct(t *testing.T) {
	svc := NewProductService(newMockRepo(), table.NewEngine())

	p, err := svc.CreateProduct(context.Background(), domain.ProductInput{
		Name:      "  Paracetamol ",
		Brand:     "Acme",
		Qty:       12,
		CostPrice: decimal.RequireFromString("1.255"),
		Price:     decimal.RequireFromString("2.5"),
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if p.ID == 0 {
		t.Fatal("expected non-zero ID")
	}
	if p.Name != "Paracetamol" {
		t.Errorf("Name = %q, want trimmed", p.Name)
	}
	if !p.CostPrice.Equal(decimal.RequireFromString("1.26")) {
		t.Errorf("CostPrice = %s, want 1.26", p.CostPrice)
	}
}

func TestCreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   domain.ProductInput
	}{
		{"empty name", domain.ProductInput{Name: "  "}},
		{"negative qty", domain.ProductInput{Name: "A", Qty: -1}},
		{"negative cost", domain.ProductInput{Name: "A", CostPrice: decimal.NewFromInt(-1)}},
		{"negative price", domain.ProductInput{Name: "A", Price: decimal.NewFromInt(-1)}},
	}

	svc := NewProductService(newMockRepo(), table.NewEngine())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateProduct(context.Background(), tt.in)
			if !domain.IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestUpdateProduct(t *testing.T) {
	repo := newMockRepo()
	svc := NewProductService(repo, table.NewEngine())
	ctx := context.Background()

	p, _ := svc.CreateProduct(ctx, domain.ProductInput{Name: "Old", Qty: 1})
	got, err := svc.UpdateProduct(ctx, p.ID, domain.ProductInput{Name: "New", Qty: 9})
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	if got.Name != "New" || got.Qty != 9 {
		t.Errorf("got %+v, want Name=New Qty=9", got)
	}

	if _, err := svc.UpdateProduct(ctx, 999, domain.ProductInput{Name: "X"}); !domain.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestListProducts(t *testing.T) {
	repo := newMockRepo()
	svc := NewProductService(repo, table.NewEngine())
	ctx := context.Background()

	for _, in := range []domain.ProductInput{
		{Name: "Vitamin C", Brand: "Acme", Qty: 30},
		{Name: "Aspirin", Brand: "Bayer", Qty: 5},
		{Name: "Bandage", Brand: "Acme", Qty: 0},
	} {
		if _, err := svc.CreateProduct(ctx, in); err != nil {
			t.Fatalf("CreateProduct: %v", err)
		}
	}

	t.Run("search and sort", func(t *testing.T) {
		q := table.NewQuery().WithSearch("acme", table.ScopeAll, "").WithSort("qty", table.Asc)
		res, err := svc.ListProducts(ctx, q)
		if err != nil {
			t.Fatalf("ListProducts: %v", err)
		}
		if res.TotalCount != 2 {
			t.Fatalf("TotalCount = %d, want 2", res.TotalCount)
		}
		if res.Items[0].Name != "Bandage" || res.Items[1].Name != "Vitamin C" {
			t.Errorf("unexpected order: %s, %s", res.Items[0].Name, res.Items[1].Name)
		}
	})

	t.Run("unknown sort key", func(t *testing.T) {
		_, err := svc.ListProducts(ctx, table.NewQuery().WithSort("colour", table.Asc))
		if !domain.IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		repo.allErr = errors.New("boom")
		defer func() { repo.allErr = nil }()
		if _, err := svc.ListProducts(ctx, table.NewQuery()); err == nil {
			t.Error("expected error")
		}
	})
}

func TestDeleteProduct(t *testing.T) {
	svc := NewProductService(newMockRepo(), table.NewEngine())
	ctx := context.Background()

	p, _ := svc.CreateProduct(ctx, domain.ProductInput{Name: "A"})
	if err := svc.DeleteProduct(ctx, p.ID); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}
	if _, err := svc.GetProduct(ctx, p.ID); !domain.IsNotFound(err) {
		t.Errorf("expected not found after delete, got %v", err)
	}
}
