package customer

import (
	"context"
	"strings"

	"github.com/simp-lee/stockroom/internal/catalog"
	"github.com/simp-lee/stockroom/internal/domain"
	"github.com/simp-lee/stockroom/internal/pkg"
	"github.com/simp-lee/stockroom/internal/table"
)

type customerService struct {
	repo   domain.CustomerRepository
	engine *table.Engine
}

// NewCustomerService creates a CustomerService.
func NewCustomerService(repo domain.CustomerRepository, engine *table.Engine) domain.CustomerService {
	return &customerService{repo: repo, engine: engine}
}

func (s *customerService) CreateCustomer(ctx context.Context, in domain.CustomerInput) (*domain.Customer, error) {
	c := &domain.Customer{}
	if err := apply(c, in); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id uint) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

// ListCustomers runs q over every customer. Stats cover the whole
// collection.
func (s *customerService) ListCustomers(ctx context.Context, q table.Query) (*domain.PageResult[domain.Customer], error) {
	rows, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	result, err := pkg.RunList(s.engine, rows, catalog.CustomerSchema, catalog.CustomerRecord, q)
	if err != nil {
		return nil, err
	}
	result.Stats = stats(rows)
	return result, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id uint, in domain.CustomerInput) (*domain.Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(c, in); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func apply(c *domain.Customer, in domain.CustomerInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	c.Name = name
	c.Phone = strings.TrimSpace(in.Phone)
	c.Address = strings.TrimSpace(in.Address)
	return nil
}

func stats(rows []domain.Customer) domain.CustomerStats {
	st := domain.CustomerStats{Total: len(rows)}
	for _, c := range rows {
		if c.Phone != "" {
			st.WithPhone++
		}
		if c.Address != "" {
			st.WithAddress++
		}
	}
	return st
}
