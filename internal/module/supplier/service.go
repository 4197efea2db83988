package supplier

import (
	"context"
	"strings"

	"github.com/simp-lee/stockroom/internal/catalog"
	"github.com/simp-lee/stockroom/internal/domain"
	"github.com/simp-lee/stockroom/internal/pkg"
	"github.com/simp-lee/stockroom/internal/table"
)

type supplierService struct {
	repo   domain.SupplierRepository
	engine *table.Engine
}

// NewSupplierService creates a SupplierService.
func NewSupplierService(repo domain.SupplierRepository, engine *table.Engine) domain.SupplierService {
	return &supplierService{repo: repo, engine: engine}
}

func (s *supplierService) CreateSupplier(ctx context.Context, in domain.SupplierInput) (*domain.Supplier, error) {
	sup := &domain.Supplier{}
	if err := apply(sup, in); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *supplierService) GetSupplier(ctx context.Context, id uint) (*domain.Supplier, error) {
	return s.repo.GetByID(ctx, id)
}

// ListSuppliers runs q over every supplier. A status filter matches the
// effective status, so "active" also selects rows stored without one.
func (s *supplierService) ListSuppliers(ctx context.Context, q table.Query) (*domain.PageResult[domain.Supplier], error) {
	rows, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	result, err := pkg.RunList(s.engine, rows, catalog.SupplierSchema, catalog.SupplierRecord, q)
	if err != nil {
		return nil, err
	}
	result.Stats = stats(rows)
	return result, nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, id uint, in domain.SupplierInput) (*domain.Supplier, error) {
	sup, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(sup, in); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *supplierService) DeleteSupplier(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func apply(sup *domain.Supplier, in domain.SupplierInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	status, err := normalizeStatus(in.Status)
	if err != nil {
		return err
	}
	sup.Name = name
	sup.PhoneFirst = strings.TrimSpace(in.PhoneFirst)
	sup.PhoneSecond = strings.TrimSpace(in.PhoneSecond)
	sup.Address = strings.TrimSpace(in.Address)
	sup.Status = status
	return nil
}

func normalizeStatus(s string) (string, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "":
		return domain.SupplierActive, nil
	case domain.SupplierActive, domain.SupplierInactive, domain.SupplierSuspended,
		domain.SupplierBlocked, domain.SupplierPending:
		return v, nil
	default:
		return "", domain.NewAppError(domain.CodeValidation, "invalid status: "+s, nil)
	}
}

// stats counts suppliers per effective status; blocked counts as inactive.
func stats(rows []domain.Supplier) domain.SupplierStats {
	st := domain.SupplierStats{Total: len(rows)}
	for _, s := range rows {
		switch s.EffectiveStatus() {
		case domain.SupplierActive:
			st.Active++
		case domain.SupplierInactive, domain.SupplierBlocked:
			st.Inactive++
		case domain.SupplierSuspended:
			st.Suspended++
		case domain.SupplierPending:
			st.Pending++
		}
	}
	return st
}
