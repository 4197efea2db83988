package staff

import (
	"context"
	"strings"

	"github.com/simp-lee/stockroom/internal/catalog"
	"github.com/simp-lee/stockroom/internal/domain"
	"github.com/simp-lee/stockroom/internal/pkg"
	"github.com/simp-lee/stockroom/internal/table"
)

type staffService struct {
	repo   domain.StaffRepository
	engine *table.Engine
}

// NewStaffService creates a StaffService.
func NewStaffService(repo domain.StaffRepository, engine *table.Engine) domain.StaffService {
	return &staffService{repo: repo, engine: engine}
}

func (s *staffService) CreateStaff(ctx context.Context, in domain.StaffInput) (*domain.Staff, error) {
	st := &domain.Staff{}
	if err := apply(st, in); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *staffService) GetStaff(ctx context.Context, id uint) (*domain.Staff, error) {
	return s.repo.GetByID(ctx, id)
}

// ListStaff runs q over every staff record. Status filters and searches
// see the status as "active" or "inactive".
func (s *staffService) ListStaff(ctx context.Context, q table.Query) (*domain.PageResult[domain.Staff], error) {
	rows, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	result, err := pkg.RunList(s.engine, rows, catalog.StaffSchema, catalog.StaffRecord, q)
	if err != nil {
		return nil, err
	}

	stats := domain.StaffStats{Total: len(rows)}
	for _, r := range rows {
		if r.Status == domain.StaffActive {
			stats.Active++
		} else {
			stats.Inactive++
		}
	}
	result.Stats = stats
	return result, nil
}

func (s *staffService) UpdateStaff(ctx context.Context, id uint, in domain.StaffInput) (*domain.Staff, error) {
	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(st, in); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *staffService) DeleteStaff(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func apply(st *domain.Staff, in domain.StaffInput) error {
	code := strings.TrimSpace(in.StaffCode)
	name := strings.TrimSpace(in.Name)
	switch {
	case code == "":
		return domain.NewAppError(domain.CodeValidation, "staff_id is required", nil)
	case name == "":
		return domain.NewAppError(domain.CodeValidation, "name is required", nil)
	case in.Status != domain.StaffActive && in.Status != domain.StaffInactive:
		return domain.NewAppError(domain.CodeValidation, "status must be 0 or 1", nil)
	}
	st.StaffCode = code
	st.Name = name
	st.Phone = strings.TrimSpace(in.Phone)
	st.Position = strings.TrimSpace(in.Position)
	st.Status = in.Status
	return nil
}
