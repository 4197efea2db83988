package staff

import (
	"gorm.io/gorm"

	"github.com/simp-lee/stockroom/internal/domain"
	"github.com/simp-lee/stockroom/internal/pkg"
)

type staffRepository struct {
	*pkg.GormRepository[domain.Staff]
}

// NewStaffRepository creates a StaffRepository backed by db.
func NewStaffRepository(db *gorm.DB) domain.StaffRepository {
	return &staffRepository{GormRepository: pkg.NewGormRepository[domain.Staff](db)}
}
