package supplier

import (
	"gorm.io/gorm"

	"github.com/simp-lee/stockroom/internal/domain"
	"github.com/simp-lee/stockroom/internal/pkg"
)

type supplierRepository struct {
	*pkg.GormRepository[domain.Supplier]
}

// NewSupplierRepository creates a SupplierRepository backed by db.
func NewSupplierRepository(db *gorm.DB) domain.SupplierRepository {
	return &supplierRepository{GormRepository: pkg.NewGormRepository[domain.Supplier](db)}
}
