package customer

import (
	"gorm.io/gorm"

	"github.com/simp-lee/stockroom/internal/domain"
	"github.com/simp-lee/stockroom/internal/pkg"
)

type customerRepository struct {
	*pkg.GormRepository[domain.Customer]
}

// NewCustomerRepository creates a CustomerRepository backed by db.
func NewCustomerRepository(db *gorm.DB) domain.CustomerRepository {
	return &customerRepository{GormRepository: pkg.NewGormRepository[domain.Customer](db)}
}
