package product

import (
	"gorm.io/gorm"

	"github.com/simp-lee/stockroom/internal/domain"
	"github.com/simp-lee/stockroom/internal/pkg"
)

type productRepository struct {
	*pkg.GormRepository[domain.Product]
}

// NewProductRepository creates a ProductRepository backed by db.
func NewProductRepository(db *gorm.DB) domain.ProductRepository {
	return &productRepository{GormRepository: pkg.NewGormRepository[domain.Product](db)}
}
