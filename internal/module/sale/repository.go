package sale

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/simp-lee/stockroom/internal/domain"
	"github.com/simp-lee/stockroom/internal/pkg"
)

type saleRepository struct {
	*pkg.GormRepository[domain.Sale]
	db *gorm.DB
}

// NewSaleRepository creates a SaleRepository backed by db. Reads preload
// the customer and every item's product.
func NewSaleRepository(db *gorm.DB) domain.SaleRepository {
	return &saleRepository{
		GormRepository: pkg.NewGormRepository[domain.Sale](db, "Customer", "Items.Product"),
		db:             db,
	}
}

// CreateWithStock decrements stock only where enough remains, so two
// concurrent sales cannot both take the last units.
func (r *saleRepository) CreateWithStock(ctx context.Context, s *domain.Sale) error {
	return pkg.WithTx(ctx, r.db, func(tx *gorm.DB) error {
		for _, item := range s.Items {
			res := tx.Model(&domain.Product{}).
				Where("id = ? AND qty >= ?", item.ProductID, item.Qty).
				Update("qty", gorm.Expr("qty - ?", item.Qty))
			if res.Error != nil {
				return pkg.MapError(res.Error)
			}
			if res.RowsAffected == 0 {
				return domain.NewAppError(domain.CodeInsufficientStock,
					fmt.Sprintf("insufficient stock for product %d", item.ProductID), nil)
			}
		}
		return pkg.MapError(tx.Create(s).Error)
	})
}
