package purchase

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/simp-lee/stockroom/internal/domain"
	"github.com/simp-lee/stockroom/internal/pkg"
)

type purchaseRepository struct {
	*pkg.GormRepository[domain.Purchase]
	db *gorm.DB
}

// NewPurchaseRepository creates a PurchaseRepository backed by db. Reads
// preload the supplier and every item's product.
func NewPurchaseRepository(db *gorm.DB) domain.PurchaseRepository {
	return &purchaseRepository{
		GormRepository: pkg.NewGormRepository[domain.Purchase](db, "Supplier", "Items.Product"),
		db:             db,
	}
}

func (r *purchaseRepository) CreateWithStock(ctx context.Context, p *domain.Purchase) error {
	return pkg.WithTx(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return pkg.MapError(err)
		}
		for _, item := range p.Items {
			res := tx.Model(&domain.Product{}).
				Where("id = ?", item.ProductID).
				Update("qty", gorm.Expr("qty + ?", item.Qty))
			if res.Error != nil {
				return pkg.MapError(res.Error)
			}
			if res.RowsAffected == 0 {
				return domain.NewAppError(domain.CodeNotFound, fmt.Sprintf("product %d not found", item.ProductID), nil)
			}
		}
		return nil
	})
}

func (r *purchaseRepository) DeleteWithStock(ctx context.Context, id uint) error {
	return pkg.WithTx(ctx, r.db, func(tx *gorm.DB) error {
		var p domain.Purchase
		if err := tx.Preload("Items").First(&p, id).Error; err != nil {
			return pkg.MapError(err)
		}
		for _, item := range p.Items {
			err := tx.Model(&domain.Product{}).
				Where("id = ?", item.ProductID).
				Update("qty", gorm.Expr("CASE WHEN qty > ? THEN qty - ? ELSE 0 END", item.Qty, item.Qty)).Error
			if err != nil {
				return pkg.MapError(err)
			}
		}
		if err := tx.Where("purchase_id = ?", id).Delete(&domain.PurchaseItem{}).Error; err != nil {
			return pkg.MapError(err)
		}
		return pkg.MapError(tx.Delete(&domain.Purchase{}, id).Error)
	})
}
