package user

import (
	"gorm.io/gorm"

	"github.com/simp-lee/stockroom/internal/domain"
	"github.com/simp-lee/stockroom/internal/pkg"
)

// userRepository implements domain.UserRepository using GORM.
type userRepository struct {
	*pkg.GormRepository[domain.User]
}

// NewUserRepository creates a new UserRepository backed by the given GORM database.
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepository{GormRepository: pkg.NewGormRepository[domain.User](db)}
}
