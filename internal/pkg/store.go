package pkg

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/simp-lee/stockroom/internal/domain"
)

// GormRepository implements domain.Repository for one model type.
// Preloads are applied to every read.
type GormRepository[T any] struct {
	db       *gorm.DB
	preloads []string
}

// NewGormRepository creates a GormRepository over db.
func NewGormRepository[T any](db *gorm.DB, preloads ...string) *GormRepository[T] {
	return &GormRepository[T]{db: db, preloads: preloads}
}

// DB returns the underlying handle bound to ctx.
func (r *GormRepository[T]) DB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *GormRepository[T]) reader(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	return q
}

// Create inserts entity.
func (r *GormRepository[T]) Create(ctx context.Context, entity *T) error {
	return MapError(r.db.WithContext(ctx).Create(entity).Error)
}

// GetByID loads one row by primary key.
func (r *GormRepository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := r.reader(ctx).First(&entity, id).Error; err != nil {
		return nil, MapError(err)
	}
	return &entity, nil
}

// All loads every row, newest first.
func (r *GormRepository[T]) All(ctx context.Context) ([]T, error) {
	rows := make([]T, 0)
	if err := r.reader(ctx).Order("id desc").Find(&rows).Error; err != nil {
		return nil, MapError(err)
	}
	return rows, nil
}

// Count returns the number of rows.
func (r *GormRepository[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(new(T)).Count(&n).Error; err != nil {
		return 0, MapError(err)
	}
	return n, nil
}

// Update saves every column of entity.
func (r *GormRepository[T]) Update(ctx context.Context, entity *T) error {
	return MapError(r.db.WithContext(ctx).Save(entity).Error)
}

// Delete removes a row by primary key.
func (r *GormRepository[T]) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return MapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MapError converts gorm errors to domain errors. nil and *domain.AppError
// values pass through.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
		return domain.NewAppError(domain.CodeAlreadyExists, "already exists", err)
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}

// isDuplicateKeyError matches unique constraint violations by message, for
// dialectors that do not translate them to gorm.ErrDuplicatedKey (the
// pure-Go SQLite driver among them).
func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
