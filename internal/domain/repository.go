package domain

import "context"

// Repository is the persistence contract shared by every CRUD resource.
// All returns the full collection, newest first; list endpoints filter, sort
// and paginate it in memory.
type Repository[T any] interface {
	Create(ctx context.Context, entity *T) error
	GetByID(ctx context.Context, id uint) (*T, error)
	All(ctx context.Context) ([]T, error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uint) error
}
