package domain

import "time"

// BaseModel is embedded by every persisted model. It replaces gorm.Model to
// avoid the implicit soft delete of DeletedAt.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PageResult is one page of a list endpoint. Stats, when present, is
// computed over the whole collection rather than the page.
type PageResult[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Stats      any `json:"stats,omitempty"`
}
