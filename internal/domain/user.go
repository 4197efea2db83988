package domain

import (
	"context"

	"github.com/simp-lee/stockroom/internal/table"
)

// User roles.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleCashier = "cashier"
)

// User statuses.
const (
	UserActive   = "ACTIVE"
	UserInactive = "INACTIVE"
)

// User is a back-office account.
type User struct {
	BaseModel
	Name         string `gorm:"size:100;not null" json:"name"`
	Username     string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone        string `gorm:"size:50" json:"phone"`
	Role         string `gorm:"size:20;not null;default:cashier" json:"role"`
	Status       string `gorm:"size:20;not null;default:ACTIVE" json:"status"`
	PasswordHash string `gorm:"size:255" json:"-"`
}

// UserInput carries the writable user fields. An empty Password leaves the
// stored hash unchanged on update.
type UserInput struct {
	Name     string
	Username string
	Email    string
	Phone    string
	Role     string
	Status   string
	Password string
}

// UserRepository persists users.
type UserRepository interface {
	Repository[User]
}

// UserService implements user use cases.
type UserService interface {
	CreateUser(ctx context.Context, in UserInput) (*User, error)
	GetUser(ctx context.Context, id uint) (*User, error)
	ListUsers(ctx context.Context, q table.Query) (*PageResult[User], error)
	UpdateUser(ctx context.Context, id uint, in UserInput) (*User, error)
	SetUserStatus(ctx context.Context, id uint, status string) (*User, error)
	DeleteUser(ctx context.Context, id uint) error
}
