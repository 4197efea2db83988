package user

import "github.com/simp-lee/stockroom/internal/domain"

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Name     string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Username string `json:"username" form:"username" binding:"required,min=3,max=50,alphanum"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Phone    string `json:"phone" form:"phone" binding:"max=50"`
	Role     string `json:"role" form:"role" binding:"omitempty,oneof=admin manager cashier"`
	Status   string `json:"status" form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE active inactive"`
	Password string `json:"password" form:"password" binding:"required,min=8,max=72"`
}

func (r CreateUserRequest) input() domain.UserInput {
	return domain.UserInput{
		Name:     r.Name,
		Username: r.Username,
		Email:    r.Email,
		Phone:    r.Phone,
		Role:     r.Role,
		Status:   r.Status,
		Password: r.Password,
	}
}

// UpdateUserRequest is the body of PUT /users/:id. An empty password keeps
// the current one.
type UpdateUserRequest struct {
	Name     string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Username string `json:"username" form:"username" binding:"required,min=3,max=50,alphanum"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Phone    string `json:"phone" form:"phone" binding:"max=50"`
	Role     string `json:"role" form:"role" binding:"omitempty,oneof=admin manager cashier"`
	Status   string `json:"status" form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE active inactive"`
	Password string `json:"password" form:"password" binding:"omitempty,min=8,max=72"`
}

func (r UpdateUserRequest) input() domain.UserInput {
	return domain.UserInput(r)
}

// UserStatusRequest is the body of PATCH /users/:id/status.
type UserStatusRequest struct {
	Status string `json:"status" form:"status" binding:"required,oneof=ACTIVE INACTIVE active inactive"`
}
