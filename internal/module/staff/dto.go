package staff

import "github.com/simp-lee/stockroom/internal/domain"

// StaffRequest is the body of POST and PUT /staff. A missing status is
// active.
type StaffRequest struct {
	StaffCode string `json:"staff_id" form:"staff_id" binding:"required,max=50"`
	Name      string `json:"name" form:"name" binding:"required,max=100"`
	Phone     string `json:"phone" form:"phone" binding:"max=50"`
	Position  string `json:"position" form:"position" binding:"max=100"`
	Status    *int   `json:"status" form:"status" binding:"omitempty,oneof=0 1"`
}

func (r StaffRequest) input() domain.StaffInput {
	in := domain.StaffInput{
		StaffCode: r.StaffCode,
		Name:      r.Name,
		Phone:     r.Phone,
		Position:  r.Position,
		Status:    domain.StaffActive,
	}
	if r.Status != nil {
		in.Status = *r.Status
	}
	return in
}
