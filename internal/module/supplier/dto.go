package supplier

import "github.com/simp-lee/stockroom/internal/domain"

// SupplierRequest is the body of POST and PUT /suppliers. An empty status
// is stored as active.
type SupplierRequest struct {
	Name        string `json:"name" form:"name" binding:"required,max=100"`
	PhoneFirst  string `json:"phone_first" form:"phone_first" binding:"max=50"`
	PhoneSecond string `json:"phone_second" form:"phone_second" binding:"max=50"`
	Address     string `json:"address" form:"address" binding:"max=255"`
	Status      string `json:"status" form:"status" binding:"omitempty,oneof=active inactive suspended blocked pending"`
}

func (r SupplierRequest) input() domain.SupplierInput {
	return domain.SupplierInput{
		Name:        r.Name,
		PhoneFirst:  r.PhoneFirst,
		PhoneSecond: r.PhoneSecond,
		Address:     r.Address,
		Status:      r.Status,
	}
}
