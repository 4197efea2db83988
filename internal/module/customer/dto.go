package customer

import "github.com/simp-lee/stockroom/internal/domain"

// CustomerRequest is the body of POST and PUT /customers.
type CustomerRequest struct {
	Name    string `json:"name" form:"name" binding:"required,max=100"`
	Phone   string `json:"phone" form:"phone" binding:"max=50"`
	Address string `json:"address" form:"address" binding:"max=255"`
}

func (r CustomerRequest) input() domain.CustomerInput {
	return domain.CustomerInput{Name: r.Name, Phone: r.Phone, Address: r.Address}
}
