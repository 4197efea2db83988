package customer

import (
	"github.com/gin-gonic/gin"

	"github.com/simp-lee/stockroom/internal/catalog"
	"github.com/simp-lee/stockroom/internal/domain"
	"github.com/simp-lee/stockroom/internal/pkg"
)

// CustomerHandler handles REST API requests for customers.
type CustomerHandler struct {
	svc      domain.CustomerService
	defaults pkg.QueryDefaults
}

// NewCustomerHandler creates a CustomerHandler.
func NewCustomerHandler(svc domain.CustomerService, defaults pkg.QueryDefaults) *CustomerHandler {
	return &CustomerHandler{svc: svc, defaults: defaults}
}

// Create handles POST /api/v1/customers.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req CustomerRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	customer, err := h.svc.CreateCustomer(c.Request.Context(), req.input())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, customer)
}

// Get handles GET /api/v1/customers/:id.
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	customer, err := h.svc.GetCustomer(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, customer)
}

// List handles GET /api/v1/customers.
func (h *CustomerHandler) List(c *gin.Context) {
	res, _ := catalog.Lookup("customers")
	q, err := pkg.ParseTableQuery(c, h.defaults, res.Filters...)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	result, err := h.svc.ListCustomers(c.Request.Context(), q)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/customers/:id.
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req CustomerRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	customer, err := h.svc.UpdateCustomer(c.Request.Context(), id, req.input())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, customer)
}

// Delete handles DELETE /api/v1/customers/:id.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteCustomer(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
