package supplier

import (
	"github.com/gin-gonic/gin"

	"github.com/simp-lee/stockroom/internal/catalog"
	"github.com/simp-lee/stockroom/internal/domain"
	"github.com/simp-lee/stockroom/internal/pkg"
)

// SupplierHandler handles REST API requests for suppliers.
type SupplierHandler struct {
	svc      domain.SupplierService
	defaults pkg.QueryDefaults
}

// NewSupplierHandler creates a SupplierHandler.
func NewSupplierHandler(svc domain.SupplierService, defaults pkg.QueryDefaults) *SupplierHandler {
	return &SupplierHandler{svc: svc, defaults: defaults}
}

// Create handles POST /api/v1/suppliers.
func (h *SupplierHandler) Create(c *gin.Context) {
	var req SupplierRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	sup, err := h.svc.CreateSupplier(c.Request.Context(), req.input())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, sup)
}

// Get handles GET /api/v1/suppliers/:id.
func (h *SupplierHandler) Get(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	sup, err := h.svc.GetSupplier(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, sup)
}

// List handles GET /api/v1/suppliers. Accepts a status filter.
func (h *SupplierHandler) List(c *gin.Context) {
	res, _ := catalog.Lookup("suppliers")
	q, err := pkg.ParseTableQuery(c, h.defaults, res.Filters...)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	result, err := h.svc.ListSuppliers(c.Request.Context(), q)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/suppliers/:id.
func (h *SupplierHandler) Update(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req SupplierRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	sup, err := h.svc.UpdateSupplier(c.Request.Context(), id, req.input())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, sup)
}

// Delete handles DELETE /api/v1/suppliers/:id.
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteSupplier(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
