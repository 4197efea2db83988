package product

import (
	"github.com/gin-gonic/gin"

	"github.com/simp-lee/stockroom/internal/catalog"
	"github.com/simp-lee/stockroom/internal/domain"
	"github.com/simp-lee/stockroom/internal/pkg"
)

// ProductHandler handles REST API requests for products.
type ProductHandler struct {
	svc      domain.ProductService
	defaults pkg.QueryDefaults
}

// NewProductHandler creates a ProductHandler. defaults bound list paging.
func NewProductHandler(svc domain.ProductService, defaults pkg.QueryDefaults) *ProductHandler {
	return &ProductHandler{svc: svc, defaults: defaults}
}

// Create handles POST /api/v1/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	p, err := h.svc.CreateProduct(c.Request.Context(), req.input())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, p)
}

// Get handles GET /api/v1/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	p, err := h.svc.GetProduct(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, p)
}

// List handles GET /api/v1/products.
func (h *ProductHandler) List(c *gin.Context) {
	res, _ := catalog.Lookup("products")
	q, err := pkg.ParseTableQuery(c, h.defaults, res.Filters...)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	result, err := h.svc.ListProducts(c.Request.Context(), q)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req ProductRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	p, err := h.svc.UpdateProduct(c.Request.Context(), id, req.input())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, p)
}

// Delete handles DELETE /api/v1/products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteProduct(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
