package sale

import (
	"github.com/gin-gonic/gin"

	"github.com/simp-lee/stockroom/internal/catalog"
	"github.com/simp-lee/stockroom/internal/domain"
	"github.com/simp-lee/stockroom/internal/pkg"
)

// SaleHandler handles REST API requests for sales.
type SaleHandler struct {
	svc      domain.SaleService
	defaults pkg.QueryDefaults
}

// NewSaleHandler creates a SaleHandler.
func NewSaleHandler(svc domain.SaleService, defaults pkg.QueryDefaults) *SaleHandler {
	return &SaleHandler{svc: svc, defaults: defaults}
}

// Create handles POST /api/v1/sales. Short stock answers 422.
func (h *SaleHandler) Create(c *gin.Context) {
	var req CreateSaleRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	sale, err := h.svc.CreateSale(c.Request.Context(), req.input())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, sale)
}

// Get handles GET /api/v1/sales/:id.
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	sale, err := h.svc.GetSale(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, sale)
}

// List handles GET /api/v1/sales.
func (h *SaleHandler) List(c *gin.Context) {
	res, _ := catalog.Lookup("sales")
	q, err := pkg.ParseTableQuery(c, h.defaults, res.Filters...)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	result, err := h.svc.ListSales(c.Request.Context(), q)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}
