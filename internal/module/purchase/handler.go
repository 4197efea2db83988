package purchase

import (
	"github.com/gin-gonic/gin"

	"github.com/simp-lee/stockroom/internal/catalog"
	"github.com/simp-lee/stockroom/internal/domain"
	"github.com/simp-lee/stockroom/internal/pkg"
)

// PurchaseHandler handles REST API requests for purchases.
type PurchaseHandler struct {
	svc      domain.PurchaseService
	defaults pkg.QueryDefaults
}

// NewPurchaseHandler creates a PurchaseHandler.
func NewPurchaseHandler(svc domain.PurchaseService, defaults pkg.QueryDefaults) *PurchaseHandler {
	return &PurchaseHandler{svc: svc, defaults: defaults}
}

// Create handles POST /api/v1/purchases.
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req CreatePurchaseRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	p, err := h.svc.CreatePurchase(c.Request.Context(), req.input())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, p)
}

// Get handles GET /api/v1/purchases/:id.
func (h *PurchaseHandler) Get(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	p, err := h.svc.GetPurchase(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, p)
}

// List handles GET /api/v1/purchases. search_field accepts all, supplier,
// date or id; dates match their printed M/D/YYYY form.
func (h *PurchaseHandler) List(c *gin.Context) {
	res, _ := catalog.Lookup("purchases")
	q, err := pkg.ParseTableQuery(c, h.defaults, res.Filters...)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	result, err := h.svc.ListPurchases(c.Request.Context(), q)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Delete handles DELETE /api/v1/purchases/:id.
func (h *PurchaseHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeletePurchase(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
