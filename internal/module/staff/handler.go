package staff

import (
	"github.com/gin-gonic/gin"

	"github.com/simp-lee/stockroom/internal/catalog"
	"github.com/simp-lee/stockroom/internal/domain"
	"github.com/simp-lee/stockroom/internal/pkg"
)

// StaffHandler handles REST API requests for staff.
type StaffHandler struct {
	svc      domain.StaffService
	defaults pkg.QueryDefaults
}

// NewStaffHandler creates a StaffHandler.
func NewStaffHandler(svc domain.StaffService, defaults pkg.QueryDefaults) *StaffHandler {
	return &StaffHandler{svc: svc, defaults: defaults}
}

// Create handles POST /api/v1/staff.
func (h *StaffHandler) Create(c *gin.Context) {
	var req StaffRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	st, err := h.svc.CreateStaff(c.Request.Context(), req.input())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, st)
}

// Get handles GET /api/v1/staff/:id.
func (h *StaffHandler) Get(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	st, err := h.svc.GetStaff(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, st)
}

// List handles GET /api/v1/staff. ?status=active|inactive filters.
func (h *StaffHandler) List(c *gin.Context) {
	res, _ := catalog.Lookup("staff")
	q, err := pkg.ParseTableQuery(c, h.defaults, res.Filters...)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	result, err := h.svc.ListStaff(c.Request.Context(), q)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/staff/:id.
func (h *StaffHandler) Update(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req StaffRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	st, err := h.svc.UpdateStaff(c.Request.Context(), id, req.input())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, st)
}

// Delete handles DELETE /api/v1/staff/:id.
func (h *StaffHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteStaff(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
