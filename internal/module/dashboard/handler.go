package dashboard

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/stockroom/internal/domain"
	"github.com/simp-lee/stockroom/internal/pkg"
)

// DashboardHandler handles the dashboard API.
type DashboardHandler struct {
	svc domain.DashboardService
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc domain.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Summary handles GET /api/v1/dashboard.
func (h *DashboardHandler) Summary(c *gin.Context) {
	d, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, d)
}

// Alerts handles GET /api/v1/dashboard/alerts.
func (h *DashboardHandler) Alerts(c *gin.Context) {
	a, err := h.svc.Alerts(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, a)
}

// Activity handles GET /api/v1/dashboard/activity?limit=N.
func (h *DashboardHandler) Activity(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	views, err := h.svc.Activity(c.Request.Context(), limit)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, views)
}

// Notifications handles GET /api/v1/notifications?limit=N.
func (h *DashboardHandler) Notifications(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	list, err := h.svc.Notifications(c.Request.Context(), limit)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, list)
}

// parseLimit reads ?limit. Missing means 0, the configured default.
func parseLimit(c *gin.Context) (int, error) {
	raw := strings.TrimSpace(c.Query("limit"))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, domain.NewAppError(domain.CodeValidation, "limit must be a non-negative integer", err)
	}
	return n, nil
}
