package dashboard

import "github.com/gin-gonic/gin"

// DashboardModule implements app.Module for the dashboard panels.
type DashboardModule struct {
	handler *DashboardHandler
}

// NewModule creates a DashboardModule. Panics if h is nil.
func NewModule(h *DashboardHandler) *DashboardModule {
	if h == nil {
		panic("dashboard.NewModule: handler must not be nil")
	}
	return &DashboardModule{handler: h}
}

// RegisterRoutes registers the dashboard API routes.
func (m *DashboardModule) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/dashboard", m.handler.Summary)
	api.GET("/dashboard/alerts", m.handler.Alerts)
	api.GET("/dashboard/activity", m.handler.Activity)
	api.GET("/notifications", m.handler.Notifications)
}
