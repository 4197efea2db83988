package sale

import "github.com/gin-gonic/gin"

// SaleModule implements app.Module for sales.
type SaleModule struct {
	handler *SaleHandler
}

// NewModule creates a SaleModule. Panics if h is nil.
func NewModule(h *SaleHandler) *SaleModule {
	if h == nil {
		panic("sale.NewModule: handler must not be nil")
	}
	return &SaleModule{handler: h}
}

// RegisterRoutes registers the sale API routes.
func (m *SaleModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/sales", m.handler.Create)
	api.GET("/sales", m.handler.List)
	api.GET("/sales/:id", m.handler.Get)
}
