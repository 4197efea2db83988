package supplier

import "github.com/gin-gonic/gin"

// SupplierModule implements app.Module for suppliers.
type SupplierModule struct {
	handler *SupplierHandler
}

// NewModule creates a SupplierModule. Panics if h is nil.
func NewModule(h *SupplierHandler) *SupplierModule {
	if h == nil {
		panic("supplier.NewModule: handler must not be nil")
	}
	return &SupplierModule{handler: h}
}

// RegisterRoutes registers the supplier API routes.
func (m *SupplierModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/suppliers", m.handler.Create)
	api.GET("/suppliers", m.handler.List)
	api.GET("/suppliers/:id", m.handler.Get)
	api.PUT("/suppliers/:id", m.handler.Update)
	api.DELETE("/suppliers/:id", m.handler.Delete)
}
