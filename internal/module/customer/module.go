package customer

import "github.com/gin-gonic/gin"

// CustomerModule implements app.Module for customers.
type CustomerModule struct {
	handler *CustomerHandler
}

// NewModule creates a CustomerModule. Panics if h is nil.
func NewModule(h *CustomerHandler) *CustomerModule {
	if h == nil {
		panic("customer.NewModule: handler must not be nil")
	}
	return &CustomerModule{handler: h}
}

// RegisterRoutes registers the customer API routes.
func (m *CustomerModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/customers", m.handler.Create)
	api.GET("/customers", m.handler.List)
	api.GET("/customers/:id", m.handler.Get)
	api.PUT("/customers/:id", m.handler.Update)
	api.DELETE("/customers/:id", m.handler.Delete)
}
