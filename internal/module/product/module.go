package product

import "github.com/gin-gonic/gin"

// ProductModule implements app.Module for products.
type ProductModule struct {
	handler *ProductHandler
}

// NewModule creates a ProductModule. Panics if h is nil.
func NewModule(h *ProductHandler) *ProductModule {
	if h == nil {
		panic("product.NewModule: handler must not be nil")
	}
	return &ProductModule{handler: h}
}

// RegisterRoutes registers the product API routes.
func (m *ProductModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/products", m.handler.Create)
	api.GET("/products", m.handler.List)
	api.GET("/products/:id", m.handler.Get)
	api.PUT("/products/:id", m.handler.Update)
	api.DELETE("/products/:id", m.handler.Delete)
}
