package purchase

import "github.com/gin-gonic/gin"

// PurchaseModule implements app.Module for purchases.
type PurchaseModule struct {
	handler *PurchaseHandler
}

// NewModule creates a PurchaseModule. Panics if h is nil.
func NewModule(h *PurchaseHandler) *PurchaseModule {
	if h == nil {
		panic("purchase.NewModule: handler must not be nil")
	}
	return &PurchaseModule{handler: h}
}

// RegisterRoutes registers the purchase API routes. Purchases are not
// edited in place; delete and re-create instead.
func (m *PurchaseModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/purchases", m.handler.Create)
	api.GET("/purchases", m.handler.List)
	api.GET("/purchases/:id", m.handler.Get)
	api.DELETE("/purchases/:id", m.handler.Delete)
}
