package user

import "github.com/gin-gonic/gin"

// UserModule mounts the back-office account endpoints.
type UserModule struct {
	handler *UserHandler
}

// NewModule panics if h is nil.
func NewModule(h *UserHandler) *UserModule {
	if h == nil {
		panic("user.NewModule: handler must not be nil")
	}
	return &UserModule{handler: h}
}

// RegisterRoutes mounts /users under api.
func (m *UserModule) RegisterRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")
	users.GET("", m.handler.List)
	users.POST("", m.handler.Create)
	users.GET("/:id", m.handler.Get)
	users.PUT("/:id", m.handler.Update)
	users.PATCH("/:id/status", m.handler.SetStatus)
	users.DELETE("/:id", m.handler.Delete)
}
