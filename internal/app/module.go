package app

import "github.com/gin-gonic/gin"

// Module is a self-registering business module. Each module registers its
// routes on the /api/v1 group.
type Module interface {
	RegisterRoutes(api *gin.RouterGroup)
}
