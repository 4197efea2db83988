package app

import (
	"github.com/gin-gonic/gin"

	"github.com/simp-lee/stockroom/internal/pkg"
)

// errorHandler answers with the standard envelope and a fixed status.
func errorHandler(code int, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(code, pkg.Response{
			Code:    code,
			Message: message,
			Data:    nil,
		})
	}
}
