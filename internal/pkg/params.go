package pkg

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/stockroom/internal/domain"
)

// ParseID reads the :id path parameter as a positive uint. A malformed id is
// a validation error.
func ParseID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 || id > uint64(^uint(0)) {
		return 0, domain.NewAppError(domain.CodeValidation, fmt.Sprintf("invalid id: %s", raw), nil)
	}
	return uint(id), nil
}
