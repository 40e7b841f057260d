package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"kontor/internal/shared/errors"
)

// ParseUintParam parses a positive integer path parameter.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("invalid " + name + " parameter")
	}
	return uint(id), nil
}

// ClientIP returns the caller address recorded on audit entries.
func ClientIP(c *gin.Context) string {
	return c.ClientIP()
}
