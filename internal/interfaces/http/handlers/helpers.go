// Package handlers translates HTTP requests into use case commands and
// use case results into API responses. No business rules live here.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kontor/internal/domain/access"
	"kontor/internal/interfaces/http/middleware"
	"kontor/internal/shared/utils"
)

// requirePrincipal fetches the authenticated principal or writes a 401.
func requirePrincipal(c *gin.Context) (access.Principal, bool) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
	}
	return principal, ok
}

// queryUint parses an optional positive integer query parameter.
func queryUint(c *gin.Context, key string) *uint {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		return nil
	}
	value := uint(parsed)
	return &value
}

// queryBool parses a boolean query parameter, false when absent.
func queryBool(c *gin.Context, key string) bool {
	raw := c.Query(key)
	return raw == "true" || raw == "1"
}
