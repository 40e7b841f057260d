package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kontor/internal/domain/access"
	"kontor/internal/infrastructure/permission"
	"kontor/internal/shared/constants"
	"kontor/internal/shared/logger"
	"kontor/internal/shared/utils"
)

// PermissionMiddleware performs the route-level coarse grant check.
// Scope conditions on the target entity are enforced again inside the
// use cases, so a pass here is necessary but not sufficient.
type PermissionMiddleware struct {
	enforcer *permission.Enforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer *permission.Enforcer, log logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   log,
	}
}

func (m *PermissionMiddleware) Require(entity access.EntityType, action access.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyUserRole)
		if role == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		allowed, err := m.enforcer.Enforce(role, string(entity), string(action))
		if err != nil {
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied",
				"role", role, "entity", entity, "action", action, "path", c.Request.URL.Path)
			utils.ErrorResponse(c, http.StatusForbidden, "not allowed")
			c.Abort()
			return
		}

		c.Next()
	}
}
