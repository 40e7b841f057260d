package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"kontor/internal/domain/access"
	"kontor/internal/infrastructure/auth"
	"kontor/internal/shared/authorization"
	"kontor/internal/shared/constants"
	"kontor/internal/shared/logger"
	"kontor/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, log logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     log,
	}
}

// RequireAuth verifies the bearer token and stores the principal
// attributes on the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserRole, string(claims.Role))
		c.Set(constants.ContextKeyUserKind, string(claims.Kind))
		if claims.CustomerID != nil {
			c.Set(constants.ContextKeyCustomerID, *claims.CustomerID)
		}

		c.Next()
	}
}

// PrincipalFrom rebuilds the access principal stored by RequireAuth.
// The second return value is false on unauthenticated requests.
func PrincipalFrom(c *gin.Context) (access.Principal, bool) {
	rawID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return access.Principal{}, false
	}
	userID, ok := rawID.(uint)
	if !ok {
		return access.Principal{}, false
	}

	principal := access.Principal{
		ID:   userID,
		Role: authorization.Role(c.GetString(constants.ContextKeyUserRole)),
		Kind: authorization.Kind(c.GetString(constants.ContextKeyUserKind)),
	}
	if rawCustomer, exists := c.Get(constants.ContextKeyCustomerID); exists {
		if customerID, ok := rawCustomer.(uint); ok {
			principal.CustomerID = &customerID
		}
	}

	return principal, true
}
