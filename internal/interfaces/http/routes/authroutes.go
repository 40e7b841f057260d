// Package routes registers the HTTP endpoints. Route-level permission
// checks use the coarse grant table; the use cases re-check with the
// target entity's scope.
package routes

import (
	"github.com/gin-gonic/gin"

	"kontor/internal/interfaces/http/handlers"
	"kontor/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/login", config.AuthHandler.Login)
		auth.POST("/logout", config.AuthMiddleware.RequireAuth(), config.AuthHandler.Logout)
	}
}
