package routes

import (
	"github.com/gin-gonic/gin"

	"kontor/internal/interfaces/http/handlers"
	"kontor/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler *handlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupNotificationRoutes wires the notification feed. Every role may
// read its own feed, so there is no route-level permission check; the
// use cases scope strictly to the requesting principal.
func SetupNotificationRoutes(engine *gin.Engine, config *NotificationRouteConfig) {
	notifications := engine.Group("/notifications")
	notifications.Use(config.AuthMiddleware.RequireAuth())
	{
		notifications.GET("", config.NotificationHandler.Feed)
		notifications.POST("/read-all", config.NotificationHandler.MarkAllRead)
		notifications.POST("/:id/read", config.NotificationHandler.MarkRead)
	}
}
