package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kontor/internal/interfaces/http/middleware"
	"kontor/internal/interfaces/http/routes"
	"kontor/internal/shared/constants"
)

// SetupRoutes installs the global middleware chain and every route
// group on the container's engine.
func (c *Container) SetupRoutes() {
	switch c.cfg.Server.Mode {
	case constants.EnvProduction, "release":
		gin.SetMode(gin.ReleaseMode)
	case constants.EnvTest:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	c.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		AuthHandler:    c.hdlrs.auth,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupCustomerRoutes(c.engine, &routes.CustomerRouteConfig{
		CustomerHandler:      c.hdlrs.customer,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupProjectRoutes(c.engine, &routes.ProjectRouteConfig{
		ProjectHandler:       c.hdlrs.project,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupTaskRoutes(c.engine, &routes.TaskRouteConfig{
		TaskHandler:          c.hdlrs.task,
		CommentHandler:       c.hdlrs.comment,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupTicketRoutes(c.engine, &routes.TicketRouteConfig{
		TicketHandler:        c.hdlrs.ticket,
		CommentHandler:       c.hdlrs.comment,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupUserRoutes(c.engine, &routes.UserRouteConfig{
		UserHandler:          c.hdlrs.user,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupNotificationRoutes(c.engine, &routes.NotificationRouteConfig{
		NotificationHandler: c.hdlrs.notification,
		AuthMiddleware:      c.authMiddleware,
	})

	routes.SetupAuditRoutes(c.engine, &routes.AuditRouteConfig{
		AuditHandler:         c.hdlrs.audit,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
}
