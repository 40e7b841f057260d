package routes

import (
	"github.com/gin-gonic/gin"

	"kontor/internal/domain/access"
	"kontor/internal/interfaces/http/handlers"
	"kontor/internal/interfaces/http/middleware"
)

type AuditRouteConfig struct {
	AuditHandler         *handlers.AuditHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupAuditRoutes(engine *gin.Engine, config *AuditRouteConfig) {
	perm := config.PermissionMiddleware

	auditLog := engine.Group("/audit-log")
	auditLog.Use(config.AuthMiddleware.RequireAuth())
	{
		auditLog.GET("",
			perm.Require(access.EntityAuditLog, access.ActionList),
			config.AuditHandler.ListAuditLog)
		auditLog.GET("/export",
			perm.Require(access.EntityAuditLog, access.ActionList),
			config.AuditHandler.ExportAuditLog)
	}
}
