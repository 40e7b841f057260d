package routes

import (
	"github.com/gin-gonic/gin"

	"kontor/internal/domain/access"
	"kontor/internal/interfaces/http/handlers"
	"kontor/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler          *handlers.UserHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	perm := config.PermissionMiddleware

	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		staff := users.Group("/staff")
		{
			staff.POST("",
				perm.Require(access.EntityStaffUser, access.ActionCreate),
				config.UserHandler.CreateStaffUser)
			staff.GET("",
				perm.Require(access.EntityStaffUser, access.ActionList),
				config.UserHandler.ListStaffUsers)
			staff.PUT("/:id",
				perm.Require(access.EntityStaffUser, access.ActionUpdate),
				config.UserHandler.UpdateStaffUser)
			staff.DELETE("/:id",
				perm.Require(access.EntityStaffUser, access.ActionDelete),
				config.UserHandler.DeleteStaffUser)
		}

		consumers := users.Group("/consumers")
		{
			consumers.POST("",
				perm.Require(access.EntityConsumerUser, access.ActionCreate),
				config.UserHandler.CreateConsumerUser)
			consumers.GET("",
				perm.Require(access.EntityConsumerUser, access.ActionList),
				config.UserHandler.ListConsumerUsers)
			consumers.PUT("/:id",
				perm.Require(access.EntityConsumerUser, access.ActionUpdate),
				config.UserHandler.UpdateConsumerUser)
			consumers.DELETE("/:id",
				perm.Require(access.EntityConsumerUser, access.ActionDelete),
				config.UserHandler.DeleteConsumerUser)
		}
	}
}
