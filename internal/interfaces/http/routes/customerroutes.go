package routes

import (
	"github.com/gin-gonic/gin"

	"kontor/internal/domain/access"
	"kontor/internal/interfaces/http/handlers"
	"kontor/internal/interfaces/http/middleware"
)

type CustomerRouteConfig struct {
	CustomerHandler      *handlers.CustomerHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupCustomerRoutes(engine *gin.Engine, config *CustomerRouteConfig) {
	perm := config.PermissionMiddleware

	customers := engine.Group("/customers")
	customers.Use(config.AuthMiddleware.RequireAuth())
	{
		customers.POST("",
			perm.Require(access.EntityCustomer, access.ActionCreate),
			config.CustomerHandler.CreateCustomer)
		customers.GET("",
			perm.Require(access.EntityCustomer, access.ActionList),
			config.CustomerHandler.ListCustomers)

		customers.GET("/:id",
			perm.Require(access.EntityCustomer, access.ActionRead),
			config.CustomerHandler.GetCustomer)
		customers.PUT("/:id",
			perm.Require(access.EntityCustomer, access.ActionUpdate),
			config.CustomerHandler.UpdateCustomer)
		customers.DELETE("/:id",
			perm.Require(access.EntityCustomer, access.ActionDelete),
			config.CustomerHandler.DeleteCustomer)
	}
}
