package routes

import (
	"github.com/gin-gonic/gin"

	"kontor/internal/domain/access"
	"kontor/internal/interfaces/http/handlers"
	"kontor/internal/interfaces/http/middleware"
)

type ProjectRouteConfig struct {
	ProjectHandler       *handlers.ProjectHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupProjectRoutes(engine *gin.Engine, config *ProjectRouteConfig) {
	perm := config.PermissionMiddleware

	projects := engine.Group("/projects")
	projects.Use(config.AuthMiddleware.RequireAuth())
	{
		projects.POST("",
			perm.Require(access.EntityProject, access.ActionCreate),
			config.ProjectHandler.CreateProject)
		projects.GET("",
			perm.Require(access.EntityProject, access.ActionList),
			config.ProjectHandler.ListProjects)

		// Action endpoints before the generic :id routes.
		projects.POST("/:id/assign",
			perm.Require(access.EntityProject, access.ActionUpdate),
			config.ProjectHandler.AssignProject)
		projects.PATCH("/:id/status",
			perm.Require(access.EntityProject, access.ActionUpdate),
			config.ProjectHandler.ChangeProjectStatus)

		projects.GET("/:id",
			perm.Require(access.EntityProject, access.ActionRead),
			config.ProjectHandler.GetProject)
		projects.PUT("/:id",
			perm.Require(access.EntityProject, access.ActionUpdate),
			config.ProjectHandler.UpdateProject)
		projects.DELETE("/:id",
			perm.Require(access.EntityProject, access.ActionDelete),
			config.ProjectHandler.DeleteProject)
	}
}
