package routes

import (
	"github.com/gin-gonic/gin"

	"kontor/internal/domain/access"
	"kontor/internal/domain/comment"
	"kontor/internal/interfaces/http/handlers"
	"kontor/internal/interfaces/http/middleware"
)

type TaskRouteConfig struct {
	TaskHandler          *handlers.TaskHandler
	CommentHandler       *handlers.CommentHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupTaskRoutes(engine *gin.Engine, config *TaskRouteConfig) {
	perm := config.PermissionMiddleware

	tasks := engine.Group("/tasks")
	tasks.Use(config.AuthMiddleware.RequireAuth())
	{
		tasks.POST("",
			perm.Require(access.EntityTask, access.ActionCreate),
			config.TaskHandler.CreateTask)
		tasks.GET("",
			perm.Require(access.EntityTask, access.ActionList),
			config.TaskHandler.ListTasks)

		// Action endpoints before the generic :id routes.
		tasks.POST("/:id/assign",
			perm.Require(access.EntityTask, access.ActionUpdate),
			config.TaskHandler.AssignTask)
		tasks.PATCH("/:id/status",
			perm.Require(access.EntityTask, access.ActionUpdate),
			config.TaskHandler.ChangeTaskStatus)
		tasks.POST("/:id/comments",
			perm.Require(access.EntityComment, access.ActionCreate),
			config.CommentHandler.AddComment(string(comment.ParentTask)))
		tasks.GET("/:id/comments",
			perm.Require(access.EntityComment, access.ActionList),
			config.CommentHandler.ListComments(string(comment.ParentTask)))

		tasks.GET("/:id",
			perm.Require(access.EntityTask, access.ActionRead),
			config.TaskHandler.GetTask)
		tasks.PUT("/:id",
			perm.Require(access.EntityTask, access.ActionUpdate),
			config.TaskHandler.UpdateTask)
		tasks.DELETE("/:id",
			perm.Require(access.EntityTask, access.ActionDelete),
			config.TaskHandler.DeleteTask)
	}
}
