package routes

import (
	"github.com/gin-gonic/gin"

	"kontor/internal/domain/access"
	"kontor/internal/domain/comment"
	"kontor/internal/interfaces/http/handlers"
	"kontor/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler        *handlers.TicketHandler
	CommentHandler       *handlers.CommentHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	perm := config.PermissionMiddleware

	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.POST("",
			perm.Require(access.EntityTicket, access.ActionCreate),
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			perm.Require(access.EntityTicket, access.ActionList),
			config.TicketHandler.ListTickets)

		// Action endpoints before the generic :id routes.
		tickets.POST("/:id/assign",
			perm.Require(access.EntityTicket, access.ActionUpdate),
			config.TicketHandler.AssignTicket)
		tickets.PATCH("/:id/status",
			perm.Require(access.EntityTicket, access.ActionUpdate),
			config.TicketHandler.ChangeTicketStatus)
		tickets.POST("/:id/comments",
			perm.Require(access.EntityComment, access.ActionCreate),
			config.CommentHandler.AddComment(string(comment.ParentTicket)))
		tickets.GET("/:id/comments",
			perm.Require(access.EntityComment, access.ActionList),
			config.CommentHandler.ListComments(string(comment.ParentTicket)))

		tickets.GET("/:id",
			perm.Require(access.EntityTicket, access.ActionRead),
			config.TicketHandler.GetTicket)
		tickets.PUT("/:id",
			perm.Require(access.EntityTicket, access.ActionUpdate),
			config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id",
			perm.Require(access.EntityTicket, access.ActionDelete),
			config.TicketHandler.DeleteTicket)
	}

	comments := engine.Group("/comments")
	comments.Use(config.AuthMiddleware.RequireAuth())
	{
		comments.DELETE("/:id",
			perm.Require(access.EntityComment, access.ActionDelete),
			config.CommentHandler.DeleteComment)
	}
}
