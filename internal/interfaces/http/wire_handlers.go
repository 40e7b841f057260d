package http

import (
	"kontor/internal/interfaces/http/handlers"
	"kontor/internal/shared/logger"
)

type allHandlers struct {
	customer     *handlers.CustomerHandler
	project      *handlers.ProjectHandler
	task         *handlers.TaskHandler
	ticket       *handlers.TicketHandler
	comment      *handlers.CommentHandler
	user         *handlers.UserHandler
	auth         *handlers.AuthHandler
	notification *handlers.NotificationHandler
	audit        *handlers.AuditHandler
}

func newHandlers(ucs *allUseCases, log logger.Interface) *allHandlers {
	return &allHandlers{
		customer: handlers.NewCustomerHandler(
			ucs.createCustomer, ucs.updateCustomer, ucs.getCustomer,
			ucs.listCustomers, ucs.deleteCustomer, log),
		project: handlers.NewProjectHandler(
			ucs.createProject, ucs.updateProject, ucs.assignProject,
			ucs.changeProjectStatus, ucs.getProject, ucs.listProjects,
			ucs.deleteProject, log),
		task: handlers.NewTaskHandler(
			ucs.createTask, ucs.updateTask, ucs.assignTask,
			ucs.changeTaskStatus, ucs.getTask, ucs.listTasks,
			ucs.deleteTask, log),
		ticket: handlers.NewTicketHandler(
			ucs.createTicket, ucs.updateTicket, ucs.assignTicket,
			ucs.changeTicketStatus, ucs.getTicket, ucs.listTickets,
			ucs.deleteTicket, log),
		comment: handlers.NewCommentHandler(
			ucs.addComment, ucs.listComments, ucs.deleteComment, log),
		user: handlers.NewUserHandler(
			ucs.createStaffUser, ucs.updateStaffUser, ucs.deleteStaffUser,
			ucs.listStaffUsers, ucs.createConsumerUser, ucs.updateConsumerUser,
			ucs.deleteConsumerUser, ucs.listConsumerUsers, log),
		auth:         handlers.NewAuthHandler(ucs.login, ucs.logout, log),
		notification: handlers.NewNotificationHandler(ucs.feed, ucs.markRead, ucs.markAllRead, log),
		audit:        handlers.NewAuditHandler(ucs.listAuditLog, ucs.exportAuditLog, log),
	}
}
