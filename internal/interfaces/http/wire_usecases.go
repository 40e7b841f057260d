package http

import (
	auditUC "kontor/internal/application/audit/usecases"
	authUC "kontor/internal/application/auth/usecases"
	commentUC "kontor/internal/application/comment/usecases"
	customerUC "kontor/internal/application/customer/usecases"
	"kontor/internal/application/deletion"
	notificationUC "kontor/internal/application/notification/usecases"
	projectUC "kontor/internal/application/project/usecases"
	taskUC "kontor/internal/application/task/usecases"
	ticketUC "kontor/internal/application/ticket/usecases"
	userUC "kontor/internal/application/user/usecases"
	"kontor/internal/domain/shared/events"
	"kontor/internal/infrastructure/auth"
	"kontor/internal/shared/logger"
	"kontor/internal/shared/services/markdown"
)

type allUseCases struct {
	createCustomer *customerUC.CreateCustomerUseCase
	updateCustomer *customerUC.UpdateCustomerUseCase
	getCustomer    *customerUC.GetCustomerUseCase
	listCustomers  *customerUC.ListCustomersUseCase
	deleteCustomer *customerUC.DeleteCustomerUseCase

	createProject       *projectUC.CreateProjectUseCase
	updateProject       *projectUC.UpdateProjectUseCase
	assignProject       *projectUC.AssignProjectUseCase
	changeProjectStatus *projectUC.ChangeProjectStatusUseCase
	getProject          *projectUC.GetProjectUseCase
	listProjects        *projectUC.ListProjectsUseCase
	deleteProject       *projectUC.DeleteProjectUseCase

	createTask       *taskUC.CreateTaskUseCase
	updateTask       *taskUC.UpdateTaskUseCase
	assignTask       *taskUC.AssignTaskUseCase
	changeTaskStatus *taskUC.ChangeTaskStatusUseCase
	getTask          *taskUC.GetTaskUseCase
	listTasks        *taskUC.ListTasksUseCase
	deleteTask       *taskUC.DeleteTaskUseCase

	createTicket       *ticketUC.CreateTicketUseCase
	updateTicket       *ticketUC.UpdateTicketUseCase
	assignTicket       *ticketUC.AssignTicketUseCase
	changeTicketStatus *ticketUC.ChangeTicketStatusUseCase
	getTicket          *ticketUC.GetTicketUseCase
	listTickets        *ticketUC.ListTicketsUseCase
	deleteTicket       *ticketUC.DeleteTicketUseCase

	addComment    *commentUC.AddCommentUseCase
	listComments  *commentUC.ListCommentsUseCase
	deleteComment *commentUC.DeleteCommentUseCase

	createStaffUser    *userUC.CreateStaffUserUseCase
	updateStaffUser    *userUC.UpdateStaffUserUseCase
	deleteStaffUser    *userUC.DeleteStaffUserUseCase
	listStaffUsers     *userUC.ListStaffUsersUseCase
	createConsumerUser *userUC.CreateConsumerUserUseCase
	updateConsumerUser *userUC.UpdateConsumerUserUseCase
	deleteConsumerUser *userUC.DeleteConsumerUserUseCase
	listConsumerUsers  *userUC.ListConsumerUsersUseCase

	login  *authUC.LoginUseCase
	logout *authUC.LogoutUseCase

	feed        *notificationUC.FeedUseCase
	markRead    *notificationUC.MarkReadUseCase
	markAllRead *notificationUC.MarkAllReadUseCase

	listAuditLog   *auditUC.ListAuditLogUseCase
	exportAuditLog *auditUC.ExportAuditLogUseCase
}

// markdownRenderer adapts the markdown service to the comment read
// model's renderer port.
type markdownRenderer struct {
	svc markdown.Service
}

func (r *markdownRenderer) Render(md string) (string, error) {
	return r.svc.ToHTMLSanitized(md)
}

func newUseCases(
	repos *repositories,
	cascader *deletion.CascadeDeleter,
	publisher events.EventPublisher,
	hasher *auth.BcryptPasswordHasher,
	jwtService *auth.JWTService,
	log logger.Interface,
) *allUseCases {
	renderer := &markdownRenderer{svc: markdown.NewService()}

	return &allUseCases{
		createCustomer: customerUC.NewCreateCustomerUseCase(repos.customer, publisher, log),
		updateCustomer: customerUC.NewUpdateCustomerUseCase(repos.customer, publisher, log),
		getCustomer:    customerUC.NewGetCustomerUseCase(repos.customer, log),
		listCustomers:  customerUC.NewListCustomersUseCase(repos.customer, log),
		deleteCustomer: customerUC.NewDeleteCustomerUseCase(repos.customer, cascader, publisher, log),

		createProject:       projectUC.NewCreateProjectUseCase(repos.project, repos.customer, publisher, log),
		updateProject:       projectUC.NewUpdateProjectUseCase(repos.project, publisher, log),
		assignProject:       projectUC.NewAssignProjectUseCase(repos.project, repos.staffUser, publisher, log),
		changeProjectStatus: projectUC.NewChangeProjectStatusUseCase(repos.project, publisher, log),
		getProject:          projectUC.NewGetProjectUseCase(repos.project, log),
		listProjects:        projectUC.NewListProjectsUseCase(repos.project, log),
		deleteProject:       projectUC.NewDeleteProjectUseCase(repos.project, cascader, publisher, log),

		createTask:       taskUC.NewCreateTaskUseCase(repos.task, repos.project, publisher, log),
		updateTask:       taskUC.NewUpdateTaskUseCase(repos.task, repos.project, publisher, log),
		assignTask:       taskUC.NewAssignTaskUseCase(repos.task, repos.project, repos.staffUser, publisher, log),
		changeTaskStatus: taskUC.NewChangeTaskStatusUseCase(repos.task, repos.project, publisher, log),
		getTask:          taskUC.NewGetTaskUseCase(repos.task, repos.project, log),
		listTasks:        taskUC.NewListTasksUseCase(repos.task, log),
		deleteTask:       taskUC.NewDeleteTaskUseCase(repos.task, repos.project, cascader, publisher, log),

		createTicket:       ticketUC.NewCreateTicketUseCase(repos.ticket, repos.project, repos.customer, publisher, log),
		updateTicket:       ticketUC.NewUpdateTicketUseCase(repos.ticket, publisher, log),
		assignTicket:       ticketUC.NewAssignTicketUseCase(repos.ticket, repos.staffUser, publisher, log),
		changeTicketStatus: ticketUC.NewChangeTicketStatusUseCase(repos.ticket, publisher, log),
		getTicket:          ticketUC.NewGetTicketUseCase(repos.ticket, log),
		listTickets:        ticketUC.NewListTicketsUseCase(repos.ticket, log),
		deleteTicket:       ticketUC.NewDeleteTicketUseCase(repos.ticket, cascader, publisher, log),

		addComment:    commentUC.NewAddCommentUseCase(repos.comment, repos.task, repos.ticket, repos.project, publisher, log),
		listComments:  commentUC.NewListCommentsUseCase(repos.comment, repos.task, repos.ticket, repos.project, renderer, log),
		deleteComment: commentUC.NewDeleteCommentUseCase(repos.comment, publisher, log),

		createStaffUser:    userUC.NewCreateStaffUserUseCase(repos.staffUser, hasher, publisher, log),
		updateStaffUser:    userUC.NewUpdateStaffUserUseCase(repos.staffUser, publisher, log),
		deleteStaffUser:    userUC.NewDeleteStaffUserUseCase(repos.staffUser, publisher, log),
		listStaffUsers:     userUC.NewListStaffUsersUseCase(repos.staffUser, log),
		createConsumerUser: userUC.NewCreateConsumerUserUseCase(repos.consumerUser, repos.customer, hasher, publisher, log),
		updateConsumerUser: userUC.NewUpdateConsumerUserUseCase(repos.consumerUser, publisher, log),
		deleteConsumerUser: userUC.NewDeleteConsumerUserUseCase(repos.consumerUser, publisher, log),
		listConsumerUsers:  userUC.NewListConsumerUsersUseCase(repos.consumerUser, log),

		login:  authUC.NewLoginUseCase(repos.staffUser, repos.consumerUser, hasher, jwtService, publisher, log),
		logout: authUC.NewLogoutUseCase(publisher, log),

		feed:        notificationUC.NewFeedUseCase(repos.notification, log),
		markRead:    notificationUC.NewMarkReadUseCase(repos.notification, log),
		markAllRead: notificationUC.NewMarkAllReadUseCase(repos.notification, log),

		listAuditLog:   auditUC.NewListAuditLogUseCase(repos.audit, log),
		exportAuditLog: auditUC.NewExportAuditLogUseCase(repos.audit, log),
	}
}
