package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kontor/internal/application/ticket/usecases"
	"kontor/internal/shared/logger"
	"kontor/internal/shared/utils"
)

type TicketHandler struct {
	createUC       *usecases.CreateTicketUseCase
	updateUC       *usecases.UpdateTicketUseCase
	assignUC       *usecases.AssignTicketUseCase
	changeStatusUC *usecases.ChangeTicketStatusUseCase
	getUC          *usecases.GetTicketUseCase
	listUC         *usecases.ListTicketsUseCase
	deleteUC       *usecases.DeleteTicketUseCase
	logger         logger.Interface
}

func NewTicketHandler(
	createUC *usecases.CreateTicketUseCase,
	updateUC *usecases.UpdateTicketUseCase,
	assignUC *usecases.AssignTicketUseCase,
	changeStatusUC *usecases.ChangeTicketStatusUseCase,
	getUC *usecases.GetTicketUseCase,
	listUC *usecases.ListTicketsUseCase,
	deleteUC *usecases.DeleteTicketUseCase,
	log logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createUC:       createUC,
		updateUC:       updateUC,
		assignUC:       assignUC,
		changeStatusUC: changeStatusUC,
		getUC:          getUC,
		listUC:         listUC,
		deleteUC:       deleteUC,
		logger:         log,
	}
}

type createTicketRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description"`
	Type        string   `json:"type" binding:"required"`
	Priority    string   `json:"priority"`
	ProjectID   *uint    `json:"project_id"`
	CustomerID  *uint    `json:"customer_id"`
	AssigneeID  *uint    `json:"assignee_id"`
	Departments []string `json:"departments"`
	Tags        []string `json:"tags"`
}

type updateTicketRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	Departments []string `json:"departments"`
	Tags        []string `json:"tags"`
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req createTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Principal:   principal,
		ActorIP:     utils.ClientIP(c),
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Priority:    req.Priority,
		ProjectID:   req.ProjectID,
		CustomerID:  req.CustomerID,
		AssigneeID:  req.AssigneeID,
		Departments: req.Departments,
		Tags:        req.Tags,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// UpdateTicket handles PUT /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		Principal:   principal,
		ActorIP:     utils.ClientIP(c),
		TicketID:    ticketID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Departments: req.Departments,
		Tags:        req.Tags,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AssignTicket handles POST /tickets/:id/assign
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.assignUC.Execute(c.Request.Context(), usecases.AssignTicketCommand{
		Principal:  principal,
		ActorIP:    utils.ClientIP(c),
		TicketID:   ticketID,
		AssigneeID: req.AssigneeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ChangeTicketStatus handles PATCH /tickets/:id/status
func (h *TicketHandler) ChangeTicketStatus(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeTicketStatusCommand{
		Principal: principal,
		ActorIP:   utils.ClientIP(c),
		TicketID:  ticketID,
		NewStatus: req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		Principal: principal,
		TicketID:  ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	pagination := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		Principal:  principal,
		ProjectID:  queryUint(c, "project_id"),
		CustomerID: queryUint(c, "customer_id"),
		AssigneeID: queryUint(c, "assignee_id"),
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
		Type:       c.Query("type"),
		Department: c.Query("department"),
		Tag:        c.Query("tag"),
		Search:     c.Query("search"),
		Mine:       queryBool(c, "mine"),
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		Principal: principal,
		ActorIP:   utils.ClientIP(c),
		TicketID:  ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket deleted successfully", result)
}
