package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kontor/internal/application/project/usecases"
	"kontor/internal/shared/logger"
	"kontor/internal/shared/utils"
)

type ProjectHandler struct {
	createUC       *usecases.CreateProjectUseCase
	updateUC       *usecases.UpdateProjectUseCase
	assignUC       *usecases.AssignProjectUseCase
	changeStatusUC *usecases.ChangeProjectStatusUseCase
	getUC          *usecases.GetProjectUseCase
	listUC         *usecases.ListProjectsUseCase
	deleteUC       *usecases.DeleteProjectUseCase
	logger         logger.Interface
}

func NewProjectHandler(
	createUC *usecases.CreateProjectUseCase,
	updateUC *usecases.UpdateProjectUseCase,
	assignUC *usecases.AssignProjectUseCase,
	changeStatusUC *usecases.ChangeProjectStatusUseCase,
	getUC *usecases.GetProjectUseCase,
	listUC *usecases.ListProjectsUseCase,
	deleteUC *usecases.DeleteProjectUseCase,
	log logger.Interface,
) *ProjectHandler {
	return &ProjectHandler{
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

type createProjectRequest struct {
	Name        string   `json:"name" binding:"required,max=200"`
	Description string   `json:"description"`
	CustomerID  uint     `json:"customer_id" binding:"required"`
	Departments []string `json:"departments"`
}

type updateProjectRequest struct {
	Name        string   `json:"name" binding:"required,max=200"`
	Description string   `json:"description"`
	Departments []string `json:"departments"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
}

type assignRequest struct {
	AssigneeID *uint `json:"assignee_id"`
}

type changeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateProject handles POST /projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create project", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateProjectCommand{
		Principal:   principal,
		ActorIP:     utils.ClientIP(c),
		Name:        req.Name,
		Description: req.Description,
		CustomerID:  req.CustomerID,
		Departments: req.Departments,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Project created successfully")
}

// UpdateProject handles PUT /projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update project", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateProjectCommand{
		Principal:   principal,
		ActorIP:     utils.ClientIP(c),
		ProjectID:   projectID,
		Name:        req.Name,
		Description: req.Description,
		Departments: req.Departments,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AssignProject handles POST /projects/:id/assign
func (h *ProjectHandler) AssignProject(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.assignUC.Execute(c.Request.Context(), usecases.AssignProjectCommand{
		Principal:  principal,
		ActorIP:    utils.ClientIP(c),
		ProjectID:  projectID,
		AssigneeID: req.AssigneeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ChangeProjectStatus handles PATCH /projects/:id/status
func (h *ProjectHandler) ChangeProjectStatus(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeProjectStatusCommand{
		Principal: principal,
		ActorIP:   utils.ClientIP(c),
		ProjectID: projectID,
		NewStatus: req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetProject handles GET /projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetProjectQuery{
		Principal: principal,
		ProjectID: projectID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListProjects handles GET /projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	pagination := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListProjectsQuery{
		Principal:  principal,
		CustomerID: queryUint(c, "customer_id"),
		Status:     c.Query("status"),
		Department: c.Query("department"),
		Search:     c.Query("search"),
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Projects, result.Total, result.Page, result.PageSize)
}

// DeleteProject handles DELETE /projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteProjectCommand{
		Principal: principal,
		ActorIP:   utils.ClientIP(c),
		ProjectID: projectID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Project deleted successfully", result)
}
