package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kontor/internal/application/task/usecases"
	"kontor/internal/shared/logger"
	"kontor/internal/shared/utils"
)

type TaskHandler struct {
	createUC       *usecases.CreateTaskUseCase
	updateUC       *usecases.UpdateTaskUseCase
	assignUC       *usecases.AssignTaskUseCase
	changeStatusUC *usecases.ChangeTaskStatusUseCase
	getUC          *usecases.GetTaskUseCase
	listUC         *usecases.ListTasksUseCase
	deleteUC       *usecases.DeleteTaskUseCase
	logger         logger.Interface
}

func NewTaskHandler(
	createUC *usecases.CreateTaskUseCase,
	updateUC *usecases.UpdateTaskUseCase,
	assignUC *usecases.AssignTaskUseCase,
	changeStatusUC *usecases.ChangeTaskStatusUseCase,
	getUC *usecases.GetTaskUseCase,
	listUC *usecases.ListTasksUseCase,
	deleteUC *usecases.DeleteTaskUseCase,
	log logger.Interface,
) *TaskHandler {
	return &TaskHandler{
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

type createTaskRequest struct {
	Title        string   `json:"title" binding:"required,max=200"`
	Description  string   `json:"description"`
	ProjectID    uint     `json:"project_id" binding:"required"`
	ParentTaskID *uint    `json:"parent_task_id"`
	Priority     string   `json:"priority"`
	AssigneeID   *uint    `json:"assignee_id"`
	Departments  []string `json:"departments"`
	DueDate      string   `json:"due_date"`
}

type updateTaskRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	Departments []string `json:"departments"`
	DueDate     string   `json:"due_date"`
}

// CreateTask handles POST /tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create task", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateTaskCommand{
		Principal:    principal,
		ActorIP:      utils.ClientIP(c),
		Title:        req.Title,
		Description:  req.Description,
		ProjectID:    req.ProjectID,
		ParentTaskID: req.ParentTaskID,
		Priority:     req.Priority,
		AssigneeID:   req.AssigneeID,
		Departments:  req.Departments,
		DueDate:      req.DueDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Task created successfully")
}

// UpdateTask handles PUT /tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	taskID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update task", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateTaskCommand{
		Principal:   principal,
		ActorIP:     utils.ClientIP(c),
		TaskID:      taskID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Departments: req.Departments,
		DueDate:     req.DueDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AssignTask handles POST /tasks/:id/assign
func (h *TaskHandler) AssignTask(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	taskID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.assignUC.Execute(c.Request.Context(), usecases.AssignTaskCommand{
		Principal:  principal,
		ActorIP:    utils.ClientIP(c),
		TaskID:     taskID,
		AssigneeID: req.AssigneeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ChangeTaskStatus handles PATCH /tasks/:id/status
func (h *TaskHandler) ChangeTaskStatus(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	taskID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeTaskStatusCommand{
		Principal: principal,
		ActorIP:   utils.ClientIP(c),
		TaskID:    taskID,
		NewStatus: req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetTask handles GET /tasks/:id
func (h *TaskHandler) GetTask(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	taskID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetTaskQuery{
		Principal: principal,
		TaskID:    taskID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTasks handles GET /tasks
func (h *TaskHandler) ListTasks(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	pagination := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListTasksQuery{
		Principal:    principal,
		ProjectID:    queryUint(c, "project_id"),
		CustomerID:   queryUint(c, "customer_id"),
		AssigneeID:   queryUint(c, "assignee_id"),
		ParentTaskID: queryUint(c, "parent_task_id"),
		Status:       c.Query("status"),
		Priority:     c.Query("priority"),
		Department:   c.Query("department"),
		Search:       c.Query("search"),
		TopLevelOnly: queryBool(c, "top_level_only"),
		Mine:         queryBool(c, "mine"),
		Page:         pagination.Page,
		PageSize:     pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tasks, result.Total, result.Page, result.PageSize)
}

// DeleteTask handles DELETE /tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	taskID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteTaskCommand{
		Principal: principal,
		ActorIP:   utils.ClientIP(c),
		TaskID:    taskID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Task deleted successfully", result)
}
