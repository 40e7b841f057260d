package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kontor/internal/application/user/usecases"
	"kontor/internal/shared/logger"
	"kontor/internal/shared/utils"
)

type UserHandler struct {
	createStaffUC    *usecases.CreateStaffUserUseCase
	updateStaffUC    *usecases.UpdateStaffUserUseCase
	deleteStaffUC    *usecases.DeleteStaffUserUseCase
	listStaffUC      *usecases.ListStaffUsersUseCase
	createConsumerUC *usecases.CreateConsumerUserUseCase
	updateConsumerUC *usecases.UpdateConsumerUserUseCase
	deleteConsumerUC *usecases.DeleteConsumerUserUseCase
	listConsumersUC  *usecases.ListConsumerUsersUseCase
	logger           logger.Interface
}

func NewUserHandler(
	createStaffUC *usecases.CreateStaffUserUseCase,
	updateStaffUC *usecases.UpdateStaffUserUseCase,
	deleteStaffUC *usecases.DeleteStaffUserUseCase,
	listStaffUC *usecases.ListStaffUsersUseCase,
	createConsumerUC *usecases.CreateConsumerUserUseCase,
	updateConsumerUC *usecases.UpdateConsumerUserUseCase,
	deleteConsumerUC *usecases.DeleteConsumerUserUseCase,
	listConsumersUC *usecases.ListConsumerUsersUseCase,
	log logger.Interface,
) *UserHandler {
	return &UserHandler{
		createStaffUC:    createStaffUC,
		updateStaffUC:    updateStaffUC,
		deleteStaffUC:    deleteStaffUC,
		listStaffUC:      listStaffUC,
		createConsumerUC: createConsumerUC,
		updateConsumerUC: updateConsumerUC,
		deleteConsumerUC: deleteConsumerUC,
		listConsumersUC:  listConsumersUC,
		logger:           log,
	}
}

type createStaffUserRequest struct {
	Email       string   `json:"email" binding:"required,email"`
	Name        string   `json:"name" binding:"required,max=200"`
	Password    string   `json:"password" binding:"required,min=8"`
	Role        string   `json:"role" binding:"required"`
	Departments []string `json:"departments"`
}

type updateStaffUserRequest struct {
	Name        string   `json:"name" binding:"required,max=200"`
	Role        string   `json:"role" binding:"required"`
	Status      string   `json:"status" binding:"required"`
	Departments []string `json:"departments"`
}

type createConsumerUserRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Name       string `json:"name" binding:"required,max=200"`
	Password   string `json:"password" binding:"required,min=8"`
	CustomerID uint   `json:"customer_id" binding:"required"`
}

type updateConsumerUserRequest struct {
	Name   string `json:"name" binding:"required,max=200"`
	Status string `json:"status" binding:"required"`
}

// CreateStaffUser handles POST /users/staff
func (h *UserHandler) CreateStaffUser(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req createStaffUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create staff user", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.createStaffUC.Execute(c.Request.Context(), usecases.CreateStaffUserCommand{
		Principal:   principal,
		ActorIP:     utils.ClientIP(c),
		Email:       req.Email,
		Name:        req.Name,
		Password:    req.Password,
		Role:        req.Role,
		Departments: req.Departments,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Staff user created successfully")
}

// UpdateStaffUser handles PUT /users/staff/:id
func (h *UserHandler) UpdateStaffUser(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	userID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateStaffUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update staff user", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.updateStaffUC.Execute(c.Request.Context(), usecases.UpdateStaffUserCommand{
		Principal:   principal,
		ActorIP:     utils.ClientIP(c),
		UserID:      userID,
		Name:        req.Name,
		Role:        req.Role,
		Status:      req.Status,
		Departments: req.Departments,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteStaffUser handles DELETE /users/staff/:id
func (h *UserHandler) DeleteStaffUser(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	userID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteStaffUC.Execute(c.Request.Context(), usecases.DeleteStaffUserCommand{
		Principal: principal,
		ActorIP:   utils.ClientIP(c),
		UserID:    userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListStaffUsers handles GET /users/staff
func (h *UserHandler) ListStaffUsers(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	pagination := utils.ParsePagination(c)

	result, err := h.listStaffUC.Execute(c.Request.Context(), usecases.ListStaffUsersQuery{
		Principal:  principal,
		Role:       c.Query("role"),
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

	utils.ListSuccessResponse(c, result.Users, result.Total, result.Page, result.PageSize)
}

// CreateConsumerUser handles POST /users/consumers
func (h *UserHandler) CreateConsumerUser(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req createConsumerUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create consumer user", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.createConsumerUC.Execute(c.Request.Context(), usecases.CreateConsumerUserCommand{
		Principal:  principal,
		ActorIP:    utils.ClientIP(c),
		Email:      req.Email,
		Name:       req.Name,
		Password:   req.Password,
		CustomerID: req.CustomerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Consumer user created successfully")
}

// UpdateConsumerUser handles PUT /users/consumers/:id
func (h *UserHandler) UpdateConsumerUser(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	userID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateConsumerUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update consumer user", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.updateConsumerUC.Execute(c.Request.Context(), usecases.UpdateConsumerUserCommand{
		Principal: principal,
		ActorIP:   utils.ClientIP(c),
		UserID:    userID,
		Name:      req.Name,
		Status:    req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteConsumerUser handles DELETE /users/consumers/:id
func (h *UserHandler) DeleteConsumerUser(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	userID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteConsumerUC.Execute(c.Request.Context(), usecases.DeleteConsumerUserCommand{
		Principal: principal,
		ActorIP:   utils.ClientIP(c),
		UserID:    userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListConsumerUsers handles GET /users/consumers
func (h *UserHandler) ListConsumerUsers(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	pagination := utils.ParsePagination(c)

	result, err := h.listConsumersUC.Execute(c.Request.Context(), usecases.ListConsumerUsersQuery{
		Principal:  principal,
		CustomerID: queryUint(c, "customer_id"),
		Status:     c.Query("status"),
		Search:     c.Query("search"),
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, result.Page, result.PageSize)
}
