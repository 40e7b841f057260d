package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kontor/internal/application/auth/usecases"
	"kontor/internal/shared/logger"
	"kontor/internal/shared/utils"
)

type AuthHandler struct {
	loginUC  *usecases.LoginUseCase
	logoutUC *usecases.LogoutUseCase
	logger   logger.Interface
}

func NewAuthHandler(loginUC *usecases.LoginUseCase, logoutUC *usecases.LogoutUseCase, log logger.Interface) *AuthHandler {
	return &AuthHandler{
		loginUC:  loginUC,
		logoutUC: logoutUC,
		logger:   log,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
		ClientIP: utils.ClientIP(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	if err := h.logoutUC.Execute(c.Request.Context(), usecases.LogoutCommand{
		Principal: principal,
		ClientIP:  utils.ClientIP(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}
