package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kontor/internal/application/notification/usecases"
	"kontor/internal/shared/logger"
	"kontor/internal/shared/utils"
)

type NotificationHandler struct {
	feedUC        *usecases.FeedUseCase
	markReadUC    *usecases.MarkReadUseCase
	markAllReadUC *usecases.MarkAllReadUseCase
	logger        logger.Interface
}

func NewNotificationHandler(
	feedUC *usecases.FeedUseCase,
	markReadUC *usecases.MarkReadUseCase,
	markAllReadUC *usecases.MarkAllReadUseCase,
	log logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		feedUC:        feedUC,
		markReadUC:    markReadUC,
		markAllReadUC: markAllReadUC,
		logger:        log,
	}
}

// Feed handles GET /notifications
func (h *NotificationHandler) Feed(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	pagination := utils.ParsePagination(c)

	result, err := h.feedUC.Execute(c.Request.Context(), usecases.FeedQuery{
		Principal:  principal,
		UnreadOnly: queryBool(c, "unread_only"),
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MarkRead handles POST /notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	notificationID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.markReadUC.Execute(c.Request.Context(), usecases.MarkReadCommand{
		Principal:      principal,
		NotificationID: notificationID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}

// MarkAllRead handles POST /notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	result, err := h.markAllReadUC.Execute(c.Request.Context(), usecases.MarkAllReadCommand{
		Principal: principal,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "All notifications marked as read", result)
}
