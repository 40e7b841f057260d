package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kontor/internal/application/comment/usecases"
	"kontor/internal/shared/logger"
	"kontor/internal/shared/utils"
)

// CommentHandler serves the comment endpoints nested under tasks and
// tickets plus the standalone delete route.
type CommentHandler struct {
	addUC    *usecases.AddCommentUseCase
	listUC   *usecases.ListCommentsUseCase
	deleteUC *usecases.DeleteCommentUseCase
	logger   logger.Interface
}

func NewCommentHandler(
	addUC *usecases.AddCommentUseCase,
	listUC *usecases.ListCommentsUseCase,
	deleteUC *usecases.DeleteCommentUseCase,
	log logger.Interface,
) *CommentHandler {
	return &CommentHandler{
		addUC:    addUC,
		listUC:   listUC,
		deleteUC: deleteUC,
		logger:   log,
	}
}

type addCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// AddComment returns a handler for POST /<parent>/:id/comments.
func (h *CommentHandler) AddComment(parentType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := requirePrincipal(c)
		if !ok {
			return
		}

		parentID, err := utils.ParseUintParam(c, "id")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		var req addCommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for add comment", "error", err)
			utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
			return
		}

		result, err := h.addUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
			Principal:  principal,
			ActorIP:    utils.ClientIP(c),
			ParentType: parentType,
			ParentID:   parentID,
			Content:    req.Content,
		})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.CreatedResponse(c, result, "Comment added successfully")
	}
}

// ListComments returns a handler for GET /<parent>/:id/comments.
func (h *CommentHandler) ListComments(parentType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := requirePrincipal(c)
		if !ok {
			return
		}

		parentID, err := utils.ParseUintParam(c, "id")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		pagination := utils.ParsePagination(c)

		result, err := h.listUC.Execute(c.Request.Context(), usecases.ListCommentsQuery{
			Principal:  principal,
			ParentType: parentType,
			ParentID:   parentID,
			Page:       pagination.Page,
			PageSize:   pagination.PageSize,
		})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.ListSuccessResponse(c, result.Comments, result.Total, result.Page, result.PageSize)
	}
}

// DeleteComment handles DELETE /comments/:id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	commentID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteCommentCommand{
		Principal: principal,
		ActorIP:   utils.ClientIP(c),
		CommentID: commentID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
