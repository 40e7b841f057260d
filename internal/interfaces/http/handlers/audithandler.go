package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"kontor/internal/application/audit/usecases"
	"kontor/internal/shared/biztime"
	"kontor/internal/shared/logger"
	"kontor/internal/shared/utils"
)

type AuditHandler struct {
	listUC   *usecases.ListAuditLogUseCase
	exportUC *usecases.ExportAuditLogUseCase
	logger   logger.Interface
}

func NewAuditHandler(listUC *usecases.ListAuditLogUseCase, exportUC *usecases.ExportAuditLogUseCase, log logger.Interface) *AuditHandler {
	return &AuditHandler{
		listUC:   listUC,
		exportUC: exportUC,
		logger:   log,
	}
}

// ListAuditLog handles GET /audit-log
func (h *AuditHandler) ListAuditLog(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	pagination := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListAuditLogQuery{
		Principal:  principal,
		EntityType: c.Query("entity_type"),
		Action:     c.Query("action"),
		UserID:     queryUint(c, "user_id"),
		From:       c.Query("from"),
		To:         c.Query("to"),
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Entries, result.Total, result.Page, result.PageSize)
}

// ExportAuditLog handles GET /audit-log/export and streams CSV.
func (h *AuditHandler) ExportAuditLog(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	filename := fmt.Sprintf("audit-log-%s.csv", biztime.NowUTC().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	result, err := h.exportUC.Execute(c.Request.Context(), usecases.ExportAuditLogCommand{
		Principal:  principal,
		ActorIP:    utils.ClientIP(c),
		EntityType: c.Query("entity_type"),
		Action:     c.Query("action"),
		UserID:     queryUint(c, "user_id"),
		From:       c.Query("from"),
		To:         c.Query("to"),
	}, c.Writer)
	if err != nil {
		// Nothing written yet on guard or filter failures, so the JSON
		// error response is still safe to send.
		if c.Writer.Written() {
			h.logger.Errorw("audit export failed mid-stream", "error", err)
			return
		}
		c.Header("Content-Type", "application/json; charset=utf-8")
		c.Header("Content-Disposition", "")
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("audit log exported", "rows", result.Rows, "user_id", principal.ID)
	c.Status(http.StatusOK)
}
