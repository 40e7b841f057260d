package usecases

import (
	"context"
	"time"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/audit"
	"kontor/internal/shared/biztime"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
	"kontor/internal/shared/utils"
)

// ListAuditLogQuery pages through the audit trail. The trail is
// admin-only; there is no scoped view for other roles.
type ListAuditLogQuery struct {
	Principal  access.Principal
	EntityType string
	Action     string
	UserID     *uint
	From       string // YYYY-MM-DD
	To         string // YYYY-MM-DD
	Page       int
	PageSize   int
}

type AuditEntryDetails struct {
	EntryID    uint           `json:"entry_id"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   uint           `json:"entity_id"`
	UserID     uint           `json:"user_id"`
	IPAddress  string         `json:"ip_address"`
	Changes    map[string]any `json:"changes"`
	OccurredAt time.Time      `json:"occurred_at"`
}

type ListAuditLogResult struct {
	Entries  []*AuditEntryDetails `json:"entries"`
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
}

type ListAuditLogUseCase struct {
	auditRepo audit.Repository
	logger    logger.Interface
}

func NewListAuditLogUseCase(auditRepo audit.Repository, logger logger.Interface) *ListAuditLogUseCase {
	return &ListAuditLogUseCase{auditRepo: auditRepo, logger: logger}
}

func (uc *ListAuditLogUseCase) Execute(ctx context.Context, query ListAuditLogQuery) (*ListAuditLogResult, error) {
	if err := guard.Check(query.Principal, access.ActionList, access.EntityAuditLog, nil); err != nil {
		return nil, err
	}

	filter, err := buildFilter(query.EntityType, query.Action, query.UserID, query.From, query.To)
	if err != nil {
		return nil, err
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)
	offset := (p.Page - 1) * p.PageSize

	entries, total, err := uc.auditRepo.List(ctx, *filter, offset, p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list audit entries", "error", err)
		return nil, err
	}

	items := make([]*AuditEntryDetails, 0, len(entries))
	for _, e := range entries {
		items = append(items, mapEntry(e))
	}

	return &ListAuditLogResult{
		Entries:  items,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}

func mapEntry(e *audit.Entry) *AuditEntryDetails {
	return &AuditEntryDetails{
		EntryID:    e.ID(),
		Action:     e.Action().String(),
		EntityType: e.EntityType(),
		EntityID:   e.EntityID(),
		UserID:     e.UserID(),
		IPAddress:  e.IPAddress(),
		Changes:    e.Changes(),
		OccurredAt: e.OccurredAt(),
	}
}

func buildFilter(entityType, action string, userID *uint, from, to string) (*audit.ListFilter, error) {
	filter := &audit.ListFilter{
		EntityType: entityType,
		Action:     action,
		UserID:     userID,
	}
	if len(action) > 0 {
		if _, err := audit.NewAction(action); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if len(from) > 0 {
		parsed, err := biztime.ParseDate(from)
		if err != nil {
			return nil, errors.NewValidationError("invalid from date")
		}
		filter.From = &parsed
	}
	if len(to) > 0 {
		parsed, err := biztime.ParseDate(to)
		if err != nil {
			return nil, errors.NewValidationError("invalid to date")
		}
		// Include the whole day.
		end := parsed.Add(24*time.Hour - time.Nanosecond)
		filter.To = &end
	}
	return filter, nil
}
