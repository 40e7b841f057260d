package mappers

import (
	"fmt"

	"kontor/internal/domain/audit"
	"kontor/internal/infrastructure/persistence/models"
)

type AuditMapper struct{}

func NewAuditMapper() *AuditMapper {
	return &AuditMapper{}
}

func (m *AuditMapper) ToModel(e *audit.Entry) *models.AuditLogModel {
	return &models.AuditLogModel{
		ID:         e.ID(),
		Action:     e.Action().String(),
		EntityType: e.EntityType(),
		EntityID:   e.EntityID(),
		UserID:     e.UserID(),
		IPAddress:  e.IPAddress(),
		Changes:    toJSON(e.Changes()),
		OccurredAt: e.OccurredAt(),
	}
}

func (m *AuditMapper) ToDomain(model *models.AuditLogModel) (*audit.Entry, error) {
	action, err := audit.NewAction(model.Action)
	if err != nil {
		return nil, fmt.Errorf("invalid audit action (id=%d): %w", model.ID, err)
	}

	var changes map[string]any
	if err := fromJSON(model.Changes, &changes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal audit changes (id=%d): %w", model.ID, err)
	}

	return audit.ReconstructEntry(
		model.ID,
		action,
		model.EntityType,
		model.EntityID,
		model.UserID,
		model.IPAddress,
		changes,
		model.OccurredAt,
	)
}
