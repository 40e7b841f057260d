package mappers

import (
	"fmt"

	"kontor/internal/domain/notification"
	"kontor/internal/infrastructure/persistence/models"
)

type NotificationMapper struct{}

func NewNotificationMapper() *NotificationMapper {
	return &NotificationMapper{}
}

func (m *NotificationMapper) ToModel(n *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:        n.ID(),
		UserID:    n.UserID(),
		Type:      n.Type().String(),
		Title:     n.Title(),
		Message:   n.Message(),
		ActionURL: n.ActionURL(),
		IsRead:    n.IsRead(),
		CreatedAt: n.CreatedAt(),
		ReadAt:    n.ReadAt(),
	}
}

func (m *NotificationMapper) ToDomain(model *models.NotificationModel) (*notification.Notification, error) {
	notifType, err := notification.NewType(model.Type)
	if err != nil {
		return nil, fmt.Errorf("invalid notification type (id=%d): %w", model.ID, err)
	}

	return notification.ReconstructNotification(
		model.ID,
		model.UserID,
		notifType,
		model.Title,
		model.Message,
		model.ActionURL,
		model.IsRead,
		model.CreatedAt,
		model.ReadAt,
	)
}
