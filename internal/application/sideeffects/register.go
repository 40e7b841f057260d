package sideeffects

import (
	"fmt"

	"kontor/internal/domain/shared/events"
)

// Register subscribes the side-effect handlers to the dispatcher.
func Register(subscriber events.EventSubscriber, auditHandler *AuditHandler, notificationHandler *NotificationHandler) error {
	if err := subscriber.Subscribe(events.TypeEntityMutated, auditHandler); err != nil {
		return fmt.Errorf("failed to subscribe audit handler: %w", err)
	}

	notified := []string{
		events.TypeEntityAssigned,
		events.TypeStatusChanged,
		events.TypeCommentAdded,
		events.TypeTaskDueSoon,
	}
	for _, eventType := range notified {
		if err := subscriber.Subscribe(eventType, notificationHandler); err != nil {
			return fmt.Errorf("failed to subscribe notification handler to %s: %w", eventType, err)
		}
	}

	return nil
}
