package usecases

import (
	"kontor/internal/domain/access"
	"kontor/internal/domain/shared/events"
	"kontor/internal/shared/logger"
)

// EventPublisher enqueues side-effect events after a committed
// mutation.
type EventPublisher interface {
	Publish(event events.DomainEvent) error
	PublishAll(events []events.DomainEvent) error
}

// PasswordHasher hides the bcrypt dependency from the use cases.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}

func publishMutation(pub EventPublisher, log logger.Interface, action string, entity access.EntityType, entityID, actorID uint, actorIP string, changes map[string]any) {
	event := events.NewEntityMutated(action, string(entity), entityID, actorID, actorIP, changes)
	if err := pub.Publish(event); err != nil {
		log.Warnw("failed to publish user mutation event", "action", action, "entity", entity, "user_id", entityID, "error", err)
	}
}
