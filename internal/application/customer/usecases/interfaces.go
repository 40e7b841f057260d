package usecases

import (
	"context"

	"kontor/internal/application/deletion"
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

// Cascader performs the dependency-ordered cascade delete.
type Cascader interface {
	DeleteCustomer(ctx context.Context, customerID uint) (*deletion.Report, error)
}

// publishMutation enqueues the audit event for a committed customer
// mutation. Publish failures are logged and retried by the dispatcher,
// never surfaced to the caller.
func publishMutation(pub EventPublisher, log logger.Interface, action string, entityID, actorID uint, actorIP string, changes map[string]any) {
	event := events.NewEntityMutated(action, string(access.EntityCustomer), entityID, actorID, actorIP, changes)
	if err := pub.Publish(event); err != nil {
		log.Warnw("failed to publish customer mutation event", "action", action, "customer_id", entityID, "error", err)
	}
}
