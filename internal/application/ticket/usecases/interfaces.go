package usecases

import (
	"context"

	"kontor/internal/application/deletion"
	"kontor/internal/domain/access"
	"kontor/internal/domain/shared/events"
	"kontor/internal/domain/ticket"
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
	DeleteTicket(ctx context.Context, ticketID uint) (*deletion.Report, error)
}

func publishMutation(pub EventPublisher, log logger.Interface, action string, entityID, actorID uint, actorIP string, changes map[string]any) {
	event := events.NewEntityMutated(action, string(access.EntityTicket), entityID, actorID, actorIP, changes)
	if err := pub.Publish(event); err != nil {
		log.Warnw("failed to publish ticket mutation event", "action", action, "ticket_id", entityID, "error", err)
	}
}

// ticketScope reads the ownership attributes straight off the ticket;
// project-attached tickets already carry the owning customer.
func ticketScope(t *ticket.Ticket) *access.Scope {
	return &access.Scope{
		CustomerID: t.CustomerID(),
		AssigneeID: t.AssigneeID(),
		ReporterID: t.ReporterID(),
	}
}
