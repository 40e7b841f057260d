// Package sideeffects hosts the event handlers that run after a
// mutation commits: audit trail persistence, notification fan-out,
// email delivery and the due-date reminder sweep. Handlers run on the
// dispatcher's worker goroutine; a returned error requeues the event.
package sideeffects

import (
	"context"

	"kontor/internal/domain/audit"
	"kontor/internal/domain/shared/events"
	"kontor/internal/shared/logger"
)

// AuditHandler persists exactly one audit entry per committed
// mutation. The entry is append-only; a storage failure is returned so
// the dispatcher retries the delivery.
type AuditHandler struct {
	auditRepo audit.Repository
	logger    logger.Interface
}

func NewAuditHandler(auditRepo audit.Repository, logger logger.Interface) *AuditHandler {
	return &AuditHandler{auditRepo: auditRepo, logger: logger.Named("audit")}
}

func (h *AuditHandler) CanHandle(eventType string) bool {
	return eventType == events.TypeEntityMutated
}

func (h *AuditHandler) Handle(event events.DomainEvent) error {
	mutated, ok := event.(events.EntityMutatedEvent)
	if !ok {
		return nil
	}

	action, err := audit.NewAction(mutated.Action)
	if err != nil {
		// A malformed event will never become valid; drop it loudly.
		h.logger.Errorw("dropping audit event with unknown action",
			"action", mutated.Action,
			"entity_type", mutated.EntityType,
			"entity_id", mutated.EntityID,
		)
		return nil
	}

	entry, err := audit.NewEntry(action, mutated.EntityType, mutated.EntityID, mutated.ActorID, mutated.ActorIP, mutated.Changes)
	if err != nil {
		h.logger.Errorw("dropping malformed audit event", "error", err)
		return nil
	}

	if err := h.auditRepo.Save(context.Background(), entry); err != nil {
		h.logger.Errorw("failed to persist audit entry",
			"action", mutated.Action,
			"entity_type", mutated.EntityType,
			"entity_id", mutated.EntityID,
			"error", err,
		)
		return err
	}

	return nil
}
