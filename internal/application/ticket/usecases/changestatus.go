package usecases

import (
	"context"
	"time"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/shared/events"
	"kontor/internal/domain/ticket"
	vo "kontor/internal/domain/ticket/valueobjects"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

type ChangeTicketStatusCommand struct {
	Principal access.Principal
	ActorIP   string
	TicketID  uint
	NewStatus string
}

type ChangeTicketStatusResult struct {
	TicketID  uint      `json:"ticket_id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ChangeTicketStatusUseCase struct {
	ticketRepo ticket.Repository
	publisher  EventPublisher
	logger     logger.Interface
}

func NewChangeTicketStatusUseCase(
	ticketRepo ticket.Repository,
	publisher EventPublisher,
	logger logger.Interface,
) *ChangeTicketStatusUseCase {
	return &ChangeTicketStatusUseCase{
		ticketRepo: ticketRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *ChangeTicketStatusUseCase) Execute(ctx context.Context, cmd ChangeTicketStatusCommand) (*ChangeTicketStatusResult, error) {
	uc.logger.Infow("executing change ticket status use case", "ticket_id", cmd.TicketID, "new_status", cmd.NewStatus, "actor_id", cmd.Principal.ID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	newStatus, err := vo.NewTicketStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if err := guard.Check(cmd.Principal, access.ActionUpdate, access.EntityTicket, ticketScope(existing)); err != nil {
		return nil, err
	}

	oldStatus := existing.Status()
	if err := existing.ChangeStatus(newStatus); err != nil {
		uc.logger.Warnw("illegal ticket status transition",
			"ticket_id", cmd.TicketID,
			"from", oldStatus.String(),
			"to", newStatus.String(),
		)
		return nil, errors.NewInvalidTransitionError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	publishMutation(uc.publisher, uc.logger, "UPDATE", existing.ID(), cmd.Principal.ID, cmd.ActorIP, map[string]any{
		"status": map[string]string{"from": oldStatus.String(), "to": newStatus.String()},
	})

	if oldStatus != newStatus {
		statusEvent := events.NewStatusChanged(
			string(access.EntityTicket),
			existing.ID(),
			existing.Title(),
			oldStatus.String(),
			newStatus.String(),
			cmd.Principal.ID,
			existing.AssigneeID(),
			existing.ReporterID(),
		)
		if err := uc.publisher.Publish(statusEvent); err != nil {
			uc.logger.Warnw("failed to publish status change event", "ticket_id", existing.ID(), "error", err)
		}
	}

	return &ChangeTicketStatusResult{
		TicketID:  existing.ID(),
		OldStatus: oldStatus.String(),
		NewStatus: newStatus.String(),
		UpdatedAt: existing.UpdatedAt(),
	}, nil
}
