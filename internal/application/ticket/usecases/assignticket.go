package usecases

import (
	"context"
	"time"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/shared/events"
	"kontor/internal/domain/ticket"
	"kontor/internal/domain/user"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

// AssignTicketCommand is the quick-assign payload: only the assignee
// changes. A nil AssigneeID clears the assignment.
type AssignTicketCommand struct {
	Principal  access.Principal
	ActorIP    string
	TicketID   uint
	AssigneeID *uint
}

type AssignTicketResult struct {
	TicketID   uint      `json:"ticket_id"`
	AssigneeID *uint     `json:"assignee_id"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AssignTicketUseCase struct {
	ticketRepo ticket.Repository
	staffRepo  user.StaffRepository
	publisher  EventPublisher
	logger     logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.Repository,
	staffRepo user.StaffRepository,
	publisher EventPublisher,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		staffRepo:  staffRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error) {
	uc.logger.Infow("executing assign ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Principal.ID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
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

	if cmd.AssigneeID != nil {
		assignee, err := uc.staffRepo.FindByID(ctx, *cmd.AssigneeID)
		if err != nil {
			return nil, err
		}
		if assignee == nil {
			return nil, errors.NewNotFoundError("assignee not found")
		}
	}

	if err := existing.AssignTo(cmd.AssigneeID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update ticket assignee", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	publishMutation(uc.publisher, uc.logger, "UPDATE", existing.ID(), cmd.Principal.ID, cmd.ActorIP, map[string]any{
		"assignee_id": cmd.AssigneeID,
	})

	if cmd.AssigneeID != nil && *cmd.AssigneeID != cmd.Principal.ID {
		assigned := events.NewEntityAssigned(string(access.EntityTicket), existing.ID(), existing.Title(), *cmd.AssigneeID, cmd.Principal.ID)
		if err := uc.publisher.Publish(assigned); err != nil {
			uc.logger.Warnw("failed to publish assignment event", "ticket_id", existing.ID(), "error", err)
		}
	}

	return &AssignTicketResult{
		TicketID:   existing.ID(),
		AssigneeID: existing.AssigneeID(),
		UpdatedAt:  existing.UpdatedAt(),
	}, nil
}
