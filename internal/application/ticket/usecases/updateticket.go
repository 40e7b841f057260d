package usecases

import (
	"context"
	"time"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/department"
	"kontor/internal/domain/ticket"
	vo "kontor/internal/domain/ticket/valueobjects"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

type UpdateTicketCommand struct {
	Principal   access.Principal
	ActorIP     string
	TicketID    uint
	Title       string
	Description string
	Priority    string
	Departments []string
	Tags        []string
}

type UpdateTicketResult struct {
	TicketID  uint      `json:"ticket_id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	publisher  EventPublisher
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	publisher EventPublisher,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Principal.ID)

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

	var departments []department.Department
	if cmd.Departments != nil {
		departments, err = department.ParseList(cmd.Departments)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := existing.UpdateDetails(cmd.Title, cmd.Description, vo.Priority(cmd.Priority), departments, cmd.Tags); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	changes := map[string]any{}
	if len(cmd.Title) > 0 {
		changes["title"] = cmd.Title
	}
	if len(cmd.Priority) > 0 {
		changes["priority"] = cmd.Priority
	}
	if cmd.Tags != nil {
		changes["tags"] = cmd.Tags
	}
	publishMutation(uc.publisher, uc.logger, "UPDATE", existing.ID(), cmd.Principal.ID, cmd.ActorIP, changes)

	return &UpdateTicketResult{
		TicketID:  existing.ID(),
		Title:     existing.Title(),
		Status:    existing.Status().String(),
		UpdatedAt: existing.UpdatedAt(),
	}, nil
}
