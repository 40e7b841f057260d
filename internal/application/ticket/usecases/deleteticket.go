package usecases

import (
	"context"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/ticket"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

type DeleteTicketCommand struct {
	Principal access.Principal
	ActorIP   string
	TicketID  uint
}

type DeleteTicketResult struct {
	TicketID       uint  `json:"ticket_id"`
	RemovedRecords int64 `json:"removed_records"`
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	cascader   Cascader
	publisher  EventPublisher
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	cascader Cascader,
	publisher EventPublisher,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		cascader:   cascader,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error) {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Principal.ID)

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

	if err := guard.Check(cmd.Principal, access.ActionDelete, access.EntityTicket, ticketScope(existing)); err != nil {
		return nil, err
	}

	report, err := uc.cascader.DeleteTicket(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	publishMutation(uc.publisher, uc.logger, "DELETE", cmd.TicketID, cmd.Principal.ID, cmd.ActorIP, map[string]any{
		"title":    existing.Title(),
		"comments": report.Comments,
	})

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID, "removed_records", report.Total())

	return &DeleteTicketResult{
		TicketID:       cmd.TicketID,
		RemovedRecords: report.Total(),
	}, nil
}
