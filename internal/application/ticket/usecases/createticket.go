package usecases

import (
	"context"
	"time"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/customer"
	"kontor/internal/domain/department"
	"kontor/internal/domain/project"
	"kontor/internal/domain/ticket"
	vo "kontor/internal/domain/ticket/valueobjects"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

// CreateTicketCommand opens a ticket either against a project or
// directly against a customer. Consumer principals are always pinned to
// their own customer, whatever the payload says.
type CreateTicketCommand struct {
	Principal   access.Principal
	ActorIP     string
	Title       string
	Description string
	Type        string
	Priority    string
	ProjectID   *uint
	CustomerID  *uint
	AssigneeID  *uint
	Departments []string
	Tags        []string
}

type CreateTicketResult struct {
	TicketID   uint      `json:"ticket_id"`
	Title      string    `json:"title"`
	Status     string    `json:"status"`
	ProjectID  *uint     `json:"project_id"`
	CustomerID *uint     `json:"customer_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateTicketUseCase struct {
	ticketRepo   ticket.Repository
	projectRepo  project.Repository
	customerRepo customer.Repository
	publisher    EventPublisher
	logger       logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	projectRepo project.Repository,
	customerRepo customer.Repository,
	publisher EventPublisher,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:   ticketRepo,
		projectRepo:  projectRepo,
		customerRepo: customerRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "actor_id", cmd.Principal.ID)

	if err := guard.Check(cmd.Principal, access.ActionCreate, access.EntityTicket, createScope(cmd.Principal)); err != nil {
		return nil, err
	}

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	departments, err := department.ParseList(cmd.Departments)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	reporterID := cmd.Principal.ID
	newTicket, err := ticket.NewTicket(cmd.Title, cmd.Description, vo.TicketType(cmd.Type), vo.Priority(cmd.Priority), &reporterID, departments, cmd.Tags)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.attach(ctx, cmd, newTicket); err != nil {
		return nil, err
	}

	if cmd.AssigneeID != nil && !cmd.Principal.IsConsumer() {
		if err := newTicket.AssignTo(cmd.AssigneeID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	publishMutation(uc.publisher, uc.logger, "CREATE", newTicket.ID(), cmd.Principal.ID, cmd.ActorIP, map[string]any{
		"title":  newTicket.Title(),
		"type":   newTicket.Type().String(),
		"status": newTicket.Status().String(),
	})

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID())

	return &CreateTicketResult{
		TicketID:   newTicket.ID(),
		Title:      newTicket.Title(),
		Status:     newTicket.Status().String(),
		ProjectID:  newTicket.ProjectID(),
		CustomerID: newTicket.CustomerID(),
		CreatedAt:  newTicket.CreatedAt(),
	}, nil
}

// attach resolves the ticket's home. Consumers land on their own
// customer; staff may target a project or a customer directly.
func (uc *CreateTicketUseCase) attach(ctx context.Context, cmd CreateTicketCommand, newTicket *ticket.Ticket) error {
	if cmd.Principal.IsConsumer() {
		if cmd.Principal.CustomerID == nil {
			return errors.NewForbiddenError("not allowed")
		}
		if cmd.ProjectID != nil {
			owner, err := uc.projectRepo.FindByID(ctx, *cmd.ProjectID)
			if err != nil {
				return err
			}
			// A foreign project must look like a missing one.
			if owner == nil || owner.CustomerID() != *cmd.Principal.CustomerID {
				return errors.NewNotFoundError("project not found")
			}
			return newTicket.AttachToProject(owner.ID(), owner.CustomerID())
		}
		return newTicket.AttachToCustomer(*cmd.Principal.CustomerID)
	}

	if cmd.ProjectID != nil {
		owner, err := uc.projectRepo.FindByID(ctx, *cmd.ProjectID)
		if err != nil {
			return err
		}
		if owner == nil {
			return errors.NewNotFoundError("project not found")
		}
		return newTicket.AttachToProject(owner.ID(), owner.CustomerID())
	}

	if cmd.CustomerID != nil {
		owner, err := uc.customerRepo.FindByID(ctx, *cmd.CustomerID)
		if err != nil {
			return err
		}
		if owner == nil {
			return errors.NewNotFoundError("customer not found")
		}
		return newTicket.AttachToCustomer(owner.ID())
	}

	return errors.NewValidationError("a project or customer is required")
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}
	if len(cmd.Title) > 200 {
		return errors.NewValidationError("title exceeds maximum length of 200 characters")
	}
	if !vo.TicketType(cmd.Type).IsValid() {
		return errors.NewValidationError("invalid ticket type")
	}
	if !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}
	return nil
}

func createScope(p access.Principal) *access.Scope {
	if p.IsConsumer() {
		return &access.Scope{CustomerID: p.CustomerID}
	}
	return nil
}
