package usecases

import (
	"context"
	"time"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/department"
	"kontor/internal/domain/ticket"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

type GetTicketQuery struct {
	Principal access.Principal
	TicketID  uint
}

type TicketDetails struct {
	TicketID    uint       `json:"ticket_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	ProjectID   *uint      `json:"project_id"`
	CustomerID  *uint      `json:"customer_id"`
	AssigneeID  *uint      `json:"assignee_id"`
	ReporterID  *uint      `json:"reporter_id"`
	Departments []string   `json:"departments"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ResolvedAt  *time.Time `json:"resolved_at"`
	ClosedAt    *time.Time `json:"closed_at"`
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*TicketDetails, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	found, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if err := guard.CheckRead(query.Principal, access.EntityTicket, ticketScope(found)); err != nil {
		return nil, err
	}

	return mapTicketDetails(found), nil
}

func mapTicketDetails(t *ticket.Ticket) *TicketDetails {
	return &TicketDetails{
		TicketID:    t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Type:        t.Type().String(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		ProjectID:   t.ProjectID(),
		CustomerID:  t.CustomerID(),
		AssigneeID:  t.AssigneeID(),
		ReporterID:  t.ReporterID(),
		Departments: department.Strings(t.Departments()),
		Tags:        t.Tags(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
		ResolvedAt:  t.ResolvedAt(),
		ClosedAt:    t.ClosedAt(),
	}
}
