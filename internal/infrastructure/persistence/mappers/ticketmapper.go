package mappers

import (
	"fmt"

	"kontor/internal/domain/ticket"
	vo "kontor/internal/domain/ticket/valueobjects"
	"kontor/internal/infrastructure/persistence/models"
)

type TicketMapper struct{}

func NewTicketMapper() *TicketMapper {
	return &TicketMapper{}
}

func (m *TicketMapper) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Type:        t.Type().String(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		ProjectID:   t.ProjectID(),
		CustomerID:  t.CustomerID(),
		AssigneeID:  t.AssigneeID(),
		ReporterID:  t.ReporterID(),
		Departments: departmentsToJSON(t.Departments()),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
		ResolvedAt:  t.ResolvedAt(),
		ClosedAt:    t.ClosedAt(),
	}

	if len(t.Tags()) > 0 {
		model.Tags = toJSON(t.Tags())
	}

	return model
}

func (m *TicketMapper) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	ticketType, err := vo.NewTicketType(model.Type)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket type (id=%d): %w", model.ID, err)
	}
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket status (id=%d): %w", model.ID, err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket priority (id=%d): %w", model.ID, err)
	}

	departments, err := departmentsFromJSON(model.Departments)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal ticket departments (id=%d): %w", model.ID, err)
	}

	var tags []string
	if err := fromJSON(model.Tags, &tags); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ticket tags (id=%d): %w", model.ID, err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		ticketType,
		status,
		priority,
		model.ProjectID,
		model.CustomerID,
		model.AssigneeID,
		model.ReporterID,
		departments,
		tags,
		model.CreatedAt,
		model.UpdatedAt,
		model.ResolvedAt,
		model.ClosedAt,
	)
}
