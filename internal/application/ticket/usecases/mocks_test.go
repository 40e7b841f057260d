package usecases

import (
	"context"

	"kontor/internal/application/deletion"
	"kontor/internal/domain/customer"
	"kontor/internal/domain/project"
	"kontor/internal/domain/shared/events"
	"kontor/internal/domain/ticket"
	"kontor/internal/domain/user"
	"kontor/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc     func(ctx context.Context, t *ticket.Ticket) error
	FindByIDFunc func(ctx context.Context, id uint) (*ticket.Ticket, error)
	UpdateFunc   func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc   func(ctx context.Context, id uint) error
	ListFunc     func(ctx context.Context, filter ticket.ListFilter, offset, limit int) ([]*ticket.Ticket, int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.ListFilter, offset, limit int) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) ListIDsByProject(ctx context.Context, projectID uint) ([]uint, error) {
	return nil, nil
}

func (m *mockTicketRepository) ListIDsByCustomer(ctx context.Context, customerID uint) ([]uint, error) {
	return nil, nil
}

type mockProjectRepository struct {
	project.Repository
	FindByIDFunc func(ctx context.Context, id uint) (*project.Project, error)
}

func (m *mockProjectRepository) FindByID(ctx context.Context, id uint) (*project.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockCustomerRepository struct {
	customer.Repository
	FindByIDFunc func(ctx context.Context, id uint) (*customer.Customer, error)
}

func (m *mockCustomerRepository) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockStaffRepository struct {
	user.StaffRepository
	FindByIDFunc func(ctx context.Context, id uint) (*user.StaffUser, error)
}

func (m *mockStaffRepository) FindByID(ctx context.Context, id uint) (*user.StaffUser, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockEventPublisher struct {
	PublishFunc func(event events.DomainEvent) error
	Published   []events.DomainEvent
}

func (m *mockEventPublisher) Publish(event events.DomainEvent) error {
	m.Published = append(m.Published, event)
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockEventPublisher) PublishAll(evts []events.DomainEvent) error {
	for _, e := range evts {
		if err := m.Publish(e); err != nil {
			return err
		}
	}
	return nil
}

type mockCascader struct {
	DeleteTicketFunc func(ctx context.Context, ticketID uint) (*deletion.Report, error)
}

func (m *mockCascader) DeleteTicket(ctx context.Context, ticketID uint) (*deletion.Report, error) {
	if m.DeleteTicketFunc != nil {
		return m.DeleteTicketFunc(ctx, ticketID)
	}
	return &deletion.Report{Tickets: 1}, nil
}

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}
