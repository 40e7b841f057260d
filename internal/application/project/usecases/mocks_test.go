package usecases

import (
	"context"

	"kontor/internal/application/deletion"
	"kontor/internal/domain/customer"
	"kontor/internal/domain/project"
	"kontor/internal/domain/shared/events"
	"kontor/internal/domain/user"
	"kontor/internal/shared/logger"
)

type mockProjectRepository struct {
	SaveFunc              func(ctx context.Context, p *project.Project) error
	FindByIDFunc          func(ctx context.Context, id uint) (*project.Project, error)
	UpdateFunc            func(ctx context.Context, p *project.Project) error
	DeleteFunc            func(ctx context.Context, id uint) error
	ListFunc              func(ctx context.Context, filter project.ListFilter, offset, limit int) ([]*project.Project, int64, error)
	ListIDsByCustomerFunc func(ctx context.Context, customerID uint) ([]uint, error)
}

func (m *mockProjectRepository) Save(ctx context.Context, p *project.Project) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) FindByID(ctx context.Context, id uint) (*project.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProjectRepository) Update(ctx context.Context, p *project.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockProjectRepository) List(ctx context.Context, filter project.ListFilter, offset, limit int) ([]*project.Project, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockProjectRepository) ListIDsByCustomer(ctx context.Context, customerID uint) ([]uint, error) {
	if m.ListIDsByCustomerFunc != nil {
		return m.ListIDsByCustomerFunc(ctx, customerID)
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
	DeleteProjectFunc func(ctx context.Context, projectID uint) (*deletion.Report, error)
}

func (m *mockCascader) DeleteProject(ctx context.Context, projectID uint) (*deletion.Report, error) {
	if m.DeleteProjectFunc != nil {
		return m.DeleteProjectFunc(ctx, projectID)
	}
	return &deletion.Report{Projects: 1}, nil
}

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}
