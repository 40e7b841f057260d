package usecases

import (
	"context"

	"kontor/internal/application/deletion"
	"kontor/internal/domain/customer"
	"kontor/internal/domain/shared/events"
	"kontor/internal/shared/logger"
)

type mockCustomerRepository struct {
	SaveFunc          func(ctx context.Context, c *customer.Customer) error
	FindByIDFunc      func(ctx context.Context, id uint) (*customer.Customer, error)
	UpdateFunc        func(ctx context.Context, c *customer.Customer) error
	DeleteFunc        func(ctx context.Context, id uint) error
	ListFunc          func(ctx context.Context, filter customer.ListFilter, offset, limit int) ([]*customer.Customer, int64, error)
	ExistsByVatIDFunc func(ctx context.Context, vatID string) (bool, error)
}

func (m *mockCustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCustomerRepository) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCustomerRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCustomerRepository) List(ctx context.Context, filter customer.ListFilter, offset, limit int) ([]*customer.Customer, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockCustomerRepository) ExistsByVatID(ctx context.Context, vatID string) (bool, error) {
	if m.ExistsByVatIDFunc != nil {
		return m.ExistsByVatIDFunc(ctx, vatID)
	}
	return false, nil
}

type mockEventPublisher struct {
	PublishFunc    func(event events.DomainEvent) error
	PublishAllFunc func(evts []events.DomainEvent) error
	Published      []events.DomainEvent
}

func (m *mockEventPublisher) Publish(event events.DomainEvent) error {
	m.Published = append(m.Published, event)
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockEventPublisher) PublishAll(evts []events.DomainEvent) error {
	m.Published = append(m.Published, evts...)
	if m.PublishAllFunc != nil {
		return m.PublishAllFunc(evts)
	}
	return nil
}

type mockCascader struct {
	DeleteCustomerFunc func(ctx context.Context, customerID uint) (*deletion.Report, error)
}

func (m *mockCascader) DeleteCustomer(ctx context.Context, customerID uint) (*deletion.Report, error) {
	if m.DeleteCustomerFunc != nil {
		return m.DeleteCustomerFunc(ctx, customerID)
	}
	return &deletion.Report{Customers: 1}, nil
}

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}
