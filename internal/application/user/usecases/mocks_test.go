package usecases

import (
	"context"
	"fmt"

	"kontor/internal/domain/customer"
	"kontor/internal/domain/shared/events"
	"kontor/internal/domain/user"
	"kontor/internal/shared/logger"
)

type mockStaffRepository struct {
	user.StaffRepository
	SaveFunc          func(ctx context.Context, u *user.StaffUser) error
	FindByIDFunc      func(ctx context.Context, id uint) (*user.StaffUser, error)
	UpdateFunc        func(ctx context.Context, u *user.StaffUser) error
	DeleteFunc        func(ctx context.Context, id uint) error
	ListFunc          func(ctx context.Context, filter user.StaffListFilter, offset, limit int) ([]*user.StaffUser, int64, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
}

func (m *mockStaffRepository) Save(ctx context.Context, u *user.StaffUser) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockStaffRepository) FindByID(ctx context.Context, id uint) (*user.StaffUser, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockStaffRepository) Update(ctx context.Context, u *user.StaffUser) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockStaffRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockStaffRepository) List(ctx context.Context, filter user.StaffListFilter, offset, limit int) ([]*user.StaffUser, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockStaffRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

type mockConsumerRepository struct {
	user.ConsumerRepository
	SaveFunc          func(ctx context.Context, u *user.ConsumerUser) error
	FindByIDFunc      func(ctx context.Context, id uint) (*user.ConsumerUser, error)
	UpdateFunc        func(ctx context.Context, u *user.ConsumerUser) error
	ListFunc          func(ctx context.Context, filter user.ConsumerListFilter, offset, limit int) ([]*user.ConsumerUser, int64, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
}

func (m *mockConsumerRepository) Save(ctx context.Context, u *user.ConsumerUser) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockConsumerRepository) FindByID(ctx context.Context, id uint) (*user.ConsumerUser, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockConsumerRepository) Update(ctx context.Context, u *user.ConsumerUser) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockConsumerRepository) List(ctx context.Context, filter user.ConsumerListFilter, offset, limit int) ([]*user.ConsumerUser, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockConsumerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
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

type mockHasher struct {
	HashFunc func(password string) (string, error)
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Compare(hashedPassword, password string) error {
	if hashedPassword == "hashed:"+password {
		return nil
	}
	return fmt.Errorf("password mismatch")
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

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}
