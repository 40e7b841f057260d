package usecases

import (
	"context"
	"fmt"
	"time"

	"kontor/internal/domain/access"
	"kontor/internal/domain/shared/events"
	"kontor/internal/domain/user"
	"kontor/internal/shared/biztime"
	"kontor/internal/shared/logger"
)

type mockStaffRepository struct {
	user.StaffRepository
	FindByEmailFunc func(ctx context.Context, email string) (*user.StaffUser, error)
	UpdateFunc      func(ctx context.Context, u *user.StaffUser) error
}

func (m *mockStaffRepository) FindByEmail(ctx context.Context, email string) (*user.StaffUser, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockStaffRepository) Update(ctx context.Context, u *user.StaffUser) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

type mockConsumerRepository struct {
	user.ConsumerRepository
	FindByEmailFunc func(ctx context.Context, email string) (*user.ConsumerUser, error)
	UpdateFunc      func(ctx context.Context, u *user.ConsumerUser) error
}

func (m *mockConsumerRepository) FindByEmail(ctx context.Context, email string) (*user.ConsumerUser, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockConsumerRepository) Update(ctx context.Context, u *user.ConsumerUser) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

type mockHasher struct{}

func (mockHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (mockHasher) Compare(hashedPassword, password string) error {
	if hashedPassword == "hashed:"+password {
		return nil
	}
	return fmt.Errorf("password mismatch")
}

type mockIssuer struct {
	IssueFunc func(p access.Principal, email, name string) (string, time.Time, error)
}

func (m *mockIssuer) Issue(p access.Principal, email, name string) (string, time.Time, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(p, email, name)
	}
	return "token", biztime.NowUTC().Add(time.Hour), nil
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
