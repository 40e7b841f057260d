package sideeffects

import (
	"context"
	"time"

	"kontor/internal/domain/audit"
	"kontor/internal/domain/notification"
	"kontor/internal/domain/shared/events"
	"kontor/internal/domain/task"
	"kontor/internal/domain/user"
	"kontor/internal/shared/logger"
)

type mockAuditRepository struct {
	audit.Repository
	SaveFunc func(ctx context.Context, entry *audit.Entry) error
}

func (m *mockAuditRepository) Save(ctx context.Context, entry *audit.Entry) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, entry)
	}
	return nil
}

type mockNotificationRepository struct {
	notification.Repository
	SaveFunc func(ctx context.Context, n *notification.Notification) error
}

func (m *mockNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, n)
	}
	return nil
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

type mockConsumerRepository struct {
	user.ConsumerRepository
	FindByIDFunc func(ctx context.Context, id uint) (*user.ConsumerUser, error)
}

func (m *mockConsumerRepository) FindByID(ctx context.Context, id uint) (*user.ConsumerUser, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockTaskRepository struct {
	task.Repository
	ListDueBetweenFunc func(ctx context.Context, from, to time.Time) ([]*task.Task, error)
}

func (m *mockTaskRepository) ListDueBetween(ctx context.Context, from, to time.Time) ([]*task.Task, error) {
	if m.ListDueBetweenFunc != nil {
		return m.ListDueBetweenFunc(ctx, from, to)
	}
	return nil, nil
}

type sentMail struct {
	To       string
	Template string
	Data     map[string]any
}

type mockMailer struct {
	Sent    []sentMail
	SendErr error
}

func (m *mockMailer) Send(to, template string, data map[string]any) error {
	m.Sent = append(m.Sent, sentMail{To: to, Template: template, Data: data})
	return m.SendErr
}

type mockEventPublisher struct {
	Published  []events.DomainEvent
	PublishErr error
}

func (m *mockEventPublisher) Publish(event events.DomainEvent) error {
	if m.PublishErr != nil {
		return m.PublishErr
	}
	m.Published = append(m.Published, event)
	return nil
}

func (m *mockEventPublisher) PublishAll(list []events.DomainEvent) error {
	for _, event := range list {
		if err := m.Publish(event); err != nil {
			return err
		}
	}
	return nil
}

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}
