package usecases

import (
	"context"
	"time"

	"kontor/internal/application/deletion"
	"kontor/internal/domain/project"
	"kontor/internal/domain/shared/events"
	"kontor/internal/domain/task"
	"kontor/internal/domain/user"
	"kontor/internal/shared/logger"
)

type mockTaskRepository struct {
	SaveFunc           func(ctx context.Context, t *task.Task) error
	FindByIDFunc       func(ctx context.Context, id uint) (*task.Task, error)
	UpdateFunc         func(ctx context.Context, t *task.Task) error
	DeleteFunc         func(ctx context.Context, id uint) error
	ListFunc           func(ctx context.Context, filter task.ListFilter, offset, limit int) ([]*task.Task, int64, error)
	ListDueBetweenFunc func(ctx context.Context, from, to time.Time) ([]*task.Task, error)
}

func (m *mockTaskRepository) Save(ctx context.Context, t *task.Task) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTaskRepository) FindByID(ctx context.Context, id uint) (*task.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTaskRepository) Update(ctx context.Context, t *task.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTaskRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTaskRepository) List(ctx context.Context, filter task.ListFilter, offset, limit int) ([]*task.Task, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockTaskRepository) ListIDsByProject(ctx context.Context, projectID uint) ([]uint, error) {
	return nil, nil
}

func (m *mockTaskRepository) ListSubtaskIDs(ctx context.Context, parentTaskID uint) ([]uint, error) {
	return nil, nil
}

func (m *mockTaskRepository) ListDueBetween(ctx context.Context, from, to time.Time) ([]*task.Task, error) {
	if m.ListDueBetweenFunc != nil {
		return m.ListDueBetweenFunc(ctx, from, to)
	}
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
	DeleteTaskFunc func(ctx context.Context, taskID uint) (*deletion.Report, error)
}

func (m *mockCascader) DeleteTask(ctx context.Context, taskID uint) (*deletion.Report, error) {
	if m.DeleteTaskFunc != nil {
		return m.DeleteTaskFunc(ctx, taskID)
	}
	return &deletion.Report{Tasks: 1}, nil
}

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}
