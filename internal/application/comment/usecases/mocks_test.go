package usecases

import (
	"context"

	"kontor/internal/domain/comment"
	"kontor/internal/domain/project"
	"kontor/internal/domain/shared/events"
	"kontor/internal/domain/task"
	"kontor/internal/domain/ticket"
	"kontor/internal/shared/logger"
)

type mockCommentRepository struct {
	SaveFunc         func(ctx context.Context, c *comment.Comment) error
	FindByIDFunc     func(ctx context.Context, id uint) (*comment.Comment, error)
	DeleteFunc       func(ctx context.Context, id uint) error
	ListByParentFunc func(ctx context.Context, parentType comment.ParentType, parentID uint, offset, limit int) ([]*comment.Comment, int64, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, c *comment.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) FindByID(ctx context.Context, id uint) (*comment.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCommentRepository) ListByParent(ctx context.Context, parentType comment.ParentType, parentID uint, offset, limit int) ([]*comment.Comment, int64, error) {
	if m.ListByParentFunc != nil {
		return m.ListByParentFunc(ctx, parentType, parentID, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockCommentRepository) DeleteByParent(ctx context.Context, parentType comment.ParentType, parentID uint) (int64, error) {
	return 0, nil
}

func (m *mockCommentRepository) CountByParent(ctx context.Context, parentType comment.ParentType, parentID uint) (int64, error) {
	return 0, nil
}

type mockTaskRepository struct {
	task.Repository
	FindByIDFunc func(ctx context.Context, id uint) (*task.Task, error)
}

func (m *mockTaskRepository) FindByID(ctx context.Context, id uint) (*task.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockTicketRepository struct {
	ticket.Repository
	FindByIDFunc func(ctx context.Context, id uint) (*ticket.Ticket, error)
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
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

type stubRenderer struct{}

func (stubRenderer) Render(markdown string) (string, error) {
	return "<p>" + markdown + "</p>", nil
}

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}
