package usecases

import (
	"context"

	"kontor/internal/domain/access"
	"kontor/internal/domain/comment"
	"kontor/internal/domain/project"
	"kontor/internal/domain/shared/events"
	"kontor/internal/domain/task"
	"kontor/internal/domain/ticket"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

// EventPublisher enqueues side-effect events after a committed
// mutation.
type EventPublisher interface {
	Publish(event events.DomainEvent) error
	PublishAll(events []events.DomainEvent) error
}

// Renderer converts comment markdown into sanitized HTML for display.
type Renderer interface {
	Render(markdown string) (string, error)
}

func publishMutation(pub EventPublisher, log logger.Interface, action string, entityID, actorID uint, actorIP string, changes map[string]any) {
	event := events.NewEntityMutated(action, string(access.EntityComment), entityID, actorID, actorIP, changes)
	if err := pub.Publish(event); err != nil {
		log.Warnw("failed to publish comment mutation event", "action", action, "comment_id", entityID, "error", err)
	}
}

// parentRef carries the ownership attributes of a comment's parent,
// used both for the policy check and for notifying the people attached
// to the parent.
type parentRef struct {
	Title      string
	CustomerID *uint
	AssigneeID *uint
	ReporterID *uint
}

func (p parentRef) Scope() *access.Scope {
	return &access.Scope{
		CustomerID: p.CustomerID,
		AssigneeID: p.AssigneeID,
		ReporterID: p.ReporterID,
	}
}

// parentResolver looks up a comment's parent entity. Task ownership is
// resolved through the owning project.
type parentResolver struct {
	taskRepo    task.Repository
	ticketRepo  ticket.Repository
	projectRepo project.Repository
}

func (r *parentResolver) Resolve(ctx context.Context, parentType comment.ParentType, parentID uint) (*parentRef, error) {
	switch parentType {
	case comment.ParentTask:
		t, err := r.taskRepo.FindByID(ctx, parentID)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, errors.NewNotFoundError("task not found")
		}
		ref := &parentRef{
			Title:      t.Title(),
			AssigneeID: t.AssigneeID(),
			ReporterID: t.ReporterID(),
		}
		owner, err := r.projectRepo.FindByID(ctx, t.ProjectID())
		if err != nil {
			return nil, err
		}
		if owner != nil {
			customerID := owner.CustomerID()
			ref.CustomerID = &customerID
		}
		return ref, nil
	case comment.ParentTicket:
		t, err := r.ticketRepo.FindByID(ctx, parentID)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return &parentRef{
			Title:      t.Title(),
			CustomerID: t.CustomerID(),
			AssigneeID: t.AssigneeID(),
			ReporterID: t.ReporterID(),
		}, nil
	default:
		return nil, errors.NewValidationError("invalid comment parent type")
	}
}
