package usecases

import (
	"context"

	"kontor/internal/application/deletion"
	"kontor/internal/domain/access"
	"kontor/internal/domain/project"
	"kontor/internal/domain/shared/events"
	"kontor/internal/domain/task"
	"kontor/internal/shared/logger"
)

// EventPublisher enqueues side-effect events after a committed
// mutation.
type EventPublisher interface {
	Publish(event events.DomainEvent) error
	PublishAll(events []events.DomainEvent) error
}

// Cascader performs the dependency-ordered cascade delete.
type Cascader interface {
	DeleteTask(ctx context.Context, taskID uint) (*deletion.Report, error)
}

func publishMutation(pub EventPublisher, log logger.Interface, action string, entityID, actorID uint, actorIP string, changes map[string]any) {
	event := events.NewEntityMutated(action, string(access.EntityTask), entityID, actorID, actorIP, changes)
	if err := pub.Publish(event); err != nil {
		log.Warnw("failed to publish task mutation event", "action", action, "task_id", entityID, "error", err)
	}
}

// taskScope resolves the ownership attributes of a task for the policy
// check. The owning customer comes through the project.
func taskScope(ctx context.Context, projectRepo project.Repository, t *task.Task) (*access.Scope, error) {
	owner, err := projectRepo.FindByID(ctx, t.ProjectID())
	if err != nil {
		return nil, err
	}

	scope := &access.Scope{
		AssigneeID: t.AssigneeID(),
		ReporterID: t.ReporterID(),
	}
	if owner != nil {
		customerID := owner.CustomerID()
		scope.CustomerID = &customerID
	}
	return scope, nil
}
