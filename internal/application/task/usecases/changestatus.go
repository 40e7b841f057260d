package usecases

import (
	"context"
	"time"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/project"
	"kontor/internal/domain/shared/events"
	"kontor/internal/domain/task"
	vo "kontor/internal/domain/task/valueobjects"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

type ChangeTaskStatusCommand struct {
	Principal access.Principal
	ActorIP   string
	TaskID    uint
	NewStatus string
}

type ChangeTaskStatusResult struct {
	TaskID    uint      `json:"task_id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ChangeTaskStatusUseCase struct {
	taskRepo    task.Repository
	projectRepo project.Repository
	publisher   EventPublisher
	logger      logger.Interface
}

func NewChangeTaskStatusUseCase(
	taskRepo task.Repository,
	projectRepo project.Repository,
	publisher EventPublisher,
	logger logger.Interface,
) *ChangeTaskStatusUseCase {
	return &ChangeTaskStatusUseCase{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *ChangeTaskStatusUseCase) Execute(ctx context.Context, cmd ChangeTaskStatusCommand) (*ChangeTaskStatusResult, error) {
	uc.logger.Infow("executing change task status use case", "task_id", cmd.TaskID, "new_status", cmd.NewStatus, "actor_id", cmd.Principal.ID)

	if cmd.TaskID == 0 {
		return nil, errors.NewValidationError("task ID is required")
	}

	newStatus, err := vo.NewTaskStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("task not found")
	}

	scope, err := taskScope(ctx, uc.projectRepo, existing)
	if err != nil {
		return nil, err
	}
	if err := guard.Check(cmd.Principal, access.ActionUpdate, access.EntityTask, scope); err != nil {
		return nil, err
	}

	oldStatus := existing.Status()
	if err := existing.ChangeStatus(newStatus, cmd.Principal.Role); err != nil {
		uc.logger.Warnw("illegal task status transition",
			"task_id", cmd.TaskID,
			"from", oldStatus.String(),
			"to", newStatus.String(),
			"role", cmd.Principal.Role,
		)
		return nil, errors.NewInvalidTransitionError(err.Error())
	}

	if err := uc.taskRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update task", "task_id", cmd.TaskID, "error", err)
		return nil, err
	}

	publishMutation(uc.publisher, uc.logger, "UPDATE", existing.ID(), cmd.Principal.ID, cmd.ActorIP, map[string]any{
		"status": map[string]string{"from": oldStatus.String(), "to": newStatus.String()},
	})

	if oldStatus != newStatus {
		statusEvent := events.NewStatusChanged(
			string(access.EntityTask),
			existing.ID(),
			existing.Title(),
			oldStatus.String(),
			newStatus.String(),
			cmd.Principal.ID,
			existing.AssigneeID(),
			existing.ReporterID(),
		)
		if err := uc.publisher.Publish(statusEvent); err != nil {
			uc.logger.Warnw("failed to publish status change event", "task_id", existing.ID(), "error", err)
		}
	}

	return &ChangeTaskStatusResult{
		TaskID:    existing.ID(),
		OldStatus: oldStatus.String(),
		NewStatus: newStatus.String(),
		UpdatedAt: existing.UpdatedAt(),
	}, nil
}
