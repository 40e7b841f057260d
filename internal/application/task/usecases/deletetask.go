package usecases

import (
	"context"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/project"
	"kontor/internal/domain/task"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

type DeleteTaskCommand struct {
	Principal access.Principal
	ActorIP   string
	TaskID    uint
}

type DeleteTaskResult struct {
	TaskID         uint  `json:"task_id"`
	RemovedRecords int64 `json:"removed_records"`
}

type DeleteTaskUseCase struct {
	taskRepo    task.Repository
	projectRepo project.Repository
	cascader    Cascader
	publisher   EventPublisher
	logger      logger.Interface
}

func NewDeleteTaskUseCase(
	taskRepo task.Repository,
	projectRepo project.Repository,
	cascader Cascader,
	publisher EventPublisher,
	logger logger.Interface,
) *DeleteTaskUseCase {
	return &DeleteTaskUseCase{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		cascader:    cascader,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *DeleteTaskUseCase) Execute(ctx context.Context, cmd DeleteTaskCommand) (*DeleteTaskResult, error) {
	uc.logger.Infow("executing delete task use case", "task_id", cmd.TaskID, "actor_id", cmd.Principal.ID)

	if cmd.TaskID == 0 {
		return nil, errors.NewValidationError("task ID is required")
	}

	existing, err := uc.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("task not found")
	}

	// Task deletion is scope-conditional: assigned staff and reporters
	// may remove their own tasks, admins and managers any task.
	scope, err := taskScope(ctx, uc.projectRepo, existing)
	if err != nil {
		return nil, err
	}
	if err := guard.Check(cmd.Principal, access.ActionDelete, access.EntityTask, scope); err != nil {
		return nil, err
	}

	report, err := uc.cascader.DeleteTask(ctx, cmd.TaskID)
	if err != nil {
		return nil, err
	}

	publishMutation(uc.publisher, uc.logger, "DELETE", cmd.TaskID, cmd.Principal.ID, cmd.ActorIP, map[string]any{
		"title":    existing.Title(),
		"subtasks": report.Tasks - 1,
		"comments": report.Comments,
	})

	uc.logger.Infow("task deleted", "task_id", cmd.TaskID, "removed_records", report.Total())

	return &DeleteTaskResult{
		TaskID:         cmd.TaskID,
		RemovedRecords: report.Total(),
	}, nil
}
