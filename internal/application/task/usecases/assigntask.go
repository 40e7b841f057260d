package usecases

import (
	"context"
	"time"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/project"
	"kontor/internal/domain/shared/events"
	"kontor/internal/domain/task"
	"kontor/internal/domain/user"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

// AssignTaskCommand is the quick-assign payload: only the assignee
// changes. A nil AssigneeID clears the assignment.
type AssignTaskCommand struct {
	Principal  access.Principal
	ActorIP    string
	TaskID     uint
	AssigneeID *uint
}

type AssignTaskResult struct {
	TaskID     uint      `json:"task_id"`
	AssigneeID *uint     `json:"assignee_id"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AssignTaskUseCase struct {
	taskRepo    task.Repository
	projectRepo project.Repository
	staffRepo   user.StaffRepository
	publisher   EventPublisher
	logger      logger.Interface
}

func NewAssignTaskUseCase(
	taskRepo task.Repository,
	projectRepo project.Repository,
	staffRepo user.StaffRepository,
	publisher EventPublisher,
	logger logger.Interface,
) *AssignTaskUseCase {
	return &AssignTaskUseCase{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		staffRepo:   staffRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *AssignTaskUseCase) Execute(ctx context.Context, cmd AssignTaskCommand) (*AssignTaskResult, error) {
	uc.logger.Infow("executing assign task use case", "task_id", cmd.TaskID, "actor_id", cmd.Principal.ID)

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

	scope, err := taskScope(ctx, uc.projectRepo, existing)
	if err != nil {
		return nil, err
	}
	if err := guard.Check(cmd.Principal, access.ActionUpdate, access.EntityTask, scope); err != nil {
		return nil, err
	}

	if cmd.AssigneeID != nil {
		assignee, err := uc.staffRepo.FindByID(ctx, *cmd.AssigneeID)
		if err != nil {
			return nil, err
		}
		if assignee == nil {
			return nil, errors.NewNotFoundError("assignee not found")
		}
	}

	if err := existing.AssignTo(cmd.AssigneeID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.taskRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update task assignee", "task_id", cmd.TaskID, "error", err)
		return nil, err
	}

	publishMutation(uc.publisher, uc.logger, "UPDATE", existing.ID(), cmd.Principal.ID, cmd.ActorIP, map[string]any{
		"assignee_id": cmd.AssigneeID,
	})

	if cmd.AssigneeID != nil && *cmd.AssigneeID != cmd.Principal.ID {
		assigned := events.NewEntityAssigned(string(access.EntityTask), existing.ID(), existing.Title(), *cmd.AssigneeID, cmd.Principal.ID)
		if err := uc.publisher.Publish(assigned); err != nil {
			uc.logger.Warnw("failed to publish assignment event", "task_id", existing.ID(), "error", err)
		}
	}

	return &AssignTaskResult{
		TaskID:     existing.ID(),
		AssigneeID: existing.AssigneeID(),
		UpdatedAt:  existing.UpdatedAt(),
	}, nil
}
