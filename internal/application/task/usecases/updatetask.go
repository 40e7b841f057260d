package usecases

import (
	"context"
	"time"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/department"
	"kontor/internal/domain/project"
	"kontor/internal/domain/task"
	vo "kontor/internal/domain/task/valueobjects"
	"kontor/internal/shared/biztime"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

type UpdateTaskCommand struct {
	Principal   access.Principal
	ActorIP     string
	TaskID      uint
	Title       string
	Description string
	Priority    string
	Departments []string
	DueDate     string // YYYY-MM-DD
}

type UpdateTaskResult struct {
	TaskID    uint      `json:"task_id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateTaskUseCase struct {
	taskRepo    task.Repository
	projectRepo project.Repository
	publisher   EventPublisher
	logger      logger.Interface
}

func NewUpdateTaskUseCase(
	taskRepo task.Repository,
	projectRepo project.Repository,
	publisher EventPublisher,
	logger logger.Interface,
) *UpdateTaskUseCase {
	return &UpdateTaskUseCase{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *UpdateTaskUseCase) Execute(ctx context.Context, cmd UpdateTaskCommand) (*UpdateTaskResult, error) {
	uc.logger.Infow("executing update task use case", "task_id", cmd.TaskID, "actor_id", cmd.Principal.ID)

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

	var departments []department.Department
	if cmd.Departments != nil {
		departments, err = department.ParseList(cmd.Departments)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	var dueDate *time.Time
	if len(cmd.DueDate) > 0 {
		parsed, err := biztime.ParseDate(cmd.DueDate)
		if err != nil {
			return nil, errors.NewValidationError("invalid due date")
		}
		dueDate = &parsed
	}

	if err := existing.UpdateDetails(cmd.Title, cmd.Description, vo.Priority(cmd.Priority), departments, dueDate); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.taskRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update task", "task_id", cmd.TaskID, "error", err)
		return nil, err
	}

	changes := map[string]any{}
	if len(cmd.Title) > 0 {
		changes["title"] = cmd.Title
	}
	if len(cmd.Priority) > 0 {
		changes["priority"] = cmd.Priority
	}
	if cmd.Departments != nil {
		changes["departments"] = cmd.Departments
	}
	if dueDate != nil {
		changes["due_date"] = cmd.DueDate
	}
	publishMutation(uc.publisher, uc.logger, "UPDATE", existing.ID(), cmd.Principal.ID, cmd.ActorIP, changes)

	return &UpdateTaskResult{
		TaskID:    existing.ID(),
		Title:     existing.Title(),
		Status:    existing.Status().String(),
		UpdatedAt: existing.UpdatedAt(),
	}, nil
}
