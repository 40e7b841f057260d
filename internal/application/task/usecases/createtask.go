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

type CreateTaskCommand struct {
	Principal    access.Principal
	ActorIP      string
	Title        string
	Description  string
	ProjectID    uint
	ParentTaskID *uint
	Priority     string
	AssigneeID   *uint
	Departments  []string
	DueDate      string // YYYY-MM-DD, optional
}

type CreateTaskResult struct {
	TaskID       uint      `json:"task_id"`
	Title        string    `json:"title"`
	ProjectID    uint      `json:"project_id"`
	ParentTaskID *uint     `json:"parent_task_id"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateTaskUseCase struct {
	taskRepo    task.Repository
	projectRepo project.Repository
	publisher   EventPublisher
	logger      logger.Interface
}

func NewCreateTaskUseCase(
	taskRepo task.Repository,
	projectRepo project.Repository,
	publisher EventPublisher,
	logger logger.Interface,
) *CreateTaskUseCase {
	return &CreateTaskUseCase{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *CreateTaskUseCase) Execute(ctx context.Context, cmd CreateTaskCommand) (*CreateTaskResult, error) {
	uc.logger.Infow("executing create task use case", "title", cmd.Title, "project_id", cmd.ProjectID, "actor_id", cmd.Principal.ID)

	if err := guard.Check(cmd.Principal, access.ActionCreate, access.EntityTask, nil); err != nil {
		return nil, err
	}

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	owner, err := uc.projectRepo.FindByID(ctx, cmd.ProjectID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, errors.NewNotFoundError("project not found")
	}

	departments, err := department.ParseList(cmd.Departments)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	reporterID := cmd.Principal.ID
	newTask, err := task.NewTask(cmd.Title, cmd.Description, cmd.ProjectID, vo.Priority(cmd.Priority), &reporterID, departments)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.ParentTaskID != nil {
		parent, err := uc.taskRepo.FindByID(ctx, *cmd.ParentTaskID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, errors.NewNotFoundError("parent task not found")
		}
		// Depth is capped at one: a subtask can never parent another.
		if err := newTask.AttachToParent(parent); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.AssigneeID != nil {
		if err := newTask.AssignTo(cmd.AssigneeID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if len(cmd.DueDate) > 0 {
		due, err := biztime.ParseDate(cmd.DueDate)
		if err != nil {
			return nil, errors.NewValidationError("invalid due date")
		}
		if err := newTask.UpdateDetails("", "", "", nil, &due); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.taskRepo.Save(ctx, newTask); err != nil {
		uc.logger.Errorw("failed to save task", "error", err)
		return nil, err
	}

	publishMutation(uc.publisher, uc.logger, "CREATE", newTask.ID(), cmd.Principal.ID, cmd.ActorIP, map[string]any{
		"title":      newTask.Title(),
		"project_id": newTask.ProjectID(),
		"status":     newTask.Status().String(),
	})

	uc.logger.Infow("task created", "task_id", newTask.ID(), "is_subtask", newTask.IsSubtask())

	return &CreateTaskResult{
		TaskID:       newTask.ID(),
		Title:        newTask.Title(),
		ProjectID:    newTask.ProjectID(),
		ParentTaskID: newTask.ParentTaskID(),
		Status:       newTask.Status().String(),
		CreatedAt:    newTask.CreatedAt(),
	}, nil
}

func (uc *CreateTaskUseCase) validateCommand(cmd CreateTaskCommand) error {
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}
	if len(cmd.Title) > 200 {
		return errors.NewValidationError("title exceeds maximum length of 200 characters")
	}
	if cmd.ProjectID == 0 {
		return errors.NewValidationError("project ID is required")
	}
	if !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}
	return nil
}
