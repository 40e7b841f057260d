package usecases

import (
	"context"
	"time"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/department"
	"kontor/internal/domain/project"
	"kontor/internal/domain/task"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

type GetTaskQuery struct {
	Principal access.Principal
	TaskID    uint
}

type TaskDetails struct {
	TaskID       uint       `json:"task_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ProjectID    uint       `json:"project_id"`
	ParentTaskID *uint      `json:"parent_task_id"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	AssigneeID   *uint      `json:"assignee_id"`
	ReporterID   *uint      `json:"reporter_id"`
	Departments  []string   `json:"departments"`
	DueDate      *time.Time `json:"due_date"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type GetTaskUseCase struct {
	taskRepo    task.Repository
	projectRepo project.Repository
	logger      logger.Interface
}

func NewGetTaskUseCase(taskRepo task.Repository, projectRepo project.Repository, logger logger.Interface) *GetTaskUseCase {
	return &GetTaskUseCase{taskRepo: taskRepo, projectRepo: projectRepo, logger: logger}
}

func (uc *GetTaskUseCase) Execute(ctx context.Context, query GetTaskQuery) (*TaskDetails, error) {
	if query.TaskID == 0 {
		return nil, errors.NewValidationError("task ID is required")
	}

	found, err := uc.taskRepo.FindByID(ctx, query.TaskID)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errors.NewNotFoundError("task not found")
	}

	scope, err := taskScope(ctx, uc.projectRepo, found)
	if err != nil {
		return nil, err
	}
	if err := guard.CheckRead(query.Principal, access.EntityTask, scope); err != nil {
		return nil, err
	}

	return mapTaskDetails(found), nil
}

func mapTaskDetails(t *task.Task) *TaskDetails {
	return &TaskDetails{
		TaskID:       t.ID(),
		Title:        t.Title(),
		Description:  t.Description(),
		ProjectID:    t.ProjectID(),
		ParentTaskID: t.ParentTaskID(),
		Status:       t.Status().String(),
		Priority:     t.Priority().String(),
		AssigneeID:   t.AssigneeID(),
		ReporterID:   t.ReporterID(),
		Departments:  department.Strings(t.Departments()),
		DueDate:      t.DueDate(),
		CreatedAt:    t.CreatedAt(),
		UpdatedAt:    t.UpdatedAt(),
	}
}
