package mappers

import (
	"fmt"

	"kontor/internal/domain/task"
	vo "kontor/internal/domain/task/valueobjects"
	"kontor/internal/infrastructure/persistence/models"
)

type TaskMapper struct{}

func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

func (m *TaskMapper) ToModel(t *task.Task) *models.TaskModel {
	return &models.TaskModel{
		ID:           t.ID(),
		Title:        t.Title(),
		Description:  t.Description(),
		ProjectID:    t.ProjectID(),
		ParentTaskID: t.ParentTaskID(),
		Status:       t.Status().String(),
		Priority:     t.Priority().String(),
		AssigneeID:   t.AssigneeID(),
		ReporterID:   t.ReporterID(),
		Departments:  departmentsToJSON(t.Departments()),
		DueDate:      t.DueDate(),
		CreatedAt:    t.CreatedAt(),
		UpdatedAt:    t.UpdatedAt(),
	}
}

func (m *TaskMapper) ToDomain(model *models.TaskModel) (*task.Task, error) {
	status, err := vo.NewTaskStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid task status (id=%d): %w", model.ID, err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid task priority (id=%d): %w", model.ID, err)
	}

	departments, err := departmentsFromJSON(model.Departments)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal task departments (id=%d): %w", model.ID, err)
	}

	return task.ReconstructTask(
		model.ID,
		model.Title,
		model.Description,
		model.ProjectID,
		model.ParentTaskID,
		status,
		priority,
		model.AssigneeID,
		model.ReporterID,
		departments,
		model.DueDate,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
