package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"kontor/internal/domain/task"
	vo "kontor/internal/domain/task/valueobjects"
	"kontor/internal/infrastructure/persistence/mappers"
	"kontor/internal/infrastructure/persistence/models"
	"kontor/internal/shared/db"
)

type TaskRepository struct {
	db     *gorm.DB
	mapper *mappers.TaskMapper
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{
		db:     db,
		mapper: mappers.NewTaskMapper(),
	}
}

func (r *TaskRepository) Save(ctx context.Context, t *task.Task) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*task.Task, error) {
	var model models.TaskModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TaskRepository) Update(ctx context.Context, t *task.Task) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.TaskModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("task not found")
	}
	return nil
}

func (r *TaskRepository) List(ctx context.Context, filter task.ListFilter, offset, limit int) ([]*task.Task, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TaskModel{})

	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.CustomerID != nil {
		// Task ownership runs through the owning project.
		query = query.Where("project_id IN (?)",
			tx.Model(&models.ProjectModel{}).Select("id").Where("customer_id = ?", *filter.CustomerID))
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.ParentTaskID != nil {
		query = query.Where("parent_task_id = ?", *filter.ParentTaskID)
	}
	if filter.TopLevelOnly {
		query = query.Where("parent_task_id IS NULL")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.Department != "" {
		query = query.Where("departments LIKE ?", "%\""+filter.Department+"\"%")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	var rows []models.TaskModel
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]*task.Task, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		tasks = append(tasks, t)
	}

	return tasks, total, nil
}

func (r *TaskRepository) ListIDsByProject(ctx context.Context, projectID uint) ([]uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ids []uint
	if err := tx.Model(&models.TaskModel{}).Where("project_id = ?", projectID).Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list task IDs: %w", err)
	}
	return ids, nil
}

func (r *TaskRepository) ListSubtaskIDs(ctx context.Context, parentTaskID uint) ([]uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ids []uint
	if err := tx.Model(&models.TaskModel{}).Where("parent_task_id = ?", parentTaskID).Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list subtask IDs: %w", err)
	}
	return ids, nil
}

func (r *TaskRepository) ListDueBetween(ctx context.Context, from, to time.Time) ([]*task.Task, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.TaskModel
	err := tx.Model(&models.TaskModel{}).
		Where("due_date IS NOT NULL AND due_date >= ? AND due_date < ?", from, to).
		Where("status NOT IN ?", []string{vo.StatusDone.String(), vo.StatusCancelled.String()}).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list due tasks: %w", err)
	}

	tasks := make([]*task.Task, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, nil
}
