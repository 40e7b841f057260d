package task

import (
	"context"
	"time"
)

// ListFilter narrows task listings. CustomerID scopes through the
// owning project and is set by the query facade for consumer
// principals.
type ListFilter struct {
	ProjectID    *uint
	CustomerID   *uint
	AssigneeID   *uint
	ParentTaskID *uint
	Status       string
	Priority     string
	Department   string
	Search       string
	// TopLevelOnly excludes subtasks from the result.
	TopLevelOnly bool
}

type Repository interface {
	Save(ctx context.Context, task *Task) error
	FindByID(ctx context.Context, id uint) (*Task, error)
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter, offset, limit int) ([]*Task, int64, error)
	ListIDsByProject(ctx context.Context, projectID uint) ([]uint, error)
	ListSubtaskIDs(ctx context.Context, parentTaskID uint) ([]uint, error)
	// ListDueBetween returns tasks with a due date inside the window
	// that are not in a terminal status, for the reminder sweep.
	ListDueBetween(ctx context.Context, from, to time.Time) ([]*Task, error)
}
