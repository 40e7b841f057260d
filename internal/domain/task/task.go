package task

import (
	"fmt"
	"time"

	"kontor/internal/domain/department"
	vo "kontor/internal/domain/task/valueobjects"
	"kontor/internal/shared/authorization"
	"kontor/internal/shared/biztime"
)

type Task struct {
	id           uint
	title        string
	description  string
	projectID    uint
	parentTaskID *uint
	status       vo.TaskStatus
	priority     vo.Priority
	assigneeID   *uint
	reporterID   *uint
	departments  []department.Department
	dueDate      *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewTask(
	title, description string,
	projectID uint,
	priority vo.Priority,
	reporterID *uint,
	departments []department.Department,
) (*Task, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	for _, d := range departments {
		if !d.IsValid() {
			return nil, fmt.Errorf("invalid department: %s", d)
		}
	}

	if departments == nil {
		departments = []department.Department{}
	}

	now := biztime.NowUTC()

	return &Task{
		title:       title,
		description: description,
		projectID:   projectID,
		status:      vo.StatusTodo,
		priority:    priority,
		reporterID:  reporterID,
		departments: departments,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTask(
	id uint,
	title, description string,
	projectID uint,
	parentTaskID *uint,
	status vo.TaskStatus,
	priority vo.Priority,
	assigneeID, reporterID *uint,
	departments []department.Department,
	dueDate *time.Time,
	createdAt, updatedAt time.Time,
) (*Task, error) {
	if id == 0 {
		return nil, fmt.Errorf("task ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	if departments == nil {
		departments = []department.Department{}
	}

	return &Task{
		id:           id,
		title:        title,
		description:  description,
		projectID:    projectID,
		parentTaskID: parentTaskID,
		status:       status,
		priority:     priority,
		assigneeID:   assigneeID,
		reporterID:   reporterID,
		departments:  departments,
		dueDate:      dueDate,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (t *Task) ID() uint {
	return t.id
}

func (t *Task) Title() string {
	return t.title
}

func (t *Task) Description() string {
	return t.description
}

func (t *Task) ProjectID() uint {
	return t.projectID
}

func (t *Task) ParentTaskID() *uint {
	return t.parentTaskID
}

func (t *Task) Status() vo.TaskStatus {
	return t.status
}

func (t *Task) Priority() vo.Priority {
	return t.priority
}

func (t *Task) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Task) ReporterID() *uint {
	return t.reporterID
}

func (t *Task) Departments() []department.Department {
	departmentsCopy := make([]department.Department, len(t.departments))
	copy(departmentsCopy, t.departments)
	return departmentsCopy
}

func (t *Task) DueDate() *time.Time {
	return t.dueDate
}

func (t *Task) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Task) UpdatedAt() time.Time {
	return t.updatedAt
}

// IsSubtask reports whether the task has a parent. Subtasks cannot have
// subtasks of their own; the create path checks this before attaching.
func (t *Task) IsSubtask() bool {
	return t.parentTaskID != nil
}

func (t *Task) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("task ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("task ID cannot be zero")
	}
	t.id = id
	return nil
}

// AttachToParent makes the task a subtask of parent. The parent must
// not itself be a subtask, keeping the hierarchy at depth one.
func (t *Task) AttachToParent(parent *Task) error {
	if parent == nil {
		return fmt.Errorf("parent task is required")
	}
	if parent.ID() == 0 {
		return fmt.Errorf("parent task has no ID")
	}
	if parent.IsSubtask() {
		return fmt.Errorf("subtasks cannot have subtasks")
	}
	if parent.ProjectID() != t.projectID {
		return fmt.Errorf("parent task belongs to a different project")
	}

	parentID := parent.ID()
	t.parentTaskID = &parentID
	return nil
}

// UpdateDetails merges the mutable fields of a full edit. Empty values
// leave the current value untouched.
func (t *Task) UpdateDetails(title, description string, priority vo.Priority, departments []department.Department, dueDate *time.Time) error {
	if len(title) > 0 {
		if len(title) > 200 {
			return fmt.Errorf("title exceeds maximum length of 200 characters")
		}
		t.title = title
	}
	if len(description) > 0 {
		t.description = description
	}
	if len(priority) > 0 {
		if !priority.IsValid() {
			return fmt.Errorf("invalid priority: %s", priority)
		}
		t.priority = priority
	}
	if departments != nil {
		for _, d := range departments {
			if !d.IsValid() {
				return fmt.Errorf("invalid department: %s", d)
			}
		}
		t.departments = departments
	}
	if dueDate != nil {
		t.dueDate = dueDate
	}

	t.updatedAt = biztime.NowUTC()
	return nil
}

// ChangeStatus applies a transition from the task status table. DONE is
// terminal for everyone except admins and managers, who may reopen a
// done task back to TODO.
func (t *Task) ChangeStatus(newStatus vo.TaskStatus, actorRole authorization.Role) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if t.status == newStatus {
		return nil
	}

	if t.status.IsDone() && newStatus == vo.StatusTodo {
		if actorRole != authorization.RoleAdmin && actorRole != authorization.RoleManager {
			return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
		}
		t.status = vo.StatusTodo
		t.updatedAt = biztime.NowUTC()
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	t.status = newStatus
	t.updatedAt = biztime.NowUTC()
	return nil
}

// AssignTo is the quick-assign operation: it changes only the assignee.
// A nil assigneeID clears the assignment.
func (t *Task) AssignTo(assigneeID *uint) error {
	if assigneeID != nil && *assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	t.assigneeID = assigneeID
	t.updatedAt = biztime.NowUTC()
	return nil
}
