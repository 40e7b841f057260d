package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kontor/internal/domain/department"
	vo "kontor/internal/domain/task/valueobjects"
	"kontor/internal/shared/authorization"
)

func newTestTask(t *testing.T) *Task {
	t.Helper()
	task, err := NewTask("Fix login", "Session expires too early", 1, vo.PriorityMedium, nil, nil)
	require.NoError(t, err)
	return task
}

func TestNewTask(t *testing.T) {
	t.Run("creates with defaults", func(t *testing.T) {
		task := newTestTask(t)

		assert.Equal(t, vo.StatusTodo, task.Status())
		assert.Equal(t, vo.PriorityMedium, task.Priority())
		assert.False(t, task.IsSubtask())
		assert.Equal(t, task.CreatedAt(), task.UpdatedAt())
	})

	t.Run("requires title", func(t *testing.T) {
		_, err := NewTask("", "desc", 1, vo.PriorityLow, nil, nil)
		assert.Error(t, err)
	})

	t.Run("requires project", func(t *testing.T) {
		_, err := NewTask("Title", "desc", 0, vo.PriorityLow, nil, nil)
		assert.Error(t, err)
	})

	t.Run("rejects invalid priority", func(t *testing.T) {
		_, err := NewTask("Title", "desc", 1, vo.Priority("CRITICAL"), nil, nil)
		assert.Error(t, err)
	})

	t.Run("rejects invalid department", func(t *testing.T) {
		_, err := NewTask("Title", "desc", 1, vo.PriorityLow, nil, []department.Department{"HR"})
		assert.Error(t, err)
	})
}

func TestTask_ChangeStatus(t *testing.T) {
	t.Run("follows transition table", func(t *testing.T) {
		task := newTestTask(t)

		require.NoError(t, task.ChangeStatus(vo.StatusInProgress, authorization.RoleMitarbeiter))
		require.NoError(t, task.ChangeStatus(vo.StatusDone, authorization.RoleMitarbeiter))
		assert.Equal(t, vo.StatusDone, task.Status())
	})

	t.Run("rejects skipping in progress", func(t *testing.T) {
		task := newTestTask(t)

		err := task.ChangeStatus(vo.StatusDone, authorization.RoleAdmin)
		assert.Error(t, err)
		assert.Equal(t, vo.StatusTodo, task.Status())
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		task := newTestTask(t)
		before := task.UpdatedAt()

		require.NoError(t, task.ChangeStatus(vo.StatusTodo, authorization.RoleMitarbeiter))
		assert.Equal(t, before, task.UpdatedAt())
	})

	t.Run("admin may reopen done task", func(t *testing.T) {
		task := newTestTask(t)
		require.NoError(t, task.ChangeStatus(vo.StatusInProgress, authorization.RoleAdmin))
		require.NoError(t, task.ChangeStatus(vo.StatusDone, authorization.RoleAdmin))

		err := task.ChangeStatus(vo.StatusTodo, authorization.RoleAdmin)
		assert.NoError(t, err)
		assert.Equal(t, vo.StatusTodo, task.Status())
	})

	t.Run("manager may reopen done task", func(t *testing.T) {
		task := newTestTask(t)
		require.NoError(t, task.ChangeStatus(vo.StatusInProgress, authorization.RoleManager))
		require.NoError(t, task.ChangeStatus(vo.StatusDone, authorization.RoleManager))

		assert.NoError(t, task.ChangeStatus(vo.StatusTodo, authorization.RoleManager))
	})

	t.Run("mitarbeiter cannot reopen done task", func(t *testing.T) {
		task := newTestTask(t)
		require.NoError(t, task.ChangeStatus(vo.StatusInProgress, authorization.RoleMitarbeiter))
		require.NoError(t, task.ChangeStatus(vo.StatusDone, authorization.RoleMitarbeiter))

		err := task.ChangeStatus(vo.StatusTodo, authorization.RoleMitarbeiter)
		assert.Error(t, err)
		assert.Equal(t, vo.StatusDone, task.Status())
	})

	t.Run("reopen only targets todo", func(t *testing.T) {
		task := newTestTask(t)
		require.NoError(t, task.ChangeStatus(vo.StatusInProgress, authorization.RoleAdmin))
		require.NoError(t, task.ChangeStatus(vo.StatusDone, authorization.RoleAdmin))

		err := task.ChangeStatus(vo.StatusInProgress, authorization.RoleAdmin)
		assert.Error(t, err)
	})

	t.Run("cancelled is terminal for everyone", func(t *testing.T) {
		task := newTestTask(t)
		require.NoError(t, task.ChangeStatus(vo.StatusCancelled, authorization.RoleAdmin))

		err := task.ChangeStatus(vo.StatusTodo, authorization.RoleAdmin)
		assert.Error(t, err)
	})
}

func TestTask_AttachToParent(t *testing.T) {
	newParent := func(t *testing.T, projectID uint) *Task {
		t.Helper()
		parent, err := NewTask("Parent", "", projectID, vo.PriorityMedium, nil, nil)
		require.NoError(t, err)
		require.NoError(t, parent.SetID(10))
		return parent
	}

	t.Run("attaches to top-level task", func(t *testing.T) {
		parent := newParent(t, 1)
		sub := newTestTask(t)

		require.NoError(t, sub.AttachToParent(parent))
		assert.True(t, sub.IsSubtask())
		assert.Equal(t, uint(10), *sub.ParentTaskID())
	})

	t.Run("rejects subtask as parent", func(t *testing.T) {
		parent := newParent(t, 1)
		sub := newTestTask(t)
		require.NoError(t, sub.AttachToParent(parent))
		require.NoError(t, sub.SetID(11))

		grandchild := newTestTask(t)
		err := grandchild.AttachToParent(sub)
		assert.Error(t, err)
		assert.False(t, grandchild.IsSubtask())
	})

	t.Run("rejects parent from another project", func(t *testing.T) {
		parent := newParent(t, 2)
		sub := newTestTask(t)

		err := sub.AttachToParent(parent)
		assert.Error(t, err)
	})

	t.Run("rejects parent without ID", func(t *testing.T) {
		parent, err := NewTask("Parent", "", 1, vo.PriorityMedium, nil, nil)
		require.NoError(t, err)

		sub := newTestTask(t)
		assert.Error(t, sub.AttachToParent(parent))
	})
}

func TestTask_UpdateDetails(t *testing.T) {
	task := newTestTask(t)
	created := task.CreatedAt()

	err := task.UpdateDetails("New title", "", vo.PriorityUrgent, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "New title", task.Title())
	assert.Equal(t, "Session expires too early", task.Description())
	assert.Equal(t, vo.PriorityUrgent, task.Priority())
	assert.Equal(t, created, task.CreatedAt())
	assert.False(t, task.UpdatedAt().Before(created))
}

func TestTask_AssignTo(t *testing.T) {
	task := newTestTask(t)

	assignee := uint(7)
	require.NoError(t, task.AssignTo(&assignee))
	assert.Equal(t, uint(7), *task.AssigneeID())

	require.NoError(t, task.AssignTo(nil))
	assert.Nil(t, task.AssigneeID())

	zero := uint(0)
	assert.Error(t, task.AssignTo(&zero))
}
