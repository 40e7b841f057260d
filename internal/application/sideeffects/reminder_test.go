package sideeffects

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kontor/internal/domain/shared/events"
	"kontor/internal/domain/task"
	vo "kontor/internal/domain/task/valueobjects"
	"kontor/internal/shared/biztime"
)

func dueTask(t *testing.T, id uint, assigneeID *uint, dueDate time.Time) *task.Task {
	t.Helper()
	now := biztime.NowUTC()
	tk, err := task.ReconstructTask(id, "Set up staging", "", 7, nil, vo.StatusInProgress, vo.PriorityMedium, assigneeID, nil, nil, &dueDate, now, now)
	require.NoError(t, err)
	return tk
}

func TestReminderSweep_Run(t *testing.T) {
	assigneeID := uint(7)
	dueDate := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	mockRepo := &mockTaskRepository{
		ListDueBetweenFunc: func(ctx context.Context, from, to time.Time) ([]*task.Task, error) {
			assert.Equal(t, 24*time.Hour, to.Sub(from))
			return []*task.Task{
				dueTask(t, 1, &assigneeID, dueDate),
				dueTask(t, 2, nil, dueDate), // unassigned, nobody to remind
			}, nil
		},
	}
	publisher := &mockEventPublisher{}

	sweep := NewReminderSweep(mockRepo, publisher, newTestLogger(), 24*time.Hour)
	emitted, err := sweep.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, emitted)
	require.Len(t, publisher.Published, 1)

	event, ok := publisher.Published[0].(events.TaskDueSoonEvent)
	require.True(t, ok)
	assert.Equal(t, uint(1), event.TaskID)
	assert.Equal(t, uint(7), event.AssigneeID)
	assert.Equal(t, dueDate, event.DueDate)
}

func TestReminderSweep_Run_AnnouncesOncePerDueDate(t *testing.T) {
	assigneeID := uint(7)
	dueDate := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	mockRepo := &mockTaskRepository{
		ListDueBetweenFunc: func(ctx context.Context, from, to time.Time) ([]*task.Task, error) {
			return []*task.Task{dueTask(t, 1, &assigneeID, dueDate)}, nil
		},
	}
	publisher := &mockEventPublisher{}

	sweep := NewReminderSweep(mockRepo, publisher, newTestLogger(), 24*time.Hour)

	emitted, err := sweep.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, emitted)

	emitted, err = sweep.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, emitted)
	assert.Len(t, publisher.Published, 1)
}

func TestReminderSweep_Run_MovedDueDateRearms(t *testing.T) {
	assigneeID := uint(7)
	dueDate := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	mockRepo := &mockTaskRepository{
		ListDueBetweenFunc: func(ctx context.Context, from, to time.Time) ([]*task.Task, error) {
			return []*task.Task{dueTask(t, 1, &assigneeID, dueDate)}, nil
		},
	}
	publisher := &mockEventPublisher{}

	sweep := NewReminderSweep(mockRepo, publisher, newTestLogger(), 24*time.Hour)
	_, err := sweep.Run(context.Background())
	require.NoError(t, err)

	dueDate = dueDate.Add(48 * time.Hour)
	emitted, err := sweep.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, emitted)
	assert.Len(t, publisher.Published, 2)
}

func TestReminderSweep_Run_PublishFailureRearms(t *testing.T) {
	assigneeID := uint(7)
	dueDate := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	mockRepo := &mockTaskRepository{
		ListDueBetweenFunc: func(ctx context.Context, from, to time.Time) ([]*task.Task, error) {
			return []*task.Task{dueTask(t, 1, &assigneeID, dueDate)}, nil
		},
	}
	publisher := &mockEventPublisher{PublishErr: assert.AnError}

	sweep := NewReminderSweep(mockRepo, publisher, newTestLogger(), 24*time.Hour)
	emitted, err := sweep.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, emitted)

	// A queue hiccup must not swallow the reminder for good.
	publisher.PublishErr = nil
	emitted, err = sweep.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, emitted)
}
