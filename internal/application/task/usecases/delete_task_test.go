package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kontor/internal/application/deletion"
	"kontor/internal/domain/shared/events"
	"kontor/internal/domain/task"
	vo "kontor/internal/domain/task/valueobjects"
	"kontor/internal/shared/errors"
)

func TestDeleteTaskUseCase_Execute_Success(t *testing.T) {
	existing := reconstructedTask(t, vo.StatusTodo, nil, nil)
	mockRepo := &mockTaskRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*task.Task, error) {
			return existing, nil
		},
	}
	cascader := &mockCascader{
		DeleteTaskFunc: func(ctx context.Context, taskID uint) (*deletion.Report, error) {
			return &deletion.Report{Tasks: 3, Comments: 4}, nil
		},
	}
	publisher := &mockEventPublisher{}

	useCase := NewDeleteTaskUseCase(mockRepo, owningProjectRepo(t, 3), cascader, publisher, newTestLogger())
	result, err := useCase.Execute(context.Background(), DeleteTaskCommand{
		Principal: managerPrincipal(),
		TaskID:    1,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), result.RemovedRecords)

	require.Len(t, publisher.Published, 1)
	mutated, ok := publisher.Published[0].(events.EntityMutatedEvent)
	require.True(t, ok)
	assert.Equal(t, "DELETE", mutated.Action)
	assert.Equal(t, "task", mutated.EntityType)
}

func TestDeleteTaskUseCase_Execute_CascadeFailure(t *testing.T) {
	existing := reconstructedTask(t, vo.StatusTodo, nil, nil)
	mockRepo := &mockTaskRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*task.Task, error) {
			return existing, nil
		},
	}
	cascader := &mockCascader{
		DeleteTaskFunc: func(ctx context.Context, taskID uint) (*deletion.Report, error) {
			return nil, errors.NewCascadeFailureError("task", "1", stderrors.New("delete comments: connection reset"))
		},
	}
	publisher := &mockEventPublisher{}

	useCase := NewDeleteTaskUseCase(mockRepo, owningProjectRepo(t, 3), cascader, publisher, newTestLogger())
	_, err := useCase.Execute(context.Background(), DeleteTaskCommand{
		Principal: managerPrincipal(),
		TaskID:    1,
	})

	require.Error(t, err)
	assert.True(t, errors.IsRetryable(err))
	// Nothing committed, so no audit event either.
	assert.Empty(t, publisher.Published)
}

func TestDeleteTaskUseCase_Execute_MitarbeiterScope(t *testing.T) {
	t.Run("assigned mitarbeiter may delete", func(t *testing.T) {
		existing := reconstructedTask(t, vo.StatusTodo, uintPtr(5), nil)
		mockRepo := &mockTaskRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*task.Task, error) {
				return existing, nil
			},
		}

		useCase := NewDeleteTaskUseCase(mockRepo, owningProjectRepo(t, 3), &mockCascader{}, &mockEventPublisher{}, newTestLogger())
		_, err := useCase.Execute(context.Background(), DeleteTaskCommand{
			Principal: mitarbeiterPrincipal(5),
			TaskID:    1,
		})

		assert.NoError(t, err)
	})

	t.Run("unrelated mitarbeiter is denied", func(t *testing.T) {
		existing := reconstructedTask(t, vo.StatusTodo, uintPtr(9), uintPtr(8))
		mockRepo := &mockTaskRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*task.Task, error) {
				return existing, nil
			},
		}
		cascader := &mockCascader{
			DeleteTaskFunc: func(ctx context.Context, taskID uint) (*deletion.Report, error) {
				t.Fatal("cascade must not be reached for a denied delete")
				return nil, nil
			},
		}

		useCase := NewDeleteTaskUseCase(mockRepo, owningProjectRepo(t, 3), cascader, &mockEventPublisher{}, newTestLogger())
		_, err := useCase.Execute(context.Background(), DeleteTaskCommand{
			Principal: mitarbeiterPrincipal(5),
			TaskID:    1,
		})

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})
}

func TestDeleteTaskUseCase_Execute_NotFound(t *testing.T) {
	useCase := NewDeleteTaskUseCase(&mockTaskRepository{}, &mockProjectRepository{}, &mockCascader{}, &mockEventPublisher{}, newTestLogger())

	_, err := useCase.Execute(context.Background(), DeleteTaskCommand{
		Principal: managerPrincipal(),
		TaskID:    77,
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
