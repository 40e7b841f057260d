package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kontor/internal/domain/access"
	"kontor/internal/domain/project"
	projectvo "kontor/internal/domain/project/valueobjects"
	"kontor/internal/domain/task"
	vo "kontor/internal/domain/task/valueobjects"
	"kontor/internal/shared/authorization"
	"kontor/internal/shared/biztime"
	"kontor/internal/shared/errors"
)

func uintPtr(v uint) *uint {
	return &v
}

func adminPrincipal() access.Principal {
	return access.Principal{ID: 1, Role: authorization.RoleAdmin, Kind: authorization.KindStaff}
}

func managerPrincipal() access.Principal {
	return access.Principal{ID: 2, Role: authorization.RoleManager, Kind: authorization.KindStaff}
}

func mitarbeiterPrincipal(id uint) access.Principal {
	return access.Principal{ID: id, Role: authorization.RoleMitarbeiter, Kind: authorization.KindStaff}
}

func reconstructedTask(t *testing.T, status vo.TaskStatus, assigneeID, reporterID *uint) *task.Task {
	t.Helper()
	now := biztime.NowUTC()
	tk, err := task.ReconstructTask(1, "Set up staging", "", 7, nil, status, vo.PriorityMedium, assigneeID, reporterID, nil, nil, now, now)
	require.NoError(t, err)
	return tk
}

func owningProjectRepo(t *testing.T, customerID uint) *mockProjectRepository {
	t.Helper()
	now := biztime.NowUTC()
	owner, err := project.ReconstructProject(7, "Website relaunch", "", customerID, nil, projectvo.StatusActive, nil, nil, nil, now, now)
	require.NoError(t, err)
	return &mockProjectRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*project.Project, error) {
			return owner, nil
		},
	}
}

func TestChangeTaskStatusUseCase_Execute_Success(t *testing.T) {
	tests := []struct {
		name      string
		oldStatus vo.TaskStatus
		newStatus string
	}{
		{"todo to in progress", vo.StatusTodo, "IN_PROGRESS"},
		{"in progress to done", vo.StatusInProgress, "DONE"},
		{"in progress to cancelled", vo.StatusInProgress, "CANCELLED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := reconstructedTask(t, tt.oldStatus, nil, nil)
			mockRepo := &mockTaskRepository{
				FindByIDFunc: func(ctx context.Context, id uint) (*task.Task, error) {
					return existing, nil
				},
			}
			publisher := &mockEventPublisher{}

			useCase := NewChangeTaskStatusUseCase(mockRepo, owningProjectRepo(t, 3), publisher, newTestLogger())
			result, err := useCase.Execute(context.Background(), ChangeTaskStatusCommand{
				Principal: managerPrincipal(),
				TaskID:    1,
				NewStatus: tt.newStatus,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.oldStatus.String(), result.OldStatus)
			assert.Equal(t, tt.newStatus, result.NewStatus)

			// One audit mutation plus one status-change notification.
			assert.Len(t, publisher.Published, 2)
		})
	}
}

func TestChangeTaskStatusUseCase_Execute_ReopenOverride(t *testing.T) {
	t.Run("admin may reopen a done task", func(t *testing.T) {
		existing := reconstructedTask(t, vo.StatusDone, nil, nil)
		mockRepo := &mockTaskRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*task.Task, error) {
				return existing, nil
			},
		}

		useCase := NewChangeTaskStatusUseCase(mockRepo, owningProjectRepo(t, 3), &mockEventPublisher{}, newTestLogger())
		result, err := useCase.Execute(context.Background(), ChangeTaskStatusCommand{
			Principal: adminPrincipal(),
			TaskID:    1,
			NewStatus: "TODO",
		})

		require.NoError(t, err)
		assert.Equal(t, "DONE", result.OldStatus)
		assert.Equal(t, "TODO", result.NewStatus)
	})

	t.Run("manager may reopen a done task", func(t *testing.T) {
		existing := reconstructedTask(t, vo.StatusDone, nil, nil)
		mockRepo := &mockTaskRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*task.Task, error) {
				return existing, nil
			},
		}

		useCase := NewChangeTaskStatusUseCase(mockRepo, owningProjectRepo(t, 3), &mockEventPublisher{}, newTestLogger())
		_, err := useCase.Execute(context.Background(), ChangeTaskStatusCommand{
			Principal: managerPrincipal(),
			TaskID:    1,
			NewStatus: "TODO",
		})

		assert.NoError(t, err)
	})

	t.Run("assigned mitarbeiter may not reopen", func(t *testing.T) {
		existing := reconstructedTask(t, vo.StatusDone, uintPtr(5), nil)
		mockRepo := &mockTaskRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*task.Task, error) {
				return existing, nil
			},
			UpdateFunc: func(ctx context.Context, tk *task.Task) error {
				t.Fatal("update must not be reached for a denied reopen")
				return nil
			},
		}

		useCase := NewChangeTaskStatusUseCase(mockRepo, owningProjectRepo(t, 3), &mockEventPublisher{}, newTestLogger())
		_, err := useCase.Execute(context.Background(), ChangeTaskStatusCommand{
			Principal: mitarbeiterPrincipal(5),
			TaskID:    1,
			NewStatus: "TODO",
		})

		require.Error(t, err)
		assert.True(t, errors.IsInvalidTransitionError(err))
		assert.Equal(t, vo.StatusDone, existing.Status())
	})
}

func TestChangeTaskStatusUseCase_Execute_IllegalTransition(t *testing.T) {
	existing := reconstructedTask(t, vo.StatusCancelled, nil, nil)
	mockRepo := &mockTaskRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*task.Task, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, tk *task.Task) error {
			t.Fatal("update must not be reached for an illegal transition")
			return nil
		},
	}

	useCase := NewChangeTaskStatusUseCase(mockRepo, owningProjectRepo(t, 3), &mockEventPublisher{}, newTestLogger())
	_, err := useCase.Execute(context.Background(), ChangeTaskStatusCommand{
		Principal: adminPrincipal(),
		TaskID:    1,
		NewStatus: "IN_PROGRESS",
	})

	require.Error(t, err)
	assert.True(t, errors.IsInvalidTransitionError(err))
}

func TestChangeTaskStatusUseCase_Execute_MitarbeiterScope(t *testing.T) {
	t.Run("reporter may change status", func(t *testing.T) {
		existing := reconstructedTask(t, vo.StatusTodo, nil, uintPtr(5))
		mockRepo := &mockTaskRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*task.Task, error) {
				return existing, nil
			},
		}

		useCase := NewChangeTaskStatusUseCase(mockRepo, owningProjectRepo(t, 3), &mockEventPublisher{}, newTestLogger())
		_, err := useCase.Execute(context.Background(), ChangeTaskStatusCommand{
			Principal: mitarbeiterPrincipal(5),
			TaskID:    1,
			NewStatus: "IN_PROGRESS",
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

		useCase := NewChangeTaskStatusUseCase(mockRepo, owningProjectRepo(t, 3), &mockEventPublisher{}, newTestLogger())
		_, err := useCase.Execute(context.Background(), ChangeTaskStatusCommand{
			Principal: mitarbeiterPrincipal(5),
			TaskID:    1,
			NewStatus: "IN_PROGRESS",
		})

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})
}

func TestChangeTaskStatusUseCase_Execute_UnknownStatus(t *testing.T) {
	useCase := NewChangeTaskStatusUseCase(&mockTaskRepository{}, &mockProjectRepository{}, &mockEventPublisher{}, newTestLogger())

	_, err := useCase.Execute(context.Background(), ChangeTaskStatusCommand{
		Principal: adminPrincipal(),
		TaskID:    1,
		NewStatus: "BLOCKED",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
