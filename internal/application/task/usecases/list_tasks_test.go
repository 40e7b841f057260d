package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kontor/internal/domain/access"
	"kontor/internal/domain/task"
	"kontor/internal/shared/authorization"
	"kontor/internal/shared/errors"
)

func kundePrincipal(userID, customerID uint) access.Principal {
	return access.Principal{
		ID:         userID,
		Role:       authorization.RoleKunde,
		Kind:       authorization.KindConsumer,
		CustomerID: &customerID,
	}
}

func TestListTasksUseCase_Execute_KundeScopedToOwnCustomer(t *testing.T) {
	var capturedFilter task.ListFilter
	mockRepo := &mockTaskRepository{
		ListFunc: func(ctx context.Context, filter task.ListFilter, offset, limit int) ([]*task.Task, int64, error) {
			capturedFilter = filter
			return nil, 0, nil
		},
	}

	useCase := NewListTasksUseCase(mockRepo, newTestLogger())

	// Even when the request asks for another customer, the facade pins
	// the filter to the principal's own customer.
	otherCustomer := uint(99)
	_, err := useCase.Execute(context.Background(), ListTasksQuery{
		Principal:  kundePrincipal(10, 3),
		CustomerID: &otherCustomer,
	})

	require.NoError(t, err)
	require.NotNil(t, capturedFilter.CustomerID)
	assert.Equal(t, uint(3), *capturedFilter.CustomerID)
}

func TestListTasksUseCase_Execute_MineNarrowsToOwnAssignments(t *testing.T) {
	var capturedFilter task.ListFilter
	mockRepo := &mockTaskRepository{
		ListFunc: func(ctx context.Context, filter task.ListFilter, offset, limit int) ([]*task.Task, int64, error) {
			capturedFilter = filter
			return nil, 0, nil
		},
	}

	useCase := NewListTasksUseCase(mockRepo, newTestLogger())
	_, err := useCase.Execute(context.Background(), ListTasksQuery{
		Principal: mitarbeiterPrincipal(5),
		Mine:      true,
	})

	require.NoError(t, err)
	require.NotNil(t, capturedFilter.AssigneeID)
	assert.Equal(t, uint(5), *capturedFilter.AssigneeID)
}

func TestListTasksUseCase_Execute_StaffKeepsRequestedFilter(t *testing.T) {
	var capturedFilter task.ListFilter
	mockRepo := &mockTaskRepository{
		ListFunc: func(ctx context.Context, filter task.ListFilter, offset, limit int) ([]*task.Task, int64, error) {
			capturedFilter = filter
			return nil, 0, nil
		},
	}

	useCase := NewListTasksUseCase(mockRepo, newTestLogger())

	projectID := uint(7)
	_, err := useCase.Execute(context.Background(), ListTasksQuery{
		Principal:    managerPrincipal(),
		ProjectID:    &projectID,
		TopLevelOnly: true,
	})

	require.NoError(t, err)
	require.NotNil(t, capturedFilter.ProjectID)
	assert.Equal(t, uint(7), *capturedFilter.ProjectID)
	assert.True(t, capturedFilter.TopLevelOnly)
	assert.Nil(t, capturedFilter.AssigneeID)
}

func TestListTasksUseCase_Execute_Pagination(t *testing.T) {
	mockRepo := &mockTaskRepository{
		ListFunc: func(ctx context.Context, filter task.ListFilter, offset, limit int) ([]*task.Task, int64, error) {
			assert.Equal(t, 40, offset)
			assert.Equal(t, 20, limit)
			return nil, 61, nil
		},
	}

	useCase := NewListTasksUseCase(mockRepo, newTestLogger())
	result, err := useCase.Execute(context.Background(), ListTasksQuery{
		Principal: managerPrincipal(),
		Page:      3,
		PageSize:  20,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(61), result.Total)
	assert.Equal(t, 3, result.Page)
}

func TestListTasksUseCase_Execute_ConsumerWithoutCustomerDenied(t *testing.T) {
	useCase := NewListTasksUseCase(&mockTaskRepository{}, newTestLogger())

	_, err := useCase.Execute(context.Background(), ListTasksQuery{
		Principal: access.Principal{ID: 10, Role: authorization.RoleKunde, Kind: authorization.KindConsumer},
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}
