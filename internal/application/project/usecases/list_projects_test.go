package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kontor/internal/domain/access"
	"kontor/internal/domain/project"
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

func TestListProjectsUseCase_Execute_KundeScopedToOwnCustomer(t *testing.T) {
	var capturedFilter project.ListFilter
	mockRepo := &mockProjectRepository{
		ListFunc: func(ctx context.Context, filter project.ListFilter, offset, limit int) ([]*project.Project, int64, error) {
			capturedFilter = filter
			return nil, 0, nil
		},
	}

	useCase := NewListProjectsUseCase(mockRepo, newTestLogger())

	// Even when the request asks for another customer, the facade pins
	// the filter to the principal's own customer.
	otherCustomer := uint(99)
	_, err := useCase.Execute(context.Background(), ListProjectsQuery{
		Principal:  kundePrincipal(10, 3),
		CustomerID: &otherCustomer,
	})

	require.NoError(t, err)
	require.NotNil(t, capturedFilter.CustomerID)
	assert.Equal(t, uint(3), *capturedFilter.CustomerID)
}

func TestListProjectsUseCase_Execute_StaffKeepsRequestedFilter(t *testing.T) {
	var capturedFilter project.ListFilter
	mockRepo := &mockProjectRepository{
		ListFunc: func(ctx context.Context, filter project.ListFilter, offset, limit int) ([]*project.Project, int64, error) {
			capturedFilter = filter
			return nil, 0, nil
		},
	}

	useCase := NewListProjectsUseCase(mockRepo, newTestLogger())

	requested := uint(4)
	_, err := useCase.Execute(context.Background(), ListProjectsQuery{
		Principal:  managerPrincipal(),
		CustomerID: &requested,
	})

	require.NoError(t, err)
	require.NotNil(t, capturedFilter.CustomerID)
	assert.Equal(t, uint(4), *capturedFilter.CustomerID)
}

func TestListProjectsUseCase_Execute_Pagination(t *testing.T) {
	mockRepo := &mockProjectRepository{
		ListFunc: func(ctx context.Context, filter project.ListFilter, offset, limit int) ([]*project.Project, int64, error) {
			assert.Equal(t, 20, offset)
			assert.Equal(t, 20, limit)
			return nil, 45, nil
		},
	}

	useCase := NewListProjectsUseCase(mockRepo, newTestLogger())
	result, err := useCase.Execute(context.Background(), ListProjectsQuery{
		Principal: managerPrincipal(),
		Page:      2,
		PageSize:  20,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(45), result.Total)
	assert.Equal(t, 2, result.Page)
}

func TestListProjectsUseCase_Execute_ConsumerWithoutCustomerDenied(t *testing.T) {
	useCase := NewListProjectsUseCase(&mockProjectRepository{}, newTestLogger())

	_, err := useCase.Execute(context.Background(), ListProjectsQuery{
		Principal: access.Principal{ID: 10, Role: authorization.RoleKunde, Kind: authorization.KindConsumer},
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}
