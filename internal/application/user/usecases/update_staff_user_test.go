package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kontor/internal/domain/access"
	"kontor/internal/domain/user"
	vo "kontor/internal/domain/user/valueobjects"
	"kontor/internal/shared/authorization"
	"kontor/internal/shared/biztime"
	"kontor/internal/shared/errors"
)

func mitarbeiterPrincipal(id uint) access.Principal {
	return access.Principal{ID: id, Role: authorization.RoleMitarbeiter, Kind: authorization.KindStaff}
}

func reconstructedStaff(t *testing.T, id uint, role authorization.Role, status vo.UserStatus) *user.StaffUser {
	t.Helper()
	now := biztime.NowUTC()
	u, err := user.ReconstructStaffUser(id, "anna@example.com", "Anna", "hashed:pw", role, status, nil, nil, now, now)
	require.NoError(t, err)
	return u
}

func TestUpdateStaffUserUseCase_Execute_RoleAndStatus(t *testing.T) {
	existing := reconstructedStaff(t, 7, authorization.RoleMitarbeiter, vo.StatusPending)
	mockRepo := &mockStaffRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.StaffUser, error) {
			return existing, nil
		},
	}
	publisher := &mockEventPublisher{}

	useCase := NewUpdateStaffUserUseCase(mockRepo, publisher, newTestLogger())
	result, err := useCase.Execute(context.Background(), UpdateStaffUserCommand{
		Principal: adminPrincipal(),
		UserID:    7,
		Role:      "MANAGER",
		Status:    "ACTIVE",
	})

	require.NoError(t, err)
	assert.Equal(t, "MANAGER", result.Role)
	assert.Equal(t, "ACTIVE", result.Status)
	assert.Len(t, publisher.Published, 1)
}

func TestUpdateStaffUserUseCase_Execute_OwnRoleChangeRejected(t *testing.T) {
	existing := reconstructedStaff(t, 1, authorization.RoleAdmin, vo.StatusActive)
	mockRepo := &mockStaffRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.StaffUser, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, u *user.StaffUser) error {
			t.Fatal("update must not be reached for an own-role change")
			return nil
		},
	}

	useCase := NewUpdateStaffUserUseCase(mockRepo, &mockEventPublisher{}, newTestLogger())
	_, err := useCase.Execute(context.Background(), UpdateStaffUserCommand{
		Principal: adminPrincipal(),
		UserID:    1,
		Role:      "MITARBEITER",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateStaffUserUseCase_Execute_MitarbeiterDenied(t *testing.T) {
	useCase := NewUpdateStaffUserUseCase(&mockStaffRepository{}, &mockEventPublisher{}, newTestLogger())

	_, err := useCase.Execute(context.Background(), UpdateStaffUserCommand{
		Principal: mitarbeiterPrincipal(5),
		UserID:    7,
		Status:    "INACTIVE",
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestDeleteStaffUserUseCase_Execute_OwnAccountRejected(t *testing.T) {
	useCase := NewDeleteStaffUserUseCase(&mockStaffRepository{}, &mockEventPublisher{}, newTestLogger())

	err := useCase.Execute(context.Background(), DeleteStaffUserCommand{
		Principal: adminPrincipal(),
		UserID:    1,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestDeleteStaffUserUseCase_Execute_Success(t *testing.T) {
	existing := reconstructedStaff(t, 7, authorization.RoleMitarbeiter, vo.StatusActive)
	deleted := false
	mockRepo := &mockStaffRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.StaffUser, error) {
			return existing, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}
	publisher := &mockEventPublisher{}

	useCase := NewDeleteStaffUserUseCase(mockRepo, publisher, newTestLogger())
	err := useCase.Execute(context.Background(), DeleteStaffUserCommand{
		Principal: adminPrincipal(),
		UserID:    7,
	})

	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Len(t, publisher.Published, 1)
}
