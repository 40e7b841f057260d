package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kontor/internal/domain/access"
	"kontor/internal/domain/shared/events"
	"kontor/internal/domain/user"
	"kontor/internal/shared/authorization"
	"kontor/internal/shared/errors"
)

func adminPrincipal() access.Principal {
	return access.Principal{ID: 1, Role: authorization.RoleAdmin, Kind: authorization.KindStaff}
}

func managerPrincipal() access.Principal {
	return access.Principal{ID: 2, Role: authorization.RoleManager, Kind: authorization.KindStaff}
}

func TestCreateStaffUserUseCase_Execute_Success(t *testing.T) {
	var saved *user.StaffUser
	mockRepo := &mockStaffRepository{
		SaveFunc: func(ctx context.Context, u *user.StaffUser) error {
			saved = u
			return u.SetID(7)
		},
	}
	publisher := &mockEventPublisher{}

	useCase := NewCreateStaffUserUseCase(mockRepo, &mockHasher{}, publisher, newTestLogger())
	result, err := useCase.Execute(context.Background(), CreateStaffUserCommand{
		Principal:   adminPrincipal(),
		Email:       "Anna.Schmidt@example.com",
		Name:        "Anna Schmidt",
		Password:    "correct horse battery",
		Role:        "MITARBEITER",
		Departments: []string{"IT"},
	})

	require.NoError(t, err)
	assert.Equal(t, uint(7), result.UserID)
	assert.Equal(t, "anna.schmidt@example.com", result.Email)
	assert.Equal(t, "PENDING", result.Status)
	assert.Equal(t, "hashed:correct horse battery", saved.HashedPassword())

	require.Len(t, publisher.Published, 1)
	mutated, ok := publisher.Published[0].(events.EntityMutatedEvent)
	require.True(t, ok)
	assert.Equal(t, "CREATE", mutated.Action)
	assert.Equal(t, "staff_user", mutated.EntityType)
}

func TestCreateStaffUserUseCase_Execute_ManagerDenied(t *testing.T) {
	mockRepo := &mockStaffRepository{
		SaveFunc: func(ctx context.Context, u *user.StaffUser) error {
			t.Fatal("save must not be reached for a denied principal")
			return nil
		},
	}

	// Staff administration is the admin's alone.
	useCase := NewCreateStaffUserUseCase(mockRepo, &mockHasher{}, &mockEventPublisher{}, newTestLogger())
	_, err := useCase.Execute(context.Background(), CreateStaffUserCommand{
		Principal: managerPrincipal(),
		Email:     "anna@example.com",
		Name:      "Anna",
		Password:  "correct horse battery",
		Role:      "MITARBEITER",
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	assert.Equal(t, "not allowed", err.Error())
}

func TestCreateStaffUserUseCase_Execute_DuplicateEmail(t *testing.T) {
	mockRepo := &mockStaffRepository{
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
	}

	useCase := NewCreateStaffUserUseCase(mockRepo, &mockHasher{}, &mockEventPublisher{}, newTestLogger())
	_, err := useCase.Execute(context.Background(), CreateStaffUserCommand{
		Principal: adminPrincipal(),
		Email:     "anna@example.com",
		Name:      "Anna",
		Password:  "correct horse battery",
		Role:      "MITARBEITER",
	})

	require.Error(t, err)
	assert.True(t, errors.IsDuplicateError(err))
}

func TestCreateStaffUserUseCase_Execute_KundeRoleRejected(t *testing.T) {
	useCase := NewCreateStaffUserUseCase(&mockStaffRepository{}, &mockHasher{}, &mockEventPublisher{}, newTestLogger())

	// A staff account can never carry the consumer role.
	_, err := useCase.Execute(context.Background(), CreateStaffUserCommand{
		Principal: adminPrincipal(),
		Email:     "anna@example.com",
		Name:      "Anna",
		Password:  "correct horse battery",
		Role:      "KUNDE",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateStaffUserUseCase_Execute_ShortPassword(t *testing.T) {
	useCase := NewCreateStaffUserUseCase(&mockStaffRepository{}, &mockHasher{}, &mockEventPublisher{}, newTestLogger())

	_, err := useCase.Execute(context.Background(), CreateStaffUserCommand{
		Principal: adminPrincipal(),
		Email:     "anna@example.com",
		Name:      "Anna",
		Password:  "short",
		Role:      "MITARBEITER",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
