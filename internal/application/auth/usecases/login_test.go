package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kontor/internal/domain/access"
	"kontor/internal/domain/shared/events"
	"kontor/internal/domain/user"
	vo "kontor/internal/domain/user/valueobjects"
	"kontor/internal/shared/authorization"
	"kontor/internal/shared/biztime"
	"kontor/internal/shared/errors"
)

func activeStaff(t *testing.T) *user.StaffUser {
	t.Helper()
	now := biztime.NowUTC()
	u, err := user.ReconstructStaffUser(7, "anna@example.com", "Anna", "hashed:geheim123", authorization.RoleManager, vo.StatusActive, nil, nil, now, now)
	require.NoError(t, err)
	return u
}

func activeConsumer(t *testing.T) *user.ConsumerUser {
	t.Helper()
	now := biztime.NowUTC()
	u, err := user.ReconstructConsumerUser(11, "kontakt@acme.example", "Acme Kontakt", "hashed:geheim123", 3, vo.StatusActive, nil, now, now)
	require.NoError(t, err)
	return u
}

func TestLoginUseCase_Execute_Staff(t *testing.T) {
	staff := activeStaff(t)
	mockStaff := &mockStaffRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.StaffUser, error) {
			assert.Equal(t, "anna@example.com", email)
			return staff, nil
		},
	}
	publisher := &mockEventPublisher{}

	useCase := NewLoginUseCase(mockStaff, &mockConsumerRepository{}, &mockHasher{}, &mockIssuer{}, publisher, newTestLogger())
	result, err := useCase.Execute(context.Background(), LoginCommand{
		Email:    "Anna@Example.com",
		Password: "geheim123",
		ClientIP: "10.0.0.5",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "MANAGER", result.Role)
	assert.Equal(t, "STAFF", result.Kind)
	assert.NotNil(t, staff.LastLoginAt())

	require.Len(t, publisher.Published, 1)
	mutated, ok := publisher.Published[0].(events.EntityMutatedEvent)
	require.True(t, ok)
	assert.Equal(t, "LOGIN", mutated.Action)
	assert.Equal(t, "staff_user", mutated.EntityType)
	assert.Equal(t, "10.0.0.5", mutated.ActorIP)
}

func TestLoginUseCase_Execute_Consumer(t *testing.T) {
	consumer := activeConsumer(t)
	mockConsumers := &mockConsumerRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.ConsumerUser, error) {
			return consumer, nil
		},
	}
	var issued access.Principal
	issuer := &mockIssuer{
		IssueFunc: func(p access.Principal, email, name string) (string, time.Time, error) {
			issued = p
			return "token", biztime.NowUTC().Add(time.Hour), nil
		},
	}

	useCase := NewLoginUseCase(&mockStaffRepository{}, mockConsumers, &mockHasher{}, issuer, &mockEventPublisher{}, newTestLogger())
	result, err := useCase.Execute(context.Background(), LoginCommand{
		Email:    "kontakt@acme.example",
		Password: "geheim123",
	})

	require.NoError(t, err)
	assert.Equal(t, "KUNDE", result.Role)
	assert.Equal(t, "CONSUMER", result.Kind)
	require.NotNil(t, result.CustomerID)
	assert.Equal(t, uint(3), *result.CustomerID)

	// The token principal carries the customer pin.
	require.NotNil(t, issued.CustomerID)
	assert.Equal(t, uint(3), *issued.CustomerID)
	assert.Equal(t, authorization.RoleKunde, issued.Role)
}

func TestLoginUseCase_Execute_WrongPassword(t *testing.T) {
	staff := activeStaff(t)
	mockStaff := &mockStaffRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.StaffUser, error) {
			return staff, nil
		},
	}
	publisher := &mockEventPublisher{}

	useCase := NewLoginUseCase(mockStaff, &mockConsumerRepository{}, &mockHasher{}, &mockIssuer{}, publisher, newTestLogger())
	_, err := useCase.Execute(context.Background(), LoginCommand{
		Email:    "anna@example.com",
		Password: "falsch",
	})

	require.Error(t, err)
	assert.Equal(t, "invalid credentials", errors.GetAppError(err).Message)
	assert.Empty(t, publisher.Published)
}

func TestLoginUseCase_Execute_UnknownEmailSameMessage(t *testing.T) {
	useCase := NewLoginUseCase(&mockStaffRepository{}, &mockConsumerRepository{}, &mockHasher{}, &mockIssuer{}, &mockEventPublisher{}, newTestLogger())

	_, err := useCase.Execute(context.Background(), LoginCommand{
		Email:    "niemand@example.com",
		Password: "geheim123",
	})

	require.Error(t, err)
	assert.Equal(t, "invalid credentials", errors.GetAppError(err).Message)
}

func TestLoginUseCase_Execute_InactiveAccount(t *testing.T) {
	now := biztime.NowUTC()
	inactive, err := user.ReconstructStaffUser(7, "anna@example.com", "Anna", "hashed:geheim123", authorization.RoleManager, vo.StatusInactive, nil, nil, now, now)
	require.NoError(t, err)

	mockStaff := &mockStaffRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.StaffUser, error) {
			return inactive, nil
		},
	}

	useCase := NewLoginUseCase(mockStaff, &mockConsumerRepository{}, &mockHasher{}, &mockIssuer{}, &mockEventPublisher{}, newTestLogger())
	_, err = useCase.Execute(context.Background(), LoginCommand{
		Email:    "anna@example.com",
		Password: "geheim123",
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestLogoutUseCase_Execute(t *testing.T) {
	publisher := &mockEventPublisher{}
	useCase := NewLogoutUseCase(publisher, newTestLogger())

	customerID := uint(3)
	err := useCase.Execute(context.Background(), LogoutCommand{
		Principal: access.Principal{ID: 11, Role: authorization.RoleKunde, Kind: authorization.KindConsumer, CustomerID: &customerID},
		ClientIP:  "10.0.0.5",
	})

	require.NoError(t, err)
	require.Len(t, publisher.Published, 1)
	mutated, ok := publisher.Published[0].(events.EntityMutatedEvent)
	require.True(t, ok)
	assert.Equal(t, "LOGOUT", mutated.Action)
	assert.Equal(t, "consumer_user", mutated.EntityType)
}
