package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kontor/internal/domain/customer"
	"kontor/internal/domain/user"
	"kontor/internal/shared/errors"
)

func existingCustomer(t *testing.T, id uint) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer("Acme GmbH", "Acme", "DE123456789", "manufacturing", "mittelstand")
	require.NoError(t, err)
	require.NoError(t, c.SetID(id))
	return c
}

func TestCreateConsumerUserUseCase_Execute_Success(t *testing.T) {
	mockCustomers := &mockCustomerRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*customer.Customer, error) {
			return existingCustomer(t, 3), nil
		},
	}
	mockRepo := &mockConsumerRepository{
		SaveFunc: func(ctx context.Context, u *user.ConsumerUser) error {
			return u.SetID(11)
		},
	}
	publisher := &mockEventPublisher{}

	useCase := NewCreateConsumerUserUseCase(mockRepo, mockCustomers, &mockHasher{}, publisher, newTestLogger())
	result, err := useCase.Execute(context.Background(), CreateConsumerUserCommand{
		Principal:  managerPrincipal(),
		Email:      "kontakt@acme.example",
		Name:       "Acme Kontakt",
		Password:   "correct horse battery",
		CustomerID: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(11), result.UserID)
	assert.Equal(t, uint(3), result.CustomerID)
	assert.Equal(t, "PENDING", result.Status)
	assert.Len(t, publisher.Published, 1)
}

func TestCreateConsumerUserUseCase_Execute_CustomerNotFound(t *testing.T) {
	useCase := NewCreateConsumerUserUseCase(&mockConsumerRepository{}, &mockCustomerRepository{}, &mockHasher{}, &mockEventPublisher{}, newTestLogger())

	_, err := useCase.Execute(context.Background(), CreateConsumerUserCommand{
		Principal:  managerPrincipal(),
		Email:      "kontakt@acme.example",
		Name:       "Acme Kontakt",
		Password:   "correct horse battery",
		CustomerID: 99,
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCreateConsumerUserUseCase_Execute_DuplicateEmail(t *testing.T) {
	mockCustomers := &mockCustomerRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*customer.Customer, error) {
			return existingCustomer(t, 3), nil
		},
	}
	mockRepo := &mockConsumerRepository{
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
	}

	useCase := NewCreateConsumerUserUseCase(mockRepo, mockCustomers, &mockHasher{}, &mockEventPublisher{}, newTestLogger())
	_, err := useCase.Execute(context.Background(), CreateConsumerUserCommand{
		Principal:  managerPrincipal(),
		Email:      "kontakt@acme.example",
		Name:       "Acme Kontakt",
		Password:   "correct horse battery",
		CustomerID: 3,
	})

	require.Error(t, err)
	assert.True(t, errors.IsDuplicateError(err))
}
