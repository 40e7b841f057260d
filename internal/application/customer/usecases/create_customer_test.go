package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kontor/internal/domain/access"
	"kontor/internal/domain/customer"
	"kontor/internal/domain/shared/events"
	"kontor/internal/shared/authorization"
	"kontor/internal/shared/errors"
)

func managerPrincipal() access.Principal {
	return access.Principal{ID: 2, Role: authorization.RoleManager, Kind: authorization.KindStaff}
}

func TestCreateCustomerUseCase_Execute_Success(t *testing.T) {
	var saved *customer.Customer
	mockRepo := &mockCustomerRepository{
		SaveFunc: func(ctx context.Context, c *customer.Customer) error {
			require.NoError(t, c.SetID(1))
			saved = c
			return nil
		},
	}
	publisher := &mockEventPublisher{}

	useCase := NewCreateCustomerUseCase(mockRepo, publisher, newTestLogger())
	result, err := useCase.Execute(context.Background(), CreateCustomerCommand{
		Principal: managerPrincipal(),
		ActorIP:   "10.0.0.1",
		LegalName: "ACME GmbH",
		TradeName: "ACME",
		VatID:     "DE123456789",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(1), result.CustomerID)
	assert.Equal(t, "ACTIVE", result.Status)
	require.NotNil(t, saved)

	// Exactly one audit event per committed mutation.
	require.Len(t, publisher.Published, 1)
	mutated, ok := publisher.Published[0].(events.EntityMutatedEvent)
	require.True(t, ok)
	assert.Equal(t, "CREATE", mutated.Action)
	assert.Equal(t, "customer", mutated.EntityType)
	assert.Equal(t, uint(1), mutated.EntityID)
	assert.Equal(t, uint(2), mutated.ActorID)
}

func TestCreateCustomerUseCase_Execute_Denied(t *testing.T) {
	tests := []struct {
		name      string
		principal access.Principal
	}{
		{
			name:      "mitarbeiter cannot create customers",
			principal: access.Principal{ID: 5, Role: authorization.RoleMitarbeiter, Kind: authorization.KindStaff},
		},
		{
			name: "consumer cannot create customers",
			principal: func() access.Principal {
				cid := uint(3)
				return access.Principal{ID: 9, Role: authorization.RoleKunde, Kind: authorization.KindConsumer, CustomerID: &cid}
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mockCustomerRepository{
				SaveFunc: func(ctx context.Context, c *customer.Customer) error {
					t.Fatal("save must not be reached on a denied request")
					return nil
				},
			}
			publisher := &mockEventPublisher{}

			useCase := NewCreateCustomerUseCase(mockRepo, publisher, newTestLogger())
			result, err := useCase.Execute(context.Background(), CreateCustomerCommand{
				Principal: tt.principal,
				LegalName: "ACME GmbH",
			})

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsForbiddenError(err))
			assert.Equal(t, "not allowed", errors.GetAppError(err).Message)
			assert.Empty(t, publisher.Published, "denied attempts publish no mutation event")
		})
	}
}

func TestCreateCustomerUseCase_Execute_Validation(t *testing.T) {
	useCase := NewCreateCustomerUseCase(&mockCustomerRepository{}, &mockEventPublisher{}, newTestLogger())

	result, err := useCase.Execute(context.Background(), CreateCustomerCommand{
		Principal: managerPrincipal(),
		LegalName: "",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateCustomerUseCase_Execute_DuplicateVatID(t *testing.T) {
	mockRepo := &mockCustomerRepository{
		ExistsByVatIDFunc: func(ctx context.Context, vatID string) (bool, error) {
			return true, nil
		},
	}

	useCase := NewCreateCustomerUseCase(mockRepo, &mockEventPublisher{}, newTestLogger())
	_, err := useCase.Execute(context.Background(), CreateCustomerCommand{
		Principal: managerPrincipal(),
		LegalName: "ACME GmbH",
		VatID:     "DE123456789",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}
