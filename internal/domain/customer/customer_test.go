package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "kontor/internal/domain/customer/valueobjects"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates with active status", func(t *testing.T) {
		c, err := NewCustomer("ACME GmbH", "ACME", "DE123456789", "Manufacturing", "50-200")

		require.NoError(t, err)
		assert.Equal(t, vo.StatusActive, c.Status())
		assert.Equal(t, c.CreatedAt(), c.UpdatedAt())
		assert.Empty(t, c.Addresses())
		assert.Empty(t, c.Contacts())
	})

	t.Run("requires legal name", func(t *testing.T) {
		_, err := NewCustomer("", "ACME", "", "", "")
		assert.Error(t, err)
	})
}

func TestCustomer_UpdateDetails(t *testing.T) {
	c, err := NewCustomer("ACME GmbH", "ACME", "DE123456789", "Manufacturing", "50-200")
	require.NoError(t, err)
	created := c.CreatedAt()

	require.NoError(t, c.UpdateDetails("ACME Group GmbH", "", "", "Logistics", ""))

	assert.Equal(t, "ACME Group GmbH", c.LegalName())
	assert.Equal(t, "ACME", c.TradeName())
	assert.Equal(t, "Logistics", c.Industry())
	assert.Equal(t, created, c.CreatedAt())
	assert.False(t, c.UpdatedAt().Before(created))
}

func TestCustomer_ChangeStatus(t *testing.T) {
	c, err := NewCustomer("ACME GmbH", "", "", "", "")
	require.NoError(t, err)

	require.NoError(t, c.ChangeStatus(vo.StatusSuspended))
	assert.Equal(t, vo.StatusSuspended, c.Status())

	assert.Error(t, c.ChangeStatus(vo.CustomerStatus("ARCHIVED")))
}

func TestCustomer_EmbeddedValueObjects(t *testing.T) {
	c, err := NewCustomer("ACME GmbH", "", "", "", "")
	require.NoError(t, err)

	c.ReplaceAddresses([]Address{{Street: "Hauptstr. 1", City: "Berlin", PostalCode: "10115", Country: "DE", Label: "HQ"}})
	c.ReplaceContacts([]Contact{{Name: "Erika Muster", Email: "erika@acme.example", Role: "CTO"}})

	require.Len(t, c.Addresses(), 1)
	require.Len(t, c.Contacts(), 1)

	// Getters return copies; mutating them must not touch the aggregate.
	addresses := c.Addresses()
	addresses[0].City = "Hamburg"
	assert.Equal(t, "Berlin", c.Addresses()[0].City)
}
