package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "kontor/internal/domain/ticket/valueobjects"
)

func newTestTicket(t *testing.T) *Ticket {
	t.Helper()
	reporter := uint(4)
	ticket, err := NewTicket("Printer offline", "Third floor printer unreachable", vo.TypeSupport, vo.PriorityHigh, &reporter, nil, nil)
	require.NoError(t, err)
	return ticket
}

func TestNewTicket(t *testing.T) {
	t.Run("creates with defaults", func(t *testing.T) {
		ticket := newTestTicket(t)

		assert.Equal(t, vo.StatusOpen, ticket.Status())
		assert.Equal(t, vo.TypeSupport, ticket.Type())
		assert.Nil(t, ticket.ProjectID())
		assert.Nil(t, ticket.CustomerID())
		assert.Equal(t, ticket.CreatedAt(), ticket.UpdatedAt())
	})

	t.Run("requires title", func(t *testing.T) {
		_, err := NewTicket("", "desc", vo.TypeBug, vo.PriorityLow, nil, nil, nil)
		assert.Error(t, err)
	})

	t.Run("rejects invalid type", func(t *testing.T) {
		_, err := NewTicket("Title", "desc", vo.TicketType("INCIDENT"), vo.PriorityLow, nil, nil, nil)
		assert.Error(t, err)
	})
}

func TestTicket_ChangeStatus(t *testing.T) {
	t.Run("full lifecycle", func(t *testing.T) {
		ticket := newTestTicket(t)

		require.NoError(t, ticket.ChangeStatus(vo.StatusInProgress))
		require.NoError(t, ticket.ChangeStatus(vo.StatusResolved))
		require.NotNil(t, ticket.ResolvedAt())

		require.NoError(t, ticket.ChangeStatus(vo.StatusClosed))
		require.NotNil(t, ticket.ClosedAt())
	})

	t.Run("rejects skipping stages", func(t *testing.T) {
		ticket := newTestTicket(t)

		err := ticket.ChangeStatus(vo.StatusClosed)
		assert.Error(t, err)
		assert.Equal(t, vo.StatusOpen, ticket.Status())
	})

	t.Run("closed is terminal", func(t *testing.T) {
		ticket := newTestTicket(t)
		require.NoError(t, ticket.ChangeStatus(vo.StatusInProgress))
		require.NoError(t, ticket.ChangeStatus(vo.StatusResolved))
		require.NoError(t, ticket.ChangeStatus(vo.StatusClosed))

		assert.Error(t, ticket.ChangeStatus(vo.StatusOpen))
		assert.Error(t, ticket.ChangeStatus(vo.StatusCancelled))
	})

	t.Run("any open stage may cancel", func(t *testing.T) {
		for _, status := range []vo.TicketStatus{vo.StatusOpen, vo.StatusInProgress, vo.StatusResolved} {
			ticket := newTestTicket(t)
			if status != vo.StatusOpen {
				require.NoError(t, ticket.ChangeStatus(vo.StatusInProgress))
			}
			if status == vo.StatusResolved {
				require.NoError(t, ticket.ChangeStatus(vo.StatusResolved))
			}

			assert.NoError(t, ticket.ChangeStatus(vo.StatusCancelled), "cancel from %s", status)
		}
	})
}

func TestTicket_Attach(t *testing.T) {
	t.Run("attach to project resolves customer", func(t *testing.T) {
		ticket := newTestTicket(t)

		require.NoError(t, ticket.AttachToProject(3, 9))
		assert.Equal(t, uint(3), *ticket.ProjectID())
		assert.Equal(t, uint(9), *ticket.CustomerID())
	})

	t.Run("attach directly to customer", func(t *testing.T) {
		ticket := newTestTicket(t)

		require.NoError(t, ticket.AttachToCustomer(9))
		assert.Nil(t, ticket.ProjectID())
		assert.Equal(t, uint(9), *ticket.CustomerID())
	})

	t.Run("rejects zero IDs", func(t *testing.T) {
		ticket := newTestTicket(t)

		assert.Error(t, ticket.AttachToProject(0, 9))
		assert.Error(t, ticket.AttachToProject(3, 0))
		assert.Error(t, ticket.AttachToCustomer(0))
	})
}

func TestTicket_UpdateDetails(t *testing.T) {
	ticket := newTestTicket(t)
	created := ticket.CreatedAt()

	err := ticket.UpdateDetails("", "New description", "", nil, []string{"hardware"})

	require.NoError(t, err)
	assert.Equal(t, "Printer offline", ticket.Title())
	assert.Equal(t, "New description", ticket.Description())
	assert.Equal(t, []string{"hardware"}, ticket.Tags())
	assert.Equal(t, created, ticket.CreatedAt())
}
