package comment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComment(t *testing.T) {
	t.Run("creates on task", func(t *testing.T) {
		c, err := NewComment(ParentTask, 5, 2, "Looks good")

		require.NoError(t, err)
		assert.Equal(t, ParentTask, c.ParentType())
		assert.Equal(t, uint(5), c.ParentID())
		assert.True(t, c.IsAuthoredBy(2))
		assert.False(t, c.IsAuthoredBy(3))
	})

	t.Run("rejects invalid parent type", func(t *testing.T) {
		_, err := NewComment(ParentType("project"), 5, 2, "x")
		assert.Error(t, err)
	})

	t.Run("requires content", func(t *testing.T) {
		_, err := NewComment(ParentTicket, 5, 2, "")
		assert.Error(t, err)
	})

	t.Run("caps content length", func(t *testing.T) {
		_, err := NewComment(ParentTicket, 5, 2, strings.Repeat("a", 5001))
		assert.Error(t, err)
	})
}

func TestNewParentType(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  ParentType
		wantError bool
	}{
		{"task", "task", ParentTask, false},
		{"ticket", "ticket", ParentTicket, false},
		{"project rejected", "project", "", true},
		{"empty rejected", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt, err := NewParentType(tt.input)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, pt)
			}
		})
	}
}
