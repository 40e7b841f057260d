package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kontor/internal/shared/authorization"
)

func uintPtr(v uint) *uint {
	return &v
}

func staffPrincipal(id uint, role authorization.Role) Principal {
	return Principal{ID: id, Role: role, Kind: authorization.KindStaff}
}

func consumerPrincipal(id, customerID uint) Principal {
	return Principal{
		ID:         id,
		Role:       authorization.RoleKunde,
		Kind:       authorization.KindConsumer,
		CustomerID: uintPtr(customerID),
	}
}

func TestAuthorize_AdminAllowsEverythingGranted(t *testing.T) {
	admin := staffPrincipal(1, authorization.RoleAdmin)

	for _, entity := range []EntityType{EntityCustomer, EntityProject, EntityTask, EntityTicket, EntityComment, EntityStaffUser, EntityConsumerUser} {
		for _, action := range Actions {
			decision := Authorize(admin, action, entity, nil)
			assert.True(t, decision.Allowed, "admin should be allowed %s on %s", action, entity)
		}
	}
}

func TestAuthorize_DefaultClosed(t *testing.T) {
	// Every combination without an explicit grant must deny, whatever
	// the scope looks like.
	roles := []authorization.Role{
		authorization.RoleAdmin,
		authorization.RoleManager,
		authorization.RoleMitarbeiter,
		authorization.RoleKunde,
	}

	scope := &Scope{
		CustomerID: uintPtr(7),
		AssigneeID: uintPtr(5),
		ReporterID: uintPtr(5),
		AuthorID:   uintPtr(5),
	}

	for _, role := range roles {
		p := Principal{ID: 5, Role: role, Kind: authorization.KindStaff}
		if role == authorization.RoleKunde {
			p = consumerPrincipal(5, 7)
		}

		for _, entity := range EntityTypes {
			for _, action := range Actions {
				if CanAttempt(role, action, entity) {
					continue
				}
				decision := Authorize(p, action, entity, scope)
				assert.False(t, decision.Allowed,
					"%s should be denied %s on %s without an explicit grant", role, action, entity)
			}
		}
	}
}

func TestAuthorize_UnknownRoleDenied(t *testing.T) {
	p := Principal{ID: 1, Role: authorization.Role("SUPERUSER"), Kind: authorization.KindStaff}

	decision := Authorize(p, ActionRead, EntityProject, nil)

	require.False(t, decision.Allowed)
}

func TestAuthorize_ManagerRules(t *testing.T) {
	manager := staffPrincipal(2, authorization.RoleManager)

	tests := []struct {
		name    string
		action  Action
		entity  EntityType
		allowed bool
	}{
		{"create customer", ActionCreate, EntityCustomer, true},
		{"delete project", ActionDelete, EntityProject, true},
		{"manage consumer users", ActionUpdate, EntityConsumerUser, true},
		{"no staff user management", ActionCreate, EntityStaffUser, false},
		{"no staff user listing", ActionList, EntityStaffUser, false},
		{"no audit views", ActionList, EntityAuditLog, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Authorize(manager, tt.action, tt.entity, nil)
			assert.Equal(t, tt.allowed, decision.Allowed)
		})
	}
}

func TestAuthorize_MitarbeiterScopeConditions(t *testing.T) {
	worker := staffPrincipal(5, authorization.RoleMitarbeiter)

	t.Run("update assigned task allowed", func(t *testing.T) {
		scope := &Scope{AssigneeID: uintPtr(5)}
		assert.True(t, Authorize(worker, ActionUpdate, EntityTask, scope).Allowed)
	})

	t.Run("update as reporter allowed", func(t *testing.T) {
		scope := &Scope{ReporterID: uintPtr(5)}
		assert.True(t, Authorize(worker, ActionUpdate, EntityTicket, scope).Allowed)
	})

	t.Run("update unrelated task denied", func(t *testing.T) {
		scope := &Scope{AssigneeID: uintPtr(9), ReporterID: uintPtr(9)}
		assert.False(t, Authorize(worker, ActionUpdate, EntityTask, scope).Allowed)
	})

	t.Run("update without scope denied", func(t *testing.T) {
		assert.False(t, Authorize(worker, ActionUpdate, EntityTask, nil).Allowed)
	})

	t.Run("no customer create", func(t *testing.T) {
		assert.False(t, Authorize(worker, ActionCreate, EntityCustomer, nil).Allowed)
	})

	t.Run("no project delete", func(t *testing.T) {
		scope := &Scope{AssigneeID: uintPtr(5)}
		assert.False(t, Authorize(worker, ActionDelete, EntityProject, scope).Allowed)
	})
}

func TestAuthorize_KundeScopeConditions(t *testing.T) {
	kunde := consumerPrincipal(10, 3)

	t.Run("read project of own customer", func(t *testing.T) {
		scope := &Scope{CustomerID: uintPtr(3)}
		assert.True(t, Authorize(kunde, ActionRead, EntityProject, scope).Allowed)
	})

	t.Run("read project of other customer denied", func(t *testing.T) {
		scope := &Scope{CustomerID: uintPtr(4)}
		assert.False(t, Authorize(kunde, ActionRead, EntityProject, scope).Allowed)
	})

	t.Run("create ticket for own customer", func(t *testing.T) {
		scope := &Scope{CustomerID: uintPtr(3)}
		assert.True(t, Authorize(kunde, ActionCreate, EntityTicket, scope).Allowed)
	})

	t.Run("no ticket update", func(t *testing.T) {
		scope := &Scope{CustomerID: uintPtr(3)}
		assert.False(t, Authorize(kunde, ActionUpdate, EntityTicket, scope).Allowed)
	})

	t.Run("never sees customers", func(t *testing.T) {
		scope := &Scope{CustomerID: uintPtr(3)}
		assert.False(t, Authorize(kunde, ActionRead, EntityCustomer, scope).Allowed)
	})

	t.Run("never sees staff users", func(t *testing.T) {
		assert.False(t, Authorize(kunde, ActionList, EntityStaffUser, nil).Allowed)
	})

	t.Run("consumer with staff role claim denied", func(t *testing.T) {
		p := Principal{ID: 10, Role: authorization.RoleAdmin, Kind: authorization.KindConsumer}
		assert.False(t, Authorize(p, ActionRead, EntityCustomer, nil).Allowed)
	})
}

func TestAuthorize_CommentDeletion(t *testing.T) {
	t.Run("author may delete own comment", func(t *testing.T) {
		worker := staffPrincipal(5, authorization.RoleMitarbeiter)
		scope := &Scope{AuthorID: uintPtr(5)}
		assert.True(t, Authorize(worker, ActionDelete, EntityComment, scope).Allowed)
	})

	t.Run("non-author denied", func(t *testing.T) {
		manager := staffPrincipal(2, authorization.RoleManager)
		scope := &Scope{AuthorID: uintPtr(5)}
		assert.False(t, Authorize(manager, ActionDelete, EntityComment, scope).Allowed)
	})

	t.Run("admin may delete any comment", func(t *testing.T) {
		admin := staffPrincipal(1, authorization.RoleAdmin)
		scope := &Scope{AuthorID: uintPtr(5)}
		assert.True(t, Authorize(admin, ActionDelete, EntityComment, scope).Allowed)
	})
}
