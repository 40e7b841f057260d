// Package access implements the role-scoped permission policy. The
// rule table is fixed in code and fail-closed: any (role, entity,
// action) combination without an explicit grant denies.
package access

import (
	"kontor/internal/shared/authorization"
)

// Action is a CRUD-level operation on an entity type.
type Action string

const (
	ActionList   Action = "LIST"
	ActionRead   Action = "READ"
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// Actions enumerates every action, used by tests and the policy sync.
var Actions = []Action{ActionList, ActionRead, ActionCreate, ActionUpdate, ActionDelete}

// EntityType identifies a guarded entity kind.
type EntityType string

const (
	EntityCustomer     EntityType = "customer"
	EntityProject      EntityType = "project"
	EntityTask         EntityType = "task"
	EntityTicket       EntityType = "ticket"
	EntityComment      EntityType = "comment"
	EntityStaffUser    EntityType = "staff_user"
	EntityConsumerUser EntityType = "consumer_user"
	EntityAuditLog     EntityType = "audit_log"
	EntityNotification EntityType = "notification"
)

// EntityTypes enumerates every guarded entity type.
var EntityTypes = []EntityType{
	EntityCustomer,
	EntityProject,
	EntityTask,
	EntityTicket,
	EntityComment,
	EntityStaffUser,
	EntityConsumerUser,
	EntityAuditLog,
	EntityNotification,
}

// Principal is the authenticated actor making a request. CustomerID is
// set only for consumer principals.
type Principal struct {
	ID         uint
	Role       authorization.Role
	Kind       authorization.Kind
	CustomerID *uint
}

// IsConsumer reports whether the principal is a customer-facing user.
func (p Principal) IsConsumer() bool {
	return p.Kind == authorization.KindConsumer
}

// Scope carries the ownership attributes of the target entity used by
// scope-conditional rules. All fields are optional; a nil pointer means
// the attribute is absent on the target.
type Scope struct {
	// CustomerID is the owning customer of the target (via its project
	// for tasks and tickets).
	CustomerID *uint
	// AssigneeID is the staff user the target is assigned to.
	AssigneeID *uint
	// ReporterID is the user who reported the target.
	ReporterID *uint
	// AuthorID is the author of the target (comments).
	AuthorID *uint
}

// Decision is the outcome of a policy check. Reason is internal
// diagnostics only; callers surface the generic "not allowed" message.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}
