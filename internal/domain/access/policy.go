package access

import (
	"kontor/internal/shared/authorization"
)

// condition refines a grant with an ownership requirement evaluated
// against the target entity's scope.
type condition int

const (
	// condNone grants unconditionally.
	condNone condition = iota
	// condAssignedOrReporter requires the principal to be the target's
	// assignee or reporter.
	condAssignedOrReporter
	// condOwnCustomer requires the target's owning customer to equal
	// the consumer principal's customer.
	condOwnCustomer
	// condAuthor requires the principal to be the target's author.
	condAuthor
)

type grant struct {
	action Action
	cond   condition
}

func unconditional(actions ...Action) []grant {
	grants := make([]grant, 0, len(actions))
	for _, a := range actions {
		grants = append(grants, grant{action: a})
	}
	return grants
}

// ruleTable is the fixed role × entity-type permission table. It is the
// single source of truth: the casbin enforcer used by the HTTP
// middleware is seeded from it at startup. Unmapped combinations deny.
var ruleTable = map[authorization.Role]map[EntityType][]grant{
	authorization.RoleAdmin: {
		EntityCustomer:     unconditional(Actions...),
		EntityProject:      unconditional(Actions...),
		EntityTask:         unconditional(Actions...),
		EntityTicket:       unconditional(Actions...),
		EntityComment:      unconditional(Actions...),
		EntityStaffUser:    unconditional(Actions...),
		EntityConsumerUser: unconditional(Actions...),
		EntityAuditLog:     unconditional(ActionList, ActionRead),
		EntityNotification: unconditional(ActionList, ActionRead, ActionUpdate),
	},
	authorization.RoleManager: {
		EntityCustomer:     unconditional(Actions...),
		EntityProject:      unconditional(Actions...),
		EntityTask:         unconditional(Actions...),
		EntityTicket:       unconditional(Actions...),
		EntityConsumerUser: unconditional(Actions...),
		EntityComment: {
			{action: ActionList},
			{action: ActionRead},
			{action: ActionCreate},
			{action: ActionDelete, cond: condAuthor},
		},
		EntityNotification: unconditional(ActionList, ActionRead, ActionUpdate),
		// No StaffUser management, no audit/system views.
	},
	authorization.RoleMitarbeiter: {
		EntityProject: {
			{action: ActionList},
			{action: ActionRead},
			{action: ActionUpdate, cond: condAssignedOrReporter},
		},
		EntityTask: {
			{action: ActionList},
			{action: ActionRead},
			{action: ActionCreate},
			{action: ActionUpdate, cond: condAssignedOrReporter},
			{action: ActionDelete, cond: condAssignedOrReporter},
		},
		EntityTicket: {
			{action: ActionList},
			{action: ActionRead},
			{action: ActionCreate},
			{action: ActionUpdate, cond: condAssignedOrReporter},
			{action: ActionDelete, cond: condAssignedOrReporter},
		},
		EntityComment: {
			{action: ActionList},
			{action: ActionRead},
			{action: ActionCreate},
			{action: ActionDelete, cond: condAuthor},
		},
		EntityNotification: unconditional(ActionList, ActionRead, ActionUpdate),
		// No Customer creation or deletion, no user management.
	},
	authorization.RoleKunde: {
		EntityProject: {
			{action: ActionList, cond: condOwnCustomer},
			{action: ActionRead, cond: condOwnCustomer},
		},
		EntityTask: {
			{action: ActionList, cond: condOwnCustomer},
			{action: ActionRead, cond: condOwnCustomer},
		},
		EntityTicket: {
			{action: ActionList, cond: condOwnCustomer},
			{action: ActionRead, cond: condOwnCustomer},
			{action: ActionCreate, cond: condOwnCustomer},
		},
		EntityComment: {
			{action: ActionList, cond: condOwnCustomer},
			{action: ActionRead, cond: condOwnCustomer},
			{action: ActionCreate, cond: condOwnCustomer},
			{action: ActionDelete, cond: condAuthor},
		},
		EntityNotification: unconditional(ActionList, ActionRead, ActionUpdate),
		// Never sees Customer, StaffUser, ConsumerUser or audit entities.
	},
}

// Authorize decides whether the principal may perform the action on the
// entity type. It is a pure function of its inputs. For
// scope-conditional rules a nil scope denies: callers must load the
// target and pass its ownership attributes before mutating it.
func Authorize(p Principal, action Action, entity EntityType, scope *Scope) Decision {
	if !p.Role.IsValid() {
		return deny("unknown role")
	}

	// A consumer principal never acts through a staff role, whatever
	// its token claims.
	if p.IsConsumer() && p.Role != authorization.RoleKunde {
		return deny("consumer principal with staff role")
	}

	entities, ok := ruleTable[p.Role]
	if !ok {
		return deny("no rules for role")
	}

	grants, ok := entities[entity]
	if !ok {
		return deny("no rules for entity type")
	}

	for _, g := range grants {
		if g.action != action {
			continue
		}
		return evaluate(p, g.cond, scope)
	}

	return deny("action not granted")
}

// CanAttempt reports whether any grant exists for the combination,
// ignoring scope conditions. The HTTP permission middleware uses this
// coarse check; use cases re-check with the full scope.
func CanAttempt(role authorization.Role, action Action, entity EntityType) bool {
	entities, ok := ruleTable[role]
	if !ok {
		return false
	}
	for _, g := range entities[entity] {
		if g.action == action {
			return true
		}
	}
	return false
}

// CoarseGrants returns every (role, entity, action) row of the table,
// used to seed the route-level enforcer.
func CoarseGrants() map[authorization.Role]map[EntityType][]Action {
	out := make(map[authorization.Role]map[EntityType][]Action, len(ruleTable))
	for role, entities := range ruleTable {
		out[role] = make(map[EntityType][]Action, len(entities))
		for entity, grants := range entities {
			actions := make([]Action, 0, len(grants))
			for _, g := range grants {
				actions = append(actions, g.action)
			}
			out[role][entity] = actions
		}
	}
	return out
}

func evaluate(p Principal, cond condition, scope *Scope) Decision {
	switch cond {
	case condNone:
		return allow()

	case condAssignedOrReporter:
		if scope == nil {
			return deny("scope required")
		}
		if scope.AssigneeID != nil && *scope.AssigneeID == p.ID {
			return allow()
		}
		if scope.ReporterID != nil && *scope.ReporterID == p.ID {
			return allow()
		}
		return deny("not assignee or reporter")

	case condOwnCustomer:
		if p.CustomerID == nil {
			return deny("principal has no customer")
		}
		if scope == nil {
			return deny("scope required")
		}
		if scope.CustomerID == nil {
			return deny("target has no customer")
		}
		if *scope.CustomerID != *p.CustomerID {
			return deny("customer mismatch")
		}
		return allow()

	case condAuthor:
		if scope == nil {
			return deny("scope required")
		}
		if scope.AuthorID != nil && *scope.AuthorID == p.ID {
			return allow()
		}
		return deny("not the author")
	}

	return deny("unknown condition")
}
