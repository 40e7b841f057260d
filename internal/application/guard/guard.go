// Package guard translates policy decisions into application errors.
// Every use case calls through here before touching a repository.
package guard

import (
	"kontor/internal/domain/access"
	"kontor/internal/shared/errors"
)

// Check authorizes a mutation attempt. A denial becomes a forbidden
// error carrying only the generic message.
func Check(p access.Principal, action access.Action, entity access.EntityType, scope *access.Scope) error {
	decision := access.Authorize(p, action, entity, scope)
	if decision.Allowed {
		return nil
	}
	return errors.NewForbiddenError(decision.Reason)
}

// CheckRead authorizes a read. For consumer principals a scope denial
// is reported as not-found so out-of-scope records are
// indistinguishable from absent ones.
func CheckRead(p access.Principal, entity access.EntityType, scope *access.Scope) error {
	decision := access.Authorize(p, access.ActionRead, entity, scope)
	if decision.Allowed {
		return nil
	}
	if p.IsConsumer() {
		return errors.NewNotFoundError(string(entity) + " not found")
	}
	return errors.NewForbiddenError(decision.Reason)
}
