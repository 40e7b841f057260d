// Package queryscope applies role scope to listing filters before they
// reach a repository. Every list use case funnels its filter through
// here; there is no unscoped read path for request handlers.
package queryscope

import (
	"kontor/internal/domain/access"
	"kontor/internal/domain/project"
	"kontor/internal/domain/task"
	"kontor/internal/domain/ticket"
	"kontor/internal/shared/errors"
)

// ForProjects pins a consumer principal's filter to their own
// customer, overriding whatever the request asked for.
func ForProjects(p access.Principal, filter *project.ListFilter) error {
	if !p.IsConsumer() {
		return nil
	}
	if p.CustomerID == nil {
		return errors.NewForbiddenError("consumer principal without customer")
	}
	filter.CustomerID = p.CustomerID
	return nil
}

// ForTasks pins a consumer principal to their customer. The mine flag
// narrows a staff listing to the principal's own assignments ("my
// tasks" view).
func ForTasks(p access.Principal, filter *task.ListFilter, mine bool) error {
	if p.IsConsumer() {
		if p.CustomerID == nil {
			return errors.NewForbiddenError("consumer principal without customer")
		}
		filter.CustomerID = p.CustomerID
		return nil
	}
	if mine {
		id := p.ID
		filter.AssigneeID = &id
	}
	return nil
}

// ForTickets mirrors ForTasks for ticket listings.
func ForTickets(p access.Principal, filter *ticket.ListFilter, mine bool) error {
	if p.IsConsumer() {
		if p.CustomerID == nil {
			return errors.NewForbiddenError("consumer principal without customer")
		}
		filter.CustomerID = p.CustomerID
		return nil
	}
	if mine {
		id := p.ID
		filter.AssigneeID = &id
	}
	return nil
}
