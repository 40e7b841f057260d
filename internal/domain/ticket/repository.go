package ticket

import "context"

// ListFilter narrows ticket listings. CustomerID is set by the query
// facade for consumer principals and covers both direct customer
// tickets and tickets attached through a project.
type ListFilter struct {
	ProjectID  *uint
	CustomerID *uint
	AssigneeID *uint
	Status     string
	Priority   string
	Type       string
	Department string
	Tag        string
	Search     string
}

type Repository interface {
	Save(ctx context.Context, ticket *Ticket) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter, offset, limit int) ([]*Ticket, int64, error)
	ListIDsByProject(ctx context.Context, projectID uint) ([]uint, error)
	ListIDsByCustomer(ctx context.Context, customerID uint) ([]uint, error)
}
