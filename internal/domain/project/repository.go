package project

import "context"

// ListFilter narrows project listings. CustomerID is mandatory for
// consumer principals; the query facade sets it before the repository
// is reached.
type ListFilter struct {
	CustomerID *uint
	AssigneeID *uint
	Status     string
	Department string
	Search     string
}

type Repository interface {
	Save(ctx context.Context, project *Project) error
	FindByID(ctx context.Context, id uint) (*Project, error)
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter, offset, limit int) ([]*Project, int64, error)
	ListIDsByCustomer(ctx context.Context, customerID uint) ([]uint, error)
}
