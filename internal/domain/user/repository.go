package user

import "context"

// StaffListFilter narrows staff user listings.
type StaffListFilter struct {
	Role       string
	Status     string
	Department string
	Search     string
}

type StaffRepository interface {
	Save(ctx context.Context, user *StaffUser) error
	FindByID(ctx context.Context, id uint) (*StaffUser, error)
	FindByEmail(ctx context.Context, email string) (*StaffUser, error)
	Update(ctx context.Context, user *StaffUser) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter StaffListFilter, offset, limit int) ([]*StaffUser, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ConsumerListFilter narrows consumer user listings.
type ConsumerListFilter struct {
	CustomerID *uint
	Status     string
	Search     string
}

type ConsumerRepository interface {
	Save(ctx context.Context, user *ConsumerUser) error
	FindByID(ctx context.Context, id uint) (*ConsumerUser, error)
	FindByEmail(ctx context.Context, email string) (*ConsumerUser, error)
	Update(ctx context.Context, user *ConsumerUser) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ConsumerListFilter, offset, limit int) ([]*ConsumerUser, int64, error)
	DeleteByCustomer(ctx context.Context, customerID uint) (int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
