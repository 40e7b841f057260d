package customer

import "context"

// ListFilter narrows customer listings. Zero values mean "no filter".
type ListFilter struct {
	Status   string
	Industry string
	Search   string
}

type Repository interface {
	Save(ctx context.Context, customer *Customer) error
	FindByID(ctx context.Context, id uint) (*Customer, error)
	Update(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter, offset, limit int) ([]*Customer, int64, error)
	ExistsByVatID(ctx context.Context, vatID string) (bool, error)
}
