package audit

import (
	"context"
	"time"
)

// ListFilter narrows audit queries. Zero values mean "no filter".
type ListFilter struct {
	EntityType string
	Action     string
	UserID     *uint
	From       *time.Time
	To         *time.Time
}

// Repository is append-only: there is no update or delete path.
type Repository interface {
	Save(ctx context.Context, entry *Entry) error
	List(ctx context.Context, filter ListFilter, offset, limit int) ([]*Entry, int64, error)
	// ListAll streams the full filtered set without pagination, for
	// exports.
	ListAll(ctx context.Context, filter ListFilter) ([]*Entry, error)
}
