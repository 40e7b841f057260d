package notification

import "context"

type Repository interface {
	Save(ctx context.Context, notification *Notification) error
	FindByID(ctx context.Context, id uint) (*Notification, error)
	Update(ctx context.Context, notification *Notification) error
	ListByUser(ctx context.Context, userID uint, unreadOnly bool, offset, limit int) ([]*Notification, int64, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
	MarkAllRead(ctx context.Context, userID uint) (int64, error)
}
