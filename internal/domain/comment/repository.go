package comment

import "context"

type Repository interface {
	Save(ctx context.Context, comment *Comment) error
	FindByID(ctx context.Context, id uint) (*Comment, error)
	Delete(ctx context.Context, id uint) error
	ListByParent(ctx context.Context, parentType ParentType, parentID uint, offset, limit int) ([]*Comment, int64, error)
	DeleteByParent(ctx context.Context, parentType ParentType, parentID uint) (int64, error)
	CountByParent(ctx context.Context, parentType ParentType, parentID uint) (int64, error)
}
