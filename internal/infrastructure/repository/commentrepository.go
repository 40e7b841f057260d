package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"kontor/internal/domain/comment"
	"kontor/internal/infrastructure/persistence/mappers"
	"kontor/internal/infrastructure/persistence/models"
	"kontor/internal/shared/db"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper *mappers.CommentMapper
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewCommentMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, c *comment.Comment) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CommentRepository) FindByID(ctx context.Context, id uint) (*comment.Comment, error) {
	var model models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CommentRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.CommentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("comment not found")
	}
	return nil
}

func (r *CommentRepository) ListByParent(ctx context.Context, parentType comment.ParentType, parentID uint, offset, limit int) ([]*comment.Comment, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.CommentModel{}).
		Where("parent_type = ? AND parent_id = ?", string(parentType), parentID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	var rows []models.CommentModel
	if err := query.Order("created_at ASC").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*comment.Comment, 0, len(rows))
	for i := range rows {
		c, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		comments = append(comments, c)
	}

	return comments, total, nil
}

func (r *CommentRepository) DeleteByParent(ctx context.Context, parentType comment.ParentType, parentID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("parent_type = ? AND parent_id = ?", string(parentType), parentID).
		Delete(&models.CommentModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete comments: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *CommentRepository) CountByParent(ctx context.Context, parentType comment.ParentType, parentID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.Model(&models.CommentModel{}).
		Where("parent_type = ? AND parent_id = ?", string(parentType), parentID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}
