package mappers

import (
	"fmt"

	"kontor/internal/domain/comment"
	"kontor/internal/infrastructure/persistence/models"
)

type CommentMapper struct{}

func NewCommentMapper() *CommentMapper {
	return &CommentMapper{}
}

func (m *CommentMapper) ToModel(c *comment.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:         c.ID(),
		ParentType: string(c.ParentType()),
		ParentID:   c.ParentID(),
		AuthorID:   c.AuthorID(),
		Content:    c.Content(),
		CreatedAt:  c.CreatedAt(),
	}
}

func (m *CommentMapper) ToDomain(model *models.CommentModel) (*comment.Comment, error) {
	parentType, err := comment.NewParentType(model.ParentType)
	if err != nil {
		return nil, fmt.Errorf("invalid comment parent type (id=%d): %w", model.ID, err)
	}

	return comment.ReconstructComment(
		model.ID,
		parentType,
		model.ParentID,
		model.AuthorID,
		model.Content,
		model.CreatedAt,
	)
}
