package usecases

import (
	"context"
	"time"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/comment"
	"kontor/internal/domain/project"
	"kontor/internal/domain/task"
	"kontor/internal/domain/ticket"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
	"kontor/internal/shared/utils"
)

type ListCommentsQuery struct {
	Principal  access.Principal
	ParentType string
	ParentID   uint
	Page       int
	PageSize   int
}

type CommentDetails struct {
	CommentID   uint      `json:"comment_id"`
	ParentType  string    `json:"parent_type"`
	ParentID    uint      `json:"parent_id"`
	AuthorID    uint      `json:"author_id"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListCommentsResult struct {
	Comments []*CommentDetails `json:"comments"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

type ListCommentsUseCase struct {
	commentRepo comment.Repository
	resolver    *parentResolver
	renderer    Renderer
	logger      logger.Interface
}

func NewListCommentsUseCase(
	commentRepo comment.Repository,
	taskRepo task.Repository,
	ticketRepo ticket.Repository,
	projectRepo project.Repository,
	renderer Renderer,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		commentRepo: commentRepo,
		resolver:    &parentResolver{taskRepo: taskRepo, ticketRepo: ticketRepo, projectRepo: projectRepo},
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) (*ListCommentsResult, error) {
	parentType, err := comment.NewParentType(query.ParentType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if query.ParentID == 0 {
		return nil, errors.NewValidationError("parent ID is required")
	}

	parent, err := uc.resolver.Resolve(ctx, parentType, query.ParentID)
	if err != nil {
		return nil, err
	}

	if err := guard.CheckRead(query.Principal, access.EntityComment, parent.Scope()); err != nil {
		return nil, err
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)
	offset := (p.Page - 1) * p.PageSize

	comments, total, err := uc.commentRepo.ListByParent(ctx, parentType, query.ParentID, offset, p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "error", err)
		return nil, err
	}

	items := make([]*CommentDetails, 0, len(comments))
	for _, c := range comments {
		items = append(items, uc.mapComment(c))
	}

	return &ListCommentsResult{
		Comments: items,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}

func (uc *ListCommentsUseCase) mapComment(c *comment.Comment) *CommentDetails {
	details := &CommentDetails{
		CommentID:  c.ID(),
		ParentType: string(c.ParentType()),
		ParentID:   c.ParentID(),
		AuthorID:   c.AuthorID(),
		Content:    c.Content(),
		CreatedAt:  c.CreatedAt(),
	}
	if uc.renderer != nil {
		html, err := uc.renderer.Render(c.Content())
		if err != nil {
			uc.logger.Warnw("failed to render comment", "comment_id", c.ID(), "error", err)
		} else {
			details.ContentHTML = html
		}
	}
	return details
}
