package usecases

import (
	"context"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/comment"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

type DeleteCommentCommand struct {
	Principal access.Principal
	ActorIP   string
	CommentID uint
}

type DeleteCommentUseCase struct {
	commentRepo comment.Repository
	publisher   EventPublisher
	logger      logger.Interface
}

func NewDeleteCommentUseCase(
	commentRepo comment.Repository,
	publisher EventPublisher,
	logger logger.Interface,
) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		commentRepo: commentRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) error {
	uc.logger.Infow("executing delete comment use case", "comment_id", cmd.CommentID, "actor_id", cmd.Principal.ID)

	if cmd.CommentID == 0 {
		return errors.NewValidationError("comment ID is required")
	}

	existing, err := uc.commentRepo.FindByID(ctx, cmd.CommentID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.NewNotFoundError("comment not found")
	}

	// Only the author or an admin may remove a comment; the author
	// condition rides on the scope.
	authorID := existing.AuthorID()
	scope := &access.Scope{AuthorID: &authorID}
	if err := guard.Check(cmd.Principal, access.ActionDelete, access.EntityComment, scope); err != nil {
		return err
	}

	if err := uc.commentRepo.Delete(ctx, cmd.CommentID); err != nil {
		uc.logger.Errorw("failed to delete comment", "comment_id", cmd.CommentID, "error", err)
		return err
	}

	publishMutation(uc.publisher, uc.logger, "DELETE", cmd.CommentID, cmd.Principal.ID, cmd.ActorIP, map[string]any{
		"parent_type": string(existing.ParentType()),
		"parent_id":   existing.ParentID(),
	})

	return nil
}
