package usecases

import (
	"context"
	"time"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/comment"
	"kontor/internal/domain/project"
	"kontor/internal/domain/shared/events"
	"kontor/internal/domain/task"
	"kontor/internal/domain/ticket"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

type AddCommentCommand struct {
	Principal  access.Principal
	ActorIP    string
	ParentType string
	ParentID   uint
	Content    string
}

type AddCommentResult struct {
	CommentID  uint      `json:"comment_id"`
	ParentType string    `json:"parent_type"`
	ParentID   uint      `json:"parent_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type AddCommentUseCase struct {
	commentRepo comment.Repository
	resolver    *parentResolver
	publisher   EventPublisher
	logger      logger.Interface
}

func NewAddCommentUseCase(
	commentRepo comment.Repository,
	taskRepo task.Repository,
	ticketRepo ticket.Repository,
	projectRepo project.Repository,
	publisher EventPublisher,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		commentRepo: commentRepo,
		resolver:    &parentResolver{taskRepo: taskRepo, ticketRepo: ticketRepo, projectRepo: projectRepo},
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case", "parent_type", cmd.ParentType, "parent_id", cmd.ParentID, "actor_id", cmd.Principal.ID)

	parentType, err := comment.NewParentType(cmd.ParentType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.ParentID == 0 {
		return nil, errors.NewValidationError("parent ID is required")
	}

	parent, err := uc.resolver.Resolve(ctx, parentType, cmd.ParentID)
	if err != nil {
		return nil, err
	}

	// A consumer commenting outside their customer must see the same
	// not-found the lookup would have produced.
	if err := guard.Check(cmd.Principal, access.ActionCreate, access.EntityComment, parent.Scope()); err != nil {
		if cmd.Principal.IsConsumer() {
			return nil, errors.NewNotFoundError(cmd.ParentType + " not found")
		}
		return nil, err
	}

	newComment, err := comment.NewComment(parentType, cmd.ParentID, cmd.Principal.ID, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, newComment); err != nil {
		uc.logger.Errorw("failed to save comment", "error", err)
		return nil, err
	}

	publishMutation(uc.publisher, uc.logger, "CREATE", newComment.ID(), cmd.Principal.ID, cmd.ActorIP, map[string]any{
		"parent_type": string(parentType),
		"parent_id":   cmd.ParentID,
	})

	added := events.NewCommentAdded(string(parentType), cmd.ParentID, newComment.ID(), cmd.Principal.ID, parent.AssigneeID, parent.ReporterID)
	if err := uc.publisher.Publish(added); err != nil {
		uc.logger.Warnw("failed to publish comment added event", "comment_id", newComment.ID(), "error", err)
	}

	return &AddCommentResult{
		CommentID:  newComment.ID(),
		ParentType: string(parentType),
		ParentID:   cmd.ParentID,
		CreatedAt:  newComment.CreatedAt(),
	}, nil
}
