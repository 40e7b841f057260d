package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kontor/internal/domain/access"
	"kontor/internal/domain/comment"
	"kontor/internal/shared/authorization"
	"kontor/internal/shared/biztime"
	"kontor/internal/shared/errors"
)

func authoredComment(t *testing.T, authorID uint) *comment.Comment {
	t.Helper()
	c, err := comment.ReconstructComment(31, comment.ParentTicket, 8, authorID, "Reproduced on staging.", biztime.NowUTC())
	require.NoError(t, err)
	return c
}

func TestDeleteCommentUseCase_Execute_AuthorMayDelete(t *testing.T) {
	deleted := false
	mockRepo := &mockCommentRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*comment.Comment, error) {
			return authoredComment(t, 5), nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}
	publisher := &mockEventPublisher{}

	useCase := NewDeleteCommentUseCase(mockRepo, publisher, newTestLogger())
	err := useCase.Execute(context.Background(), DeleteCommentCommand{
		Principal: access.Principal{ID: 5, Role: authorization.RoleMitarbeiter, Kind: authorization.KindStaff},
		CommentID: 31,
	})

	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Len(t, publisher.Published, 1)
}

func TestDeleteCommentUseCase_Execute_AdminMayDeleteAny(t *testing.T) {
	mockRepo := &mockCommentRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*comment.Comment, error) {
			return authoredComment(t, 5), nil
		},
	}

	useCase := NewDeleteCommentUseCase(mockRepo, &mockEventPublisher{}, newTestLogger())
	err := useCase.Execute(context.Background(), DeleteCommentCommand{
		Principal: access.Principal{ID: 1, Role: authorization.RoleAdmin, Kind: authorization.KindStaff},
		CommentID: 31,
	})

	assert.NoError(t, err)
}

func TestDeleteCommentUseCase_Execute_NonAuthorDenied(t *testing.T) {
	mockRepo := &mockCommentRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*comment.Comment, error) {
			return authoredComment(t, 5), nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			t.Fatal("delete must not be reached for a non-author")
			return nil
		},
	}

	// Even a manager may not remove someone else's words.
	useCase := NewDeleteCommentUseCase(mockRepo, &mockEventPublisher{}, newTestLogger())
	err := useCase.Execute(context.Background(), DeleteCommentCommand{
		Principal: managerPrincipal(),
		CommentID: 31,
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestDeleteCommentUseCase_Execute_NotFound(t *testing.T) {
	useCase := NewDeleteCommentUseCase(&mockCommentRepository{}, &mockEventPublisher{}, newTestLogger())

	err := useCase.Execute(context.Background(), DeleteCommentCommand{
		Principal: managerPrincipal(),
		CommentID: 99,
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
