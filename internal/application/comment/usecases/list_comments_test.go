package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kontor/internal/domain/comment"
	"kontor/internal/domain/ticket"
	"kontor/internal/shared/biztime"
	"kontor/internal/shared/errors"
)

func TestListCommentsUseCase_Execute_RendersContent(t *testing.T) {
	mockTickets := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return ticketOwnedBy(t, 3, nil), nil
		},
	}
	mockRepo := &mockCommentRepository{
		ListByParentFunc: func(ctx context.Context, parentType comment.ParentType, parentID uint, offset, limit int) ([]*comment.Comment, int64, error) {
			c, err := comment.ReconstructComment(31, parentType, parentID, 5, "Reproduced on staging.", biztime.NowUTC())
			require.NoError(t, err)
			return []*comment.Comment{c}, 1, nil
		},
	}

	useCase := NewListCommentsUseCase(mockRepo, &mockTaskRepository{}, mockTickets, &mockProjectRepository{}, stubRenderer{}, newTestLogger())
	result, err := useCase.Execute(context.Background(), ListCommentsQuery{
		Principal:  managerPrincipal(),
		ParentType: "ticket",
		ParentID:   8,
	})

	require.NoError(t, err)
	require.Len(t, result.Comments, 1)
	assert.Equal(t, "Reproduced on staging.", result.Comments[0].Content)
	assert.Equal(t, "<p>Reproduced on staging.</p>", result.Comments[0].ContentHTML)
}

func TestListCommentsUseCase_Execute_KundeForeignParentMasked(t *testing.T) {
	mockTickets := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return ticketOwnedBy(t, 4, nil), nil
		},
	}

	useCase := NewListCommentsUseCase(&mockCommentRepository{}, &mockTaskRepository{}, mockTickets, &mockProjectRepository{}, nil, newTestLogger())
	_, err := useCase.Execute(context.Background(), ListCommentsQuery{
		Principal:  kundePrincipal(10, 3),
		ParentType: "ticket",
		ParentID:   8,
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListCommentsUseCase_Execute_InvalidParentType(t *testing.T) {
	useCase := NewListCommentsUseCase(&mockCommentRepository{}, &mockTaskRepository{}, &mockTicketRepository{}, &mockProjectRepository{}, nil, newTestLogger())

	_, err := useCase.Execute(context.Background(), ListCommentsQuery{
		Principal:  managerPrincipal(),
		ParentType: "project",
		ParentID:   8,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
