package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kontor/internal/domain/access"
	"kontor/internal/domain/notification"
	"kontor/internal/shared/authorization"
	"kontor/internal/shared/biztime"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

type mockNotificationRepository struct {
	notification.Repository
	FindByIDFunc    func(ctx context.Context, id uint) (*notification.Notification, error)
	UpdateFunc      func(ctx context.Context, n *notification.Notification) error
	ListByUserFunc  func(ctx context.Context, userID uint, unreadOnly bool, offset, limit int) ([]*notification.Notification, int64, error)
	CountUnreadFunc func(ctx context.Context, userID uint) (int64, error)
	MarkAllReadFunc func(ctx context.Context, userID uint) (int64, error)
}

func (m *mockNotificationRepository) FindByID(ctx context.Context, id uint) (*notification.Notification, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) ListByUser(ctx context.Context, userID uint, unreadOnly bool, offset, limit int) ([]*notification.Notification, int64, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, unreadOnly, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, userID)
	}
	return 0, nil
}

func (m *mockNotificationRepository) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	if m.MarkAllReadFunc != nil {
		return m.MarkAllReadFunc(ctx, userID)
	}
	return 0, nil
}

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}

func staffPrincipal(id uint) access.Principal {
	return access.Principal{ID: id, Role: authorization.RoleMitarbeiter, Kind: authorization.KindStaff}
}

func unreadNotification(t *testing.T, id, userID uint) *notification.Notification {
	t.Helper()
	n, err := notification.ReconstructNotification(id, userID, notification.TypeInfo, "Task assigned", "You were assigned 'Set up staging'", "/tasks/1", false, biztime.NowUTC(), nil)
	require.NoError(t, err)
	return n
}

func TestFeedUseCase_Execute(t *testing.T) {
	mockRepo := &mockNotificationRepository{
		ListByUserFunc: func(ctx context.Context, userID uint, unreadOnly bool, offset, limit int) ([]*notification.Notification, int64, error) {
			assert.Equal(t, uint(5), userID)
			assert.True(t, unreadOnly)
			return []*notification.Notification{unreadNotification(t, 1, 5)}, 1, nil
		},
		CountUnreadFunc: func(ctx context.Context, userID uint) (int64, error) {
			return 3, nil
		},
	}

	useCase := NewFeedUseCase(mockRepo, newTestLogger())
	result, err := useCase.Execute(context.Background(), FeedQuery{
		Principal:  staffPrincipal(5),
		UnreadOnly: true,
	})

	require.NoError(t, err)
	require.Len(t, result.Notifications, 1)
	assert.Equal(t, "Task assigned", result.Notifications[0].Title)
	assert.Equal(t, int64(3), result.UnreadCount)
}

func TestMarkReadUseCase_Execute_OwnNotification(t *testing.T) {
	n := unreadNotification(t, 1, 5)
	updated := false
	mockRepo := &mockNotificationRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*notification.Notification, error) {
			return n, nil
		},
		UpdateFunc: func(ctx context.Context, got *notification.Notification) error {
			updated = true
			assert.True(t, got.IsRead())
			return nil
		},
	}

	useCase := NewMarkReadUseCase(mockRepo, newTestLogger())
	err := useCase.Execute(context.Background(), MarkReadCommand{
		Principal:      staffPrincipal(5),
		NotificationID: 1,
	})

	require.NoError(t, err)
	assert.True(t, updated)
	assert.NotNil(t, n.ReadAt())
}

func TestMarkReadUseCase_Execute_ForeignNotificationMasked(t *testing.T) {
	mockRepo := &mockNotificationRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*notification.Notification, error) {
			return unreadNotification(t, 1, 9), nil
		},
		UpdateFunc: func(ctx context.Context, n *notification.Notification) error {
			t.Fatal("update must not be reached for a foreign notification")
			return nil
		},
	}

	useCase := NewMarkReadUseCase(mockRepo, newTestLogger())
	err := useCase.Execute(context.Background(), MarkReadCommand{
		Principal:      staffPrincipal(5),
		NotificationID: 1,
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestMarkAllReadUseCase_Execute(t *testing.T) {
	mockRepo := &mockNotificationRepository{
		MarkAllReadFunc: func(ctx context.Context, userID uint) (int64, error) {
			assert.Equal(t, uint(5), userID)
			return 4, nil
		},
	}

	useCase := NewMarkAllReadUseCase(mockRepo, newTestLogger())
	result, err := useCase.Execute(context.Background(), MarkAllReadCommand{
		Principal: staffPrincipal(5),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(4), result.Marked)
}
