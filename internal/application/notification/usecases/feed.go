package usecases

import (
	"context"
	"time"

	"kontor/internal/domain/access"
	"kontor/internal/domain/notification"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
	"kontor/internal/shared/utils"
)

// FeedQuery fetches a principal's own notifications. There is no path
// to anyone else's feed.
type FeedQuery struct {
	Principal  access.Principal
	UnreadOnly bool
	Page       int
	PageSize   int
}

type NotificationDetails struct {
	NotificationID uint       `json:"notification_id"`
	Type           string     `json:"type"`
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	ActionURL      string     `json:"action_url"`
	Read           bool       `json:"read"`
	CreatedAt      time.Time  `json:"created_at"`
	ReadAt         *time.Time `json:"read_at"`
}

type FeedResult struct {
	Notifications []*NotificationDetails `json:"notifications"`
	UnreadCount   int64                  `json:"unread_count"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

type FeedUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewFeedUseCase(notificationRepo notification.Repository, logger logger.Interface) *FeedUseCase {
	return &FeedUseCase{notificationRepo: notificationRepo, logger: logger}
}

func (uc *FeedUseCase) Execute(ctx context.Context, query FeedQuery) (*FeedResult, error) {
	if query.Principal.ID == 0 {
		return nil, errors.NewValidationError("principal is required")
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)
	offset := (p.Page - 1) * p.PageSize

	notifications, total, err := uc.notificationRepo.ListByUser(ctx, query.Principal.ID, query.UnreadOnly, offset, p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "user_id", query.Principal.ID, "error", err)
		return nil, err
	}

	unread, err := uc.notificationRepo.CountUnread(ctx, query.Principal.ID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "user_id", query.Principal.ID, "error", err)
		return nil, err
	}

	items := make([]*NotificationDetails, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, &NotificationDetails{
			NotificationID: n.ID(),
			Type:           n.Type().String(),
			Title:          n.Title(),
			Message:        n.Message(),
			ActionURL:      n.ActionURL(),
			Read:           n.IsRead(),
			CreatedAt:      n.CreatedAt(),
			ReadAt:         n.ReadAt(),
		})
	}

	return &FeedResult{
		Notifications: items,
		UnreadCount:   unread,
		Total:         total,
		Page:          p.Page,
		PageSize:      p.PageSize,
	}, nil
}
