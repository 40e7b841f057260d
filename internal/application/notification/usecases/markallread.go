package usecases

import (
	"context"

	"kontor/internal/domain/access"
	"kontor/internal/domain/notification"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

type MarkAllReadCommand struct {
	Principal access.Principal
}

type MarkAllReadResult struct {
	Marked int64 `json:"marked"`
}

type MarkAllReadUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewMarkAllReadUseCase(notificationRepo notification.Repository, logger logger.Interface) *MarkAllReadUseCase {
	return &MarkAllReadUseCase{notificationRepo: notificationRepo, logger: logger}
}

func (uc *MarkAllReadUseCase) Execute(ctx context.Context, cmd MarkAllReadCommand) (*MarkAllReadResult, error) {
	if cmd.Principal.ID == 0 {
		return nil, errors.NewValidationError("principal is required")
	}

	marked, err := uc.notificationRepo.MarkAllRead(ctx, cmd.Principal.ID)
	if err != nil {
		uc.logger.Errorw("failed to mark all notifications read", "user_id", cmd.Principal.ID, "error", err)
		return nil, err
	}

	return &MarkAllReadResult{Marked: marked}, nil
}
