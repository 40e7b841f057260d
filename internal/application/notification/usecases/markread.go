package usecases

import (
	"context"

	"kontor/internal/domain/access"
	"kontor/internal/domain/notification"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

type MarkReadCommand struct {
	Principal      access.Principal
	NotificationID uint
}

type MarkReadUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewMarkReadUseCase(notificationRepo notification.Repository, logger logger.Interface) *MarkReadUseCase {
	return &MarkReadUseCase{notificationRepo: notificationRepo, logger: logger}
}

func (uc *MarkReadUseCase) Execute(ctx context.Context, cmd MarkReadCommand) error {
	if cmd.NotificationID == 0 {
		return errors.NewValidationError("notification ID is required")
	}

	existing, err := uc.notificationRepo.FindByID(ctx, cmd.NotificationID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.NewNotFoundError("notification not found")
	}

	// Someone else's notification looks like a missing one.
	if existing.UserID() != cmd.Principal.ID {
		return errors.NewNotFoundError("notification not found")
	}

	existing.MarkRead()

	if err := uc.notificationRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to mark notification read", "notification_id", cmd.NotificationID, "error", err)
		return err
	}

	return nil
}
