package usecases

import (
	"context"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/user"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

type DeleteStaffUserCommand struct {
	Principal access.Principal
	ActorIP   string
	UserID    uint
}

type DeleteStaffUserUseCase struct {
	staffRepo user.StaffRepository
	publisher EventPublisher
	logger    logger.Interface
}

func NewDeleteStaffUserUseCase(
	staffRepo user.StaffRepository,
	publisher EventPublisher,
	logger logger.Interface,
) *DeleteStaffUserUseCase {
	return &DeleteStaffUserUseCase{
		staffRepo: staffRepo,
		publisher: publisher,
		logger:    logger,
	}
}

func (uc *DeleteStaffUserUseCase) Execute(ctx context.Context, cmd DeleteStaffUserCommand) error {
	uc.logger.Infow("executing delete staff user use case", "user_id", cmd.UserID, "actor_id", cmd.Principal.ID)

	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if cmd.UserID == cmd.Principal.ID {
		return errors.NewValidationError("cannot delete own account")
	}

	if err := guard.Check(cmd.Principal, access.ActionDelete, access.EntityStaffUser, nil); err != nil {
		return err
	}

	existing, err := uc.staffRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.NewNotFoundError("user not found")
	}

	if err := uc.staffRepo.Delete(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete staff user", "user_id", cmd.UserID, "error", err)
		return err
	}

	publishMutation(uc.publisher, uc.logger, "DELETE", access.EntityStaffUser, cmd.UserID, cmd.Principal.ID, cmd.ActorIP, map[string]any{
		"email": existing.Email(),
	})

	return nil
}
