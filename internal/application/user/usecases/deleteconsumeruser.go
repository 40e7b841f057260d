package usecases

import (
	"context"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/user"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

type DeleteConsumerUserCommand struct {
	Principal access.Principal
	ActorIP   string
	UserID    uint
}

type DeleteConsumerUserUseCase struct {
	consumerRepo user.ConsumerRepository
	publisher    EventPublisher
	logger       logger.Interface
}

func NewDeleteConsumerUserUseCase(
	consumerRepo user.ConsumerRepository,
	publisher EventPublisher,
	logger logger.Interface,
) *DeleteConsumerUserUseCase {
	return &DeleteConsumerUserUseCase{
		consumerRepo: consumerRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

func (uc *DeleteConsumerUserUseCase) Execute(ctx context.Context, cmd DeleteConsumerUserCommand) error {
	uc.logger.Infow("executing delete consumer user use case", "user_id", cmd.UserID, "actor_id", cmd.Principal.ID)

	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	if err := guard.Check(cmd.Principal, access.ActionDelete, access.EntityConsumerUser, nil); err != nil {
		return err
	}

	existing, err := uc.consumerRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.NewNotFoundError("user not found")
	}

	if err := uc.consumerRepo.Delete(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete consumer user", "user_id", cmd.UserID, "error", err)
		return err
	}

	publishMutation(uc.publisher, uc.logger, "DELETE", access.EntityConsumerUser, cmd.UserID, cmd.Principal.ID, cmd.ActorIP, map[string]any{
		"email":       existing.Email(),
		"customer_id": existing.CustomerID(),
	})

	return nil
}
