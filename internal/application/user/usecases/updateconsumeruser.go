package usecases

import (
	"context"
	"time"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/user"
	vo "kontor/internal/domain/user/valueobjects"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

type UpdateConsumerUserCommand struct {
	Principal access.Principal
	ActorIP   string
	UserID    uint
	Name      string
	Status    string
}

type UpdateConsumerUserResult struct {
	UserID    uint      `json:"user_id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateConsumerUserUseCase struct {
	consumerRepo user.ConsumerRepository
	publisher    EventPublisher
	logger       logger.Interface
}

func NewUpdateConsumerUserUseCase(
	consumerRepo user.ConsumerRepository,
	publisher EventPublisher,
	logger logger.Interface,
) *UpdateConsumerUserUseCase {
	return &UpdateConsumerUserUseCase{
		consumerRepo: consumerRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

func (uc *UpdateConsumerUserUseCase) Execute(ctx context.Context, cmd UpdateConsumerUserCommand) (*UpdateConsumerUserResult, error) {
	uc.logger.Infow("executing update consumer user use case", "user_id", cmd.UserID, "actor_id", cmd.Principal.ID)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	if err := guard.Check(cmd.Principal, access.ActionUpdate, access.EntityConsumerUser, nil); err != nil {
		return nil, err
	}

	existing, err := uc.consumerRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if err := existing.UpdateDetails(cmd.Name); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	changes := map[string]any{}
	if len(cmd.Status) > 0 {
		status, err := vo.NewUserStatus(cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := existing.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		changes["status"] = cmd.Status
	}
	if len(cmd.Name) > 0 {
		changes["name"] = cmd.Name
	}

	if err := uc.consumerRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update consumer user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	publishMutation(uc.publisher, uc.logger, "UPDATE", access.EntityConsumerUser, existing.ID(), cmd.Principal.ID, cmd.ActorIP, changes)

	return &UpdateConsumerUserResult{
		UserID:    existing.ID(),
		Status:    existing.Status().String(),
		UpdatedAt: existing.UpdatedAt(),
	}, nil
}
