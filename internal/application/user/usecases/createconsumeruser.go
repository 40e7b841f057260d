package usecases

import (
	"context"
	"strings"
	"time"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/customer"
	"kontor/internal/domain/user"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

type CreateConsumerUserCommand struct {
	Principal  access.Principal
	ActorIP    string
	Email      string
	Name       string
	Password   string
	CustomerID uint
}

type CreateConsumerUserResult struct {
	UserID     uint      `json:"user_id"`
	Email      string    `json:"email"`
	CustomerID uint      `json:"customer_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateConsumerUserUseCase struct {
	consumerRepo user.ConsumerRepository
	customerRepo customer.Repository
	hasher       PasswordHasher
	publisher    EventPublisher
	logger       logger.Interface
}

func NewCreateConsumerUserUseCase(
	consumerRepo user.ConsumerRepository,
	customerRepo customer.Repository,
	hasher PasswordHasher,
	publisher EventPublisher,
	logger logger.Interface,
) *CreateConsumerUserUseCase {
	return &CreateConsumerUserUseCase{
		consumerRepo: consumerRepo,
		customerRepo: customerRepo,
		hasher:       hasher,
		publisher:    publisher,
		logger:       logger,
	}
}

func (uc *CreateConsumerUserUseCase) Execute(ctx context.Context, cmd CreateConsumerUserCommand) (*CreateConsumerUserResult, error) {
	uc.logger.Infow("executing create consumer user use case", "email", cmd.Email, "customer_id", cmd.CustomerID, "actor_id", cmd.Principal.ID)

	if err := guard.Check(cmd.Principal, access.ActionCreate, access.EntityConsumerUser, nil); err != nil {
		return nil, err
	}

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	owner, err := uc.customerRepo.FindByID(ctx, cmd.CustomerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, errors.NewNotFoundError("customer not found")
	}

	exists, err := uc.consumerRepo.ExistsByEmail(ctx, strings.ToLower(cmd.Email))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("email already in use")
	}

	hashed, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	newUser, err := user.NewConsumerUser(cmd.Email, cmd.Name, hashed, cmd.CustomerID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.consumerRepo.Save(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to save consumer user", "error", err)
		return nil, err
	}

	publishMutation(uc.publisher, uc.logger, "CREATE", access.EntityConsumerUser, newUser.ID(), cmd.Principal.ID, cmd.ActorIP, map[string]any{
		"email":       newUser.Email(),
		"customer_id": newUser.CustomerID(),
	})

	return &CreateConsumerUserResult{
		UserID:     newUser.ID(),
		Email:      newUser.Email(),
		CustomerID: newUser.CustomerID(),
		Status:     newUser.Status().String(),
		CreatedAt:  newUser.CreatedAt(),
	}, nil
}

func (uc *CreateConsumerUserUseCase) validateCommand(cmd CreateConsumerUserCommand) error {
	if len(cmd.Email) == 0 {
		return errors.NewValidationError("email is required")
	}
	if len(cmd.Name) == 0 {
		return errors.NewValidationError("name is required")
	}
	if len(cmd.Password) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}
	if cmd.CustomerID == 0 {
		return errors.NewValidationError("customer ID is required")
	}
	return nil
}
