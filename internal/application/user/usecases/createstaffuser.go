package usecases

import (
	"context"
	"strings"
	"time"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/department"
	"kontor/internal/domain/user"
	"kontor/internal/shared/authorization"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

type CreateStaffUserCommand struct {
	Principal   access.Principal
	ActorIP     string
	Email       string
	Name        string
	Password    string
	Role        string
	Departments []string
}

type CreateStaffUserResult struct {
	UserID    uint      `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateStaffUserUseCase struct {
	staffRepo user.StaffRepository
	hasher    PasswordHasher
	publisher EventPublisher
	logger    logger.Interface
}

func NewCreateStaffUserUseCase(
	staffRepo user.StaffRepository,
	hasher PasswordHasher,
	publisher EventPublisher,
	logger logger.Interface,
) *CreateStaffUserUseCase {
	return &CreateStaffUserUseCase{
		staffRepo: staffRepo,
		hasher:    hasher,
		publisher: publisher,
		logger:    logger,
	}
}

func (uc *CreateStaffUserUseCase) Execute(ctx context.Context, cmd CreateStaffUserCommand) (*CreateStaffUserResult, error) {
	uc.logger.Infow("executing create staff user use case", "email", cmd.Email, "role", cmd.Role, "actor_id", cmd.Principal.ID)

	// Staff accounts are managed by admins only.
	if err := guard.Check(cmd.Principal, access.ActionCreate, access.EntityStaffUser, nil); err != nil {
		return nil, err
	}

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	exists, err := uc.staffRepo.ExistsByEmail(ctx, strings.ToLower(cmd.Email))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("email already in use")
	}

	departments, err := department.ParseList(cmd.Departments)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	hashed, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	newUser, err := user.NewStaffUser(cmd.Email, cmd.Name, hashed, authorization.Role(cmd.Role), departments)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.staffRepo.Save(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to save staff user", "error", err)
		return nil, err
	}

	publishMutation(uc.publisher, uc.logger, "CREATE", access.EntityStaffUser, newUser.ID(), cmd.Principal.ID, cmd.ActorIP, map[string]any{
		"email": newUser.Email(),
		"role":  string(newUser.Role()),
	})

	return &CreateStaffUserResult{
		UserID:    newUser.ID(),
		Email:     newUser.Email(),
		Role:      string(newUser.Role()),
		Status:    newUser.Status().String(),
		CreatedAt: newUser.CreatedAt(),
	}, nil
}

func (uc *CreateStaffUserUseCase) validateCommand(cmd CreateStaffUserCommand) error {
	if len(cmd.Email) == 0 {
		return errors.NewValidationError("email is required")
	}
	if len(cmd.Name) == 0 {
		return errors.NewValidationError("name is required")
	}
	if len(cmd.Password) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}
	if !authorization.Role(cmd.Role).IsStaff() {
		return errors.NewValidationError("invalid staff role")
	}
	return nil
}
