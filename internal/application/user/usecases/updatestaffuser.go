package usecases

import (
	"context"
	"time"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/department"
	"kontor/internal/domain/user"
	vo "kontor/internal/domain/user/valueobjects"
	"kontor/internal/shared/authorization"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

type UpdateStaffUserCommand struct {
	Principal   access.Principal
	ActorIP     string
	UserID      uint
	Name        string
	Role        string
	Status      string
	Departments []string
}

type UpdateStaffUserResult struct {
	UserID    uint      `json:"user_id"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateStaffUserUseCase struct {
	staffRepo user.StaffRepository
	publisher EventPublisher
	logger    logger.Interface
}

func NewUpdateStaffUserUseCase(
	staffRepo user.StaffRepository,
	publisher EventPublisher,
	logger logger.Interface,
) *UpdateStaffUserUseCase {
	return &UpdateStaffUserUseCase{
		staffRepo: staffRepo,
		publisher: publisher,
		logger:    logger,
	}
}

func (uc *UpdateStaffUserUseCase) Execute(ctx context.Context, cmd UpdateStaffUserCommand) (*UpdateStaffUserResult, error) {
	uc.logger.Infow("executing update staff user use case", "user_id", cmd.UserID, "actor_id", cmd.Principal.ID)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	if err := guard.Check(cmd.Principal, access.ActionUpdate, access.EntityStaffUser, nil); err != nil {
		return nil, err
	}

	existing, err := uc.staffRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	// Admins cannot demote themselves; that would lock the last key in
	// the door.
	if cmd.UserID == cmd.Principal.ID && len(cmd.Role) > 0 && authorization.Role(cmd.Role) != existing.Role() {
		return nil, errors.NewValidationError("cannot change own role")
	}

	var departments []department.Department
	if cmd.Departments != nil {
		departments, err = department.ParseList(cmd.Departments)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := existing.UpdateDetails(cmd.Name, departments); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	changes := map[string]any{}
	if len(cmd.Role) > 0 {
		if err := existing.ChangeRole(authorization.Role(cmd.Role)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		changes["role"] = cmd.Role
	}
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

	if err := uc.staffRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update staff user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	publishMutation(uc.publisher, uc.logger, "UPDATE", access.EntityStaffUser, existing.ID(), cmd.Principal.ID, cmd.ActorIP, changes)

	return &UpdateStaffUserResult{
		UserID:    existing.ID(),
		Role:      string(existing.Role()),
		Status:    existing.Status().String(),
		UpdatedAt: existing.UpdatedAt(),
	}, nil
}
