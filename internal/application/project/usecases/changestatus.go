package usecases

import (
	"context"
	"time"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/project"
	vo "kontor/internal/domain/project/valueobjects"
	"kontor/internal/domain/shared/events"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

type ChangeProjectStatusCommand struct {
	Principal access.Principal
	ActorIP   string
	ProjectID uint
	NewStatus string
}

type ChangeProjectStatusResult struct {
	ProjectID uint      `json:"project_id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ChangeProjectStatusUseCase struct {
	projectRepo project.Repository
	publisher   EventPublisher
	logger      logger.Interface
}

func NewChangeProjectStatusUseCase(
	projectRepo project.Repository,
	publisher EventPublisher,
	logger logger.Interface,
) *ChangeProjectStatusUseCase {
	return &ChangeProjectStatusUseCase{
		projectRepo: projectRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *ChangeProjectStatusUseCase) Execute(ctx context.Context, cmd ChangeProjectStatusCommand) (*ChangeProjectStatusResult, error) {
	uc.logger.Infow("executing change project status use case", "project_id", cmd.ProjectID, "new_status", cmd.NewStatus, "actor_id", cmd.Principal.ID)

	if cmd.ProjectID == 0 {
		return nil, errors.NewValidationError("project ID is required")
	}

	newStatus, err := vo.NewProjectStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.projectRepo.FindByID(ctx, cmd.ProjectID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("project not found")
	}

	customerID := existing.CustomerID()
	scope := &access.Scope{
		CustomerID: &customerID,
		AssigneeID: existing.AssigneeID(),
	}
	if err := guard.Check(cmd.Principal, access.ActionUpdate, access.EntityProject, scope); err != nil {
		return nil, err
	}

	oldStatus := existing.Status()
	if err := existing.ChangeStatus(newStatus); err != nil {
		uc.logger.Warnw("illegal project status transition",
			"project_id", cmd.ProjectID,
			"from", oldStatus.String(),
			"to", newStatus.String(),
		)
		return nil, errors.NewInvalidTransitionError(err.Error())
	}

	if err := uc.projectRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update project", "project_id", cmd.ProjectID, "error", err)
		return nil, err
	}

	publishMutation(uc.publisher, uc.logger, "UPDATE", existing.ID(), cmd.Principal.ID, cmd.ActorIP, map[string]any{
		"status": map[string]string{"from": oldStatus.String(), "to": newStatus.String()},
	})

	if oldStatus != newStatus {
		statusEvent := events.NewStatusChanged(
			string(access.EntityProject),
			existing.ID(),
			existing.Name(),
			oldStatus.String(),
			newStatus.String(),
			cmd.Principal.ID,
			existing.AssigneeID(),
			nil,
		)
		if err := uc.publisher.Publish(statusEvent); err != nil {
			uc.logger.Warnw("failed to publish status change event", "project_id", existing.ID(), "error", err)
		}
	}

	return &ChangeProjectStatusResult{
		ProjectID: existing.ID(),
		OldStatus: oldStatus.String(),
		NewStatus: newStatus.String(),
		UpdatedAt: existing.UpdatedAt(),
	}, nil
}
