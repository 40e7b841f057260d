package usecases

import (
	"context"
	"time"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/project"
	"kontor/internal/domain/shared/events"
	"kontor/internal/domain/user"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

// AssignProjectCommand is the quick-assign payload: only the assignee
// changes. A nil AssigneeID clears the assignment.
type AssignProjectCommand struct {
	Principal  access.Principal
	ActorIP    string
	ProjectID  uint
	AssigneeID *uint
}

type AssignProjectResult struct {
	ProjectID  uint      `json:"project_id"`
	AssigneeID *uint     `json:"assignee_id"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AssignProjectUseCase struct {
	projectRepo project.Repository
	staffRepo   user.StaffRepository
	publisher   EventPublisher
	logger      logger.Interface
}

func NewAssignProjectUseCase(
	projectRepo project.Repository,
	staffRepo user.StaffRepository,
	publisher EventPublisher,
	logger logger.Interface,
) *AssignProjectUseCase {
	return &AssignProjectUseCase{
		projectRepo: projectRepo,
		staffRepo:   staffRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *AssignProjectUseCase) Execute(ctx context.Context, cmd AssignProjectCommand) (*AssignProjectResult, error) {
	uc.logger.Infow("executing assign project use case", "project_id", cmd.ProjectID, "actor_id", cmd.Principal.ID)

	if cmd.ProjectID == 0 {
		return nil, errors.NewValidationError("project ID is required")
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

	if cmd.AssigneeID != nil {
		assignee, err := uc.staffRepo.FindByID(ctx, *cmd.AssigneeID)
		if err != nil {
			return nil, err
		}
		if assignee == nil {
			return nil, errors.NewNotFoundError("assignee not found")
		}
	}

	if err := existing.AssignTo(cmd.AssigneeID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.projectRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update project assignee", "project_id", cmd.ProjectID, "error", err)
		return nil, err
	}

	publishMutation(uc.publisher, uc.logger, "UPDATE", existing.ID(), cmd.Principal.ID, cmd.ActorIP, map[string]any{
		"assignee_id": cmd.AssigneeID,
	})

	if cmd.AssigneeID != nil && *cmd.AssigneeID != cmd.Principal.ID {
		assigned := events.NewEntityAssigned(string(access.EntityProject), existing.ID(), existing.Name(), *cmd.AssigneeID, cmd.Principal.ID)
		if err := uc.publisher.Publish(assigned); err != nil {
			uc.logger.Warnw("failed to publish assignment event", "project_id", existing.ID(), "error", err)
		}
	}

	return &AssignProjectResult{
		ProjectID:  existing.ID(),
		AssigneeID: existing.AssigneeID(),
		UpdatedAt:  existing.UpdatedAt(),
	}, nil
}
