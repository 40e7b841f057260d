package usecases

import (
	"context"
	"time"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/department"
	"kontor/internal/domain/project"
	"kontor/internal/shared/biztime"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

type UpdateProjectCommand struct {
	Principal   access.Principal
	ActorIP     string
	ProjectID   uint
	Name        string
	Description string
	Departments []string
	StartDate   string // YYYY-MM-DD
	EndDate     string // YYYY-MM-DD
}

type UpdateProjectResult struct {
	ProjectID uint      `json:"project_id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateProjectUseCase struct {
	projectRepo project.Repository
	publisher   EventPublisher
	logger      logger.Interface
}

func NewUpdateProjectUseCase(
	projectRepo project.Repository,
	publisher EventPublisher,
	logger logger.Interface,
) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		projectRepo: projectRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, cmd UpdateProjectCommand) (*UpdateProjectResult, error) {
	uc.logger.Infow("executing update project use case", "project_id", cmd.ProjectID, "actor_id", cmd.Principal.ID)

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

	var departments []department.Department
	if cmd.Departments != nil {
		departments, err = department.ParseList(cmd.Departments)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := existing.UpdateDetails(cmd.Name, cmd.Description, departments); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if len(cmd.StartDate) > 0 || len(cmd.EndDate) > 0 {
		start, end, err := parseSchedule(cmd.StartDate, cmd.EndDate)
		if err != nil {
			return nil, err
		}
		if err := existing.SetSchedule(start, end); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.projectRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update project", "project_id", cmd.ProjectID, "error", err)
		return nil, err
	}

	changes := map[string]any{}
	if len(cmd.Name) > 0 {
		changes["name"] = cmd.Name
	}
	if cmd.Departments != nil {
		changes["departments"] = cmd.Departments
	}
	publishMutation(uc.publisher, uc.logger, "UPDATE", existing.ID(), cmd.Principal.ID, cmd.ActorIP, changes)

	return &UpdateProjectResult{
		ProjectID: existing.ID(),
		Name:      existing.Name(),
		Status:    existing.Status().String(),
		UpdatedAt: existing.UpdatedAt(),
	}, nil
}

func parseSchedule(startDate, endDate string) (*time.Time, *time.Time, error) {
	var start, end *time.Time
	if len(startDate) > 0 {
		parsed, err := biztime.ParseDate(startDate)
		if err != nil {
			return nil, nil, errors.NewValidationError("invalid start date")
		}
		start = &parsed
	}
	if len(endDate) > 0 {
		parsed, err := biztime.ParseDate(endDate)
		if err != nil {
			return nil, nil, errors.NewValidationError("invalid end date")
		}
		end = &parsed
	}
	return start, end, nil
}
