package usecases

import (
	"context"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/project"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

type DeleteProjectCommand struct {
	Principal access.Principal
	ActorIP   string
	ProjectID uint
}

type DeleteProjectResult struct {
	ProjectID      uint  `json:"project_id"`
	RemovedRecords int64 `json:"removed_records"`
}

type DeleteProjectUseCase struct {
	projectRepo project.Repository
	cascader    Cascader
	publisher   EventPublisher
	logger      logger.Interface
}

func NewDeleteProjectUseCase(
	projectRepo project.Repository,
	cascader Cascader,
	publisher EventPublisher,
	logger logger.Interface,
) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{
		projectRepo: projectRepo,
		cascader:    cascader,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, cmd DeleteProjectCommand) (*DeleteProjectResult, error) {
	uc.logger.Infow("executing delete project use case", "project_id", cmd.ProjectID, "actor_id", cmd.Principal.ID)

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

	// Project deletion is never scope-conditional: only roles with an
	// unconditional DELETE grant may cascade a project away.
	if err := guard.Check(cmd.Principal, access.ActionDelete, access.EntityProject, nil); err != nil {
		return nil, err
	}

	report, err := uc.cascader.DeleteProject(ctx, cmd.ProjectID)
	if err != nil {
		return nil, err
	}

	publishMutation(uc.publisher, uc.logger, "DELETE", cmd.ProjectID, cmd.Principal.ID, cmd.ActorIP, map[string]any{
		"name":     existing.Name(),
		"tasks":    report.Tasks,
		"tickets":  report.Tickets,
		"comments": report.Comments,
	})

	uc.logger.Infow("project deleted", "project_id", cmd.ProjectID, "removed_records", report.Total())

	return &DeleteProjectResult{
		ProjectID:      cmd.ProjectID,
		RemovedRecords: report.Total(),
	}, nil
}
