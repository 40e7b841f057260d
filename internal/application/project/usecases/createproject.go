package usecases

import (
	"context"
	"time"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/customer"
	"kontor/internal/domain/department"
	"kontor/internal/domain/project"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

type CreateProjectCommand struct {
	Principal   access.Principal
	ActorIP     string
	Name        string
	Description string
	CustomerID  uint
	Departments []string
}

type CreateProjectResult struct {
	ProjectID  uint      `json:"project_id"`
	Name       string    `json:"name"`
	CustomerID uint      `json:"customer_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateProjectUseCase struct {
	projectRepo  project.Repository
	customerRepo customer.Repository
	publisher    EventPublisher
	logger       logger.Interface
}

func NewCreateProjectUseCase(
	projectRepo project.Repository,
	customerRepo customer.Repository,
	publisher EventPublisher,
	logger logger.Interface,
) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo:  projectRepo,
		customerRepo: customerRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, cmd CreateProjectCommand) (*CreateProjectResult, error) {
	uc.logger.Infow("executing create project use case", "name", cmd.Name, "customer_id", cmd.CustomerID, "actor_id", cmd.Principal.ID)

	if err := guard.Check(cmd.Principal, access.ActionCreate, access.EntityProject, nil); err != nil {
		return nil, err
	}

	if len(cmd.Name) == 0 {
		return nil, errors.NewValidationError("name is required")
	}
	if cmd.CustomerID == 0 {
		return nil, errors.NewValidationError("customer ID is required")
	}

	departments, err := department.ParseList(cmd.Departments)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	owner, err := uc.customerRepo.FindByID(ctx, cmd.CustomerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, errors.NewNotFoundError("customer not found")
	}

	newProject, err := project.NewProject(cmd.Name, cmd.Description, cmd.CustomerID, departments)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.projectRepo.Save(ctx, newProject); err != nil {
		uc.logger.Errorw("failed to save project", "error", err)
		return nil, err
	}

	publishMutation(uc.publisher, uc.logger, "CREATE", newProject.ID(), cmd.Principal.ID, cmd.ActorIP, map[string]any{
		"name":        newProject.Name(),
		"customer_id": newProject.CustomerID(),
		"status":      newProject.Status().String(),
	})

	uc.logger.Infow("project created", "project_id", newProject.ID())

	return &CreateProjectResult{
		ProjectID:  newProject.ID(),
		Name:       newProject.Name(),
		CustomerID: newProject.CustomerID(),
		Status:     newProject.Status().String(),
		CreatedAt:  newProject.CreatedAt(),
	}, nil
}
