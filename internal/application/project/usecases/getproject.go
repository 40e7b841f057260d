package usecases

import (
	"context"
	"time"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/department"
	"kontor/internal/domain/project"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

type GetProjectQuery struct {
	Principal access.Principal
	ProjectID uint
}

type ProjectDetails struct {
	ProjectID   uint       `json:"project_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CustomerID  uint       `json:"customer_id"`
	AssigneeID  *uint      `json:"assignee_id"`
	Status      string     `json:"status"`
	Departments []string   `json:"departments"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type GetProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewGetProjectUseCase(projectRepo project.Repository, logger logger.Interface) *GetProjectUseCase {
	return &GetProjectUseCase{projectRepo: projectRepo, logger: logger}
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, query GetProjectQuery) (*ProjectDetails, error) {
	if query.ProjectID == 0 {
		return nil, errors.NewValidationError("project ID is required")
	}

	found, err := uc.projectRepo.FindByID(ctx, query.ProjectID)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errors.NewNotFoundError("project not found")
	}

	customerID := found.CustomerID()
	scope := &access.Scope{
		CustomerID: &customerID,
		AssigneeID: found.AssigneeID(),
	}
	if err := guard.CheckRead(query.Principal, access.EntityProject, scope); err != nil {
		return nil, err
	}

	return mapProjectDetails(found), nil
}

func mapProjectDetails(p *project.Project) *ProjectDetails {
	return &ProjectDetails{
		ProjectID:   p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		CustomerID:  p.CustomerID(),
		AssigneeID:  p.AssigneeID(),
		Status:      p.Status().String(),
		Departments: department.Strings(p.Departments()),
		StartDate:   p.StartDate(),
		EndDate:     p.EndDate(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}
