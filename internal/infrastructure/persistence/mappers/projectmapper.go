package mappers

import (
	"fmt"

	"kontor/internal/domain/project"
	vo "kontor/internal/domain/project/valueobjects"
	"kontor/internal/infrastructure/persistence/models"
)

type ProjectMapper struct{}

func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

func (m *ProjectMapper) ToModel(p *project.Project) *models.ProjectModel {
	return &models.ProjectModel{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		CustomerID:  p.CustomerID(),
		AssigneeID:  p.AssigneeID(),
		Status:      p.Status().String(),
		Departments: departmentsToJSON(p.Departments()),
		StartDate:   p.StartDate(),
		EndDate:     p.EndDate(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func (m *ProjectMapper) ToDomain(model *models.ProjectModel) (*project.Project, error) {
	status, err := vo.NewProjectStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid project status (id=%d): %w", model.ID, err)
	}

	departments, err := departmentsFromJSON(model.Departments)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal project departments (id=%d): %w", model.ID, err)
	}

	return project.ReconstructProject(
		model.ID,
		model.Name,
		model.Description,
		model.CustomerID,
		model.AssigneeID,
		status,
		departments,
		model.StartDate,
		model.EndDate,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
