package usecases

import (
	"context"

	"kontor/internal/application/guard"
	"kontor/internal/application/queryscope"
	"kontor/internal/domain/access"
	"kontor/internal/domain/project"
	"kontor/internal/shared/logger"
	"kontor/internal/shared/utils"
)

type ListProjectsQuery struct {
	Principal  access.Principal
	CustomerID *uint
	Status     string
	Department string
	Search     string
	Page       int
	PageSize   int
}

type ListProjectsResult struct {
	Projects []*ProjectDetails `json:"projects"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

type ListProjectsUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewListProjectsUseCase(projectRepo project.Repository, logger logger.Interface) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: projectRepo, logger: logger}
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, query ListProjectsQuery) (*ListProjectsResult, error) {
	if err := guard.Check(query.Principal, access.ActionList, access.EntityProject, scopeForList(query.Principal)); err != nil {
		return nil, err
	}

	filter := project.ListFilter{
		CustomerID: query.CustomerID,
		Status:     query.Status,
		Department: query.Department,
		Search:     query.Search,
	}
	if err := queryscope.ForProjects(query.Principal, &filter); err != nil {
		return nil, err
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)
	offset := (p.Page - 1) * p.PageSize

	projects, total, err := uc.projectRepo.List(ctx, filter, offset, p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list projects", "error", err)
		return nil, err
	}

	items := make([]*ProjectDetails, 0, len(projects))
	for _, proj := range projects {
		items = append(items, mapProjectDetails(proj))
	}

	return &ListProjectsResult{
		Projects: items,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}

// scopeForList satisfies the consumer own-customer rule for LIST: the
// facade pins the filter to the principal's customer, so the list as a
// whole targets their own scope.
func scopeForList(p access.Principal) *access.Scope {
	if p.IsConsumer() {
		return &access.Scope{CustomerID: p.CustomerID}
	}
	return nil
}
