package usecases

import (
	"context"

	"kontor/internal/application/guard"
	"kontor/internal/application/queryscope"
	"kontor/internal/domain/access"
	"kontor/internal/domain/task"
	"kontor/internal/shared/logger"
	"kontor/internal/shared/utils"
)

type ListTasksQuery struct {
	Principal    access.Principal
	ProjectID    *uint
	CustomerID   *uint
	AssigneeID   *uint
	ParentTaskID *uint
	Status       string
	Priority     string
	Department   string
	Search       string
	TopLevelOnly bool
	Mine         bool
	Page         int
	PageSize     int
}

type ListTasksResult struct {
	Tasks    []*TaskDetails `json:"tasks"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

type ListTasksUseCase struct {
	taskRepo task.Repository
	logger   logger.Interface
}

func NewListTasksUseCase(taskRepo task.Repository, logger logger.Interface) *ListTasksUseCase {
	return &ListTasksUseCase{taskRepo: taskRepo, logger: logger}
}

func (uc *ListTasksUseCase) Execute(ctx context.Context, query ListTasksQuery) (*ListTasksResult, error) {
	if err := guard.Check(query.Principal, access.ActionList, access.EntityTask, scopeForList(query.Principal)); err != nil {
		return nil, err
	}

	filter := task.ListFilter{
		ProjectID:    query.ProjectID,
		CustomerID:   query.CustomerID,
		AssigneeID:   query.AssigneeID,
		ParentTaskID: query.ParentTaskID,
		Status:       query.Status,
		Priority:     query.Priority,
		Department:   query.Department,
		Search:       query.Search,
		TopLevelOnly: query.TopLevelOnly,
	}
	if err := queryscope.ForTasks(query.Principal, &filter, query.Mine); err != nil {
		return nil, err
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)
	offset := (p.Page - 1) * p.PageSize

	tasks, total, err := uc.taskRepo.List(ctx, filter, offset, p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list tasks", "error", err)
		return nil, err
	}

	items := make([]*TaskDetails, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, mapTaskDetails(t))
	}

	return &ListTasksResult{
		Tasks:    items,
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
