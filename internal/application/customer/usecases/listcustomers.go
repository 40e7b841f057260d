package usecases

import (
	"context"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/customer"
	"kontor/internal/shared/logger"
	"kontor/internal/shared/utils"
)

type ListCustomersQuery struct {
	Principal access.Principal
	Status    string
	Industry  string
	Search    string
	Page      int
	PageSize  int
}

type ListCustomersResult struct {
	Customers []*CustomerDetails `json:"customers"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

type ListCustomersUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewListCustomersUseCase(customerRepo customer.Repository, logger logger.Interface) *ListCustomersUseCase {
	return &ListCustomersUseCase{customerRepo: customerRepo, logger: logger}
}

func (uc *ListCustomersUseCase) Execute(ctx context.Context, query ListCustomersQuery) (*ListCustomersResult, error) {
	if err := guard.Check(query.Principal, access.ActionList, access.EntityCustomer, nil); err != nil {
		return nil, err
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)
	offset := (p.Page - 1) * p.PageSize

	filter := customer.ListFilter{
		Status:   query.Status,
		Industry: query.Industry,
		Search:   query.Search,
	}

	customers, total, err := uc.customerRepo.List(ctx, filter, offset, p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list customers", "error", err)
		return nil, err
	}

	items := make([]*CustomerDetails, 0, len(customers))
	for _, c := range customers {
		items = append(items, mapCustomerDetails(c))
	}

	return &ListCustomersResult{
		Customers: items,
		Total:     total,
		Page:      p.Page,
		PageSize:  p.PageSize,
	}, nil
}
