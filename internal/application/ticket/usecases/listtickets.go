package usecases

import (
	"context"

	"kontor/internal/application/guard"
	"kontor/internal/application/queryscope"
	"kontor/internal/domain/access"
	"kontor/internal/domain/ticket"
	"kontor/internal/shared/logger"
	"kontor/internal/shared/utils"
)

type ListTicketsQuery struct {
	Principal  access.Principal
	ProjectID  *uint
	CustomerID *uint
	AssigneeID *uint
	Status     string
	Priority   string
	Type       string
	Department string
	Tag        string
	Search     string
	Mine       bool
	Page       int
	PageSize   int
}

type ListTicketsResult struct {
	Tickets  []*TicketDetails `json:"tickets"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	if err := guard.Check(query.Principal, access.ActionList, access.EntityTicket, scopeForList(query.Principal)); err != nil {
		return nil, err
	}

	filter := ticket.ListFilter{
		ProjectID:  query.ProjectID,
		CustomerID: query.CustomerID,
		AssigneeID: query.AssigneeID,
		Status:     query.Status,
		Priority:   query.Priority,
		Type:       query.Type,
		Department: query.Department,
		Tag:        query.Tag,
		Search:     query.Search,
	}
	if err := queryscope.ForTickets(query.Principal, &filter, query.Mine); err != nil {
		return nil, err
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)
	offset := (p.Page - 1) * p.PageSize

	tickets, total, err := uc.ticketRepo.List(ctx, filter, offset, p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	items := make([]*TicketDetails, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, mapTicketDetails(t))
	}

	return &ListTicketsResult{
		Tickets:  items,
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
