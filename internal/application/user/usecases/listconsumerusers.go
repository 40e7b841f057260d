package usecases

import (
	"context"
	"time"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/user"
	"kontor/internal/shared/logger"
	"kontor/internal/shared/utils"
)

type ListConsumerUsersQuery struct {
	Principal  access.Principal
	CustomerID *uint
	Status     string
	Search     string
	Page       int
	PageSize   int
}

type ConsumerUserDetails struct {
	UserID      uint       `json:"user_id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	CustomerID  uint       `json:"customer_id"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

type ListConsumerUsersResult struct {
	Users    []*ConsumerUserDetails `json:"users"`
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
}

type ListConsumerUsersUseCase struct {
	consumerRepo user.ConsumerRepository
	logger       logger.Interface
}

func NewListConsumerUsersUseCase(consumerRepo user.ConsumerRepository, logger logger.Interface) *ListConsumerUsersUseCase {
	return &ListConsumerUsersUseCase{consumerRepo: consumerRepo, logger: logger}
}

func (uc *ListConsumerUsersUseCase) Execute(ctx context.Context, query ListConsumerUsersQuery) (*ListConsumerUsersResult, error) {
	if err := guard.Check(query.Principal, access.ActionList, access.EntityConsumerUser, nil); err != nil {
		return nil, err
	}

	filter := user.ConsumerListFilter{
		CustomerID: query.CustomerID,
		Status:     query.Status,
		Search:     query.Search,
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)
	offset := (p.Page - 1) * p.PageSize

	users, total, err := uc.consumerRepo.List(ctx, filter, offset, p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list consumer users", "error", err)
		return nil, err
	}

	items := make([]*ConsumerUserDetails, 0, len(users))
	for _, u := range users {
		items = append(items, &ConsumerUserDetails{
			UserID:      u.ID(),
			Email:       u.Email(),
			Name:        u.Name(),
			CustomerID:  u.CustomerID(),
			Status:      u.Status().String(),
			LastLoginAt: u.LastLoginAt(),
			CreatedAt:   u.CreatedAt(),
		})
	}

	return &ListConsumerUsersResult{
		Users:    items,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
