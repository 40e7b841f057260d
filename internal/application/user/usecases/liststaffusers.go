package usecases

import (
	"context"
	"time"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/department"
	"kontor/internal/domain/user"
	"kontor/internal/shared/logger"
	"kontor/internal/shared/utils"
)

type ListStaffUsersQuery struct {
	Principal  access.Principal
	Role       string
	Status     string
	Department string
	Search     string
	Page       int
	PageSize   int
}

type StaffUserDetails struct {
	UserID      uint       `json:"user_id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	Departments []string   `json:"departments"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

type ListStaffUsersResult struct {
	Users    []*StaffUserDetails `json:"users"`
	Total    int64               `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
}

type ListStaffUsersUseCase struct {
	staffRepo user.StaffRepository
	logger    logger.Interface
}

func NewListStaffUsersUseCase(staffRepo user.StaffRepository, logger logger.Interface) *ListStaffUsersUseCase {
	return &ListStaffUsersUseCase{staffRepo: staffRepo, logger: logger}
}

func (uc *ListStaffUsersUseCase) Execute(ctx context.Context, query ListStaffUsersQuery) (*ListStaffUsersResult, error) {
	if err := guard.Check(query.Principal, access.ActionList, access.EntityStaffUser, nil); err != nil {
		return nil, err
	}

	filter := user.StaffListFilter{
		Role:       query.Role,
		Status:     query.Status,
		Department: query.Department,
		Search:     query.Search,
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)
	offset := (p.Page - 1) * p.PageSize

	users, total, err := uc.staffRepo.List(ctx, filter, offset, p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list staff users", "error", err)
		return nil, err
	}

	items := make([]*StaffUserDetails, 0, len(users))
	for _, u := range users {
		items = append(items, &StaffUserDetails{
			UserID:      u.ID(),
			Email:       u.Email(),
			Name:        u.Name(),
			Role:        string(u.Role()),
			Status:      u.Status().String(),
			Departments: department.Strings(u.Departments()),
			LastLoginAt: u.LastLoginAt(),
			CreatedAt:   u.CreatedAt(),
		})
	}

	return &ListStaffUsersResult{
		Users:    items,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
