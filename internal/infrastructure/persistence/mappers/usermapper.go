package mappers

import (
	"fmt"

	"kontor/internal/domain/user"
	vo "kontor/internal/domain/user/valueobjects"
	"kontor/internal/infrastructure/persistence/models"
	"kontor/internal/shared/authorization"
)

type StaffUserMapper struct{}

func NewStaffUserMapper() *StaffUserMapper {
	return &StaffUserMapper{}
}

func (m *StaffUserMapper) ToModel(u *user.StaffUser) *models.StaffUserModel {
	return &models.StaffUserModel{
		ID:           u.ID(),
		Email:        u.Email(),
		Name:         u.Name(),
		PasswordHash: u.HashedPassword(),
		Role:         string(u.Role()),
		Status:       u.Status().String(),
		Departments:  departmentsToJSON(u.Departments()),
		LastLoginAt:  u.LastLoginAt(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func (m *StaffUserMapper) ToDomain(model *models.StaffUserModel) (*user.StaffUser, error) {
	status, err := vo.NewUserStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid staff user status (id=%d): %w", model.ID, err)
	}

	departments, err := departmentsFromJSON(model.Departments)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal staff user departments (id=%d): %w", model.ID, err)
	}

	return user.ReconstructStaffUser(
		model.ID,
		model.Email,
		model.Name,
		model.PasswordHash,
		authorization.Role(model.Role),
		status,
		departments,
		model.LastLoginAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

type ConsumerUserMapper struct{}

func NewConsumerUserMapper() *ConsumerUserMapper {
	return &ConsumerUserMapper{}
}

func (m *ConsumerUserMapper) ToModel(u *user.ConsumerUser) *models.ConsumerUserModel {
	return &models.ConsumerUserModel{
		ID:           u.ID(),
		Email:        u.Email(),
		Name:         u.Name(),
		PasswordHash: u.HashedPassword(),
		CustomerID:   u.CustomerID(),
		Status:       u.Status().String(),
		LastLoginAt:  u.LastLoginAt(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func (m *ConsumerUserMapper) ToDomain(model *models.ConsumerUserModel) (*user.ConsumerUser, error) {
	status, err := vo.NewUserStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid consumer user status (id=%d): %w", model.ID, err)
	}

	return user.ReconstructConsumerUser(
		model.ID,
		model.Email,
		model.Name,
		model.PasswordHash,
		model.CustomerID,
		status,
		model.LastLoginAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
