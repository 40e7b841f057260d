package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"kontor/internal/domain/user"
	"kontor/internal/infrastructure/persistence/mappers"
	"kontor/internal/infrastructure/persistence/models"
	"kontor/internal/shared/db"
)

type StaffUserRepository struct {
	db     *gorm.DB
	mapper *mappers.StaffUserMapper
}

func NewStaffUserRepository(db *gorm.DB) *StaffUserRepository {
	return &StaffUserRepository{
		db:     db,
		mapper: mappers.NewStaffUserMapper(),
	}
}

func (r *StaffUserRepository) Save(ctx context.Context, u *user.StaffUser) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save staff user: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *StaffUserRepository) FindByID(ctx context.Context, id uint) (*user.StaffUser, error) {
	var model models.StaffUserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find staff user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *StaffUserRepository) FindByEmail(ctx context.Context, email string) (*user.StaffUser, error) {
	var model models.StaffUserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find staff user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *StaffUserRepository) Update(ctx context.Context, u *user.StaffUser) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update staff user: %w", err)
	}
	return nil
}

func (r *StaffUserRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.StaffUserModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete staff user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("staff user not found")
	}
	return nil
}

func (r *StaffUserRepository) List(ctx context.Context, filter user.StaffListFilter, offset, limit int) ([]*user.StaffUser, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.StaffUserModel{})

	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Department != "" {
		query = query.Where("departments LIKE ?", "%\""+filter.Department+"\"%")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count staff users: %w", err)
	}

	var rows []models.StaffUserModel
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list staff users: %w", err)
	}

	users := make([]*user.StaffUser, 0, len(rows))
	for i := range rows {
		u, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}

	return users, total, nil
}

func (r *StaffUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.StaffUserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check staff email: %w", err)
	}
	return count > 0, nil
}
