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

type ConsumerUserRepository struct {
	db     *gorm.DB
	mapper *mappers.ConsumerUserMapper
}

func NewConsumerUserRepository(db *gorm.DB) *ConsumerUserRepository {
	return &ConsumerUserRepository{
		db:     db,
		mapper: mappers.NewConsumerUserMapper(),
	}
}

func (r *ConsumerUserRepository) Save(ctx context.Context, u *user.ConsumerUser) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save consumer user: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *ConsumerUserRepository) FindByID(ctx context.Context, id uint) (*user.ConsumerUser, error) {
	var model models.ConsumerUserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find consumer user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ConsumerUserRepository) FindByEmail(ctx context.Context, email string) (*user.ConsumerUser, error) {
	var model models.ConsumerUserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find consumer user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ConsumerUserRepository) Update(ctx context.Context, u *user.ConsumerUser) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update consumer user: %w", err)
	}
	return nil
}

func (r *ConsumerUserRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ConsumerUserModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete consumer user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("consumer user not found")
	}
	return nil
}

func (r *ConsumerUserRepository) List(ctx context.Context, filter user.ConsumerListFilter, offset, limit int) ([]*user.ConsumerUser, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ConsumerUserModel{})

	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count consumer users: %w", err)
	}

	var rows []models.ConsumerUserModel
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list consumer users: %w", err)
	}

	users := make([]*user.ConsumerUser, 0, len(rows))
	for i := range rows {
		u, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}

	return users, total, nil
}

func (r *ConsumerUserRepository) DeleteByCustomer(ctx context.Context, customerID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("customer_id = ?", customerID).Delete(&models.ConsumerUserModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete consumer users: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *ConsumerUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.ConsumerUserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check consumer email: %w", err)
	}
	return count > 0, nil
}
