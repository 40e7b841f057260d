package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"kontor/internal/domain/audit"
	"kontor/internal/infrastructure/persistence/mappers"
	"kontor/internal/infrastructure/persistence/models"
	"kontor/internal/shared/db"
)

// AuditRepository is append-only. There is deliberately no update or
// delete method.
type AuditRepository struct {
	db     *gorm.DB
	mapper *mappers.AuditMapper
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{
		db:     db,
		mapper: mappers.NewAuditMapper(),
	}
}

func (r *AuditRepository) Save(ctx context.Context, entry *audit.Entry) error {
	model := r.mapper.ToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save audit entry: %w", err)
	}

	return entry.SetID(model.ID)
}

func (r *AuditRepository) List(ctx context.Context, filter audit.ListFilter, offset, limit int) ([]*audit.Entry, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := applyAuditFilter(tx.Model(&models.AuditLogModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	var rows []models.AuditLogModel
	if err := query.Order("occurred_at DESC").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list audit entries: %w", err)
	}

	entries, err := r.toDomainSlice(rows)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *AuditRepository) ListAll(ctx context.Context, filter audit.ListFilter) ([]*audit.Entry, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := applyAuditFilter(tx.Model(&models.AuditLogModel{}), filter)

	var rows []models.AuditLogModel
	if err := query.Order("occurred_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	return r.toDomainSlice(rows)
}

func (r *AuditRepository) toDomainSlice(rows []models.AuditLogModel) ([]*audit.Entry, error) {
	entries := make([]*audit.Entry, 0, len(rows))
	for i := range rows {
		entry, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func applyAuditFilter(query *gorm.DB, filter audit.ListFilter) *gorm.DB {
	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.From != nil {
		query = query.Where("occurred_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("occurred_at <= ?", *filter.To)
	}
	return query
}
