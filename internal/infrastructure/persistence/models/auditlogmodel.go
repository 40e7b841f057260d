package models

import (
	"time"

	"gorm.io/datatypes"

	"kontor/internal/shared/constants"
)

// AuditLogModel rows are append-only. Nothing in the codebase updates
// or deletes them.
type AuditLogModel struct {
	ID         uint   `gorm:"primaryKey"`
	Action     string `gorm:"size:20;not null;index"`
	EntityType string `gorm:"size:50;not null;index:idx_audit_entity"`
	EntityID   uint   `gorm:"index:idx_audit_entity"`
	UserID     uint   `gorm:"not null;index"`
	IPAddress  string `gorm:"size:45"`
	Changes    datatypes.JSON
	OccurredAt time.Time `gorm:"not null;index"`
}

func (AuditLogModel) TableName() string {
	return constants.TableAuditLogs
}
