package models

import (
	"time"

	"kontor/internal/shared/constants"
)

type NotificationModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index:idx_notifications_user_read"`
	Type      string    `gorm:"size:20;not null"`
	Title     string    `gorm:"size:200;not null"`
	Message   string    `gorm:"type:text"`
	ActionURL string    `gorm:"size:500"`
	IsRead    bool      `gorm:"not null;default:false;index:idx_notifications_user_read"`
	CreatedAt time.Time `gorm:"not null;index"`
	ReadAt    *time.Time
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
