package models

import (
	"time"

	"gorm.io/datatypes"

	"kontor/internal/shared/constants"
)

type StaffUserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	Name         string `gorm:"size:200;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:20;not null;index"`
	Status       string `gorm:"size:20;not null;index"`
	Departments  datatypes.JSON
	LastLoginAt  *time.Time
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (StaffUserModel) TableName() string {
	return constants.TableStaffUsers
}

type ConsumerUserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	Name         string `gorm:"size:200;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	CustomerID   uint   `gorm:"not null;index"`
	Status       string `gorm:"size:20;not null;index"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (ConsumerUserModel) TableName() string {
	return constants.TableConsumerUsers
}
