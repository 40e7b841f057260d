package models

import (
	"time"

	"gorm.io/datatypes"

	"kontor/internal/shared/constants"
)

type CustomerModel struct {
	ID        uint   `gorm:"primaryKey"`
	LegalName string `gorm:"size:200;not null"`
	TradeName string `gorm:"size:200"`
	VatID     string `gorm:"size:50;index"`
	Industry  string `gorm:"size:100;index"`
	Size      string `gorm:"size:50"`
	Status    string `gorm:"size:20;not null;index"`
	Addresses datatypes.JSON
	Contacts  datatypes.JSON
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Note: no foreign key constraints or associations. Relationships
	// are managed by application business logic.
}

func (CustomerModel) TableName() string {
	return constants.TableCustomers
}
