package models

import (
	"time"

	"gorm.io/datatypes"

	"kontor/internal/shared/constants"
)

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	Type        string `gorm:"size:20;not null;index"`
	Status      string `gorm:"size:20;not null;index"`
	Priority    string `gorm:"size:20;not null;index"`
	ProjectID   *uint  `gorm:"index"`
	CustomerID  *uint  `gorm:"index"`
	AssigneeID  *uint  `gorm:"index"`
	ReporterID  *uint  `gorm:"index"`
	Departments datatypes.JSON
	Tags        datatypes.JSON
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
	ResolvedAt  *time.Time
	ClosedAt    *time.Time
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}
