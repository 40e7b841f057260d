package models

import (
	"time"

	"gorm.io/datatypes"

	"kontor/internal/shared/constants"
)

type ProjectModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	CustomerID  uint   `gorm:"not null;index"`
	AssigneeID  *uint  `gorm:"index"`
	Status      string `gorm:"size:20;not null;index"`
	Departments datatypes.JSON
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (ProjectModel) TableName() string {
	return constants.TableProjects
}
