package models

import (
	"time"

	"gorm.io/datatypes"

	"kontor/internal/shared/constants"
)

type TaskModel struct {
	ID           uint   `gorm:"primaryKey"`
	Title        string `gorm:"size:200;not null"`
	Description  string `gorm:"type:text"`
	ProjectID    uint   `gorm:"not null;index"`
	ParentTaskID *uint  `gorm:"index"`
	Status       string `gorm:"size:20;not null;index"`
	Priority     string `gorm:"size:20;not null;index"`
	AssigneeID   *uint  `gorm:"index"`
	ReporterID   *uint  `gorm:"index"`
	Departments  datatypes.JSON
	DueDate      *time.Time `gorm:"index"`
	CreatedAt    time.Time  `gorm:"not null"`
	UpdatedAt    time.Time  `gorm:"not null"`
}

func (TaskModel) TableName() string {
	return constants.TableTasks
}
