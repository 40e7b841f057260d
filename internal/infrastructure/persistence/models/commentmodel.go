package models

import (
	"time"

	"kontor/internal/shared/constants"
)

type CommentModel struct {
	ID         uint      `gorm:"primaryKey"`
	ParentType string    `gorm:"size:10;not null;index:idx_comments_parent"`
	ParentID   uint      `gorm:"not null;index:idx_comments_parent"`
	AuthorID   uint      `gorm:"not null;index"`
	Content    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"not null;index"`
}

func (CommentModel) TableName() string {
	return constants.TableComments
}
