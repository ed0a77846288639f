package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentModel struct {
	ID        string    `gorm:"type:uuid;primary_key"`
	LessonID  string    `gorm:"type:uuid;not null;index"`
	UserEmail string    `gorm:"not null;index"`
	UserName  string
	UserPhoto string
	Text      string    `gorm:"column:comment;type:text;not null"`
	CreatedAt time.Time
}

func (CommentModel) TableName() string {
	return "comments"
}

func (c *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
