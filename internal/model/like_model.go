package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikeModel rows are hard-deleted on untoggle. The composite unique index is
// the storage-level guarantee that a viewer appears at most once per lesson,
// even under concurrent requests from multiple devices.
type LikeModel struct {
	ID        string    `gorm:"type:uuid;primary_key"`
	LessonID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_likes_lesson_user"`
	UserEmail string    `gorm:"not null;uniqueIndex:idx_likes_lesson_user"`
	CreatedAt time.Time
}

func (LikeModel) TableName() string {
	return "likes"
}

func (l *LikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
