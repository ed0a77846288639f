package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FavoriteModel denormalizes display metadata from the lesson at creation
// time. The snapshot goes stale if the lesson is later edited; that tradeoff
// is deliberate so favorite listings never join back to lessons.
type FavoriteModel struct {
	ID             string    `gorm:"type:uuid;primary_key"`
	LessonID       string    `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_lesson_user"`
	UserEmail      string    `gorm:"not null;uniqueIndex:idx_favorites_lesson_user"`
	LessonTitle    string
	LessonImage    string
	LessonCategory string
	LessonTone     string
	CreatedAt      time.Time
}

func (FavoriteModel) TableName() string {
	return "favorites"
}

func (f *FavoriteModel) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}
