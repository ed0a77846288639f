package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LessonModel struct {
	ID            string `gorm:"type:uuid;primary_key"`
	CreatorEmail  string `gorm:"not null;index"`
	CreatorName   string
	CreatorPhoto  string
	Title         string `gorm:"not null"`
	Description   string `gorm:"type:text"`
	Category      string `gorm:"index"`
	EmotionalTone string
	ImageURL      string
	Privacy       string `gorm:"type:varchar(10);not null;default:'Public'"`
	AccessLevel   string `gorm:"type:varchar(10);not null;default:'Free'"`
	IsFeatured    bool   `gorm:"default:false"`
	// Counters are maintained in the same transaction as the membership rows
	// and clamped at zero; they are never written independently.
	LikesCount     int64 `gorm:"default:0"`
	FavoritesCount int64 `gorm:"default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (LessonModel) TableName() string {
	return "lessons"
}

func (l *LessonModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
