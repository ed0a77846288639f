package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportModel struct {
	ID            string    `gorm:"type:uuid;primary_key"`
	LessonID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_reports_lesson_reporter"`
	ReporterEmail string    `gorm:"not null;uniqueIndex:idx_reports_lesson_reporter"`
	ReporterName  string
	LessonTitle   string
	Reason        string    `gorm:"not null"`
	CreatedAt     time.Time
}

func (ReportModel) TableName() string {
	return "reports"
}

func (r *ReportModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
