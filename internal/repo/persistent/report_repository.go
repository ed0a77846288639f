package persistent

import (
	"lifelessons/internal/entity"
	"lifelessons/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReportRepository interface {
	Create(report *entity.Report) error
	Delete(reportID string) error
	ListAll() ([]*entity.Report, error)
	CountForLesson(lessonID string) (int64, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// Create relies on the (lesson_id, reporter_email) unique index; a repeat
// report from the same viewer surfaces as ErrDuplicateReport, which is a
// user-visible condition, not a system failure.
func (r *reportRepository) Create(report *entity.Report) error {
	reportModel := &model.ReportModel{
		LessonID:      report.LessonID,
		LessonTitle:   report.LessonTitle,
		ReporterEmail: report.ReporterEmail,
		ReporterName:  report.ReporterName,
		Reason:        report.Reason,
	}

	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(reportModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrDuplicateReport
	}

	*report = *ToReportEntity(reportModel)
	return nil
}

func (r *reportRepository) Delete(reportID string) error {
	result := r.db.Where("id = ?", reportID).Delete(&model.ReportModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *reportRepository) ListAll() ([]*entity.Report, error) {
	var reportModels []model.ReportModel
	if err := r.db.Order("created_at DESC").Find(&reportModels).Error; err != nil {
		return nil, err
	}

	reports := make([]*entity.Report, len(reportModels))
	for i := range reportModels {
		reports[i] = ToReportEntity(&reportModels[i])
	}
	return reports, nil
}

func (r *reportRepository) CountForLesson(lessonID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.ReportModel{}).Where("lesson_id = ?", lessonID).Count(&count).Error
	return count, err
}
