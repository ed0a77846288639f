package usecase

import (
	"fmt"
	"sort"

	"lifelessons/internal/access"
	"lifelessons/internal/entity"
	"lifelessons/internal/repo/persistent"
	"lifelessons/pkg/logger"
	"lifelessons/pkg/queue"
)

type ModerationUseCase interface {
	SubmitReport(lessonID string, viewer entity.ViewerContext, reporterName, reason string) (*entity.Report, error)
	AggregatedReports() ([]*entity.ReportAggregate, error)
	DismissReport(reportID string, viewer entity.ViewerContext) error
	DeleteLessonWithReports(lessonID string, viewer entity.ViewerContext) error
}

type moderationUseCase struct {
	reportRepo  persistent.ReportRepository
	lessonRepo  persistent.LessonRepository
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewModerationUseCase(
	reportRepo persistent.ReportRepository,
	lessonRepo persistent.LessonRepository,
	queueClient *queue.Client,
	logger *logger.Logger,
) ModerationUseCase {
	return &moderationUseCase{
		reportRepo:  reportRepo,
		lessonRepo:  lessonRepo,
		queueClient: queueClient,
		logger:      logger,
	}
}

func (uc *moderationUseCase) SubmitReport(lessonID string, viewer entity.ViewerContext, reporterName, reason string) (*entity.Report, error) {
	if !entity.ValidReportReason(reason) {
		return nil, fmt.Errorf("%w: unknown report reason %q", entity.ErrValidation, reason)
	}

	lesson, err := uc.lessonRepo.GetByID(lessonID)
	if err != nil {
		return nil, err
	}

	// A viewer with no access at all cannot report; a blurred preview is
	// still reportable.
	if access.Evaluate(lesson, viewer) == access.Deny {
		return nil, entity.ErrForbidden
	}

	report := &entity.Report{
		LessonID:      lessonID,
		LessonTitle:   lesson.Title,
		ReporterEmail: viewer.Email,
		ReporterName:  reporterName,
		Reason:        reason,
	}
	if err := uc.reportRepo.Create(report); err != nil {
		return nil, err
	}

	if uc.queueClient != nil {
		go func() {
			task := map[string]interface{}{
				"type":      "report",
				"lesson_id": lessonID,
				"reason":    reason,
				"priority":  5,
			}
			if err := uc.queueClient.PublishNotificationTask(task); err != nil {
				uc.logger.Error("Failed to publish report notification: %v", err)
			}
		}()
	}

	return report, nil
}

// AggregatedReports folds raw reports into one moderation queue entry per
// lesson: reporter count and the distinct reasons. No mandated ordering; the
// admin UI sorts as it likes.
func (uc *moderationUseCase) AggregatedReports() ([]*entity.ReportAggregate, error) {
	reports, err := uc.reportRepo.ListAll()
	if err != nil {
		uc.logger.Error("Failed to list reports: %v", err)
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	byLesson := make(map[string]*entity.ReportAggregate)
	for _, report := range reports {
		agg, ok := byLesson[report.LessonID]
		if !ok {
			agg = &entity.ReportAggregate{
				LessonID:    report.LessonID,
				LessonTitle: report.LessonTitle,
			}
			byLesson[report.LessonID] = agg
		}
		agg.ReporterCount++
		agg.Reports = append(agg.Reports, report)
		if report.CreatedAt.After(agg.LatestAt) {
			agg.LatestAt = report.CreatedAt
		}

		seen := false
		for _, reason := range agg.Reasons {
			if reason == report.Reason {
				seen = true
				break
			}
		}
		if !seen {
			agg.Reasons = append(agg.Reasons, report.Reason)
		}
	}

	aggregates := make([]*entity.ReportAggregate, 0, len(byLesson))
	for _, agg := range byLesson {
		sort.Strings(agg.Reasons)
		aggregates = append(aggregates, agg)
	}
	return aggregates, nil
}

func (uc *moderationUseCase) DismissReport(reportID string, viewer entity.ViewerContext) error {
	if !viewer.IsAdmin() {
		return entity.ErrForbidden
	}
	return uc.reportRepo.Delete(reportID)
}

// DeleteLessonWithReports removes the lesson together with every report,
// favorite, like and comment that references it. The repository runs the
// whole cascade in one transaction, so a failing half leaves nothing behind.
func (uc *moderationUseCase) DeleteLessonWithReports(lessonID string, viewer entity.ViewerContext) error {
	if !viewer.IsAdmin() {
		return entity.ErrForbidden
	}

	if err := uc.lessonRepo.DeleteCascade(lessonID); err != nil {
		return err
	}

	uc.logger.Info("Admin %s deleted lesson %s with all reports", viewer.Email, lessonID)
	return nil
}
