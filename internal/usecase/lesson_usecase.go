package usecase

import (
	"fmt"
	"io"
	"strings"

	"lifelessons/internal/access"
	"lifelessons/internal/entity"
	"lifelessons/internal/repo/persistent"
	"lifelessons/pkg/logger"
	"lifelessons/pkg/s3"

	"github.com/google/uuid"
)

type CreateLessonInput struct {
	Title         string
	Description   string
	Category      string
	EmotionalTone string
	Privacy       string
	AccessLevel   string
}

type UpdateLessonInput struct {
	Title         *string
	Description   *string
	Category      *string
	EmotionalTone *string
	Privacy       *string
	AccessLevel   *string
}

// LessonView is one lesson together with the access decision and the
// viewer's own engagement state.
type LessonView struct {
	Lesson      *entity.Lesson
	Decision    access.Decision
	IsLiked     bool
	IsFavorited bool
	Likes       []string
}

type LessonUseCase interface {
	CreateLesson(viewer entity.ViewerContext, creatorName, creatorPhoto string, input CreateLessonInput, image io.Reader, imageContentType string) (*entity.Lesson, error)
	GetLesson(lessonID string, viewer entity.ViewerContext) (*LessonView, error)
	ListLessons(filter persistent.LessonFilter, viewer entity.ViewerContext, limit, offset int) ([]*LessonView, error)
	MyLessons(viewer entity.ViewerContext) ([]*entity.Lesson, error)
	UpdateLesson(lessonID string, viewer entity.ViewerContext, input UpdateLessonInput) (*entity.Lesson, error)
	DeleteLesson(lessonID string, viewer entity.ViewerContext) error
	ToggleFeatured(lessonID string, viewer entity.ViewerContext) (bool, error)
}

type lessonUseCase struct {
	lessonRepo     persistent.LessonRepository
	engagementRepo persistent.EngagementRepository
	s3Client       *s3.Client
	logger         *logger.Logger
}

func NewLessonUseCase(
	lessonRepo persistent.LessonRepository,
	engagementRepo persistent.EngagementRepository,
	s3Client *s3.Client,
	logger *logger.Logger,
) LessonUseCase {
	return &lessonUseCase{
		lessonRepo:     lessonRepo,
		engagementRepo: engagementRepo,
		s3Client:       s3Client,
		logger:         logger,
	}
}

func (uc *lessonUseCase) CreateLesson(viewer entity.ViewerContext, creatorName, creatorPhoto string, input CreateLessonInput, image io.Reader, imageContentType string) (*entity.Lesson, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", entity.ErrValidation)
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", entity.ErrValidation)
	}

	privacy, err := access.NormalizePrivacy(input.Privacy)
	if err != nil {
		return nil, err
	}
	accessLevel, err := access.NormalizeAccessLevel(input.AccessLevel)
	if err != nil {
		return nil, err
	}

	// Only premium members may publish premium lessons
	if accessLevel == entity.AccessPremium && !viewer.IsPremium && !viewer.IsAdmin() {
		return nil, entity.ErrForbidden
	}

	var imageURL string
	if image != nil {
		key := fmt.Sprintf("lessons/%s", uuid.New().String())
		imageURL, err = uc.s3Client.UploadImage(key, image, imageContentType)
		if err != nil {
			uc.logger.Error("Failed to upload lesson image: %v", err)
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}
	}

	lesson := &entity.Lesson{
		CreatorEmail:  viewer.Email,
		CreatorName:   creatorName,
		CreatorPhoto:  creatorPhoto,
		Title:         strings.TrimSpace(input.Title),
		Description:   input.Description,
		Category:      input.Category,
		EmotionalTone: input.EmotionalTone,
		ImageURL:      imageURL,
		Privacy:       privacy,
		AccessLevel:   accessLevel,
	}
	if err := uc.lessonRepo.Create(lesson); err != nil {
		uc.logger.Error("Failed to create lesson: %v", err)
		return nil, fmt.Errorf("failed to create lesson: %w", err)
	}

	return lesson, nil
}

func (uc *lessonUseCase) GetLesson(lessonID string, viewer entity.ViewerContext) (*LessonView, error) {
	lesson, err := uc.lessonRepo.GetByID(lessonID)
	if err != nil {
		return nil, err
	}

	view := &LessonView{
		Lesson:   lesson,
		Decision: access.Evaluate(lesson, viewer),
	}
	if view.Decision == access.Deny {
		return nil, entity.ErrForbidden
	}

	// Engagement state is only exposed on full access
	if view.Decision == access.AllowFull {
		if view.Likes, err = uc.engagementRepo.ListLikeEmails(lessonID); err != nil {
			return nil, fmt.Errorf("failed to load likes: %w", err)
		}
		if viewer.Email != "" {
			if view.IsLiked, err = uc.engagementRepo.IsLiked(lessonID, viewer.Email); err != nil {
				return nil, fmt.Errorf("failed to check like state: %w", err)
			}
			if view.IsFavorited, err = uc.engagementRepo.IsFavorited(lessonID, viewer.Email); err != nil {
				return nil, fmt.Errorf("failed to check favorite state: %w", err)
			}
		}
	}

	return view, nil
}

func (uc *lessonUseCase) ListLessons(filter persistent.LessonFilter, viewer entity.ViewerContext, limit, offset int) ([]*LessonView, error) {
	lessons, err := uc.lessonRepo.List(filter, limit, offset)
	if err != nil {
		uc.logger.Error("Failed to list lessons: %v", err)
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}

	views := make([]*LessonView, 0, len(lessons))
	for _, lesson := range lessons {
		decision := access.Evaluate(lesson, viewer)
		if decision == access.Deny {
			continue
		}
		views = append(views, &LessonView{Lesson: lesson, Decision: decision})
	}
	return views, nil
}

func (uc *lessonUseCase) MyLessons(viewer entity.ViewerContext) ([]*entity.Lesson, error) {
	return uc.lessonRepo.GetByCreator(viewer.Email, 0, 0)
}

func (uc *lessonUseCase) UpdateLesson(lessonID string, viewer entity.ViewerContext, input UpdateLessonInput) (*entity.Lesson, error) {
	lesson, err := uc.lessonRepo.GetByID(lessonID)
	if err != nil {
		return nil, err
	}

	if !lesson.IsOwnedBy(viewer.Email) && !viewer.IsAdmin() {
		return nil, entity.ErrForbidden
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", entity.ErrValidation)
		}
		lesson.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		lesson.Description = *input.Description
	}
	if input.Category != nil {
		lesson.Category = *input.Category
	}
	if input.EmotionalTone != nil {
		lesson.EmotionalTone = *input.EmotionalTone
	}
	if input.Privacy != nil {
		if lesson.Privacy, err = access.NormalizePrivacy(*input.Privacy); err != nil {
			return nil, err
		}
	}
	if input.AccessLevel != nil {
		if lesson.AccessLevel, err = access.NormalizeAccessLevel(*input.AccessLevel); err != nil {
			return nil, err
		}
		if lesson.AccessLevel == entity.AccessPremium && !viewer.IsPremium && !viewer.IsAdmin() {
			return nil, entity.ErrForbidden
		}
	}

	if err := uc.lessonRepo.Update(lesson); err != nil {
		uc.logger.Error("Failed to update lesson: %v", err)
		return nil, fmt.Errorf("failed to update lesson: %w", err)
	}
	return lesson, nil
}

func (uc *lessonUseCase) DeleteLesson(lessonID string, viewer entity.ViewerContext) error {
	lesson, err := uc.lessonRepo.GetByID(lessonID)
	if err != nil {
		return err
	}

	if !lesson.IsOwnedBy(viewer.Email) && !viewer.IsAdmin() {
		return entity.ErrForbidden
	}

	return uc.lessonRepo.DeleteCascade(lessonID)
}

func (uc *lessonUseCase) ToggleFeatured(lessonID string, viewer entity.ViewerContext) (bool, error) {
	if !viewer.IsAdmin() {
		return false, entity.ErrForbidden
	}
	return uc.lessonRepo.ToggleFeatured(lessonID)
}
