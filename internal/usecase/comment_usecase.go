package usecase

import (
	"fmt"
	"strings"

	"lifelessons/internal/entity"
	"lifelessons/internal/repo/persistent"
	"lifelessons/pkg/logger"
)

type CommentUseCase interface {
	AddComment(lessonID string, viewer entity.ViewerContext, userName, userPhoto, text string) (*entity.Comment, error)
	ListComments(lessonID string) ([]*entity.Comment, error)
	DeleteComment(commentID string, viewer entity.ViewerContext) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	lessonRepo  persistent.LessonRepository
	logger      *logger.Logger
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	lessonRepo persistent.LessonRepository,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		lessonRepo:  lessonRepo,
		logger:      logger,
	}
}

func (uc *commentUseCase) AddComment(lessonID string, viewer entity.ViewerContext, userName, userPhoto, text string) (*entity.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: comment cannot be empty", entity.ErrValidation)
	}

	if _, err := uc.lessonRepo.GetByID(lessonID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		LessonID:  lessonID,
		UserEmail: viewer.Email,
		UserName:  userName,
		UserPhoto: userPhoto,
		Text:      text,
	}
	if err := uc.commentRepo.Create(comment); err != nil {
		uc.logger.Error("Failed to create comment: %v", err)
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

func (uc *commentUseCase) ListComments(lessonID string) ([]*entity.Comment, error) {
	return uc.commentRepo.ListForLesson(lessonID)
}

// DeleteComment is allowed to the author and to admins only.
func (uc *commentUseCase) DeleteComment(commentID string, viewer entity.ViewerContext) error {
	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		return err
	}

	if comment.UserEmail != viewer.Email && !viewer.IsAdmin() {
		return entity.ErrForbidden
	}

	return uc.commentRepo.Delete(commentID)
}
