package usecase

import (
	"context"
	"fmt"
	"strconv"

	"lifelessons/internal/access"
	"lifelessons/internal/entity"
	"lifelessons/internal/repo/persistent"
	"lifelessons/pkg/logger"
	"lifelessons/pkg/queue"

	"github.com/redis/go-redis/v9"
)

type EngagementUseCase interface {
	ToggleLike(lessonID string, viewer entity.ViewerContext) (*entity.LikeState, error)
	AddFavorite(lessonID string, viewer entity.ViewerContext) (*entity.FavoriteState, error)
	RemoveFavorite(lessonID string, viewer entity.ViewerContext) (*entity.FavoriteState, error)
	IsFavorited(lessonID string, viewer entity.ViewerContext) (bool, error)
	ListFavorites(viewer entity.ViewerContext) ([]*entity.Favorite, error)
	GetLikeCount(lessonID string) (int64, error)
}

type engagementUseCase struct {
	engagementRepo persistent.EngagementRepository
	lessonRepo     persistent.LessonRepository
	redisClient    *redis.Client
	queueClient    *queue.Client
	logger         *logger.Logger
}

func NewEngagementUseCase(
	engagementRepo persistent.EngagementRepository,
	lessonRepo persistent.LessonRepository,
	redisClient *redis.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) EngagementUseCase {
	return &engagementUseCase{
		engagementRepo: engagementRepo,
		lessonRepo:     lessonRepo,
		redisClient:    redisClient,
		queueClient:    queueClient,
		logger:         logger,
	}
}

// guardEngagement loads the lesson and rejects engagement from viewers who
// only get a blurred preview or no access at all.
func (uc *engagementUseCase) guardEngagement(lessonID string, viewer entity.ViewerContext) (*entity.Lesson, error) {
	lesson, err := uc.lessonRepo.GetByID(lessonID)
	if err != nil {
		return nil, err
	}
	if access.Evaluate(lesson, viewer) != access.AllowFull {
		return nil, entity.ErrForbidden
	}
	return lesson, nil
}

func (uc *engagementUseCase) ToggleLike(lessonID string, viewer entity.ViewerContext) (*entity.LikeState, error) {
	lesson, err := uc.guardEngagement(lessonID, viewer)
	if err != nil {
		return nil, err
	}

	state, err := uc.engagementRepo.ToggleLike(lessonID, viewer.Email)
	if err != nil {
		uc.logger.Error("Failed to toggle like: %v", err)
		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}

	uc.cacheCount("lesson:likes:%s", lessonID, state.LikesCount)

	if state.Liked && lesson.CreatorEmail != viewer.Email && uc.queueClient != nil {
		go func() {
			task := map[string]interface{}{
				"type":          "like",
				"creator_email": lesson.CreatorEmail,
				"liker_email":   viewer.Email,
				"lesson_id":     lessonID,
				"priority":      3,
			}
			if err := uc.queueClient.PublishNotificationTask(task); err != nil {
				uc.logger.Error("Failed to publish like notification: %v", err)
			}
		}()
	}

	return state, nil
}

func (uc *engagementUseCase) AddFavorite(lessonID string, viewer entity.ViewerContext) (*entity.FavoriteState, error) {
	lesson, err := uc.guardEngagement(lessonID, viewer)
	if err != nil {
		return nil, err
	}

	// Snapshot taken from the authoritative lesson row, not client input
	snapshot := entity.FavoriteSnapshot{
		LessonTitle:    lesson.Title,
		LessonImage:    lesson.ImageURL,
		LessonCategory: lesson.Category,
		LessonTone:     lesson.EmotionalTone,
	}

	state, err := uc.engagementRepo.AddFavorite(lessonID, viewer.Email, snapshot)
	if err != nil {
		return nil, err
	}

	uc.cacheCount("lesson:favorites:%s", lessonID, state.FavoritesCount)
	return state, nil
}

func (uc *engagementUseCase) RemoveFavorite(lessonID string, viewer entity.ViewerContext) (*entity.FavoriteState, error) {
	if _, err := uc.guardEngagement(lessonID, viewer); err != nil {
		return nil, err
	}

	state, err := uc.engagementRepo.RemoveFavorite(lessonID, viewer.Email)
	if err != nil {
		uc.logger.Error("Failed to remove favorite: %v", err)
		return nil, fmt.Errorf("failed to remove favorite: %w", err)
	}

	uc.cacheCount("lesson:favorites:%s", lessonID, state.FavoritesCount)
	return state, nil
}

func (uc *engagementUseCase) IsFavorited(lessonID string, viewer entity.ViewerContext) (bool, error) {
	return uc.engagementRepo.IsFavorited(lessonID, viewer.Email)
}

func (uc *engagementUseCase) ListFavorites(viewer entity.ViewerContext) ([]*entity.Favorite, error) {
	return uc.engagementRepo.ListFavorites(viewer.Email)
}

// GetLikeCount serves from the redis counter cache first, falling back to the
// membership set in the database.
func (uc *engagementUseCase) GetLikeCount(lessonID string) (int64, error) {
	if uc.redisClient != nil {
		ctx := context.Background()
		key := fmt.Sprintf("lesson:likes:%s", lessonID)
		if countStr, err := uc.redisClient.Get(ctx, key).Result(); err == nil {
			if count, ok := parseCachedCount(countStr); ok {
				return count, nil
			}
			uc.logger.Warn("Unreadable cached counter %s: %q, recounting", key, countStr)
		}
	}

	count, err := uc.engagementRepo.LikeCount(lessonID)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	uc.cacheCount("lesson:likes:%s", lessonID, count)
	return count, nil
}

// parseCachedCount rejects corrupt cache entries so they never masquerade as
// a zero count.
func parseCachedCount(s string) (int64, bool) {
	count, err := strconv.ParseInt(s, 10, 64)
	if err != nil || count < 0 {
		return 0, false
	}
	return count, true
}

func (uc *engagementUseCase) cacheCount(keyFormat, lessonID string, count int64) {
	if uc.redisClient == nil {
		return
	}
	key := fmt.Sprintf(keyFormat, lessonID)
	if err := uc.redisClient.Set(context.Background(), key, count, 0).Err(); err != nil {
		uc.logger.Warn("Failed to cache counter %s: %v", key, err)
	}
}
