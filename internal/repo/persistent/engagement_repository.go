package persistent

import (
	"errors"

	"lifelessons/internal/entity"
	"lifelessons/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EngagementRepository interface {
	ToggleLike(lessonID, userEmail string) (*entity.LikeState, error)
	IsLiked(lessonID, userEmail string) (bool, error)
	ListLikeEmails(lessonID string) ([]string, error)
	LikeCount(lessonID string) (int64, error)

	AddFavorite(lessonID, userEmail string, snapshot entity.FavoriteSnapshot) (*entity.FavoriteState, error)
	RemoveFavorite(lessonID, userEmail string) (*entity.FavoriteState, error)
	IsFavorited(lessonID, userEmail string) (bool, error)
	ListFavorites(userEmail string) ([]*entity.Favorite, error)
}

type engagementRepository struct {
	db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func lessonExists(tx *gorm.DB, lessonID string) error {
	var count int64
	if err := tx.Model(&model.LessonModel{}).Where("id = ?", lessonID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// ToggleLike flips membership and maintains the counter in a single
// transaction. The unique index arbitrates concurrent inserts, so a replayed
// click never produces a duplicate row; the counter never drops below zero.
// The returned state is re-read inside the transaction and is authoritative.
func (r *engagementRepository) ToggleLike(lessonID, userEmail string) (*entity.LikeState, error) {
	var state entity.LikeState
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := lessonExists(tx, lessonID); err != nil {
			return err
		}

		like := &model.LikeModel{LessonID: lessonID, UserEmail: userEmail}
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(like)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected > 0 {
			state.Liked = true
			if err := tx.Model(&model.LessonModel{}).Where("id = ?", lessonID).
				UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error; err != nil {
				return err
			}
		} else {
			state.Liked = false
			if _, err := removeLike(tx, lessonID, userEmail); err != nil {
				return err
			}
		}

		return tx.Model(&model.LessonModel{}).Select("likes_count").
			Where("id = ?", lessonID).Scan(&state.LikesCount).Error
	})
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// removeLike deletes the membership row and decrements the counter only when
// the delete actually removed a row. Under concurrent untoggles from the same
// viewer only one delete lands, so only one decrement runs and the counter
// stays equal to the membership set size.
func removeLike(tx *gorm.DB, lessonID, userEmail string) (bool, error) {
	result := tx.Where("lesson_id = ? AND user_email = ?", lessonID, userEmail).
		Delete(&model.LikeModel{})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	err := tx.Model(&model.LessonModel{}).Where("id = ?", lessonID).
		UpdateColumn("likes_count", gorm.Expr("CASE WHEN likes_count > 0 THEN likes_count - 1 ELSE 0 END")).Error
	return true, err
}

func (r *engagementRepository) IsLiked(lessonID, userEmail string) (bool, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).
		Where("lesson_id = ? AND user_email = ?", lessonID, userEmail).Count(&count).Error
	return count > 0, err
}

func (r *engagementRepository) ListLikeEmails(lessonID string) ([]string, error) {
	var emails []string
	err := r.db.Model(&model.LikeModel{}).Where("lesson_id = ?", lessonID).
		Order("created_at ASC").Pluck("user_email", &emails).Error
	return emails, err
}

func (r *engagementRepository) LikeCount(lessonID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).Where("lesson_id = ?", lessonID).Count(&count).Error
	return count, err
}

// AddFavorite inserts the favorite with its denormalized display snapshot.
// The unique index turns a repeated save into ErrDuplicateFavorite instead of
// a second row.
func (r *engagementRepository) AddFavorite(lessonID, userEmail string, snapshot entity.FavoriteSnapshot) (*entity.FavoriteState, error) {
	var state entity.FavoriteState
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := lessonExists(tx, lessonID); err != nil {
			return err
		}

		favorite := &model.FavoriteModel{
			LessonID:       lessonID,
			UserEmail:      userEmail,
			LessonTitle:    snapshot.LessonTitle,
			LessonImage:    snapshot.LessonImage,
			LessonCategory: snapshot.LessonCategory,
			LessonTone:     snapshot.LessonTone,
		}
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(favorite)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return entity.ErrDuplicateFavorite
		}

		state.Favorited = true
		if err := tx.Model(&model.LessonModel{}).Where("id = ?", lessonID).
			UpdateColumn("favorites_count", gorm.Expr("favorites_count + 1")).Error; err != nil {
			return err
		}

		return tx.Model(&model.LessonModel{}).Select("favorites_count").
			Where("id = ?", lessonID).Scan(&state.FavoritesCount).Error
	})
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *engagementRepository) RemoveFavorite(lessonID, userEmail string) (*entity.FavoriteState, error) {
	var state entity.FavoriteState
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := lessonExists(tx, lessonID); err != nil {
			return err
		}

		result := tx.Where("lesson_id = ? AND user_email = ?", lessonID, userEmail).
			Delete(&model.FavoriteModel{})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected > 0 {
			if err := tx.Model(&model.LessonModel{}).Where("id = ?", lessonID).
				UpdateColumn("favorites_count", gorm.Expr("CASE WHEN favorites_count > 0 THEN favorites_count - 1 ELSE 0 END")).Error; err != nil {
				return err
			}
		}

		state.Favorited = false
		return tx.Model(&model.LessonModel{}).Select("favorites_count").
			Where("id = ?", lessonID).Scan(&state.FavoritesCount).Error
	})
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *engagementRepository) IsFavorited(lessonID, userEmail string) (bool, error) {
	var favoriteModel model.FavoriteModel
	err := r.db.Where("lesson_id = ? AND user_email = ?", lessonID, userEmail).
		First(&favoriteModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListFavorites returns the saved snapshots as-is; display metadata is the
// copy captured at save time, not the current lesson state.
func (r *engagementRepository) ListFavorites(userEmail string) ([]*entity.Favorite, error) {
	var favoriteModels []model.FavoriteModel
	err := r.db.Where("user_email = ?", userEmail).
		Order("created_at DESC").Find(&favoriteModels).Error
	if err != nil {
		return nil, err
	}

	favorites := make([]*entity.Favorite, len(favoriteModels))
	for i := range favoriteModels {
		favorites[i] = ToFavoriteEntity(&favoriteModels[i])
	}
	return favorites, nil
}
