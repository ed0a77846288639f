package persistent

import (
	"errors"

	"lifelessons/internal/entity"
	"lifelessons/internal/model"

	"gorm.io/gorm"
)

type LessonFilter struct {
	Category     string
	Tone         string
	AccessLevel  string
	FeaturedOnly bool
	Search       string
}

type LessonRepository interface {
	Create(lesson *entity.Lesson) error
	GetByID(id string) (*entity.Lesson, error)
	List(filter LessonFilter, limit, offset int) ([]*entity.Lesson, error)
	GetByCreator(email string, limit, offset int) ([]*entity.Lesson, error)
	Update(lesson *entity.Lesson) error
	DeleteCascade(id string) error
	ToggleFeatured(id string) (bool, error)
	Count() (int64, error)
}

type lessonRepository struct {
	db *gorm.DB
}

func NewLessonRepository(db *gorm.DB) LessonRepository {
	return &lessonRepository{db: db}
}

func (r *lessonRepository) Create(lesson *entity.Lesson) error {
	lessonModel := ToLessonModel(lesson)
	if err := r.db.Create(lessonModel).Error; err != nil {
		return err
	}
	*lesson = *ToLessonEntity(lessonModel)
	return nil
}

func (r *lessonRepository) GetByID(id string) (*entity.Lesson, error) {
	var lessonModel model.LessonModel
	if err := r.db.Where("id = ?", id).First(&lessonModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToLessonEntity(&lessonModel), nil
}

// List returns public lessons only; private lessons are reachable solely
// through GetByID (where the access policy decides) and GetByCreator.
func (r *lessonRepository) List(filter LessonFilter, limit, offset int) ([]*entity.Lesson, error) {
	var lessonModels []model.LessonModel
	query := r.db.Where("privacy = ?", string(entity.PrivacyPublic)).Order("created_at DESC")

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Tone != "" {
		query = query.Where("emotional_tone = ?", filter.Tone)
	}
	if filter.AccessLevel != "" {
		query = query.Where("access_level = ?", filter.AccessLevel)
	}
	if filter.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}
	if filter.Search != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Search+"%")
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	if err := query.Find(&lessonModels).Error; err != nil {
		return nil, err
	}

	lessons := make([]*entity.Lesson, len(lessonModels))
	for i := range lessonModels {
		lessons[i] = ToLessonEntity(&lessonModels[i])
	}
	return lessons, nil
}

func (r *lessonRepository) GetByCreator(email string, limit, offset int) ([]*entity.Lesson, error) {
	var lessonModels []model.LessonModel
	query := r.db.Where("creator_email = ?", email).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&lessonModels).Error; err != nil {
		return nil, err
	}

	lessons := make([]*entity.Lesson, len(lessonModels))
	for i := range lessonModels {
		lessons[i] = ToLessonEntity(&lessonModels[i])
	}
	return lessons, nil
}

func (r *lessonRepository) Update(lesson *entity.Lesson) error {
	lessonModel := ToLessonModel(lesson)
	result := r.db.Model(&model.LessonModel{}).Where("id = ?", lessonModel.ID).
		Select("Title", "Description", "Category", "EmotionalTone", "ImageURL", "Privacy", "AccessLevel").
		Updates(lessonModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// DeleteCascade removes the lesson and every dependent row in one
// transaction: likes, favorites, reports and comments all go or none does.
func (r *lessonRepository) DeleteCascade(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&model.LessonModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return entity.ErrNotFound
		}

		if err := tx.Where("lesson_id = ?", id).Delete(&model.LikeModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("lesson_id = ?", id).Delete(&model.FavoriteModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("lesson_id = ?", id).Delete(&model.ReportModel{}).Error; err != nil {
			return err
		}
		return tx.Where("lesson_id = ?", id).Delete(&model.CommentModel{}).Error
	})
}

func (r *lessonRepository) ToggleFeatured(id string) (bool, error) {
	var featured bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var lessonModel model.LessonModel
		if err := tx.Where("id = ?", id).First(&lessonModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entity.ErrNotFound
			}
			return err
		}

		featured = !lessonModel.IsFeatured
		return tx.Model(&model.LessonModel{}).Where("id = ?", id).
			Update("is_featured", featured).Error
	})
	return featured, err
}

func (r *lessonRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.LessonModel{}).Count(&count).Error
	return count, err
}
