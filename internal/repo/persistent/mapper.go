package persistent

import (
	"lifelessons/internal/entity"
	"lifelessons/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}
	return &entity.User{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		PhotoURL:  m.PhotoURL,
		Password:  m.Password,
		Role:      entity.UserRole(m.Role),
		IsPremium: m.IsPremium,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}
	return &model.UserModel{
		ID:        e.ID,
		Email:     e.Email,
		Name:      e.Name,
		PhotoURL:  e.PhotoURL,
		Password:  e.Password,
		Role:      string(e.Role),
		IsPremium: e.IsPremium,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToLessonEntity(m *model.LessonModel) *entity.Lesson {
	if m == nil {
		return nil
	}
	return &entity.Lesson{
		ID:             m.ID,
		CreatorEmail:   m.CreatorEmail,
		CreatorName:    m.CreatorName,
		CreatorPhoto:   m.CreatorPhoto,
		Title:          m.Title,
		Description:    m.Description,
		Category:       m.Category,
		EmotionalTone:  m.EmotionalTone,
		ImageURL:       m.ImageURL,
		Privacy:        entity.Privacy(m.Privacy),
		AccessLevel:    entity.AccessLevel(m.AccessLevel),
		IsFeatured:     m.IsFeatured,
		LikesCount:     m.LikesCount,
		FavoritesCount: m.FavoritesCount,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func ToLessonModel(e *entity.Lesson) *model.LessonModel {
	if e == nil {
		return nil
	}
	return &model.LessonModel{
		ID:             e.ID,
		CreatorEmail:   e.CreatorEmail,
		CreatorName:    e.CreatorName,
		CreatorPhoto:   e.CreatorPhoto,
		Title:          e.Title,
		Description:    e.Description,
		Category:       e.Category,
		EmotionalTone:  e.EmotionalTone,
		ImageURL:       e.ImageURL,
		Privacy:        string(e.Privacy),
		AccessLevel:    string(e.AccessLevel),
		IsFeatured:     e.IsFeatured,
		LikesCount:     e.LikesCount,
		FavoritesCount: e.FavoritesCount,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToFavoriteEntity(m *model.FavoriteModel) *entity.Favorite {
	if m == nil {
		return nil
	}
	return &entity.Favorite{
		ID:        m.ID,
		UserEmail: m.UserEmail,
		LessonID:  m.LessonID,
		FavoriteSnapshot: entity.FavoriteSnapshot{
			LessonTitle:    m.LessonTitle,
			LessonImage:    m.LessonImage,
			LessonCategory: m.LessonCategory,
			LessonTone:     m.LessonTone,
		},
		CreatedAt: m.CreatedAt,
	}
}

func ToReportEntity(m *model.ReportModel) *entity.Report {
	if m == nil {
		return nil
	}
	return &entity.Report{
		ID:            m.ID,
		LessonID:      m.LessonID,
		LessonTitle:   m.LessonTitle,
		ReporterEmail: m.ReporterEmail,
		ReporterName:  m.ReporterName,
		Reason:        m.Reason,
		CreatedAt:     m.CreatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}
	return &entity.Comment{
		ID:        m.ID,
		LessonID:  m.LessonID,
		UserEmail: m.UserEmail,
		UserName:  m.UserName,
		UserPhoto: m.UserPhoto,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}
}
