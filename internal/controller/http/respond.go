package http

import (
	"errors"
	"net/http"
	"unicode/utf8"

	"lifelessons/internal/access"
	"lifelessons/internal/entity"
	"lifelessons/internal/usecase"

	"github.com/gin-gonic/gin"
)

// respondError maps the error taxonomy onto HTTP statuses. Internal detail is
// never leaked for forbidden or unexpected errors.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, entity.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, entity.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, entity.ErrDuplicateReport):
		c.JSON(http.StatusConflict, gin.H{"error": "You have already reported this lesson"})
	case errors.Is(err, entity.ErrDuplicateFavorite):
		c.JSON(http.StatusConflict, gin.H{"error": "Already in favorites"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}

const blurredPreviewRunes = 120

// formatLessonView renders a lesson according to the access decision. A
// blurred preview keeps the title as a tease but truncates the description
// and exposes no engagement state.
func formatLessonView(view *usecase.LessonView) gin.H {
	lesson := view.Lesson

	response := gin.H{
		"id":              lesson.ID,
		"creator_email":   lesson.CreatorEmail,
		"creator_name":    lesson.CreatorName,
		"creator_photo":   lesson.CreatorPhoto,
		"title":           lesson.Title,
		"category":        lesson.Category,
		"emotional_tone":  lesson.EmotionalTone,
		"image_url":       lesson.ImageURL,
		"privacy":         lesson.Privacy,
		"access_level":    lesson.AccessLevel,
		"is_featured":     lesson.IsFeatured,
		"likes_count":     lesson.LikesCount,
		"favorites_count": lesson.FavoritesCount,
		"created_at":      lesson.CreatedAt,
		"updated_at":      lesson.UpdatedAt,
	}

	if view.Decision == access.AllowBlurred {
		response["is_blurred"] = true
		response["description"] = truncateRunes(lesson.Description, blurredPreviewRunes)
		return response
	}

	response["is_blurred"] = false
	response["description"] = lesson.Description
	response["likes"] = view.Likes
	response["is_liked"] = view.IsLiked
	response["is_favorited"] = view.IsFavorited
	return response
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}
