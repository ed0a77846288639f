package http

import (
	"net/http"

	"lifelessons/internal/usecase"
	"lifelessons/pkg/logger"

	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	engagementUseCase usecase.EngagementUseCase
	userUseCase       usecase.UserUseCase
	logger            *logger.Logger
}

func NewEngagementHandler(engagementUseCase usecase.EngagementUseCase, userUseCase usecase.UserUseCase, logger *logger.Logger) *EngagementHandler {
	return &EngagementHandler{
		engagementUseCase: engagementUseCase,
		userUseCase:       userUseCase,
		logger:            logger,
	}
}

// ToggleLike godoc
// @Summary      Toggle like on a lesson
// @Description  Likes the lesson if the viewer has not liked it, removes the like otherwise. Returns the resulting state and the authoritative like count.
// @Tags         engagement
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Lesson ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /lessons/{id}/like [patch]
func (h *EngagementHandler) ToggleLike(c *gin.Context) {
	viewer, err := resolveViewer(c, h.userUseCase)
	if err != nil {
		respondError(c, err)
		return
	}

	state, err := h.engagementUseCase.ToggleLike(c.Param("id"), viewer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": state.Liked, "likes_count": state.LikesCount})
}

// GetLikeCount godoc
// @Summary      Get like count for a lesson
// @Tags         engagement
// @Produce      json
// @Param        id path string true "Lesson ID"
// @Success      200  {object}  map[string]int64
// @Router       /lessons/{id}/likes [get]
func (h *EngagementHandler) GetLikeCount(c *gin.Context) {
	count, err := h.engagementUseCase.GetLikeCount(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"likes_count": count})
}

type AddFavoriteRequest struct {
	LessonID string `json:"lesson_id" binding:"required"`
}

// AddFavorite godoc
// @Summary      Add a lesson to favorites
// @Description  Idempotency is enforced by the storage layer; adding twice returns 409.
// @Tags         engagement
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body AddFavoriteRequest true "Lesson to favorite"
// @Success      201  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /favorites [post]
func (h *EngagementHandler) AddFavorite(c *gin.Context) {
	viewer, err := resolveViewer(c, h.userUseCase)
	if err != nil {
		respondError(c, err)
		return
	}

	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.engagementUseCase.AddFavorite(req.LessonID, viewer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"favorited": state.Favorited, "favorites_count": state.FavoritesCount})
}

// RemoveFavorite godoc
// @Summary      Remove a lesson from favorites
// @Tags         engagement
// @Produce      json
// @Security     BearerAuth
// @Param        lesson_id path string true "Lesson ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /favorites/{lesson_id} [delete]
func (h *EngagementHandler) RemoveFavorite(c *gin.Context) {
	viewer, err := resolveViewer(c, h.userUseCase)
	if err != nil {
		respondError(c, err)
		return
	}

	state, err := h.engagementUseCase.RemoveFavorite(c.Param("lesson_id"), viewer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorited": state.Favorited, "favorites_count": state.FavoritesCount})
}

// CheckFavorite godoc
// @Summary      Check whether a lesson is in the viewer's favorites
// @Tags         engagement
// @Produce      json
// @Security     BearerAuth
// @Param        lesson_id path string true "Lesson ID"
// @Success      200  {object}  map[string]bool
// @Router       /favorites/check/{lesson_id} [get]
func (h *EngagementHandler) CheckFavorite(c *gin.Context) {
	viewer, err := resolveViewer(c, h.userUseCase)
	if err != nil {
		respondError(c, err)
		return
	}

	favorited, err := h.engagementUseCase.IsFavorited(c.Param("lesson_id"), viewer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorited": favorited})
}

// ListFavorites godoc
// @Summary      List the viewer's favorites
// @Description  Each entry carries the lesson metadata captured when it was favorited.
// @Tags         engagement
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /favorites [get]
func (h *EngagementHandler) ListFavorites(c *gin.Context) {
	viewer, err := resolveViewer(c, h.userUseCase)
	if err != nil {
		respondError(c, err)
		return
	}

	favorites, err := h.engagementUseCase.ListFavorites(viewer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": favorites, "count": len(favorites)})
}
