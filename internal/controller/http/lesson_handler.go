package http

import (
	"net/http"
	"strconv"

	"lifelessons/internal/repo/persistent"
	"lifelessons/internal/usecase"
	"lifelessons/pkg/logger"

	"github.com/gin-gonic/gin"
)

type LessonHandler struct {
	lessonUseCase usecase.LessonUseCase
	userUseCase   usecase.UserUseCase
	logger        *logger.Logger
}

func NewLessonHandler(lessonUseCase usecase.LessonUseCase, userUseCase usecase.UserUseCase, logger *logger.Logger) *LessonHandler {
	return &LessonHandler{
		lessonUseCase: lessonUseCase,
		userUseCase:   userUseCase,
		logger:        logger,
	}
}

type CreateLessonRequest struct {
	Title         string `form:"title" binding:"required"`
	Description   string `form:"description" binding:"required"`
	Category      string `form:"category"`
	EmotionalTone string `form:"emotional_tone"`
	Privacy       string `form:"privacy" binding:"required"`
	AccessLevel   string `form:"access_level" binding:"required"`
}

// CreateLesson godoc
// @Summary      Create a new lesson
// @Description  Create a lesson with an optional cover image. Premium access level requires a premium account.
// @Tags         lessons
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Lesson title"
// @Param        description formData string true "Lesson body"
// @Param        category formData string false "Category"
// @Param        emotional_tone formData string false "Emotional tone"
// @Param        privacy formData string true "Public or Private"
// @Param        access_level formData string true "Free or Premium"
// @Param        image formData file false "Cover image (jpg/jpeg/png)"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /lessons [post]
func (h *LessonHandler) CreateLesson(c *gin.Context) {
	viewer, err := resolveViewer(c, h.userUseCase)
	if err != nil {
		respondError(c, err)
		return
	}

	var req CreateLessonRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUseCase.GetByEmail(viewer.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	input := usecase.CreateLessonInput{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		EmotionalTone: req.EmotionalTone,
		Privacy:       req.Privacy,
		AccessLevel:   req.AccessLevel,
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		lesson, err := h.lessonUseCase.CreateLesson(viewer, user.Name, user.PhotoURL, input, nil, "")
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, lesson)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
		return
	}
	defer file.Close()

	lesson, err := h.lessonUseCase.CreateLesson(viewer, user.Name, user.PhotoURL, input, file, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, lesson)
}

// GetLesson godoc
// @Summary      Get lesson by ID
// @Description  Returns the lesson rendered according to the viewer's access: full detail, a blurred premium preview, or 403 for private lessons of other users.
// @Tags         lessons
// @Produce      json
// @Param        id path string true "Lesson ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /lessons/{id} [get]
func (h *LessonHandler) GetLesson(c *gin.Context) {
	viewer, err := resolveViewer(c, h.userUseCase)
	if err != nil {
		respondError(c, err)
		return
	}

	view, err := h.lessonUseCase.GetLesson(c.Param("id"), viewer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, formatLessonView(view))
}

// ListLessons godoc
// @Summary      List public lessons
// @Description  Lists public lessons with optional filters. Premium lessons are returned as blurred previews for non-premium viewers.
// @Tags         lessons
// @Produce      json
// @Param        category query string false "Filter by category"
// @Param        tone query string false "Filter by emotional tone"
// @Param        featured query bool false "Only featured lessons"
// @Param        search query string false "Title search"
// @Param        limit query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /lessons [get]
func (h *LessonHandler) ListLessons(c *gin.Context) {
	viewer, err := resolveViewer(c, h.userUseCase)
	if err != nil {
		respondError(c, err)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := persistent.LessonFilter{
		Category:     c.Query("category"),
		Tone:         c.Query("tone"),
		FeaturedOnly: c.Query("featured") == "true",
		Search:       c.Query("search"),
	}

	views, err := h.lessonUseCase.ListLessons(filter, viewer, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	lessons := make([]gin.H, len(views))
	for i, view := range views {
		lessons[i] = formatLessonView(view)
	}
	c.JSON(http.StatusOK, gin.H{"lessons": lessons, "count": len(lessons)})
}

// MyLessons godoc
// @Summary      List the viewer's own lessons
// @Tags         lessons
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /my-lessons [get]
func (h *LessonHandler) MyLessons(c *gin.Context) {
	viewer, err := resolveViewer(c, h.userUseCase)
	if err != nil {
		respondError(c, err)
		return
	}

	lessons, err := h.lessonUseCase.MyLessons(viewer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"lessons": lessons, "count": len(lessons)})
}

type UpdateLessonRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Category      *string `json:"category"`
	EmotionalTone *string `json:"emotional_tone"`
	Privacy       *string `json:"privacy"`
	AccessLevel   *string `json:"access_level"`
}

// UpdateLesson godoc
// @Summary      Update a lesson
// @Description  Owner or admin only. Fields left out stay unchanged.
// @Tags         lessons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Lesson ID"
// @Param        body body UpdateLessonRequest true "Fields to update"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /lessons/{id} [patch]
func (h *LessonHandler) UpdateLesson(c *gin.Context) {
	viewer, err := resolveViewer(c, h.userUseCase)
	if err != nil {
		respondError(c, err)
		return
	}

	var req UpdateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lesson, err := h.lessonUseCase.UpdateLesson(c.Param("id"), viewer, usecase.UpdateLessonInput{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		EmotionalTone: req.EmotionalTone,
		Privacy:       req.Privacy,
		AccessLevel:   req.AccessLevel,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lesson)
}

// DeleteLesson godoc
// @Summary      Delete a lesson
// @Description  Owner or admin only. Likes, favorites, reports and comments are removed with it.
// @Tags         lessons
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Lesson ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /lessons/{id} [delete]
func (h *LessonHandler) DeleteLesson(c *gin.Context) {
	viewer, err := resolveViewer(c, h.userUseCase)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.lessonUseCase.DeleteLesson(c.Param("id"), viewer); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lesson deleted"})
}

// ToggleFeatured godoc
// @Summary      Toggle the featured flag on a lesson
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Lesson ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/lessons/{id}/featured [patch]
func (h *LessonHandler) ToggleFeatured(c *gin.Context) {
	viewer, err := resolveViewer(c, h.userUseCase)
	if err != nil {
		respondError(c, err)
		return
	}

	featured, err := h.lessonUseCase.ToggleFeatured(c.Param("id"), viewer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_featured": featured})
}
