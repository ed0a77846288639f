package http

import (
	"net/http"

	"lifelessons/internal/usecase"
	"lifelessons/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	userUseCase    usecase.UserUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, userUseCase usecase.UserUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		userUseCase:    userUseCase,
		logger:         logger,
	}
}

type AddCommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

// AddComment godoc
// @Summary      Comment on a lesson
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Lesson ID"
// @Param        body body AddCommentRequest true "Comment text"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /lessons/{id}/comments [post]
func (h *CommentHandler) AddComment(c *gin.Context) {
	viewer, err := resolveViewer(c, h.userUseCase)
	if err != nil {
		respondError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUseCase.GetByEmail(viewer.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	comment, err := h.commentUseCase.AddComment(c.Param("id"), viewer, user.Name, user.PhotoURL, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// ListComments godoc
// @Summary      List comments on a lesson
// @Tags         comments
// @Produce      json
// @Param        id path string true "Lesson ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /lessons/{id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	comments, err := h.commentUseCase.ListComments(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments, "count": len(comments)})
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Author or admin only.
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	viewer, err := resolveViewer(c, h.userUseCase)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.commentUseCase.DeleteComment(c.Param("id"), viewer); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}
