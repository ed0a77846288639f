package http

import (
	"net/http"

	"lifelessons/internal/entity"
	"lifelessons/internal/usecase"
	"lifelessons/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	moderationUseCase usecase.ModerationUseCase
	userUseCase       usecase.UserUseCase
	logger            *logger.Logger
}

func NewModerationHandler(moderationUseCase usecase.ModerationUseCase, userUseCase usecase.UserUseCase, logger *logger.Logger) *ModerationHandler {
	return &ModerationHandler{
		moderationUseCase: moderationUseCase,
		userUseCase:       userUseCase,
		logger:            logger,
	}
}

type SubmitReportRequest struct {
	LessonID string `json:"lesson_id" binding:"required"`
	Reason   string `json:"reason" binding:"required"`
}

// SubmitReport godoc
// @Summary      Report a lesson
// @Description  One report per reporter per lesson; a second attempt returns 409.
// @Tags         moderation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body SubmitReportRequest true "Report payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /reports [post]
func (h *ModerationHandler) SubmitReport(c *gin.Context) {
	viewer, err := resolveViewer(c, h.userUseCase)
	if err != nil {
		respondError(c, err)
		return
	}

	var req SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUseCase.GetByEmail(viewer.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	report, err := h.moderationUseCase.SubmitReport(req.LessonID, viewer, user.Name, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Report submitted", "report": report})
}

// ReportReasons godoc
// @Summary      List the accepted report reasons
// @Tags         moderation
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /reports/reasons [get]
func (h *ModerationHandler) ReportReasons(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reasons": entity.ReportReasons})
}

// ListReports godoc
// @Summary      Moderation queue
// @Description  Reports grouped per lesson with reporter count, distinct reasons and the latest report time.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Router       /admin/reports [get]
func (h *ModerationHandler) ListReports(c *gin.Context) {
	aggregates, err := h.moderationUseCase.AggregatedReports()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": aggregates, "count": len(aggregates)})
}

// DismissReport godoc
// @Summary      Dismiss a single report
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Report ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/reports/{id} [delete]
func (h *ModerationHandler) DismissReport(c *gin.Context) {
	viewer, err := resolveViewer(c, h.userUseCase)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.moderationUseCase.DismissReport(c.Param("id"), viewer); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report dismissed"})
}

// DeleteReportedLesson godoc
// @Summary      Delete a lesson together with its reports
// @Description  Removes the lesson and every report, like, favorite and comment attached to it in one transaction.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Lesson ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/lessons/{id}/with-reports [delete]
func (h *ModerationHandler) DeleteReportedLesson(c *gin.Context) {
	viewer, err := resolveViewer(c, h.userUseCase)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.moderationUseCase.DeleteLessonWithReports(c.Param("id"), viewer); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lesson and reports deleted"})
}
