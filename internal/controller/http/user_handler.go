package http

import (
	"net/http"
	"strconv"

	"lifelessons/internal/usecase"
	"lifelessons/pkg/logger"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *logger.Logger
}

func NewUserHandler(userUseCase usecase.UserUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name" binding:"required"`
	PhotoURL string `json:"photo_url"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body RegisterRequest true "Registration payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.userUseCase.Register(req.Email, req.Name, req.PhotoURL, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body LoginRequest true "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.userUseCase.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Me godoc
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /auth/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.userUseCase.GetByEmail(c.GetString("user_email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUsers godoc
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Router       /admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	viewer, err := resolveViewer(c, h.userUseCase)
	if err != nil {
		respondError(c, err)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	users, err := h.userUseCase.ListUsers(viewer, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

// GetUser godoc
// @Summary      Get user profile by email
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        email path string true "User email"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /users/{email} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userUseCase.GetByEmail(c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetRole godoc
// @Summary      Get the role of an account
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        email path string true "User email"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /user/role/{email} [get]
func (h *UserHandler) GetRole(c *gin.Context) {
	role, err := h.userUseCase.GetRole(c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": role})
}

// ActivatePremium godoc
// @Summary      Activate the premium entitlement of an account
// @Description  The payment processor's success redirect lands here. Users may activate only themselves; admins may activate anyone.
// @Tags         premium
// @Produce      json
// @Security     BearerAuth
// @Param        email path string true "Account email"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/premium/{email} [patch]
func (h *UserHandler) ActivatePremium(c *gin.Context) {
	h.setPremium(c, true)
}

// CancelPremium godoc
// @Summary      Cancel the premium entitlement of an account
// @Tags         premium
// @Produce      json
// @Security     BearerAuth
// @Param        email path string true "Account email"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/premium/cancel/{email} [patch]
func (h *UserHandler) CancelPremium(c *gin.Context) {
	h.setPremium(c, false)
}

func (h *UserHandler) setPremium(c *gin.Context, premium bool) {
	viewer, err := resolveViewer(c, h.userUseCase)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.userUseCase.SetPremium(c.Param("email"), viewer, premium); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Premium status updated", "is_premium": premium})
}

// CreateCheckoutSession godoc
// @Summary      Start a premium checkout session
// @Tags         premium
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Router       /create-checkout-session [post]
func (h *UserHandler) CreateCheckoutSession(c *gin.Context) {
	viewer, err := resolveViewer(c, h.userUseCase)
	if err != nil {
		respondError(c, err)
		return
	}

	checkoutURL, err := h.userUseCase.CreateCheckoutSession(viewer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": checkoutURL})
}
