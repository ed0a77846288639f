package http

import (
	"lifelessons/internal/entity"
	"lifelessons/internal/usecase"

	"github.com/gin-gonic/gin"
)

// resolveViewer builds the request-scoped viewer context. Identity and role
// come from the token; the premium entitlement is always re-read from the
// user record so a just-expired subscription takes effect immediately.
func resolveViewer(c *gin.Context, users usecase.UserUseCase) (entity.ViewerContext, error) {
	email := c.GetString("user_email")
	if email == "" {
		return entity.Anonymous, nil
	}
	return users.ViewerContext(email)
}
