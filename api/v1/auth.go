package v1

import (
	"net/http"

	"github.com/firmdir-simple/dto"
	"github.com/firmdir-simple/lib/identity"
	"github.com/firmdir-simple/middleware"
	"github.com/firmdir-simple/services"
	"github.com/firmdir-simple/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthController exposes the caller's own account: the provider-side profile
// and the local profile fields the user may edit.
type AuthController struct {
	users  *services.UserService
	logger *zap.Logger
}

// NewAuthController creates a new auth controller.
func NewAuthController(users *services.UserService, logger *zap.Logger) *AuthController {
	return &AuthController{users: users, logger: logger}
}

// RegisterRoutes registers account routes.
func (ac *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.GET("/me", ac.Me)
	}
	user := router.Group("/user")
	{
		user.PUT("/profile", ac.UpdateProfile)
		// Older clients post the same payload to /settings.
		user.POST("/settings", ac.UpdateProfile)
	}
}

// Me returns the caller's profile, combining provider claims with the local
// record.
func (ac *AuthController) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := ac.users.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	resp := dto.NewProfileResponse(user)
	if v, exists := c.Get(middleware.ContextIdentity); exists {
		if ident, ok := v.(*identity.Identity); ok {
			resp.Subject = ident.Subject
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": resp})
}

// UpdateProfile patches the caller's display name and photo.
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, ac.logger, utils.TranslateBindingError(err))
		return
	}

	user, err := ac.users.UpdateProfile(c.Request.Context(), userID, req.Patch())
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": dto.NewProfileResponse(user)})
}
