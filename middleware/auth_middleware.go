package middleware

import (
	"net/http"
	"strings"

	"github.com/firmdir-simple/lib/identity"
	"github.com/firmdir-simple/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	ContextUserID   = "userId"
	ContextIdentity = "identity"
)

// AuthMiddleware verifies the bearer credential on every request and
// resolves the caller into a local user record, creating one on first
// sight. Handlers read the local user id from the context.
func AuthMiddleware(verifier identity.Verifier, users *services.UserService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Authorization header is required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Authorization header must be a Bearer token"})
			c.Abort()
			return
		}

		ident, err := verifier.Verify(c.Request.Context(), parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Invalid or expired token"})
			c.Abort()
			return
		}

		user, err := users.Resolve(c.Request.Context(), ident)
		if err != nil {
			logger.Error("failed to resolve user", zap.String("subject", ident.Subject), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Internal server error"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextIdentity, ident)
		c.Next()
	}
}
