package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/models"
)

// IsAuthenticated reports whether the request carries a valid admin session
// cookie.
func IsAuthenticated(c *gin.Context, cfg *config.Config) bool {
	cookie, err := c.Cookie(auth.CookieName)
	if err != nil {
		return false
	}
	return auth.VerifySessionToken(cfg.SessionSecret, cookie) == nil
}

// RequireAdmin guards the mutating admin endpoints. The /add page itself
// decides between the password prompt and the dashboard, so it sits outside
// this middleware.
func RequireAdmin(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAuthenticated(c, cfg) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "admin authentication required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
