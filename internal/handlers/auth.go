package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/config"
)

type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// Login compares the submitted password byte-for-byte against the configured
// admin secret and issues the session cookie on a match. The response is a
// full redirect so /add re-evaluates the gate on the next load.
func (h *AuthHandler) Login(c *gin.Context) {
	password := c.PostForm("password")
	if password != h.cfg.AdminPassword {
		// Generic message only; there is a single credential to guess.
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Error": "Invalid password.",
		})
		return
	}

	token, err := auth.NewSessionToken(h.cfg.SessionSecret)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error": "An unknown error occurred.",
		})
		return
	}

	c.SetCookie(auth.CookieName, token, int(auth.SessionTTL.Seconds()), "/", "", h.cfg.IsProduction(), true)
	c.Redirect(http.StatusSeeOther, "/add")
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(auth.CookieName, "", -1, "/", "", h.cfg.IsProduction(), true)
	c.Redirect(http.StatusSeeOther, "/add")
}
