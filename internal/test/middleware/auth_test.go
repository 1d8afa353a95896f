package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/middleware"
)

func newRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequireAdmin(cfg))
	router.POST("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestRequireAdmin_NoCookie(t *testing.T) {
	cfg := &config.Config{SessionSecret: "test-secret"}
	router := newRouter(cfg)

	req, _ := http.NewRequest("POST", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin_InvalidCookie(t *testing.T) {
	cfg := &config.Config{SessionSecret: "test-secret"}
	router := newRouter(cfg)

	req, _ := http.NewRequest("POST", "/test", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "true"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin_ValidCookie(t *testing.T) {
	cfg := &config.Config{SessionSecret: "test-secret-key-for-jwt-signing-must-be-long-enough"}
	router := newRouter(cfg)

	token, err := auth.NewSessionToken(cfg.SessionSecret)
	require.NoError(t, err)

	req, _ := http.NewRequest("POST", "/test", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin_CookieSignedWithDifferentSecret(t *testing.T) {
	cfg := &config.Config{SessionSecret: "current-secret"}
	router := newRouter(cfg)

	token, err := auth.NewSessionToken("rotated-away-secret")
	require.NoError(t, err)

	req, _ := http.NewRequest("POST", "/test", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
