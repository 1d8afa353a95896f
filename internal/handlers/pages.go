package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
)

// PredefinedStacks seeds the admin form's stack picker; the operator can
// still add labels outside this list.
var PredefinedStacks = []string{
	"React", "Next.js", "TypeScript", "JavaScript", "Node.js", "Python",
	"Firebase", "Tailwind CSS", "Prisma", "PostgreSQL", "MongoDB", "GraphQL", "Docker",
}

// TagOptions is the closed set offered by the form's tag select.
var TagOptions = []string{"Active", "Personal", "Corporate"}

type PagesHandler struct {
	cfg     *config.Config
	service *services.ProjectService
}

func NewPagesHandler(cfg *config.Config, service *services.ProjectService) *PagesHandler {
	return &PagesHandler{
		cfg:     cfg,
		service: service,
	}
}

// Home renders the public portfolio page with the projects grid, newest
// first. A failed read renders the page without the grid rather than erroring
// the whole site.
func (h *PagesHandler) Home(c *gin.Context) {
	projects, err := h.service.List()
	if err != nil {
		log.Printf("Warning: failed to load projects for home page: %v", err)
		projects = []models.Project{}
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Projects": projects,
	})
}

func (h *PagesHandler) ComingSoon(c *gin.Context) {
	c.HTML(http.StatusOK, "coming_soon.html", gin.H{})
}

// Admin decides between the password prompt and the dashboard on every page
// load, based solely on the session cookie.
func (h *PagesHandler) Admin(c *gin.Context) {
	if !middleware.IsAuthenticated(c, h.cfg) {
		c.HTML(http.StatusOK, "login.html", gin.H{})
		return
	}

	projects, err := h.service.List()
	if err != nil {
		log.Printf("Warning: failed to load projects for dashboard: %v", err)
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Projects":              projects,
		"LoadError":             err != nil,
		"PredefinedStacks":      PredefinedStacks,
		"TagOptions":            TagOptions,
		"DeleteConfirmPassword": h.cfg.DeleteConfirmPassword,
	})
}
