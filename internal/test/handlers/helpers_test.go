package handlers_test

import (
	"fmt"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
	"portfolio-backend/web"
)

type memStore struct {
	projects []models.Project
	clock    time.Time
}

func (m *memStore) List() ([]models.Project, error) {
	out := make([]models.Project, len(m.projects))
	copy(out, m.projects)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memStore) Insert(fields models.ProjectFields) (*models.Project, error) {
	m.clock = m.clock.Add(time.Minute)
	project := models.Project{
		ID:          uuid.NewString(),
		Title:       fields.Title,
		Description: fields.Description,
		Stacks:      fields.Stacks,
		Tags:        fields.Tags,
		ImageURL:    fields.ImageURL,
		LiveDemoURL: fields.LiveDemoURL,
		GithubURL:   fields.GithubURL,
		CreatedAt:   m.clock,
	}
	m.projects = append(m.projects, project)
	return &project, nil
}

func (m *memStore) Update(id string, fields models.ProjectFields) (*models.Project, error) {
	for i := range m.projects {
		if m.projects[i].ID == id {
			m.projects[i].Title = fields.Title
			m.projects[i].Description = fields.Description
			m.projects[i].Stacks = fields.Stacks
			m.projects[i].Tags = fields.Tags
			m.projects[i].ImageURL = fields.ImageURL
			m.projects[i].LiveDemoURL = fields.LiveDemoURL
			m.projects[i].GithubURL = fields.GithubURL
			return &m.projects[i], nil
		}
	}
	return nil, fmt.Errorf("project %s not found", id)
}

func (m *memStore) Delete(id string) error {
	for i := range m.projects {
		if m.projects[i].ID == id {
			m.projects = append(m.projects[:i], m.projects[i+1:]...)
			return nil
		}
	}
	return nil
}

type memObjects struct {
	blobs   map[string]bool
	uploads int
}

func newMemObjects() *memObjects {
	return &memObjects{blobs: map[string]bool{}}
}

func (m *memObjects) UploadImage(filename string, data []byte) (string, string, error) {
	m.uploads++
	path := fmt.Sprintf("projects/%d_%s", m.uploads, filename)
	publicURL := "https://cdn.test/" + path
	m.blobs[publicURL] = true
	return path, publicURL, nil
}

func (m *memObjects) DeleteByPublicURL(publicURL string) error {
	delete(m.blobs, publicURL)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		AdminPassword:         "correct horse battery staple",
		DeleteConfirmPassword: "correct horse battery staple",
		SessionSecret:         "test-secret-key-for-jwt-signing-must-be-long-enough",
		Environment:           "development",
	}
}

// newSite wires the routes the way cmd/server does, over in-memory stores.
func newSite(cfg *config.Config) (*gin.Engine, *memStore, *memObjects) {
	gin.SetMode(gin.TestMode)

	store := &memStore{clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	objects := newMemObjects()
	service := services.NewProjectService(store, objects)

	pagesHandler := handlers.NewPagesHandler(cfg, service)
	authHandler := handlers.NewAuthHandler(cfg)
	projectsHandler := handlers.NewProjectsHandler(service)

	router := gin.New()
	router.SetHTMLTemplate(web.Templates())

	router.GET("/health", handlers.HealthHandler)
	router.GET("/", pagesHandler.Home)
	router.GET("/coming-soon", pagesHandler.ComingSoon)
	router.GET("/add", pagesHandler.Admin)
	router.POST("/add/login", authHandler.Login)
	router.POST("/add/logout", authHandler.Logout)

	admin := router.Group("/add")
	admin.Use(middleware.RequireAdmin(cfg))
	admin.POST("/project", projectsHandler.Save)
	admin.POST("/project/delete", projectsHandler.Delete)

	router.GET("/api/v1/projects", projectsHandler.List)

	return router, store, objects
}
