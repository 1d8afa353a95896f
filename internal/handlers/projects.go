package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
)

// Multipart memory cap for image uploads (32MB).
const maxUploadMemory = 32 << 20

type ProjectsHandler struct {
	service *services.ProjectService
}

func NewProjectsHandler(service *services.ProjectService) *ProjectsHandler {
	return &ProjectsHandler{service: service}
}

// List serves the read-only JSON listing, newest first.
func (h *ProjectsHandler) List(c *gin.Context) {
	projects, err := h.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list projects",
			Message: err.Error(),
		})
		return
	}
	if projects == nil {
		projects = []models.Project{}
	}
	c.JSON(http.StatusOK, models.ProjectListResponse{Projects: projects})
}

// Save handles both add and update submissions from the admin form. The
// result is JSON either way; the form's script surfaces it as a toast and the
// HTTP status stays 200 so the result shape is the single source of truth.
func (h *ProjectsHandler) Save(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxUploadMemory); err != nil && err != http.ErrNotMultipart {
		c.JSON(http.StatusBadRequest, models.ActionResult{Error: "failed to parse form: " + err.Error()})
		return
	}

	form := services.ProjectForm{
		Action:           c.PostForm("action"),
		ID:               c.PostForm("id"),
		Title:            c.PostForm("title"),
		Description:      c.PostForm("description"),
		Stacks:           c.PostForm("stacks"),
		Tags:             c.PostForm("tags"),
		LiveDemoURL:      c.PostForm("liveDemoUrl"),
		GithubURL:        c.PostForm("githubUrl"),
		ExistingImageURL: c.PostForm("existingImageUrl"),
	}

	image, err := readImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ActionResult{Error: "failed to read image: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.service.Save(form, image))
}

// Delete removes a project and, best-effort, its stored image.
func (h *ProjectsHandler) Delete(c *gin.Context) {
	id := c.PostForm("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, models.ActionResult{Error: "Project ID is missing."})
		return
	}
	c.JSON(http.StatusOK, h.service.Delete(id, c.PostForm("imageUrl")))
}

// readImage pulls the optional image file out of the multipart form. An
// absent or empty file part means no image was attached.
func readImage(c *gin.Context) (*services.ImageUpload, error) {
	fileHeader, err := c.FormFile("image")
	if err == http.ErrMissingFile || err == http.ErrNotMultipart {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if fileHeader.Filename == "" || fileHeader.Size == 0 {
		return nil, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &services.ImageUpload{Filename: fileHeader.Filename, Data: data}, nil
}
