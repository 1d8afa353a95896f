package services

import (
	"log"
	"strings"

	"portfolio-backend/internal/models"
)

// ProjectStore is the document-store surface the service needs.
type ProjectStore interface {
	List() ([]models.Project, error)
	Insert(fields models.ProjectFields) (*models.Project, error)
	Update(id string, fields models.ProjectFields) (*models.Project, error)
	Delete(id string) error
}

// ObjectStore is the blob-storage surface for project images.
type ObjectStore interface {
	UploadImage(filename string, data []byte) (storagePath, publicURL string, err error)
	DeleteByPublicURL(publicURL string) error
}

// ProjectForm carries the raw fields of an add/update submission. Stacks and
// Tags arrive comma-joined from the form's hidden inputs.
type ProjectForm struct {
	Action           string
	ID               string
	Title            string
	Description      string
	Stacks           string
	Tags             string
	LiveDemoURL      string
	GithubURL        string
	ExistingImageURL string
}

// ImageUpload is an optional image file attached to a submission.
type ImageUpload struct {
	Filename string
	Data     []byte
}

// ProjectService orchestrates document writes and image blob handling for the
// admin CRUD flow.
type ProjectService struct {
	store   ProjectStore
	objects ObjectStore
}

func NewProjectService(store ProjectStore, objects ObjectStore) *ProjectService {
	return &ProjectService{
		store:   store,
		objects: objects,
	}
}

func (s *ProjectService) List() ([]models.Project, error) {
	return s.store.List()
}

// Save dispatches an add or update submission.
func (s *ProjectService) Save(form ProjectForm, image *ImageUpload) models.ActionResult {
	switch form.Action {
	case "add":
		return s.add(form, image)
	case "update":
		return s.update(form, image)
	default:
		return failure("Invalid action.")
	}
}

func (s *ProjectService) add(form ProjectForm, image *ImageUpload) models.ActionResult {
	fields, err := s.prepareFields(form, image)
	if err != nil {
		return failure(errorMessage(err))
	}
	if _, err := s.store.Insert(*fields); err != nil {
		return failure(errorMessage(err))
	}
	return success("Project added successfully!")
}

func (s *ProjectService) update(form ProjectForm, image *ImageUpload) models.ActionResult {
	if form.ID == "" {
		return failure("Project ID is missing.")
	}
	fields, err := s.prepareFields(form, image)
	if err != nil {
		return failure(errorMessage(err))
	}
	if _, err := s.store.Update(form.ID, *fields); err != nil {
		return failure(errorMessage(err))
	}
	return success("Project updated successfully!")
}

// Delete removes the project document, best-effort deleting its image blob
// first. Blob cleanup failures are logged and never block the delete.
func (s *ProjectService) Delete(id, imageURL string) models.ActionResult {
	if imageURL != "" {
		if err := s.objects.DeleteByPublicURL(imageURL); err != nil {
			log.Printf("Warning: image delete failed, may not exist: %v", err)
		}
	}
	if err := s.store.Delete(id); err != nil {
		return failure(errorMessage(err))
	}
	return success("Project deleted.")
}

// prepareFields shapes the raw form into the persisted document fields,
// uploading a replacement image when one was attached.
func (s *ProjectService) prepareFields(form ProjectForm, image *ImageUpload) (*models.ProjectFields, error) {
	imageURL := form.ExistingImageURL
	if image != nil && len(image.Data) > 0 {
		if form.ExistingImageURL != "" {
			// The old blob goes away before the replacement lands. A failed
			// delete leaves an orphan but never blocks the write.
			if err := s.objects.DeleteByPublicURL(form.ExistingImageURL); err != nil {
				log.Printf("Warning: old image delete failed: %v", err)
			}
		}
		_, publicURL, err := s.objects.UploadImage(image.Filename, image.Data)
		if err != nil {
			return nil, err
		}
		imageURL = publicURL
	}

	githubURL := form.GithubURL
	if githubURL == "" {
		githubURL = models.GithubPlaceholder
	}

	return &models.ProjectFields{
		Title:       form.Title,
		Description: form.Description,
		Stacks:      splitList(form.Stacks),
		Tags:        splitList(form.Tags),
		ImageURL:    imageURL,
		LiveDemoURL: form.LiveDemoURL,
		GithubURL:   githubURL,
	}, nil
}

// splitList parses a comma-joined label list. Labels containing commas cannot
// survive this encoding; the form never escapes them.
func splitList(joined string) []string {
	out := []string{}
	for _, part := range strings.Split(joined, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func success(message string) models.ActionResult {
	return models.ActionResult{Success: true, Message: message}
}

func failure(message string) models.ActionResult {
	return models.ActionResult{Success: false, Error: message}
}

func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return "An unknown error occurred."
	}
	return err.Error()
}
