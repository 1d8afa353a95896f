package supabase

import (
	"fmt"

	"github.com/supabase-community/postgrest-go"
	"portfolio-backend/internal/models"
)

const projectsTable = "projects"

// ProjectStore issues document operations against the hosted projects
// collection through PostgREST.
type ProjectStore struct {
	client *Client
}

func NewProjectStore(client *Client) *ProjectStore {
	return &ProjectStore{client: client}
}

// List returns every project, newest first. No pagination.
func (s *ProjectStore) List() ([]models.Project, error) {
	var projects []models.Project
	_, err := s.client.Supabase.From(projectsTable).
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&projects)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Insert writes a new document; the store assigns id and created_at.
func (s *ProjectStore) Insert(fields models.ProjectFields) (*models.Project, error) {
	var inserted []models.Project
	_, err := s.client.Supabase.From(projectsTable).
		Insert(fields, false, "", "representation", "").
		ExecuteTo(&inserted)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	if len(inserted) == 0 {
		return nil, fmt.Errorf("no project returned from insert")
	}
	return &inserted[0], nil
}

// Update overwrites the document's writable fields in place. created_at is
// not part of the payload and never changes.
func (s *ProjectStore) Update(id string, fields models.ProjectFields) (*models.Project, error) {
	var updated []models.Project
	_, err := s.client.Supabase.From(projectsTable).
		Update(fields, "representation", "").
		Eq("id", id).
		ExecuteTo(&updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	if len(updated) == 0 {
		return nil, fmt.Errorf("project %s not found", id)
	}
	return &updated[0], nil
}

// Delete removes the document. Deleting an id that does not exist is not an
// error; PostgREST simply affects zero rows.
func (s *ProjectStore) Delete(id string) error {
	_, _, err := s.client.Supabase.From(projectsTable).
		Delete("", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
