package models

import "time"

// GithubPlaceholder is stored in place of a repository URL when the operator
// leaves the field blank. The public site routes such cards to the internal
// /coming-soon page instead of an external link.
const GithubPlaceholder = "coming-soon"

// Project is a document in the hosted projects collection. The id and
// creation timestamp are assigned by the store; created_at is never updated
// and is the sole listing sort key (descending).
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Stacks      []string  `json:"stacks"`
	Tags        []string  `json:"tags"`
	ImageURL    string    `json:"image_url"`
	LiveDemoURL string    `json:"live_demo_url"`
	GithubURL   string    `json:"github_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// HasRepo reports whether the project links to a real repository rather than
// the placeholder.
func (p Project) HasRepo() bool {
	return p.GithubURL != "" && p.GithubURL != GithubPlaceholder
}

// ProjectFields is the writable portion of a project document, sent on
// creates and full-overwrite updates.
type ProjectFields struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Stacks      []string `json:"stacks"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"image_url"`
	LiveDemoURL string   `json:"live_demo_url"`
	GithubURL   string   `json:"github_url"`
}
