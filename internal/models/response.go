package models

// ActionResult is the uniform shape returned by every mutating admin action.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type ProjectListResponse struct {
	Projects []Project `json:"projects"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
