// Package apierror provides the standardized error envelope for the API.
// All 4xx/5xx responses go through this package so clients always receive
// {"success": false, "message": "..."} and never internal details.
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func New(msg string) *APIError {
	return &APIError{Success: false, Message: msg}
}

// ValidationError wraps per-field validation failures.
type ValidationError struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Success: false, Message: "Error de validacion", Fields: fields}
}
