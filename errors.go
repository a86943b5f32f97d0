package loops

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrMissingAPIKey indicates the client was constructed without an API key
	ErrMissingAPIKey = errors.New("loops API key is required")
)

// ValidationError reports arguments that fail an endpoint's preconditions.
// It is returned before any request is sent, so it never carries HTTP context.
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

// RateLimitExceededError is returned when the API responds with HTTP 429.
// Limit and Remaining come from the x-ratelimit-limit and
// x-ratelimit-remaining response headers; either defaults to 10 when the
// header is absent or unparseable.
type RateLimitExceededError struct {
	Limit     int
	Remaining int
}

// Error implements the error interface
func (e *RateLimitExceededError) Error() string {
	return fmt.Sprintf("rate limit of %d requests per second exceeded, %d remaining", e.Limit, e.Remaining)
}

// APIError represents a non-2xx, non-429 response from the Loops API.
// Body holds the decoded JSON error body verbatim so callers can inspect
// provider-specific fields.
type APIError struct {
	StatusCode int
	Body       map[string]any
}

// Error implements the error interface
func (e *APIError) Error() string {
	if msg := e.Message(); msg != "" {
		return fmt.Sprintf("loops API error: status %d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("loops API error: status %d", e.StatusCode)
}

// Message extracts the human-readable diagnostic from the error body.
// Loops is not consistent across endpoints: some return a nested
// {"error": {"message": ...}} object, some a top-level "error" string,
// and some a top-level "message" string. Checked in that order.
func (e *APIError) Message() string {
	if nested, ok := e.Body["error"].(map[string]any); ok {
		if msg, ok := nested["message"].(string); ok {
			return msg
		}
	}
	if msg, ok := e.Body["error"].(string); ok {
		return msg
	}
	if msg, ok := e.Body["message"].(string); ok {
		return msg
	}
	return ""
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}
