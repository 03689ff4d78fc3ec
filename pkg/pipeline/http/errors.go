package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorType represents the category of a gateway error.
type ErrorType string

const (
	// ErrorTypeServer is an internal failure in the gateway itself.
	ErrorTypeServer ErrorType = "server_error"

	// ErrorTypeUpstream is a failure reaching or reading the upstream.
	ErrorTypeUpstream ErrorType = "upstream_error"
)

// Error is the JSON error body written at the HTTP boundary.
type Error struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// ErrorResponse wraps an Error for JSON serialization as the top-level
// error response.
type ErrorResponse struct {
	Error *Error `json:"error"`
}

// WriteError writes a JSON error response with the given status code.
// It sets the Content-Type header before writing.
func WriteError(w http.ResponseWriter, status int, gwErr *Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: gwErr})
}
