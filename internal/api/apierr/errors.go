package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/werewolf-arena/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidRole        = "INVALID_ROLE"
	CodeInvalidGameCount   = "INVALID_GAME_COUNT"
	CodeInvalidTurnCount   = "INVALID_TURN_COUNT"
	CodeNoParticipant      = "NO_PARTICIPANT"
	CodeEvaluationNotFound = "EVALUATION_NOT_FOUND"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrNoParticipant):
		return &httpError{http.StatusBadRequest, APIError{CodeNoParticipant, "A participant endpoint is required"}}
	case errors.Is(err, model.ErrInvalidRole):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRole, "Role must be villager, werewolf or seer"}}
	case errors.Is(err, model.ErrInvalidGameCount):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidGameCount, "Games per role must not be negative"}}
	case errors.Is(err, model.ErrInvalidTurnCount):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidTurnCount, "Turns to speak must not be negative"}}
	case errors.Is(err, model.ErrEvaluationNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeEvaluationNotFound, "Evaluation not found"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
