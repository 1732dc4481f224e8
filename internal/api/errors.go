package api

import (
	"errors"
	"net/http"

	"github.com/ncnews/news-api/internal/api/shared"
	"github.com/ncnews/news-api/internal/domain"
	"github.com/ncnews/news-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. The
// rules are evaluated in a fixed priority order: input validation before
// constraint violations before not-found, so a malformed identifier can
// never surface as a 404. Unclassified errors fall through to 500 and
// never leak internal detail to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Input validation errors (malformed id, bad vote delta, missing fields)
	case domain.IsValidationError(err):
		return http.StatusBadRequest

	// Store constraint violations (null field, invalid foreign key)
	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Domain not-found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the sanitized client-facing message for an
// error. All 400-class failures share the "Invalid input" message; 404s
// carry their entity-specific message through verbatim.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case domain.IsValidationError(err),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid input"

	case errors.Is(err, store.ErrArticleNotFound):
		return "Article does not exist"

	case errors.Is(err, store.ErrCommentNotFound):
		return "Comment not found"

	case errors.Is(err, store.ErrTopicNotFound):
		return "Topic not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	default:
		return "Internal server error"
	}
}

// HandleAPIError classifies err and writes the corresponding JSON error
// response. The full error is logged server-side; only the sanitized
// message reaches the client.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
