package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ncnews/news-api/internal/domain"
)

// getPathID extracts an integer identifier from the URL path parameters.
// A missing or non-integer value is an input validation failure
// (domain.ErrInvalidID), which the classifier maps to 400 before any
// query runs.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, fmt.Errorf("%w: %s is required", domain.ErrInvalidID, paramName)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q",
			domain.ErrInvalidID, paramName, pathParam)
	}

	return id, nil
}
