// =============================================================================
// FILE: internal/handlers/errors.go
// PURPOSE: Single translation point from domain errors to HTTP responses
// =============================================================================
//
// Handlers never inspect database errors and services never pick status
// codes. Every failed request funnels through respondError, which consults
// one mapping from error kind to HTTP status and renders the fixed error
// body shape.
// =============================================================================

package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"category-api/internal/middleware"
	"category-api/internal/services"
)

// ErrorDetails is the body returned for every failed request
type ErrorDetails struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Details   string    `json:"details"`
}

// statusForError maps a domain error kind to an HTTP status
//   - not found            -> 404
//   - duplicate name       -> 409 (a distinct conflict kind, not a second 404)
//   - anything else        -> 500
func statusForError(err error) int {
	var notFound *services.NotFoundError
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrCategoryExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError renders err as the structured error body.
// Internal errors get a generic message - don't expose internal details.
func respondError(c *gin.Context, err error) {
	status := statusForError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "An unexpected error occurred"
	}

	c.JSON(status, ErrorDetails{
		Timestamp: time.Now().UTC(),
		Message:   message,
		Details:   requestDescription(c),
	})
}

// respondBadRequest renders a validation failure in the same body shape
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorDetails{
		Timestamp: time.Now().UTC(),
		Message:   message,
		Details:   requestDescription(c),
	})
}

// requestDescription identifies the failing request in the error body,
// e.g. "GET /api/categories/999 (request 0b31...)"
func requestDescription(c *gin.Context) string {
	desc := c.Request.Method + " " + c.Request.URL.Path
	if rid := c.GetString(middleware.RequestIDKey); rid != "" {
		desc += " (request " + rid + ")"
	}
	return desc
}
