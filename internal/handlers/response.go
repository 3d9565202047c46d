// Package handlers exposes the aggregate services over HTTP/JSON.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/foodlist/service/internal/apperr"
)

// APIError is the wire form of a failed request.
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ErrorEnvelope wraps an APIError in the response body.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func respondError(c *gin.Context, status int, code string, err error) {
	c.JSON(status, ErrorEnvelope{Error: APIError{Message: err.Error(), Code: code}})
}

// respondServiceError translates the service error taxonomy to HTTP status
// codes. Anything unclassified is a server fault: logged with detail,
// surfaced without it.
func respondServiceError(c *gin.Context, err error) {
	var notFound *apperr.NotFound
	var refNotFound *apperr.ReferenceNotFound
	var validation *apperr.Validation
	switch {
	case errors.As(err, &notFound):
		respondError(c, http.StatusNotFound, "not_found", err)
	case errors.As(err, &refNotFound):
		respondError(c, http.StatusBadRequest, "invalid_reference", err)
	case errors.As(err, &validation):
		respondError(c, http.StatusBadRequest, "invalid_input", err)
	default:
		slog.Error("request failed", "path", c.FullPath(), "error", err)
		respondError(c, http.StatusInternalServerError, "internal", errors.New("internal server error"))
	}
}

// pathID parses the numeric identifier from the request path. A non-numeric
// identifier is client input error, not a missing resource.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_input", errors.New("identifier must be numeric"))
		return 0, false
	}
	return id, true
}
