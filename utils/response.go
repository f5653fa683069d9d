package utils

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path,omitempty"`
	Errors    []string  `json:"errors,omitempty"`
}

// RespondError translates any error coming out of binding or a service into
// the uniform error body. Typed *APIError values keep their status; field
// validation failures become 400 with the per-field list; everything else is
// a 500.
func RespondError(c *gin.Context, err error) {
	path := c.Request.URL.Path

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, ErrorResponse{
			Timestamp: time.Now(),
			Status:    apiErr.Status,
			Error:     apiErr.ErrorText,
			Message:   apiErr.Message,
			Path:      path,
		})
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			details = append(details, fmt.Sprintf("%s: failed on '%s'", fe.Field(), fe.Tag()))
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Timestamp: time.Now(),
			Status:    http.StatusBadRequest,
			Error:     "Validation Failed",
			Message:   "Invalid input data",
			Path:      path,
			Errors:    details,
		})
		return
	}

	log.Printf("unhandled error on %s: %v", path, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Timestamp: time.Now(),
		Status:    http.StatusInternalServerError,
		Error:     "Internal Server Error",
		Message:   err.Error(),
		Path:      path,
	})
}

// RespondBindingError handles malformed payloads: validation-tag failures get
// the detailed body, any other binding problem falls back to a plain 400.
func RespondBindingError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		RespondError(c, err)
		return
	}
	RespondError(c, BadRequest("invalid request payload: %v", err))
}
