package dto

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/slangdict/internal/domain"
	"github.com/jsamuelsen/slangdict/internal/platform/logging"
)

// GetTraceID returns the trace ID for the current request: the trace_id
// context value set by the telemetry middleware, falling back to the
// X-Request-ID header. Returns an empty string when neither is present.
func GetTraceID(c *gin.Context) string {
	if v, exists := c.Get("trace_id"); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return c.Request.Header.Get("X-Request-ID")
}

// MapDomainError maps a domain error to an HTTP status code and error response.
// Unknown errors are mapped to 500 Internal Server Error with a generic message.
func MapDomainError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	switch {
	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(
			ErrorCodeNotFound,
			err.Error(),
		)

	case domain.IsConflict(err):
		return http.StatusConflict, NewErrorResponse(
			ErrorCodeConflict,
			err.Error(),
		)

	case domain.IsValidation(err):
		resp := NewErrorResponse(
			ErrorCodeValidation,
			err.Error(),
		)
		// Extract field details if available
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Error.Details = map[string]string{
				validationErr.Field: validationErr.Message,
			}
		}

		return http.StatusBadRequest, resp

	case domain.IsForbidden(err):
		return http.StatusForbidden, NewErrorResponse(
			ErrorCodeForbidden,
			err.Error(),
		)

	case domain.IsNotConfigured(err):
		return http.StatusServiceUnavailable, NewErrorResponse(
			ErrorCodeNotConfigured,
			err.Error(),
		)

	case domain.IsUnavailable(err):
		return http.StatusServiceUnavailable, NewErrorResponse(
			ErrorCodeUnavailable,
			err.Error(),
		)

	default:
		// Unknown errors get a generic message to avoid leaking internals
		return http.StatusInternalServerError, NewErrorResponse(
			ErrorCodeInternal,
			"an internal error occurred",
		)
	}
}

// HandleError writes an error response to the gin.Context.
// It maps domain errors to HTTP responses and includes the trace ID if available.
func HandleError(c *gin.Context, err error) {
	status, errResp := MapDomainError(err)
	errResp.TraceID = GetTraceID(c)

	// Log internal errors with full details
	if status == http.StatusInternalServerError {
		logger := logging.FromContext(c.Request.Context())
		logger.Error("internal error",
			"error", err.Error(),
			"trace_id", errResp.TraceID,
		)
	}

	c.JSON(status, errResp)
}

// HandleValidationErrors writes a 400 response with field-level validation errors.
func HandleValidationErrors(c *gin.Context, fieldErrors map[string]string) {
	errResp := NewErrorResponseWithDetails(
		ErrorCodeValidation,
		"request validation failed",
		fieldErrors,
	)
	errResp.TraceID = GetTraceID(c)

	c.JSON(http.StatusBadRequest, errResp)
}
