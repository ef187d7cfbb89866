// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/pmhub/secctx/internal/domain"
	"github.com/pmhub/secctx/internal/platform/logging"
)

// ErrorResponse is the standard error envelope for all error responses.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "VALIDATION_ERROR").
	Code string `json:"code"`

	Message string `json:"message"`

	// Details carries field-level messages for validation errors.
	Details map[string]string `json:"details,omitempty"`
}

// Error codes for machine-readable error identification.
const (
	ErrorCodeNotFound         = "NOT_FOUND"
	ErrorCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrorCodeValidation       = "VALIDATION_ERROR"
	ErrorCodeBadRequest       = "BAD_REQUEST"
	ErrorCodeUnavailable      = "SERVICE_UNAVAILABLE"
	ErrorCodeInternal         = "INTERNAL_ERROR"
)

// NewErrorResponse creates a new error response with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithDetails creates an error response with additional details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	resp := NewErrorResponse(code, message)
	resp.Error.Details = details

	return resp
}

// WithTraceID adds a trace ID to the error response.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case ErrorCodeValidation, ErrorCodeBadRequest:
		return http.StatusBadRequest
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// GetTraceID returns the OpenTelemetry trace ID of the request, falling back
// to the request ID when no span is recording.
func GetTraceID(c *gin.Context) string {
	if c.Request != nil {
		if sc := trace.SpanFromContext(c.Request.Context()).SpanContext(); sc.HasTraceID() {
			return sc.TraceID().String()
		}
	}

	if id := c.GetString("request_id"); id != "" {
		return id
	}

	if c.Request != nil {
		return c.GetHeader("X-Request-ID")
	}

	return ""
}

// HandleError maps a domain error to a status code and writes the error
// envelope. Unknown errors are logged and answered with a generic 500.
func HandleError(c *gin.Context, err error) {
	traceID := GetTraceID(c)

	var (
		status int
		resp   *ErrorResponse
	)

	switch {
	case domain.IsValidation(err):
		status = http.StatusBadRequest
		resp = NewErrorResponse(ErrorCodeValidation, err.Error())

		var ve *domain.ValidationError
		if errors.As(err, &ve) && ve.Field != "" {
			resp.Error.Details = map[string]string{ve.Field: ve.Message}
		}

	case domain.IsUnavailable(err):
		status = http.StatusServiceUnavailable
		resp = NewErrorResponse(ErrorCodeUnavailable, "service temporarily unavailable: "+err.Error())

	default:
		status = http.StatusInternalServerError
		resp = NewErrorResponse(ErrorCodeInternal, "an internal error occurred")

		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "internal error",
			slog.Any("error", err),
			slog.String("trace_id", traceID),
		)
	}

	c.JSON(status, resp.WithTraceID(traceID))
}

// RespondWithCode writes an error envelope for adapter-level failures that
// do not originate from the domain.
func RespondWithCode(c *gin.Context, code, message string) {
	c.JSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}
