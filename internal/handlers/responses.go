package handlers

import (
	"log/slog"
	"net/http"

	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/validation"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through two helpers only:
//
//   - SendError for client and business errors (4xx), e.g.
//     SendError(c, errors.AccountNotFound) or
//     SendError(c, errors.ValidationGeneral, errors.WithDetails("...")).
//   - SendSystemError for repository and other internal failures (500). The
//     cause is logged and never reaches the response body.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError logs err and answers with a generic SYSTEM_001 body
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internal := errors.WrapSystemError(err, traceID)

	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", traceID,
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"error", internal,
	)

	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendValidationError answers 400 with one detail line per failed field
func SendValidationError(c echo.Context, err error) error {
	return SendError(c, errors.ValidationGeneral, errors.WithDetails(validation.FormatErrors(err)...))
}

// bindAndValidate decodes the body into req and runs the echo validator.
// When ok is false the error response has already been written.
func bindAndValidate(c echo.Context, req interface{}) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return false, SendValidationError(c, err)
	}
	return true, nil
}
