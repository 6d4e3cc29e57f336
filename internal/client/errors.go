package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned for any non-2xx response. Message is the body's
// message field verbatim, or "HTTP <status>" when the body has none.
type APIError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *APIError) Error() string {
	return e.Message
}

// newAPIError reads message and error independently so an error field of
// any other shape never hides a usable message.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err == nil {
		_ = json.Unmarshal(fields["message"], &apiErr.Message)
		_ = json.Unmarshal(fields["error"], &apiErr.Code)
	}
	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("HTTP %d", status)
	}

	return apiErr
}

// StatusCode returns the HTTP status of an *APIError in err's chain, or 0
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is a 404 from the API
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}
