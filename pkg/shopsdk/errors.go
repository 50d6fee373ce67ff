package shopsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/storefront/pkg/httpx"
)

// APIError is the failure envelope. The server writes it and the client
// returns it as an error.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int `json:"-"`

	// Status is "fail" for client errors and "error" for server errors.
	Status string `json:"status"`

	// Message is safe to show to end users.
	Message string `json:"message"`

	// Code repeats the HTTP status inside the body.
	Code int `json:"code"`

	// Details carries per-field validation messages.
	Details map[string]string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// WriteError writes e to w.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteFailure(w, e.StatusCode, e.Message, e.Details)
}

// NewAPIError builds an error envelope for status with msg.
func NewAPIError(status int, msg string) *APIError {
	s := httpx.StatusFail
	if status >= http.StatusInternalServerError {
		s = httpx.StatusError
	}
	return &APIError{StatusCode: status, Status: s, Message: msg, Code: status}
}

// ValidationFailed is a 400 carrying field messages.
func ValidationFailed(msg string, details map[string]string) *APIError {
	e := NewAPIError(http.StatusBadRequest, msg)
	e.Details = details
	return e
}

// Predefined errors shared by every route.
var (
	ErrUnauthenticated = NewAPIError(http.StatusUnauthorized, httpx.MsgBadToken)
	ErrNoToken         = NewAPIError(http.StatusUnauthorized, httpx.MsgNoToken)
	// Role failures are reported as 401 for compatibility with existing clients.
	ErrForbidden     = NewAPIError(http.StatusUnauthorized, httpx.MsgForbidden)
	ErrRouteNotFound = NewAPIError(http.StatusNotFound, httpx.MsgNotFound)
	ErrBadPayload    = NewAPIError(http.StatusBadRequest, httpx.MsgBadPayload)
	ErrInternal      = NewAPIError(http.StatusInternalServerError, httpx.MsgInternal)
)

// parseErrorResponse turns a non-2xx response into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		apiErr.StatusCode = resp.StatusCode
		return &apiErr
	}

	return NewAPIError(resp.StatusCode,
		fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)))
}
