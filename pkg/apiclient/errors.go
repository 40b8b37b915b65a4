package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents an error response from the API.
//
// The server reports request failures as RFC 7807 problem documents
// (application/problem+json). The auth middleware answers with plain text
// and the health endpoints embed errors in the response envelope; both are
// folded into the same type so callers always get an *APIError back.
type APIError struct {
	StatusCode int    `json:"status"`
	Title      string `json:"title"`
	Detail     string `json:"detail,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Title != "" {
		return e.Title
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// IsAuthError returns true if the server rejected the request for
// authentication or authorization reasons.
func (e *APIError) IsAuthError() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsNotFound returns true if the requested path does not exist on the server.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// decodeAPIError builds an APIError from an error response body.
func decodeAPIError(statusCode int, body []byte) *APIError {
	// Problem document (the common case for API failures)
	var apiErr APIError
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Title != "" {
		apiErr.StatusCode = statusCode
		return &apiErr
	}

	// Health endpoints report failures inside the response envelope
	var enveloped struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &enveloped) == nil && enveloped.Error != "" {
		return &APIError{StatusCode: statusCode, Detail: enveloped.Error}
	}

	// Plain-text bodies (e.g. the auth middleware's 401)
	return &APIError{StatusCode: statusCode, Detail: strings.TrimSpace(string(body))}
}
