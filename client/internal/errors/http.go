package errors

import "net/http"

// IsSuccess reports whether statusCode is in the 2xx range.
func IsSuccess(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode <= 299
}

// NewStatusError builds the error for a non-success response of the named endpoint.
func NewStatusError(endpoint string, statusCode int) *StatusError {
	return &StatusError{Endpoint: endpoint, StatusCode: statusCode}
}
