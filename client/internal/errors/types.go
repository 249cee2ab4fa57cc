// Package errors defines the failure kinds surfaced by the API client.
// Codec errors are not listed here; they reach callers unchanged.
package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
)

var (
	// ErrBadURL is returned when base URL and endpoint path do not form a valid URL.
	ErrBadURL = stderrors.New("bad URL")

	// ErrBadServerResponse is returned for any status outside 200-299.
	ErrBadServerResponse = stderrors.New("bad server response")
)

// StatusError records a non-success HTTP status. The response body is not kept.
type StatusError struct {
	Endpoint   string
	StatusCode int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %v: HTTP %d", e.Endpoint, ErrBadServerResponse, e.StatusCode)
}

// Unwrap lets errors.Is match ErrBadServerResponse.
func (e *StatusError) Unwrap() error { return ErrBadServerResponse }

// IsBadServerResponse reports whether err is a non-success status failure.
func IsBadServerResponse(err error) bool { return stderrors.Is(err, ErrBadServerResponse) }

// IsBadURL reports whether err is a URL construction failure.
func IsBadURL(err error) bool { return stderrors.Is(err, ErrBadURL) }

// IsDecodeError reports whether err came from decoding a JSON response body.
func IsDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return stderrors.As(err, &syntaxErr) || stderrors.As(err, &typeErr)
}
