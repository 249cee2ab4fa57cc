package client

import clienterrors "github.com/fiveverst/fiveverst-go/client/internal/errors"

// Re-export shared SDK errors so callers compare against a single symbol.
var (
	// ErrBadURL means the base URL and endpoint path did not form a valid URL.
	ErrBadURL = clienterrors.ErrBadURL

	// ErrBadServerResponse means the server answered outside 200-299.
	ErrBadServerResponse = clienterrors.ErrBadServerResponse
)

// StatusError carries the status code of a rejected call; it matches
// ErrBadServerResponse under errors.Is.
type StatusError = clienterrors.StatusError

// IsBadServerResponse reports whether err is a non-2xx failure.
func IsBadServerResponse(err error) bool { return clienterrors.IsBadServerResponse(err) }

// IsBadURL reports whether err is a URL construction failure.
func IsBadURL(err error) bool { return clienterrors.IsBadURL(err) }

// IsDecodeError reports whether err came from decoding the response JSON.
func IsDecodeError(err error) bool { return clienterrors.IsDecodeError(err) }
