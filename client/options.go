package client

// This file defines functional options that configure the Client during
// construction.

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithBaseURL points the client at another host, e.g. a staging server or a
// test double. A trailing slash is added when missing since endpoint paths
// are appended by plain concatenation.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		if baseURL == "" {
			return fmt.Errorf("base url cannot be empty")
		}
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		c.baseURL = baseURL
		return nil
	}
}

// WithHTTPClient bases the SDK's http.Client on a shallow copy of hc, so hc
// itself is never modified. A copy without a cookie jar gets its own in New;
// a jar already set on hc is shared with it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		cp := *hc
		c.http = &cp
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// The timeout bounds the total time spent on a single HTTP request
// (including connection, TLS handshake, redirects, and reading the response).
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging makes New wrap the client's transport so each
// request/response is dumped at debug level to the client's logger.
//
// Do not enable this option in production environments: dumps include
// credentials and session cookies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.debug = true
		}
		return nil
	}
}

// WithLogger sets the logger used for calls whose context carries none.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.logger = l
		return nil
	}
}
