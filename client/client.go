// Package client is a Go SDK for the 5 Verst athlete API.
//
// Every call is a single JSON POST to a fixed path under the base URL. A 2xx
// response is decoded into the typed result; any other status fails with
// ErrBadServerResponse and the body is discarded.
package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/publicsuffix"

	"github.com/fiveverst/fiveverst-go/client/internal/api"
)

// DefaultBaseURL is the production API host.
const DefaultBaseURL = "https://my.5verst.ru/"

// DefaultHTTPTimeout bounds a single request when no timeout option is given.
const DefaultHTTPTimeout = 60 * time.Second

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client calls the 5 Verst API. It is safe for concurrent use; cookies set by
// the server (for example on login) are kept in the client's jar and sent
// with later calls.
type Client struct {
	baseURL string
	http    *http.Client
	rest    *resty.Client
	logger  zerolog.Logger
	debug   bool
}

// New constructs a Client for DefaultBaseURL. Options are applied in order, so
// WithHTTPClient should come before options that tune the http.Client. The
// jar, timeout and debug transport are set on the client's own copy of any
// supplied http.Client.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: DefaultHTTPTimeout},
		logger:  log.Logger,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.http.Jar == nil {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("cookie jar: %w", err)
		}
		c.http.Jar = jar
	}
	if c.debug {
		c.http.Transport = &debugTransport{base: c.http.Transport, logger: c.logger}
	}

	c.rest = api.NewRestyClient(c.http, c.logger)
	return c, nil
}

// BaseURL returns the URL every endpoint path is appended to.
func (c *Client) BaseURL() string { return c.baseURL }

// withLogger attaches the client's logger unless ctx already carries one.
func (c *Client) withLogger(ctx context.Context) context.Context {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return ctx
	}
	return c.logger.WithContext(ctx)
}

// --------------------------------------------------------------------
// Account operations - delegated to internal/api
// --------------------------------------------------------------------

// Login signs in with username and password.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	return api.Login(c.withLogger(ctx), c.rest, c.baseURL, req)
}

// GetAthleteProfile returns the profile of the signed-in athlete.
func (c *Client) GetAthleteProfile(ctx context.Context) (*AthleteProfileResponse, error) {
	return api.GetAthleteProfile(c.withLogger(ctx), c.rest, c.baseURL)
}

// GetLocations lists event venues.
func (c *Client) GetLocations(ctx context.Context) (*LocationResponse, error) {
	return api.GetLocations(c.withLogger(ctx), c.rest, c.baseURL)
}

// Register creates a new athlete account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	return api.Register(c.withLogger(ctx), c.rest, c.baseURL, req)
}

// --------------------------------------------------------------------
// Website operations - delegated to internal/api
// --------------------------------------------------------------------

// GetAthleteStats returns aggregated results for the given athlete.
func (c *Client) GetAthleteStats(ctx context.Context, req AthleteIDRequest) (*StatsResponse, error) {
	return api.GetAthleteStats(c.withLogger(ctx), c.rest, c.baseURL, req)
}
