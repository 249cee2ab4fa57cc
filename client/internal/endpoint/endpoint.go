// Package endpoint lists the remote operations of the 5 Verst API and the
// path each one is served on.
package endpoint

import (
	"fmt"
	"net/url"

	clienterrors "github.com/fiveverst/fiveverst-go/client/internal/errors"
)

// Endpoint identifies one remote operation.
type Endpoint int

const (
	Login Endpoint = iota
	GetProfile
	GetStats
	GetLocations
	Register
)

var paths = map[Endpoint]string{
	Login:        "api/v1/account/login",
	GetProfile:   "api/v1/account/athlete/get",
	GetStats:     "api/v1/website/athlete/statById",
	GetLocations: "api/v1/account/event/list",
	Register:     "api/v1/account/register",
}

var names = map[Endpoint]string{
	Login:        "login",
	GetProfile:   "get_profile",
	GetStats:     "get_stats",
	GetLocations: "get_locations",
	Register:     "register",
}

// Path returns the path segment appended to the base URL, or "" for an
// unknown endpoint.
func (e Endpoint) Path() string { return paths[e] }

// String returns the short name used in logs and metric labels.
func (e Endpoint) String() string {
	if n, ok := names[e]; ok {
		return n
	}
	return fmt.Sprintf("endpoint(%d)", int(e))
}

// All returns every endpoint in declaration order.
func All() []Endpoint {
	return []Endpoint{Login, GetProfile, GetStats, GetLocations, Register}
}

// URL joins base and the endpoint path by plain concatenation and checks the
// result is an absolute http(s) URL.
func URL(base string, e Endpoint) (string, error) {
	p := e.Path()
	if p == "" {
		return "", fmt.Errorf("%w: unknown endpoint %s", clienterrors.ErrBadURL, e)
	}
	raw := base + p
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", clienterrors.ErrBadURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q", clienterrors.ErrBadURL, raw)
	}
	return raw, nil
}
