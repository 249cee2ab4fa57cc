package client

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog"
)

// debugTransport logs full request/response dumps for troubleshooting.
//
// Enable with FIVEVERST_DEBUG=true or DEBUG=true, or WithDebugLogging(true).
// Dumps contain passwords and session cookies; keep it out of production.
type debugTransport struct {
	base   http.RoundTripper
	logger zerolog.Logger
}

func (dt *debugTransport) next() http.RoundTripper {
	if dt.base == nil {
		return http.DefaultTransport
	}
	return dt.base
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		dt.logger.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.next().RoundTrip(req)
	if err != nil {
		dt.logger.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		dt.logger.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested reports whether FIVEVERST_DEBUG or DEBUG is "true".
func debugLoggingRequested() bool {
	return os.Getenv("FIVEVERST_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
