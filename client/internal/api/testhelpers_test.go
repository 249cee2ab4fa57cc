package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// stubRT answers every request with a fixed status and body and records the last request body.
type stubRT struct {
	status   int
	body     string
	lastBody []byte
	lastReq  *http.Request
}

func (s *stubRT) RoundTrip(r *http.Request) (*http.Response, error) {
	s.lastReq = r
	if r.Body != nil {
		s.lastBody, _ = io.ReadAll(r.Body)
	}
	return &http.Response{
		StatusCode: s.status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewBufferString(s.body)),
		Request:    r,
	}, nil
}

func stubClient(status int, body string) (*resty.Client, *stubRT) {
	rt := &stubRT{status: status, body: body}
	return NewRestyClient(&http.Client{Transport: rt}, zerolog.Nop()), rt
}

// backend starts a fake 5 Verst server with handlers routed by path; the
// returned base URL ends with a slash like the production one.
func backend(t *testing.T, routes map[string]http.HandlerFunc) (*resty.Client, string) {
	t.Helper()
	r := mux.NewRouter()
	for path, h := range routes {
		r.HandleFunc("/"+path, h).Methods(http.MethodPost)
	}
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return NewRestyClient(srv.Client(), zerolog.Nop()), srv.URL + "/"
}

func writeJSON(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}
