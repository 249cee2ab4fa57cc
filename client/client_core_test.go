package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestNew(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.BaseURL() != DefaultBaseURL {
		t.Fatalf("base url = %q, want %q", c.BaseURL(), DefaultBaseURL)
	}
	if c.http.Timeout != DefaultHTTPTimeout {
		t.Fatalf("timeout = %v", c.http.Timeout)
	}
	if c.http.Jar == nil {
		t.Fatalf("expected cookie jar to be installed")
	}
}

func TestNew_OptionError(t *testing.T) {
	if _, err := New(WithBaseURL("")); err == nil {
		t.Fatalf("expected error for empty base url")
	}
	if _, err := New(WithHTTPClient(nil)); err == nil {
		t.Fatalf("expected error for nil http client")
	}
	if _, err := New(WithHTTPTimeout(0)); err == nil {
		t.Fatalf("expected error for zero timeout")
	}
}

func TestWithBaseURL_AddsTrailingSlash(t *testing.T) {
	c, err := New(WithBaseURL("http://127.0.0.1:8080"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.BaseURL() != "http://127.0.0.1:8080/" {
		t.Fatalf("base url = %q", c.BaseURL())
	}
}

func TestClient_LoginScenario(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/account/login" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"xyz"}`))
	}))
	defer srv.Close()

	c, err := New(WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	resp, err := c.Login(context.Background(), LoginRequest{Username: "a", Password: "b"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token != "xyz" {
		t.Fatalf("token = %q", resp.Token)
	}

	// Any other path answers 404 and must surface as a bad server response.
	if _, err := c.GetLocations(context.Background()); !IsBadServerResponse(err) {
		t.Fatalf("expected bad server response, got %v", err)
	}
	var se *StatusError
	if _, err := c.GetAthleteStats(context.Background(), AthleteIDRequest{AthleteID: 1}); !errors.As(err, &se) || se.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 status error, got %v", err)
	}
}

func TestClient_SessionCookieReused(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/account/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "s-1", Path: "/"})
		_, _ = w.Write([]byte(`{"token":"xyz"}`))
	})
	mux.HandleFunc("/api/v1/account/athlete/get", func(w http.ResponseWriter, r *http.Request) {
		if ck, err := r.Cookie("session"); err != nil || ck.Value != "s-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"id":7,"first_name":"Ivan"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, err := New(WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.GetAthleteProfile(context.Background()); !IsBadServerResponse(err) {
		t.Fatalf("expected 401 before login, got %v", err)
	}
	if _, err := c.Login(context.Background(), LoginRequest{Username: "a", Password: "b"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	p, err := c.GetAthleteProfile(context.Background())
	if err != nil {
		t.Fatalf("GetAthleteProfile: %v", err)
	}
	if p.ID != 7 || p.FirstName != "Ivan" {
		t.Fatalf("unexpected profile: %+v", p)
	}
}

func TestClient_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{bad json"))
	}))
	defer srv.Close()

	c, err := New(WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Register(context.Background(), RegisterRequest{Email: "e@example.com"}); !IsDecodeError(err) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestClient_LogsThroughConfiguredLogger(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	c, err := New(WithBaseURL(srv.URL), WithLogger(zerolog.New(&buf)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.GetLocations(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"endpoint":"get_locations"`)) || !bytes.Contains(buf.Bytes(), []byte(`"status_code":500`)) {
		t.Fatalf("unexpected log output: %s", buf.String())
	}
}

func TestWithHTTPClient_LeavesCallerClientUntouched(t *testing.T) {
	shared := &http.Client{}
	if _, err := New(WithHTTPClient(shared), WithHTTPTimeout(3*time.Second), WithDebugLogging(true)); err != nil {
		t.Fatalf("New: %v", err)
	}
	if shared.Jar != nil || shared.Transport != nil || shared.Timeout != 0 {
		t.Fatalf("caller's http.Client was modified: %+v", shared)
	}
}

func TestClients_SharingHTTPClientKeepSeparateSessions(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/account/login", func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		http.SetCookie(w, &http.Cookie{Name: "session", Value: req.Username, Path: "/"})
		_, _ = w.Write([]byte(`{"token":"xyz"}`))
	})
	mux.HandleFunc("/api/v1/account/athlete/get", func(w http.ResponseWriter, r *http.Request) {
		ck, err := r.Cookie("session")
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(AthleteProfileResponse{FirstName: ck.Value})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	shared := &http.Client{}
	alice, err := New(WithBaseURL(srv.URL), WithHTTPClient(shared))
	if err != nil {
		t.Fatalf("New alice: %v", err)
	}
	bob, err := New(WithBaseURL(srv.URL), WithHTTPClient(shared))
	if err != nil {
		t.Fatalf("New bob: %v", err)
	}

	if _, err := alice.Login(context.Background(), LoginRequest{Username: "alice", Password: "pw"}); err != nil {
		t.Fatalf("alice login: %v", err)
	}
	p, err := alice.GetAthleteProfile(context.Background())
	if err != nil || p.FirstName != "alice" {
		t.Fatalf("alice profile: %+v, %v", p, err)
	}
	if p, err := bob.GetAthleteProfile(context.Background()); !IsBadServerResponse(err) {
		t.Fatalf("bob reused alice's session: %+v, %v", p, err)
	}
}
