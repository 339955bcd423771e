package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jmylchreest/inkswatch/internal/security"
)

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.UserAgent(), UserAgentName+"/") {
			t.Errorf("User-Agent = %q", r.UserAgent())
		}
		if r.Header.Get("X-Test") != "yes" {
			t.Errorf("missing custom header")
		}
		_, _ = w.Write([]byte(`[{"id":"a"}]`))
	}))
	defer srv.Close()

	data, err := Fetch(context.Background(), srv.URL, FetchOptions{Headers: map[string]string{"X-Test": "yes"}})
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if string(data) != `[{"id":"a"}]` {
		t.Errorf("Fetch() = %q", data)
	}
}

func TestFetchStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := Fetch(context.Background(), srv.URL, FetchOptions{}); err == nil || !strings.Contains(err.Error(), "HTTP 404") {
		t.Errorf("Fetch() error = %v, want HTTP 404", err)
	}
}

func TestFetchSizeLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 100)))
	}))
	defer srv.Close()

	_, err := Fetch(context.Background(), srv.URL, FetchOptions{MaxBytes: 10})
	if !errors.Is(err, security.ErrSizeLimitExceeded) {
		t.Errorf("Fetch() error = %v, want size limit", err)
	}
}

func TestFetchRejectsNonHTTP(t *testing.T) {
	if _, err := Fetch(context.Background(), "ftp://example.com/inks.json", FetchOptions{}); err == nil {
		t.Error("Fetch() accepted ftp URL")
	}
}
