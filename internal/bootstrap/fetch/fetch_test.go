package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("client-bytes"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(result.Body) != "client-bytes" {
		t.Fatalf("Body = %q", result.Body)
	}
	if result.URL != srv.URL {
		t.Fatalf("URL = %q, want %q", result.URL, srv.URL)
	}
}

func TestFetchFollowsRedirect(t *testing.T) {
	var finalURL string
	final := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("redirected-bytes"))
	}))
	defer final.Close()
	finalURL = final.URL

	redirector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, finalURL, http.StatusFound)
	}))
	defer redirector.Close()

	c := New(redirector.URL)
	result, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(result.Body) != "redirected-bytes" {
		t.Fatalf("Body = %q", result.Body)
	}
	if result.URL != finalURL {
		t.Fatalf("URL = %q, want %q", result.URL, finalURL)
	}
}

func TestFetchNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Fetch(context.Background()); err == nil {
		t.Fatal("expected an error for a 404 response")
	}
}

func TestNewDefaultsURL(t *testing.T) {
	c := New("")
	if c.url != defaultClientURL {
		t.Fatalf("url = %q, want %q", c.url, defaultClientURL)
	}
}
