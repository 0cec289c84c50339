package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestHealthzEndpoint(t *testing.T) {
	s := NewServer("127.0.0.1:0")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	s.httpServer.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestMetricsEndpointExposesCounters(t *testing.T) {
	ConnectionAccepted()
	PolicyResponseServed()

	s := NewServer("127.0.0.1:0")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	s.httpServer.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "rotmg_proxy_connections_accepted_total") {
		t.Fatalf("missing connections_accepted_total metric in body")
	}
	if !strings.Contains(body, "rotmg_proxy_policy_responses_total") {
		t.Fatalf("missing policy_responses_total metric in body")
	}
}

func TestGamingSessionGaugeTracksActiveCount(t *testing.T) {
	GamingSessionStarted()
	GamingSessionStarted()
	GamingSessionEnded()

	s := NewServer("127.0.0.1:0")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	s.httpServer.Handler.ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "rotmg_proxy_gaming_sessions_active 1") {
		t.Fatalf("gauge did not read 1 active session, body:\n%s", body)
	}
}

func TestServerListenAndShutdown(t *testing.T) {
	s := NewServer("127.0.0.1:0")
	errCh := make(chan error, 1)
	go func() { errCh <- s.ListenAndServe() }()

	// ListenAndServe has no readiness signal of its own; give it a moment
	// to bind before shutting down.
	time.Sleep(20 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	if err := <-errCh; err != nil {
		t.Fatalf("ListenAndServe returned: %v", err)
	}
}

func TestSessionErrorLabelsByDirection(t *testing.T) {
	SessionError("client->server")

	s := NewServer("127.0.0.1:0")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	s.httpServer.Handler.ServeHTTP(rec, req)

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `direction="client->server"`) {
		t.Fatalf("missing direction label in body")
	}
}
