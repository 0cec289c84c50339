// Package metrics exposes the proxy's operator-facing HTTP surface:
// Prometheus counters/gauges for connection lifecycle events, plus a
// liveness endpoint. This is ambient observability, not part of the core
// components — spec.md §1 treats it as an out-of-scope collaborator
// concern that still deserves the pack's usual stack.
package metrics

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "rotmg_proxy"

var (
	connectionsAccepted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "connections_accepted_total",
		Help:      "Connections accepted by the proxy listener.",
	})

	policyResponses = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "policy_responses_total",
		Help:      "Alternate-protocol policy-file requests answered.",
	})

	gamingSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "gaming_sessions_active",
		Help:      "Gaming sessions currently being forwarded.",
	})

	sessionErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_errors_total",
		Help:      "Sessions that ended due to a decode, encode, or transport error.",
	}, []string{"direction"})
)

func init() {
	prometheus.MustRegister(connectionsAccepted, policyResponses, gamingSessions, sessionErrors)
}

// ConnectionAccepted records a newly accepted client connection.
func ConnectionAccepted() { connectionsAccepted.Inc() }

// PolicyResponseServed records one completed policy-file exchange.
func PolicyResponseServed() { policyResponses.Inc() }

// GamingSessionStarted records the start of a forwarded session.
func GamingSessionStarted() { gamingSessions.Inc() }

// GamingSessionEnded records the end of a forwarded session.
func GamingSessionEnded() { gamingSessions.Dec() }

// SessionError records a forwarding error for the given direction label
// ("client->server" or "server->client").
func SessionError(direction string) { sessionErrors.WithLabelValues(direction).Inc() }

// Server serves /metrics and /healthz on its own address, independent of
// the game-protocol listener.
type Server struct {
	httpServer *http.Server
}

// NewServer builds the metrics HTTP server bound to addr.
func NewServer(addr string) *Server {
	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	return &Server{httpServer: &http.Server{Addr: addr, Handler: router}}
}

// ListenAndServe blocks serving HTTP until Shutdown is called.
func (s *Server) ListenAndServe() error {
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the metrics HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
