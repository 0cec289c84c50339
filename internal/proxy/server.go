package proxy

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/sirupsen/logrus"

	"rotmg-proxy/internal/metrics"
)

// Server accepts game-client connections and runs each through the
// probe/policy/gaming state machine. Shape follows the teacher's
// PaysysServer accept loop (listener + WaitGroup + shutdown channel),
// generalized to logrus logging and a per-connection Config.
type Server struct {
	addr     string
	cfg      Config
	log      *logrus.Logger
	listener net.Listener
	wg       sync.WaitGroup
	shutdown chan struct{}
	ready    chan struct{}
}

// NewServer creates a proxy server listening on addr once Start is called.
func NewServer(addr string, cfg Config, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Server{
		addr:     addr,
		cfg:      cfg,
		log:      log,
		shutdown: make(chan struct{}),
		ready:    make(chan struct{}),
	}
}

// Addr blocks until the listener is bound and returns its address. Mainly
// useful in tests and for logging the resolved port when addr ends in ":0".
func (s *Server) Addr() string {
	<-s.ready
	return s.listener.Addr().String()
}

// Start listens and accepts connections until Stop is called. It blocks.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("proxy: listening on %s: %w", s.addr, err)
	}
	s.listener = listener
	close(s.ready)
	s.log.WithField("addr", listener.Addr().String()).Info("proxy listening")

	for {
		conn, err := listener.Accept()
		if err != nil {
			select {
			case <-s.shutdown:
				return nil
			default:
				s.log.WithError(err).Warn("accept failed")
				continue
			}
		}

		metrics.ConnectionAccepted()
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			handleConnection(ctx, conn, s.cfg, s.log)
		}()
	}
}

// Stop closes the listener and waits for in-flight connections to finish.
func (s *Server) Stop() {
	s.log.Info("proxy shutting down")
	close(s.shutdown)
	if s.listener != nil {
		s.listener.Close()
	}
	s.wg.Wait()
	s.log.Info("proxy shutdown complete")
}
