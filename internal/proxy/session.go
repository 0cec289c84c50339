package proxy

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/sirupsen/logrus"
	uuid "github.com/satori/go.uuid"

	"rotmg-proxy/internal/cipher"
	"rotmg-proxy/internal/codec"
	"rotmg-proxy/internal/metrics"
)

// Dialer connects to the upstream game server for one session.
type Dialer func(ctx context.Context) (net.Conn, error)

// Config is everything a Session needs that does not vary per connection.
type Config struct {
	Keys         cipher.KeyPair
	Policy       *PolicyResponder
	Dial         Dialer
	MaxFrameSize int
}

// handleConnection drives one accepted client connection through the
// AwaitingProbe -> (PolicyResponder | Gaming) -> Closed state machine of
// spec.md §4.E.
func handleConnection(ctx context.Context, conn net.Conn, cfg Config, log *logrus.Logger) {
	fields := logrus.Fields{"remote": conn.RemoteAddr().String()}
	if id, err := uuid.NewV4(); err != nil {
		log.WithError(err).Warn("failed to generate connection correlation id")
	} else {
		fields["conn"] = id.String()
	}
	entry := log.WithFields(fields)
	entry.Info("accepted connection")
	defer conn.Close()

	br := bufio.NewReader(conn)
	isPolicyRequest, err := awaitProbe(conn, br)
	if err != nil {
		entry.WithError(err).Warn("alternate-protocol probe failed")
		return
	}

	if isPolicyRequest {
		if err := cfg.Policy.Respond(conn); err != nil {
			entry.WithError(err).Warn("failed to answer policy-file request")
			return
		}
		metrics.PolicyResponseServed()
		entry.Info("answered policy-file request")
		return
	}

	entry.Info("handing off to gaming session")
	metrics.GamingSessionStarted()
	defer metrics.GamingSessionEnded()
	if err := runGaming(ctx, conn, br, cfg, entry); err != nil {
		entry.WithError(err).Warn("gaming session ended with error")
		return
	}
	entry.Info("gaming session closed")
}

func runGaming(ctx context.Context, clientConn net.Conn, clientReader *bufio.Reader, cfg Config, log *logrus.Entry) error {
	upstream, err := cfg.Dial(ctx)
	if err != nil {
		return fmt.Errorf("proxy: connecting to upstream: %w", err)
	}
	defer upstream.Close()

	set, err := newCipherSet(cfg.Keys)
	if err != nil {
		return err
	}
	clientRecv, clientSend, upstreamSend, upstreamRecv := set.directionCiphers()

	maxFrame := cfg.MaxFrameSize
	if maxFrame <= 0 {
		maxFrame = codec.DefaultMaxFrameSize
	}

	clientDecoder := codec.NewDecoder(clientRecv)
	clientDecoder.MaxFrameSize = maxFrame
	clientEncoder := codec.NewEncoder(clientSend)

	upstreamDecoder := codec.NewDecoder(upstreamRecv)
	upstreamDecoder.MaxFrameSize = maxFrame
	upstreamEncoder := codec.NewEncoder(upstreamSend)

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	recordErr := func(direction string, err error) {
		if err == nil {
			return
		}
		metrics.SessionError(direction)
		errOnce.Do(func() { firstErr = err })
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		err := forwardDirection("client->server", clientReader, upstream, clientDecoder, upstreamEncoder, log)
		closeWrite(upstream)
		recordErr("client->server", err)
	}()
	go func() {
		defer wg.Done()
		err := forwardDirection("server->client", upstream, clientConn, upstreamDecoder, clientEncoder, log)
		closeWrite(clientConn)
		recordErr("server->client", err)
	}()
	wg.Wait()

	return firstErr
}
