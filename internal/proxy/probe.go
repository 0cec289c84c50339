package proxy

import (
	"bufio"
	"net"
	"time"
)

// policyRequestSentinel is the exact byte sequence a Flash client sends on
// a socket connection before assuming it can talk the game protocol
// (spec.md §6 "alternate-protocol sentinel").
var policyRequestSentinel = []byte("<policy-file-request/>\x00")

const (
	probeInitialDelay = time.Millisecond
	probeMaxCumulative = 10 * time.Second
)

// awaitProbe peeks at the start of a freshly accepted connection to decide
// whether it is a Flash policy-file probe or the start of a game session,
// without consuming any bytes the game-session decoder will later need.
//
// bufio.Reader.Peek gives the non-destructive read spec.md §4.E requires;
// a short per-attempt read deadline turns a blocking Peek into the
// "observe whatever has arrived so far" primitive the exponential-backoff
// loop is built around — Peek returns both the partial bytes and the
// timeout error when fewer than requested are available.
func awaitProbe(conn net.Conn, br *bufio.Reader) (isPolicyRequest bool, err error) {
	delay := probeInitialDelay
	var elapsed time.Duration

	for {
		if err := conn.SetReadDeadline(time.Now().Add(delay)); err != nil {
			return false, err
		}
		observed, peekErr := br.Peek(len(policyRequestSentinel))
		conn.SetReadDeadline(time.Time{})

		n := len(observed)
		if n > 0 && !prefixEqual(policyRequestSentinel[:n], observed) {
			return false, nil
		}

		if n == len(policyRequestSentinel) {
			return true, nil
		}

		if peekErr == nil {
			// Full sentinel observed but didn't hit the branch above —
			// unreachable given n == len check, kept defensive.
			return true, nil
		}
		if ne, ok := peekErr.(net.Error); !ok || !ne.Timeout() {
			return false, peekErr
		}

		elapsed += delay
		if elapsed >= probeMaxCumulative {
			return false, errProbeTimeout
		}
		delay *= 2
		if rem := probeMaxCumulative - elapsed; delay > rem {
			delay = rem
		}
	}
}

func prefixEqual(want, got []byte) bool {
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if want[i] != got[i] {
			return false
		}
	}
	return true
}
