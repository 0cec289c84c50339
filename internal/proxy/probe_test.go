package proxy

import (
	"bufio"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAwaitProbeDetectsPolicyRequest(t *testing.T) {
	server, client := net.Pipe()
	defer client.Close()
	defer server.Close()

	go func() {
		client.Write(policyRequestSentinel)
	}()

	isPolicy, err := awaitProbe(server, bufio.NewReader(server))
	require.NoError(t, err)
	require.True(t, isPolicy)
}

func TestAwaitProbeNeverCompletingTimesOut(t *testing.T) {
	// Boundary test: a probe matching the sentinel's prefix forever, never
	// completing, must time out within the 10s cumulative cap.
	server, client := net.Pipe()
	defer client.Close()
	defer server.Close()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		client.Write(policyRequestSentinel[:1])
		<-stop // never writes the rest
	}()

	start := time.Now()
	_, err := awaitProbe(server, bufio.NewReader(server))
	require.Error(t, err)
	require.ErrorIs(t, err, errProbeTimeout)
	require.Less(t, time.Since(start), 11*time.Second)
}

func TestAwaitProbeDetectsGaming(t *testing.T) {
	server, client := net.Pipe()
	defer client.Close()
	defer server.Close()

	gameBytes := []byte{0, 0, 0, 6, 5, 6}
	go func() {
		client.Write(gameBytes)
	}()

	br := bufio.NewReader(server)
	isPolicy, err := awaitProbe(server, br)
	require.NoError(t, err)
	require.False(t, isPolicy)

	// The probed bytes must still be readable — spec.md §4.E step 2
	// requires "no bytes consumed" on a mismatch.
	got := make([]byte, len(gameBytes))
	_, err = br.Read(got)
	require.NoError(t, err)
	require.Equal(t, gameBytes, got)
}

func TestAwaitProbeFragmentedSentinel(t *testing.T) {
	// Boundary test: sentinel delivered one byte per backoff interval must
	// still be handled as a policy request.
	server, client := net.Pipe()
	defer client.Close()
	defer server.Close()

	go func() {
		for _, b := range policyRequestSentinel {
			client.Write([]byte{b})
			time.Sleep(2 * time.Millisecond)
		}
	}()

	isPolicy, err := awaitProbe(server, bufio.NewReader(server))
	require.NoError(t, err)
	require.True(t, isPolicy)
}
