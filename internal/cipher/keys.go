package cipher

import (
	"encoding/hex"
	"fmt"
)

// KeyPair is the two 128-bit RC4 keys extracted from the client binary,
// split in half. Which half is "send" and which is "recv" depends on the
// role of the endpoint holding them — see ForClient / ForServer.
type KeyPair struct {
	A, B []byte
}

// DecodeHexKeys hex-decodes the key string recovered by the AVM2
// extractor (internal/avm2) and splits it exactly in half.
func DecodeHexKeys(hexKeys string) (KeyPair, error) {
	raw, err := hex.DecodeString(hexKeys)
	if err != nil {
		return KeyPair{}, fmt.Errorf("cipher: decode hex keys: %w", err)
	}
	return SplitKeys(raw)
}

// SplitKeys splits an even-length byte string exactly in half. The game
// protocol's key material is always two equal-length RC4 keys
// concatenated; an odd length means the extracted key is malformed.
func SplitKeys(raw []byte) (KeyPair, error) {
	if len(raw) == 0 || len(raw)%2 != 0 {
		return KeyPair{}, fmt.Errorf("cipher: key material of length %d does not split evenly", len(raw))
	}
	half := len(raw) / 2
	return KeyPair{A: raw[:half], B: raw[half:]}, nil
}

// ForClient returns (send, recv) keys for the endpoint that initiated the
// connection (the game client, and the proxy's upstream-facing half which
// impersonates one).
func (p KeyPair) ForClient() (send, recv []byte) {
	return p.A, p.B
}

// ForServer returns (recv, send) keys for the endpoint accepting the
// connection (the game server, and the proxy's client-facing half which
// impersonates one).
func (p KeyPair) ForServer() (recv, send []byte) {
	return p.A, p.B
}
