package proxy

import (
	"fmt"

	"rotmg-proxy/internal/cipher"
)

// cipherSet holds one never-advanced RC4 instance per extracted key half.
// Every new connection clones the half it needs rather than re-running the
// key schedule from raw bytes, per spec.md §9 "cipher cloning for codec
// cloning": each clone starts at the same position-zero state the source
// was constructed with, so cloning is indistinguishable from a fresh
// cipher.New call except for the avoided key-schedule cost.
type cipherSet struct {
	a, b *cipher.RC4
}

func newCipherSet(keys cipher.KeyPair) (*cipherSet, error) {
	a, err := cipher.New(keys.A)
	if err != nil {
		return nil, fmt.Errorf("proxy: keying cipher half A: %w", err)
	}
	b, err := cipher.New(keys.B)
	if err != nil {
		return nil, fmt.Errorf("proxy: keying cipher half B: %w", err)
	}
	return &cipherSet{a: a, b: b}, nil
}

// directionCiphers returns fresh (clientRecv, clientSend, upstreamSend,
// upstreamRecv) ciphers for one proxied session, honoring the role split
// in spec.md §6 "Cipher seeding": the proxy's client-facing half
// impersonates the game server (ForServer: recv=A, send=B), its
// upstream-facing half impersonates the game client (ForClient: send=A,
// recv=B) — both sides of the client->server flow are keyed with A, both
// sides of the server->client flow with B.
func (s *cipherSet) directionCiphers() (clientRecv, clientSend, upstreamSend, upstreamRecv *cipher.RC4) {
	return s.a.Clone(), s.b.Clone(), s.a.Clone(), s.b.Clone()
}
