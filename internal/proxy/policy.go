package proxy

import (
	"fmt"
	"net"
	"os"
)

// allowAllPolicy is the built-in permissive cross-domain policy (spec.md
// §6), served to any connection that completes the policy-file probe
// without an operator-supplied override.
const allowAllPolicy = `<?xml version="1.0"?>
<!DOCTYPE cross-domain-policy SYSTEM "/xml/dtds/cross-domain-policy.dtd">
<cross-domain-policy>
    <site-control permitted-cross-domain-policies="all"/>
    <allow-access-from domain="*" to-ports="*"/>
</cross-domain-policy>
`

// PolicyResponder answers Flash policy-file probes with a fixed payload.
type PolicyResponder struct {
	payload []byte
}

// NewAllowAllPolicyResponder returns the built-in permissive responder.
func NewAllowAllPolicyResponder() *PolicyResponder {
	return &PolicyResponder{payload: []byte(allowAllPolicy)}
}

// LoadPolicyResponder reads a policy-file payload from disk.
func LoadPolicyResponder(path string) (*PolicyResponder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("proxy: loading policy file %s: %w", path, err)
	}
	return &PolicyResponder{payload: data}, nil
}

// Respond writes the configured payload and shuts the connection down.
// Per spec.md §4.E step 3, the connection ends here regardless of outcome.
func (p *PolicyResponder) Respond(conn net.Conn) error {
	if _, err := conn.Write(p.payload); err != nil {
		return fmt.Errorf("proxy: writing policy response: %w", err)
	}
	if tc, ok := conn.(*net.TCPConn); ok {
		return tc.CloseWrite()
	}
	return conn.Close()
}
