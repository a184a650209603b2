package forwarding

import (
	"fmt"

	"github.com/go-mclib/limbo/internal/netstream"
	"github.com/go-mclib/limbo/internal/serverstate"
)

// Verify runs whichever verifier mode selects, or returns (nil, nil) for
// ForwardingNone - the handler's signal to fall back to the client's own
// LoginStart uuid / the offline-UUID rule. hostname is the handshake's
// ServerAddress field (what legacy/bungee_guard parse); stream is used
// only by modern forwarding's plugin-message round trip.
func Verify(mode serverstate.ForwardingMode, hostname string, stream *netstream.Stream, secret string) (*Identity, error) {
	switch mode {
	case serverstate.ForwardingNone:
		return nil, nil
	case serverstate.ForwardingLegacy:
		return VerifyLegacy(hostname)
	case serverstate.ForwardingBungeeGuard:
		return VerifyBungeeGuard(hostname, secret)
	case serverstate.ForwardingModern:
		return VerifyModern(stream, secret)
	default:
		return nil, fmt.Errorf("forwarding: unknown mode %v", mode)
	}
}
