// Package forwarding implements the verifiers behind ServerState's
// ForwardingMode: the legacy BungeeCord hostname payload, BungeeGuard's
// token-gated variant of it, and Velocity-style modern forwarding over a
// signed Login-state plugin message round trip. Handlers never branch on
// the scheme directly - they call Verify with whatever ForwardingMode the
// server is configured with, and get back an Identity or a rejection.
package forwarding

import (
	"errors"

	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/sessionauth"
)

// ErrRejected means the verifier ran and the client failed it - a forged
// or missing forwarding payload, a bad BungeeGuard token, or a modern
// forwarding signature that doesn't check out. The caller turns this into
// a LoginDisconnect and ends the connection (spec's ForwardingError kind).
var ErrRejected = errors.New("forwarding: client rejected by verifier")

// Identity is what a successful verification contributes to the
// connection: the player identity and profile properties the proxy
// already resolved, standing in for a direct offline-UUID derivation or a
// profile_fetch call.
type Identity struct {
	UUID       netio.UUID
	Username   string
	Properties []sessionauth.Property
}
