package forwarding

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/sessionauth"
)

// legacyPropertiesEntry mirrors the JSON shape BungeeCord embeds in the
// handshake hostname payload - the same name/value/signature triple
// LoginSuccess carries on the wire.
type legacyPropertiesEntry struct {
	Name      string `json:"name"`
	Value     string `json:"value"`
	Signature string `json:"signature,omitempty"`
}

// VerifyLegacy parses BungeeCord's legacy forwarding payload out of the
// handshake hostname field: the proxy rewrites Intention.ServerAddress to
// "realHost\x00playerIP\x00uuid\x00propertiesJSON" before the connection
// ever reaches this server. Nothing here authenticates the payload: a
// client connecting directly can send the same shape by hand, which is
// what VerifyBungeeGuard's token check guards against.
func VerifyLegacy(hostname string) (*Identity, error) {
	parts := strings.SplitN(hostname, "\x00", 4)
	if len(parts) < 3 {
		return nil, fmt.Errorf("%w: legacy: hostname payload has %d parts, want at least 3", ErrRejected, len(parts))
	}

	id, err := netio.ParseUUID(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: legacy: bad uuid %q: %v", ErrRejected, parts[2], err)
	}

	var props []sessionauth.Property
	if len(parts) == 4 && parts[3] != "" {
		var entries []legacyPropertiesEntry
		if err := json.Unmarshal([]byte(parts[3]), &entries); err != nil {
			return nil, fmt.Errorf("%w: legacy: bad properties json: %v", ErrRejected, err)
		}
		for _, e := range entries {
			props = append(props, sessionauth.Property{Name: e.Name, Value: e.Value, Signature: e.Signature})
		}
	}

	return &Identity{UUID: id, Properties: props}, nil
}
