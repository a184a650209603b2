package forwarding

import "fmt"

// bungeeGuardTokenProperty is the profile-property name the BungeeGuard
// plugin stuffs the shared secret into, riding along inside the same
// legacy hostname payload VerifyLegacy already parses.
const bungeeGuardTokenProperty = "bungeeguard-token"

// VerifyBungeeGuard runs VerifyLegacy and additionally requires a
// "bungeeguard-token" property matching the configured secret - this is
// what stops a player from bypassing the proxy and connecting directly
// with a hand-forged legacy payload, since they'd also need the token.
func VerifyBungeeGuard(hostname, expectedToken string) (*Identity, error) {
	id, err := VerifyLegacy(hostname)
	if err != nil {
		return nil, err
	}

	for i, p := range id.Properties {
		if p.Name != bungeeGuardTokenProperty {
			continue
		}
		if p.Value != expectedToken {
			return nil, fmt.Errorf("%w: bungee_guard: token mismatch", ErrRejected)
		}
		// Drop the token from the properties handed back; it's not a
		// real profile property and must never reach LoginSuccess.
		id.Properties = append(id.Properties[:i], id.Properties[i+1:]...)
		return id, nil
	}
	return nil, fmt.Errorf("%w: bungee_guard: no token property present", ErrRejected)
}
