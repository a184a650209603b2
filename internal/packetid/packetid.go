// Package packetid implements the packet registry (spec component J): the
// per-version, per-state, per-direction numeric id a packet name resolves
// to on the wire. Packet identity itself - "this is a LoginStart packet" -
// is a stable (state, bound, name) triple; only the numeric id churns
// across versions, matching vanilla's data generator's reports/packets.json
// shape.
package packetid

// State is the connection phase a packet belongs to. Not sent over the
// wire; server and client transition between states implicitly as
// specific packets (Intention, LoginAcknowledged, ...) are processed.
type State uint8

const (
	StateHandshake State = iota
	StateStatus
	StateLogin
	StateConfiguration
	StatePlay
)

func (s State) String() string {
	switch s {
	case StateHandshake:
		return "handshake"
	case StateStatus:
		return "status"
	case StateLogin:
		return "login"
	case StateConfiguration:
		return "configuration"
	case StatePlay:
		return "play"
	default:
		return "unknown"
	}
}

// Bound is the direction a packet travels.
type Bound uint8

const (
	// C2S is serverbound: client -> server.
	C2S Bound = iota
	// S2C is clientbound: server -> client.
	S2C
)

func (b Bound) String() string {
	if b == S2C {
		return "clientbound"
	}
	return "serverbound"
}

// Name is a packet's vanilla identifier, e.g. "minecraft:intention". Two
// packets with the same name in different states are different packets;
// the triple (State, Bound, Name) is what a Registry keys registrations
// by, matching a reports/packets.json row.
type Name string
