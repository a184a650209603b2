package packetid

import (
	"fmt"

	"github.com/go-mclib/limbo/internal/version"
)

// key identifies a single packet independent of protocol version.
type key struct {
	state State
	bound Bound
	name  Name
}

// idKey identifies a packet by its numeric wire id, scoped to the
// connection state and direction it was read in - ids are reused freely
// across states (0x00 means something different in Login than in Play).
type idKey struct {
	state State
	bound Bound
	id    int32
}

// Registration binds a packet name to a numeric id over a version range.
// Lo/Hi follow version.ProtocolVersion.InRange semantics: Hi is exclusive,
// and version.Any/version.Latest are valid bounds.
type Registration struct {
	State State
	Bound Bound
	Name  Name
	ID    int32
	Lo    version.ProtocolVersion
	Hi    version.ProtocolVersion
}

// Registry resolves packet ids to names and back, for a specific protocol
// version. Multiple Registrations may cover the same (state, bound, name)
// with disjoint version ranges, modeling ids that were renumbered across
// versions.
type Registry struct {
	regs []Registration
}

// NewBuilder returns an empty Registry under construction.
func NewBuilder() *Registry {
	return &Registry{}
}

// Register adds a Registration to the registry. It returns the Registry so
// calls can be chained.
func (r *Registry) Register(reg Registration) *Registry {
	r.regs = append(r.regs, reg)
	return r
}

// Decode resolves a numeric packet id to its name for a given state, bound
// direction and protocol version. A miss is non-fatal: callers are
// expected to drop the frame and log, not treat it as a connection error.
func (r *Registry) Decode(v version.ProtocolVersion, state State, bound Bound, id int32) (Name, bool) {
	for _, reg := range r.regs {
		if reg.State == state && reg.Bound == bound && reg.ID == id && v.InRange(reg.Lo, reg.Hi) {
			return reg.Name, true
		}
	}
	return "", false
}

// Encode resolves a packet name to its numeric id for a given state, bound
// direction and protocol version.
func (r *Registry) Encode(v version.ProtocolVersion, state State, bound Bound, name Name) (int32, bool) {
	for _, reg := range r.regs {
		if reg.State == state && reg.Bound == bound && reg.Name == name && v.InRange(reg.Lo, reg.Hi) {
			return reg.ID, true
		}
	}
	return 0, false
}

// MustEncode is like Encode but panics on a miss; use only for packets the
// caller controls emitting (outbound packets the server itself sends),
// never for attacker-controlled input.
func (r *Registry) MustEncode(v version.ProtocolVersion, state State, bound Bound, name Name) int32 {
	id, ok := r.Encode(v, state, bound, name)
	if !ok {
		panic(fmt.Sprintf("packetid: no id for %s/%s/%s at protocol %d", state, bound, name, v))
	}
	return id
}
