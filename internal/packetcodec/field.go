package packetcodec

import "github.com/go-mclib/limbo/internal/version"

// FieldRange marks a packet field as present only for protocol versions in
// [Lo, Hi). Both bounds accept version.Any as an open end; a zero-value
// FieldRange (Lo=Hi=0) means "every version" only if callers use
// version.Any explicitly - use Always for that case instead, since the
// zero value of ProtocolVersion is a real version number (Handshake,
// protocol 0 predates real versioning but isn't a valid sentinel here).
type FieldRange struct {
	Lo version.ProtocolVersion
	Hi version.ProtocolVersion
}

// Always is the field range matching every protocol version.
var Always = FieldRange{Lo: version.Any, Hi: version.Any}

// Present reports whether a field with range f is on the wire for v. This
// is the single predicate every version-conditional field check in this
// module goes through.
func (f FieldRange) Present(v version.ProtocolVersion) bool {
	return v.InRange(f.Lo, f.Hi)
}

// Before returns a FieldRange present for every version strictly before hi.
func Before(hi version.ProtocolVersion) FieldRange {
	return FieldRange{Lo: version.Any, Hi: hi}
}

// From returns a FieldRange present for every version at or after lo.
func From(lo version.ProtocolVersion) FieldRange {
	return FieldRange{Lo: lo, Hi: version.Any}
}

// Between returns a FieldRange present for [lo, hi).
func Between(lo, hi version.ProtocolVersion) FieldRange {
	return FieldRange{Lo: lo, Hi: hi}
}
