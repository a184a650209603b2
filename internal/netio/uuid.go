package netio

import (
	"encoding/binary"
	"io"

	"github.com/google/uuid"
)

// UUID is the 128-bit wire form: two big-endian 64-bit halves.
// Parsing of client-supplied UUID strings and random generation go through
// google/uuid (see DESIGN.md); offline UUIDs are derived in
// sessionauth.OfflineUUID. This type only knows how to get on and off the
// wire.
type UUID [16]byte

func (u UUID) Encode(w io.Writer) error {
	_, err := w.Write(u[:])
	return err
}

func DecodeUUID(r io.Reader) (UUID, error) {
	var u UUID
	_, err := io.ReadFull(r, u[:])
	return u, err
}

// FromGoogle converts a google/uuid.UUID into the wire representation.
func FromGoogle(id uuid.UUID) UUID {
	var u UUID
	copy(u[:], id[:])
	return u
}

// ParseUUID parses a dashed or undashed UUID string (as carried in
// legacy/BungeeGuard forwarding payloads and client-supplied UUIDs) into
// the wire representation.
func ParseUUID(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, err
	}
	return FromGoogle(id), nil
}

// ToGoogle converts the wire representation back to google/uuid.UUID.
func (u UUID) ToGoogle() uuid.UUID {
	var id uuid.UUID
	copy(id[:], u[:])
	return id
}

func (u UUID) String() string {
	return u.ToGoogle().String()
}

// MostSignificantBits returns the high 64 bits, as used by some legacy
// (pre-1.16) packet fields that carry the UUID as two Int64s.
func (u UUID) MostSignificantBits() int64 {
	return int64(binary.BigEndian.Uint64(u[0:8]))
}

// LeastSignificantBits returns the low 64 bits.
func (u UUID) LeastSignificantBits() int64 {
	return int64(binary.BigEndian.Uint64(u[8:16]))
}
