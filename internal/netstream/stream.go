// Package netstream wires packetcodec's framing and packetid's id
// resolution into a per-connection read/write loop over a net.Conn: it is
// the layer that turns raw bytes into a packet.Packet and back, logging
// and swallowing the cases spec says are non-fatal (an unrecognized
// packet id, a frame dropped before the stream is ready).
package netstream

import (
	"fmt"
	"net"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/packetcodec"
	"github.com/go-mclib/limbo/internal/packetid"
	"github.com/go-mclib/limbo/internal/version"
)

// Factory builds an empty, Read-ready Packet for a given name; returning
// ok=false means the name is recognized by the registry but this server
// has no type for it (still non-fatal - the frame is dropped).
type Factory func(name packetid.Name) (Decodable, bool)

// Decodable is the read half of packet.Packet, kept narrow here so this
// package doesn't import internal/packet and create a cycle; the concrete
// factory lives in internal/clientstate, which imports both.
type Decodable interface {
	Read(pb *netio.PacketBuffer, v version.ProtocolVersion) error
}

// Encodable is the write half, same reasoning.
type Encodable interface {
	Name() packetid.Name
	Write(pb *netio.PacketBuffer, v version.ProtocolVersion) error
}

// Stream is one client connection's packet-level read/write surface: it
// owns the socket, the current protocol state/version, and the
// compression threshold negotiated during Login.
type Stream struct {
	conn                  net.Conn
	registry              *packetid.Registry
	log                   *logrus.Entry
	Version               version.ProtocolVersion
	State                 packetid.State
	compressionThreshold  int
}

// New wraps conn for packet-level reads and writes. log should already
// carry a conn_id field; State/Version fields are overwritten per read.
func New(conn net.Conn, registry *packetid.Registry, log *logrus.Entry) *Stream {
	return &Stream{
		conn:                 conn,
		registry:             registry,
		log:                  log,
		State:                packetid.StateHandshake,
		Version:              version.Any,
		compressionThreshold: -1,
	}
}

// EnableCompression switches compression on for every subsequent frame.
// Per spec, this happens exactly once, right after SetCompression is sent.
func (s *Stream) EnableCompression(threshold int) {
	s.compressionThreshold = threshold
}

// Close closes the underlying connection.
func (s *Stream) Close() error {
	return s.conn.Close()
}

// RemoteAddr returns the peer address, for logging.
func (s *Stream) RemoteAddr() net.Addr {
	return s.conn.RemoteAddr()
}

// SetReadDeadline arms or clears the underlying connection's read
// deadline, letting a Play-state loop alternate blocking ReadPacket calls
// with a keep-alive timer instead of running a second goroutine.
func (s *Stream) SetReadDeadline(t time.Time) error {
	return s.conn.SetReadDeadline(t)
}

// ErrPacketNotFound is returned by ReadPacket when the frame's numeric id
// doesn't resolve to any registered name for the current state/bound/
// version. Per spec §4.4 this is non-fatal: the caller should log at
// trace level and continue reading, not tear down the connection.
var ErrPacketNotFound = fmt.Errorf("netstream: packet id not found in registry")

// ReadPacket reads one frame and decodes it via factory. A frame whose id
// isn't in the registry, or whose name has no factory entry, returns
// ErrPacketNotFound - ReadPacket itself never treats that as connection
// fatal; it's the caller's job to keep looping.
func (s *Stream) ReadPacket(factory Factory) (packetid.Name, Decodable, error) {
	frame, err := packetcodec.ReadFrame(s.conn, s.compressionThreshold)
	if err != nil {
		return "", nil, fmt.Errorf("netstream: read frame: %w", err)
	}

	name, ok := s.registry.Decode(s.Version, s.State, packetid.C2S, frame.ID)
	if !ok {
		s.log.WithFields(logrus.Fields{"state": s.State, "id": frame.ID}).Trace("packet id not found in registry")
		return "", nil, ErrPacketNotFound
	}

	pkt, ok := factory(name)
	if !ok {
		s.log.WithFields(logrus.Fields{"state": s.State, "name": name}).Warn("dropped server-bound frame with no handler")
		return name, nil, ErrPacketNotFound
	}

	if err := pkt.Read(netio.NewReader(frame.Data), s.Version); err != nil {
		return name, nil, fmt.Errorf("netstream: decode %s: %w", name, err)
	}
	return name, pkt, nil
}

// WritePacket encodes p's body and writes it framed, using the registry to
// resolve p's numeric id for s.Version.
func (s *Stream) WritePacket(p Encodable) error {
	id, ok := s.registry.Encode(s.Version, s.State, packetid.S2C, p.Name())
	if !ok {
		return fmt.Errorf("netstream: no id for %s at protocol %d", p.Name(), s.Version)
	}

	pb := netio.NewWriter()
	if err := p.Write(pb, s.Version); err != nil {
		return fmt.Errorf("netstream: encode %s: %w", p.Name(), err)
	}
	return packetcodec.WriteFrame(s.conn, s.compressionThreshold, id, pb.Bytes())
}
