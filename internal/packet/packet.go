// Package packet defines the Packet interface and the concrete packet
// types making up the handshake/status/login/configuration/play join
// sequence. Each type knows how to read and write its own body against a
// netio.PacketBuffer; packetid resolves names to wire ids, packetcodec
// frames and compresses the stream the bytes travel in.
package packet

import (
	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/packetid"
	"github.com/go-mclib/limbo/internal/version"
)

// Packet is anything that can be read from and written to the wire, tagged
// with the connection state and direction it belongs to.
type Packet interface {
	// Name is the packet's stable vanilla identifier, used to look up its
	// numeric id for a given protocol version via packetid.Registry.
	Name() packetid.Name
	State() packetid.State
	Bound() packetid.Bound
	Read(pb *netio.PacketBuffer, v version.ProtocolVersion) error
	Write(pb *netio.PacketBuffer, v version.ProtocolVersion) error
}

// base embeds the fixed (name, state, bound) triple every concrete packet
// carries, so implementations only need to write Read/Write.
type base struct {
	name  packetid.Name
	state packetid.State
	bound packetid.Bound
}

func (b base) Name() packetid.Name       { return b.name }
func (b base) State() packetid.State     { return b.state }
func (b base) Bound() packetid.Bound     { return b.bound }
