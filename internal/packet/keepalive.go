package packet

import (
	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/packetid"
	"github.com/go-mclib/limbo/internal/version"
)

// KeepAlive carries a nonce the server expects echoed back within the
// connection's keep-alive window; the same shape serves Configuration and
// Play, and both directions.
type KeepAlive struct {
	base
	ID int64
}

func NewKeepAlive(state packetid.State, bound packetid.Bound, id int64) *KeepAlive {
	return &KeepAlive{base: base{name: "minecraft:keep_alive", state: state, bound: bound}, ID: id}
}

func (p *KeepAlive) Read(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	v, err := pb.ReadInt64()
	p.ID = int64(v)
	return err
}

func (p *KeepAlive) Write(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	return pb.WriteInt64(netio.Int64(p.ID))
}
