package packet

import (
	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/packetcodec"
	"github.com/go-mclib/limbo/internal/packetid"
	"github.com/go-mclib/limbo/internal/text"
	"github.com/go-mclib/limbo/internal/version"
)

// nbtTextComponents is the version range where Disconnect (and other
// clientbound text fields outside of chat) are encoded as NBT instead of
// JSON strings.
var nbtTextComponents = packetcodec.From(version.V1_20_3)

// Disconnect closes the connection in Configuration or Play with a reason,
// depending on which state it's constructed for.
type Disconnect struct {
	base
	Reason text.TextComponent
}

func NewDisconnect(state packetid.State, reason text.TextComponent) *Disconnect {
	return &Disconnect{base: base{name: "minecraft:disconnect", state: state, bound: packetid.S2C}, Reason: reason}
}

func (p *Disconnect) Read(pb *netio.PacketBuffer, v version.ProtocolVersion) error {
	tc, err := text.Decode(pb, nbtTextComponents.Present(v))
	p.Reason = tc
	return err
}

func (p *Disconnect) Write(pb *netio.PacketBuffer, v version.ProtocolVersion) error {
	return text.Encode(pb, p.Reason, nbtTextComponents.Present(v))
}

// SystemChat sends a server message that isn't tied to a chat session
// (>=1.19).
type SystemChat struct {
	base
	Message  text.TextComponent
	Overlay  bool
}

func NewSystemChat(message text.TextComponent, overlay bool) *SystemChat {
	return &SystemChat{base: base{name: "minecraft:system_chat", state: packetid.StatePlay, bound: packetid.S2C}, Message: message, Overlay: overlay}
}

func (p *SystemChat) Read(pb *netio.PacketBuffer, v version.ProtocolVersion) error {
	tc, err := text.Decode(pb, nbtTextComponents.Present(v))
	if err != nil {
		return err
	}
	overlay, err := pb.ReadBool()
	p.Message = tc
	p.Overlay = bool(overlay)
	return err
}

func (p *SystemChat) Write(pb *netio.PacketBuffer, v version.ProtocolVersion) error {
	if err := text.Encode(pb, p.Message, nbtTextComponents.Present(v)); err != nil {
		return err
	}
	return pb.WriteBool(netio.Boolean(p.Overlay))
}

// LegacyChatMessage is the pre-1.19 chat packet: a plain JSON text
// component plus a position byte (0=chat, 1=system, 2=action bar).
type LegacyChatMessage struct {
	base
	Message  text.TextComponent
	Position byte
}

func NewLegacyChatMessage(message text.TextComponent, position byte) *LegacyChatMessage {
	return &LegacyChatMessage{base: base{name: "minecraft:legacy_chat_message", state: packetid.StatePlay, bound: packetid.S2C}, Message: message, Position: position}
}

func (p *LegacyChatMessage) Read(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	tc, err := text.Decode(pb, false)
	if err != nil {
		return err
	}
	pos, err := pb.ReadUint8()
	p.Message = tc
	p.Position = byte(pos)
	return err
}

func (p *LegacyChatMessage) Write(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	if err := text.Encode(pb, p.Message, false); err != nil {
		return err
	}
	return pb.WriteUint8(netio.Uint8(p.Position))
}

// Transfer (>=1.20.5) asks the client to reconnect to a different server.
type Transfer struct {
	base
	Host string
	Port int32
}

func NewTransfer(host string, port int32) *Transfer {
	return &Transfer{base: base{name: "minecraft:transfer", state: packetid.StatePlay, bound: packetid.S2C}, Host: host, Port: port}
}

func (p *Transfer) Read(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	host, err := pb.ReadString(0)
	if err != nil {
		return err
	}
	port, err := pb.ReadVarInt()
	p.Host = string(host)
	p.Port = int32(port)
	return err
}

func (p *Transfer) Write(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	if err := pb.WriteString(netio.String(p.Host)); err != nil {
		return err
	}
	return pb.WriteVarInt(netio.VarInt(p.Port))
}
