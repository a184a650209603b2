package packet

import (
	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/packetid"
	"github.com/go-mclib/limbo/internal/version"
)

// ChatCommand is a serverbound slash-command, sent unsigned (this server
// never enforces chat signing, see DESIGN.md).
type ChatCommand struct {
	base
	Command string
}

func NewChatCommand() *ChatCommand {
	return &ChatCommand{base: base{name: "minecraft:chat_command", state: packetid.StatePlay, bound: packetid.C2S}}
}

func (p *ChatCommand) Read(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	cmd, err := pb.ReadString(256)
	p.Command = string(cmd)
	return err
}

func (p *ChatCommand) Write(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	return pb.WriteString(netio.String(p.Command))
}

// ChatMessage is a serverbound plain chat message.
type ChatMessage struct {
	base
	Message string
}

func NewChatMessage() *ChatMessage {
	return &ChatMessage{base: base{name: "minecraft:chat", state: packetid.StatePlay, bound: packetid.C2S}}
}

func (p *ChatMessage) Read(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	msg, err := pb.ReadString(256)
	p.Message = string(msg)
	return err
}

func (p *ChatMessage) Write(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	return pb.WriteString(netio.String(p.Message))
}

// ClientInformation is the serverbound settings packet sent during
// Configuration (and again in Play on older versions): locale, view
// distance, and the other client-side display preferences the server
// only needs to pass through, never enforce.
type ClientInformation struct {
	base
	Locale    string
	ViewDistance byte
}

func NewClientInformation() *ClientInformation {
	return &ClientInformation{base: base{name: "minecraft:client_information", state: packetid.StateConfiguration, bound: packetid.C2S}}
}

func (p *ClientInformation) Read(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	locale, err := pb.ReadString(16)
	if err != nil {
		return err
	}
	viewDistance, err := pb.ReadUint8()
	if err != nil {
		return err
	}
	// Remaining fields (chat mode, chat colors, skin parts, main hand,
	// text filtering, allow listing, particle status on newer versions)
	// aren't consulted by this server, so they're drained rather than
	// modeled - this type exists only to keep the stream aligned.
	var drain []byte
	buf := make([]byte, 64)
	for {
		n, err := pb.Read(buf)
		drain = append(drain, buf[:n]...)
		if err != nil {
			break
		}
	}
	p.Locale = string(locale)
	p.ViewDistance = byte(viewDistance)
	return nil
}

func (p *ClientInformation) Write(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	if err := pb.WriteString(netio.String(p.Locale)); err != nil {
		return err
	}
	return pb.WriteUint8(netio.Uint8(p.ViewDistance))
}
