package packet

import (
	"fmt"
	"io"

	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/packetid"
	"github.com/go-mclib/limbo/internal/version"
)

// CustomQuery is the clientbound half of a Login-state plugin-message
// round trip, used by modern (Velocity-style) proxy forwarding to ask the
// client for its signed forwarding data before LoginSuccess.
type CustomQuery struct {
	base
	MessageID int32
	Channel   string
	Data      []byte
}

func NewCustomQuery(messageID int32, channel string, data []byte) *CustomQuery {
	return &CustomQuery{
		base:      base{name: "minecraft:custom_query", state: packetid.StateLogin, bound: packetid.S2C},
		MessageID: messageID,
		Channel:   channel,
		Data:      data,
	}
}

func (p *CustomQuery) Read(_ *netio.PacketBuffer, _ version.ProtocolVersion) error {
	return fmt.Errorf("custom_query: decode not supported, clientbound-only")
}

func (p *CustomQuery) Write(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	if err := pb.WriteVarInt(netio.VarInt(p.MessageID)); err != nil {
		return err
	}
	if err := pb.WriteString(netio.String(p.Channel)); err != nil {
		return err
	}
	_, err := pb.Write(p.Data)
	return err
}

// CustomQueryAnswer is the serverbound reply to a CustomQuery: the same
// message id, and either the channel's response payload or nothing (the
// client didn't understand the channel).
type CustomQueryAnswer struct {
	base
	MessageID int32
	HasData   bool
	Data      []byte
}

func NewCustomQueryAnswer() *CustomQueryAnswer {
	return &CustomQueryAnswer{base: base{name: "minecraft:custom_query_answer", state: packetid.StateLogin, bound: packetid.C2S}}
}

func (p *CustomQueryAnswer) Read(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	id, err := pb.ReadVarInt()
	if err != nil {
		return fmt.Errorf("custom_query_answer: message id: %w", err)
	}
	hasData, err := pb.ReadBool()
	if err != nil {
		return fmt.Errorf("custom_query_answer: has-data: %w", err)
	}
	p.MessageID = int32(id)
	p.HasData = bool(hasData)
	if p.HasData {
		data, err := io.ReadAll(pb)
		if err != nil {
			return fmt.Errorf("custom_query_answer: data: %w", err)
		}
		p.Data = data
	}
	return nil
}

// Write encodes a CustomQueryAnswer - this server never sends one (it's
// serverbound), but tests standing in for a client need to construct the
// wire bytes, so the encoder is real rather than a stub.
func (p *CustomQueryAnswer) Write(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	if err := pb.WriteVarInt(netio.VarInt(p.MessageID)); err != nil {
		return err
	}
	if err := pb.WriteBool(netio.Boolean(p.HasData)); err != nil {
		return err
	}
	if p.HasData {
		_, err := pb.Write(p.Data)
		return err
	}
	return nil
}
