package packet

import (
	"fmt"

	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/packetid"
	"github.com/go-mclib/limbo/internal/version"
)

// NextState is the handshake's chosen destination state.
type NextState int32

const (
	NextStateStatus   NextState = 1
	NextStateLogin    NextState = 2
	NextStateTransfer NextState = 3 // >=1.20.5
)

// Intention is the single serverbound Handshake packet: it picks the
// version, the address the client dialed, and where to go next.
type Intention struct {
	base
	ProtocolVersion int32
	ServerAddress   string
	ServerPort      uint16
	NextState       NextState
}

// NewIntention returns an empty Intention packet ready for Read.
func NewIntention() *Intention {
	return &Intention{base: base{name: "minecraft:intention", state: packetid.StateHandshake, bound: packetid.C2S}}
}

func (p *Intention) Read(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	protocolVersion, err := pb.ReadVarInt()
	if err != nil {
		return fmt.Errorf("intention: protocol version: %w", err)
	}
	address, err := pb.ReadString(255)
	if err != nil {
		return fmt.Errorf("intention: server address: %w", err)
	}
	port, err := pb.ReadUint16()
	if err != nil {
		return fmt.Errorf("intention: server port: %w", err)
	}
	next, err := pb.ReadVarInt()
	if err != nil {
		return fmt.Errorf("intention: next state: %w", err)
	}

	p.ProtocolVersion = int32(protocolVersion)
	p.ServerAddress = string(address)
	p.ServerPort = uint16(port)
	p.NextState = NextState(next)
	return nil
}

func (p *Intention) Write(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	if err := pb.WriteVarInt(netio.VarInt(p.ProtocolVersion)); err != nil {
		return err
	}
	if err := pb.WriteString(netio.String(p.ServerAddress)); err != nil {
		return err
	}
	if err := pb.WriteUint16(netio.Uint16(p.ServerPort)); err != nil {
		return err
	}
	return pb.WriteVarInt(netio.VarInt(p.NextState))
}
