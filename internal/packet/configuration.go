package packet

import (
	"fmt"

	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/packetid"
	"github.com/go-mclib/limbo/internal/version"
)

// CustomPayload carries an arbitrary channel + byte payload, used during
// Configuration to announce the server brand (channel "minecraft:brand").
type CustomPayload struct {
	base
	Channel string
	Data    []byte
}

func NewCustomPayload(state packetid.State, bound packetid.Bound, channel string, data []byte) *CustomPayload {
	return &CustomPayload{
		base:    base{name: "minecraft:custom_payload", state: state, bound: bound},
		Channel: channel,
		Data:    data,
	}
}

func (p *CustomPayload) Read(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	channel, err := pb.ReadString(0)
	if err != nil {
		return fmt.Errorf("custom_payload: channel: %w", err)
	}
	// The remaining bytes are the payload, with no length prefix; draining
	// to EOF is the only correct read here since custom payloads are
	// channel-defined and this type doesn't interpret them.
	var data []byte
	buf := make([]byte, 4096)
	for {
		n, err := pb.Read(buf)
		data = append(data, buf[:n]...)
		if err != nil {
			break
		}
	}
	p.Channel = string(channel)
	p.Data = data
	return nil
}

func (p *CustomPayload) Write(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	if err := pb.WriteString(netio.String(p.Channel)); err != nil {
		return err
	}
	_, err := pb.Write(p.Data)
	return err
}

// KnownPack identifies one resource/data pack entry in SelectKnownPacks.
type KnownPack struct {
	Namespace string
	ID        string
	Version   string
}

// ClientBoundKnownPacks (>=1.20.5) tells the client which vanilla data
// packs the server already has, so it can skip re-sending their registries.
type ClientBoundKnownPacks struct {
	base
	Packs []KnownPack
}

func NewClientBoundKnownPacks(packs []KnownPack) *ClientBoundKnownPacks {
	return &ClientBoundKnownPacks{
		base:  base{name: "minecraft:select_known_packs", state: packetid.StateConfiguration, bound: packetid.S2C},
		Packs: packs,
	}
}

func (p *ClientBoundKnownPacks) Read(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	n, err := pb.ReadVarInt()
	if err != nil {
		return fmt.Errorf("select_known_packs: count: %w", err)
	}
	packs := make([]KnownPack, n)
	for i := range packs {
		ns, err := pb.ReadString(0)
		if err != nil {
			return err
		}
		id, err := pb.ReadString(0)
		if err != nil {
			return err
		}
		ver, err := pb.ReadString(0)
		if err != nil {
			return err
		}
		packs[i] = KnownPack{Namespace: string(ns), ID: string(id), Version: string(ver)}
	}
	p.Packs = packs
	return nil
}

func (p *ClientBoundKnownPacks) Write(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	if err := pb.WriteVarInt(netio.VarInt(len(p.Packs))); err != nil {
		return err
	}
	for _, pack := range p.Packs {
		if err := pb.WriteString(netio.String(pack.Namespace)); err != nil {
			return err
		}
		if err := pb.WriteString(netio.String(pack.ID)); err != nil {
			return err
		}
		if err := pb.WriteString(netio.String(pack.Version)); err != nil {
			return err
		}
	}
	return nil
}

// RegistryData carries one registry's entries (>=1.20.5) or the whole
// dimension codec compound (1.20.2-1.20.4), as raw pre-encoded NBT bytes -
// the registry pipeline (internal/registry) is responsible for producing
// those bytes; this packet just frames them.
type RegistryData struct {
	base
	NBT []byte
}

func NewRegistryData(nbt []byte) *RegistryData {
	return &RegistryData{base: base{name: "minecraft:registry_data", state: packetid.StateConfiguration, bound: packetid.S2C}, NBT: nbt}
}

func (p *RegistryData) Read(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	var data []byte
	buf := make([]byte, 4096)
	for {
		n, err := pb.Read(buf)
		data = append(data, buf[:n]...)
		if err != nil {
			break
		}
	}
	p.NBT = data
	return nil
}

func (p *RegistryData) Write(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	_, err := pb.Write(p.NBT)
	return err
}

// FinishConfiguration (bidirectional, different names on the wire map to
// the same meaning) signals the server is done sending configuration
// data, and, on the serverbound side, that the client is ready for Play.
type FinishConfiguration struct{ base }

func NewFinishConfiguration(bound packetid.Bound) *FinishConfiguration {
	return &FinishConfiguration{base{name: "minecraft:finish_configuration", state: packetid.StateConfiguration, bound: bound}}
}

func (p *FinishConfiguration) Read(_ *netio.PacketBuffer, _ version.ProtocolVersion) error  { return nil }
func (p *FinishConfiguration) Write(_ *netio.PacketBuffer, _ version.ProtocolVersion) error { return nil }
