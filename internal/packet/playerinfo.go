package packet

import (
	"fmt"

	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/packetid"
	"github.com/go-mclib/limbo/internal/version"
)

// PlayerInfoAction selects which bits of PlayerInfoUpdate's per-action
// bitmask are present, matching vanilla's action ordering.
type PlayerInfoAction uint8

const (
	ActionAddPlayer PlayerInfoAction = 1 << iota
	ActionInitializeChat
	ActionUpdateGameMode
	ActionUpdateListed
	ActionUpdateLatency
	ActionUpdateDisplayName
)

// PlayerInfoProperty is one signed profile property (almost always just
// "textures", carrying the base64 skin/cape payload) sent with the
// AddPlayer action.
type PlayerInfoProperty struct {
	Name      string
	Value     string
	Signature string
	HasSig    bool
}

// PlayerInfoEntry is one connected player's entry in a PlayerInfoUpdate
// packet: only the fields a holding server ever needs to announce about
// itself are modeled (one entry, itself, AddPlayer+Listed).
type PlayerInfoEntry struct {
	UUID       netio.UUID
	Name       string
	Properties []PlayerInfoProperty
	Listed     bool
	GameMode   int32
	Latency    int32
}

// PlayerInfoUpdate announces or updates tab-list entries. A holding
// server only ever needs to add its own client to the list it echoes
// back, so this type only implements the AddPlayer+UpdateListed actions
// the join sequence actually uses.
type PlayerInfoUpdate struct {
	base
	Actions PlayerInfoAction
	Entries []PlayerInfoEntry
}

func NewPlayerInfoUpdate(actions PlayerInfoAction, entries []PlayerInfoEntry) *PlayerInfoUpdate {
	return &PlayerInfoUpdate{base: base{name: "minecraft:player_info_update", state: packetid.StatePlay, bound: packetid.S2C}, Actions: actions, Entries: entries}
}

func (p *PlayerInfoUpdate) Read(_ *netio.PacketBuffer, _ version.ProtocolVersion) error {
	return fmt.Errorf("player_info_update: decode not supported, clientbound-only")
}

func (p *PlayerInfoUpdate) Write(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	if err := pb.WriteUint8(netio.Uint8(p.Actions)); err != nil {
		return err
	}
	if err := pb.WriteVarInt(netio.VarInt(len(p.Entries))); err != nil {
		return err
	}
	for _, e := range p.Entries {
		if err := pb.WriteUUID(e.UUID); err != nil {
			return err
		}
		if p.Actions&ActionAddPlayer != 0 {
			if err := pb.WriteString(netio.String(e.Name)); err != nil {
				return err
			}
			if err := pb.WriteVarInt(netio.VarInt(len(e.Properties))); err != nil {
				return err
			}
			for _, prop := range e.Properties {
				if err := pb.WriteString(netio.String(prop.Name)); err != nil {
					return err
				}
				if err := pb.WriteString(netio.String(prop.Value)); err != nil {
					return err
				}
				if err := pb.WriteBool(netio.Boolean(prop.HasSig)); err != nil {
					return err
				}
				if prop.HasSig {
					if err := pb.WriteString(netio.String(prop.Signature)); err != nil {
						return err
					}
				}
			}
		}
		if p.Actions&ActionInitializeChat != 0 {
			if err := pb.WriteBool(netio.Boolean(false)); err != nil { // no chat session
				return err
			}
		}
		if p.Actions&ActionUpdateGameMode != 0 {
			if err := pb.WriteVarInt(netio.VarInt(e.GameMode)); err != nil {
				return err
			}
		}
		if p.Actions&ActionUpdateListed != 0 {
			if err := pb.WriteBool(netio.Boolean(e.Listed)); err != nil {
				return err
			}
		}
		if p.Actions&ActionUpdateLatency != 0 {
			if err := pb.WriteVarInt(netio.VarInt(e.Latency)); err != nil {
				return err
			}
		}
		if p.Actions&ActionUpdateDisplayName != 0 {
			if err := pb.WriteBool(netio.Boolean(false)); err != nil { // no display name override
				return err
			}
		}
	}
	return nil
}
