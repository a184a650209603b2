package packet

import (
	"fmt"

	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/packetid"
	"github.com/go-mclib/limbo/internal/version"
)

// skinLayersMetadataIndex is the entity-metadata index vanilla clients
// read as a player's "displayed skin parts" bitmask; skinLayersMetadataType
// is that field's entity-data type id (Byte, type 0 in every version this
// server targets).
const (
	skinLayersMetadataIndex = 17
	skinLayersMetadataType  = 0
	metadataTerminator      = 0xFF
)

// SetEntityMetadata carries one or more indexed metadata entries for an
// entity. A holding server only ever needs to zero out its own client's
// skin-layer bitmask at join time, so this type only implements that
// single Byte-valued entry rather than the general metadata-entry union.
type SetEntityMetadata struct {
	base
	EntityID   int32
	SkinLayers byte
}

// NewSetEntityMetadataSkinLayers builds the join-batch packet that hides
// entityID's skin layers (cape, jacket, sleeves, ...) by writing a single
// metadata entry at the well-known "displayed skin parts" index.
func NewSetEntityMetadataSkinLayers(entityID int32, skinLayers byte) *SetEntityMetadata {
	return &SetEntityMetadata{
		base:       base{name: "minecraft:set_entity_data", state: packetid.StatePlay, bound: packetid.S2C},
		EntityID:   entityID,
		SkinLayers: skinLayers,
	}
}

func (p *SetEntityMetadata) Read(_ *netio.PacketBuffer, _ version.ProtocolVersion) error {
	return fmt.Errorf("set_entity_data: decode not supported, clientbound-only")
}

func (p *SetEntityMetadata) Write(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	if err := pb.WriteVarInt(netio.VarInt(p.EntityID)); err != nil {
		return err
	}
	if err := pb.WriteUint8(skinLayersMetadataIndex); err != nil {
		return err
	}
	if err := pb.WriteVarInt(skinLayersMetadataType); err != nil {
		return err
	}
	if err := pb.WriteUint8(netio.Uint8(p.SkinLayers)); err != nil {
		return err
	}
	return pb.WriteUint8(metadataTerminator)
}
