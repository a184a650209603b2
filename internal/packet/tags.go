package packet

import (
	"fmt"

	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/packetid"
	"github.com/go-mclib/limbo/internal/registry"
	"github.com/go-mclib/limbo/internal/version"
)

// UpdateTags carries every registry's resolved tag-to-id-list mapping, so
// a client can evaluate tag-gated behavior (e.g. which blocks a
// minecart treats as rail) without a data pack of its own.
type UpdateTags struct {
	base
	Registries []registry.TaggedRegistry
}

func NewUpdateTags(registries []registry.TaggedRegistry) *UpdateTags {
	return &UpdateTags{base: base{name: "minecraft:update_tags", state: packetid.StateConfiguration, bound: packetid.S2C}, Registries: registries}
}

func (p *UpdateTags) Read(_ *netio.PacketBuffer, _ version.ProtocolVersion) error {
	return fmt.Errorf("update_tags: decode not supported, clientbound-only")
}

func (p *UpdateTags) Write(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	if err := pb.WriteVarInt(netio.VarInt(len(p.Registries))); err != nil {
		return err
	}
	for _, reg := range p.Registries {
		if err := reg.RegistryID.Encode(pb.Writer()); err != nil {
			return err
		}
		if err := pb.WriteVarInt(netio.VarInt(len(reg.Tags))); err != nil {
			return err
		}
		for _, tag := range reg.Tags {
			if err := tag.Name.Encode(pb.Writer()); err != nil {
				return err
			}
			if err := pb.WriteVarInt(netio.VarInt(len(tag.IDs))); err != nil {
				return err
			}
			for _, id := range tag.IDs {
				if err := pb.WriteVarInt(netio.VarInt(id)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
