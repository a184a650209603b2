package handlers

import (
	"fmt"

	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/packet"
	"github.com/go-mclib/limbo/internal/packetid"
	"github.com/go-mclib/limbo/internal/registry"
	"github.com/go-mclib/limbo/internal/version"
)

const brandName = "PicoLimbo"

// runConfiguration implements spec §4.6's Configuration sequence: brand,
// known packs, tagged registries, registry data (whole-codec or
// per-registry depending on version), FinishConfiguration - then waits
// for the client's acknowledgement before switching to Play.
func (s *Session) runConfiguration() {
	v := s.Stream.Version

	if err := s.Stream.WritePacket(packet.NewCustomPayload(packetid.StateConfiguration, packetid.S2C, "minecraft:brand", brandPayload())); err != nil {
		s.log.WithError(err).Debug("configuration: write brand failed")
		return
	}

	if v.SupportsKnownPacks() {
		packs := []packet.KnownPack{{Namespace: "minecraft", ID: "core", Version: v.Name()}}
		if err := s.Stream.WritePacket(packet.NewClientBoundKnownPacks(packs)); err != nil {
			s.log.WithError(err).Debug("configuration: write known_packs failed")
			return
		}
	}

	if v.SupportsTaggedRegistries() {
		tagged, err := registry.TaggedRegistries(s.Deps.Registries)
		if err != nil {
			s.log.WithError(err).Warn("configuration: resolve tagged registries failed")
		} else if err := s.Stream.WritePacket(packet.NewUpdateTags(tagged)); err != nil {
			s.log.WithError(err).Debug("configuration: write update_tags failed")
			return
		}
	}

	if err := s.sendRegistryData(v); err != nil {
		s.log.WithError(err).Warn("configuration: send registry data failed")
		s.kick("Failed to prepare registry data")
		return
	}

	if err := s.Stream.WritePacket(packet.NewFinishConfiguration(packetid.S2C)); err != nil {
		s.log.WithError(err).Debug("configuration: write finish_configuration failed")
		return
	}

	for {
		name, _, err := s.Stream.ReadPacket(s.factory)
		if err != nil {
			s.log.WithError(err).Trace("configuration: waiting for finish_configuration ack failed")
			return
		}
		if name == "minecraft:finish_configuration" {
			break
		}
		s.log.WithField("name", name).Trace("ignoring packet during configuration")
	}

	s.Stream.State = packetid.StatePlay
	s.runPlay()
}

// sendRegistryData ships the dimension/biome/variant registry tables in
// whichever wire shape v uses: a single whole-codec RegistryData below
// 1.20.5, or one RegistryData packet per registry from 1.20.5 onward.
func (s *Session) sendRegistryData(v version.ProtocolVersion) error {
	if !v.SupportsKnownPacks() {
		blob, err := registry.RegistryCodecV1_16_2(s.Deps.Registries, v)
		if err != nil {
			return fmt.Errorf("whole codec: %w", err)
		}
		return s.Stream.WritePacket(packet.NewRegistryData(blob))
	}

	sets, err := registry.RegistryData(s.Deps.Registries, v)
	if err != nil {
		return fmt.Errorf("per-registry data: %w", err)
	}
	for _, set := range sets {
		payload, err := buildRegistryDataPayload(set)
		if err != nil {
			return fmt.Errorf("frame %s: %w", set.RegistryID, err)
		}
		if err := s.Stream.WritePacket(packet.NewRegistryData(payload)); err != nil {
			return fmt.Errorf("write %s: %w", set.RegistryID, err)
		}
	}
	return nil
}

// buildRegistryDataPayload frames one registry's entries into the
// RegistryData packet body: identifier, entry count, then per entry the
// name, a has-data flag (always true here - a holding server never omits
// an entry's data the way a client-side override might), and the
// already-NBT-encoded bytes registry.RegistryData produced.
func buildRegistryDataPayload(set registry.RegistryDataSet) ([]byte, error) {
	pb := netio.NewWriter()
	if err := set.RegistryID.Encode(pb.Writer()); err != nil {
		return nil, err
	}
	if err := pb.WriteVarInt(netio.VarInt(len(set.Entries))); err != nil {
		return nil, err
	}
	for _, entry := range set.Entries {
		if err := entry.Name.Encode(pb.Writer()); err != nil {
			return nil, err
		}
		if err := pb.WriteBool(netio.Boolean(true)); err != nil {
			return nil, err
		}
		if _, err := pb.Write(entry.NBTBytes); err != nil {
			return nil, err
		}
	}
	return pb.Bytes(), nil
}

// brandPayload encodes the server-brand plugin message payload: a single
// wire string, matching vanilla's "minecraft:brand" channel shape.
func brandPayload() []byte {
	pb := netio.NewWriter()
	_ = pb.WriteString(netio.String(brandName))
	return pb.Bytes()
}
