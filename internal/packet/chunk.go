package packet

import (
	"fmt"

	"github.com/go-mclib/limbo/internal/nbt"
	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/packetcodec"
	"github.com/go-mclib/limbo/internal/packetid"
	"github.com/go-mclib/limbo/internal/palette"
	"github.com/go-mclib/limbo/internal/version"
)

// newHeightmapShape is the version range where heightmaps travel as a
// length-prefixed list of {type, data} entries rather than a single NBT
// compound - vanilla's 1.21.5 chunk format change.
var newHeightmapShape = packetcodec.From(version.V1_21_5)

// motionBlockingHeightmap is the VarInt heightmap type vanilla assigns to
// MOTION_BLOCKING.
const motionBlockingHeightmap int32 = 1

// ChunkSection is one 16x16x16 slice of a LevelChunkWithLight's block
// column: its non-air count and the two paletted containers the wire
// format packs side by side.
type ChunkSection struct {
	BlockCount int16
	Blocks     *palette.Container
	Biomes     *palette.Container
}

func (s ChunkSection) encode(pb *netio.PacketBuffer) error {
	if err := pb.WriteInt16(netio.Int16(s.BlockCount)); err != nil {
		return err
	}
	if err := s.Blocks.Encode(pb); err != nil {
		return fmt.Errorf("chunk_section: blocks: %w", err)
	}
	return s.Biomes.Encode(pb)
}

// BlockEntity is one block entity's position (packed relative to its
// chunk), type, and NBT data, as carried by LevelChunkWithLight (>=1.18).
type BlockEntity struct {
	X, Y, Z int32
	TypeID  int32
	Data    nbt.Tag
}

func (e BlockEntity) encode(pb *netio.PacketBuffer) error {
	packedXZ := byte((e.X&15)<<4 | (e.Z & 15))
	if err := pb.WriteUint8(netio.Uint8(packedXZ)); err != nil {
		return err
	}
	if err := pb.WriteInt16(netio.Int16(e.Y)); err != nil {
		return err
	}
	if err := pb.WriteVarInt(netio.VarInt(e.TypeID)); err != nil {
		return err
	}
	data, err := nbt.EncodeNetwork(e.Data, nbt.WithNamelessRoot(true))
	if err != nil {
		return fmt.Errorf("block_entity: encode nbt: %w", err)
	}
	_, err = pb.Write(data)
	return err
}

// LightSections holds one full-bright lighting pass over a chunk column:
// sky light at full brightness top-to-bottom, no block light. A holding
// server has no dynamic lighting engine (see DESIGN.md), so every chunk it
// ever sends carries the same precomputed arrays regardless of contents.
type LightSections struct {
	SkyLightMask        netio.BitSet
	BlockLightMask      netio.BitSet
	EmptySkyLightMask   netio.BitSet
	EmptyBlockLightMask netio.BitSet
	SkyLightArrays      [][]byte // each 2048 bytes, one nibble per cell
	BlockLightArrays    [][]byte
}

// NewFullBrightLight builds the light arrays for a column of sectionCount
// block sections: vanilla always sends two extra light sections bracketing
// the real ones (the void below and above the world), so the mask covers
// sectionCount+2 bits and every array is full sky light / empty block
// light.
func NewFullBrightLight(sectionCount int) LightSections {
	total := sectionCount + 2
	mask := netio.NewBitSet(total)
	for i := 0; i < total; i++ {
		mask.Set(i)
	}

	fullSky := make([]byte, 2048)
	for i := range fullSky {
		fullSky[i] = 0xFF
	}
	noBlockLight := make([]byte, 2048)

	sky := make([][]byte, total)
	block := make([][]byte, total)
	for i := 0; i < total; i++ {
		sky[i] = fullSky
		block[i] = noBlockLight
	}

	return LightSections{
		SkyLightMask:       mask,
		BlockLightMask:      mask,
		EmptySkyLightMask:   netio.NewBitSet(0),
		EmptyBlockLightMask: netio.NewBitSet(0),
		SkyLightArrays:      sky,
		BlockLightArrays:    block,
	}
}

func (l LightSections) encode(pb *netio.PacketBuffer) error {
	if err := pb.WriteBitSet(l.SkyLightMask); err != nil {
		return err
	}
	if err := pb.WriteBitSet(l.BlockLightMask); err != nil {
		return err
	}
	if err := pb.WriteBitSet(l.EmptySkyLightMask); err != nil {
		return err
	}
	if err := pb.WriteBitSet(l.EmptyBlockLightMask); err != nil {
		return err
	}
	if err := pb.WriteVarInt(netio.VarInt(len(l.SkyLightArrays))); err != nil {
		return err
	}
	for _, arr := range l.SkyLightArrays {
		if err := pb.WriteVarInt(netio.VarInt(len(arr))); err != nil {
			return err
		}
		if _, err := pb.Write(arr); err != nil {
			return err
		}
	}
	if err := pb.WriteVarInt(netio.VarInt(len(l.BlockLightArrays))); err != nil {
		return err
	}
	for _, arr := range l.BlockLightArrays {
		if err := pb.WriteVarInt(netio.VarInt(len(arr))); err != nil {
			return err
		}
		if _, err := pb.Write(arr); err != nil {
			return err
		}
	}
	return nil
}

// LevelChunkWithLight is one chunk column: its full block/biome data and a
// matching lighting pass, sent once per chunk the client needs loaded.
type LevelChunkWithLight struct {
	base
	ChunkX, ChunkZ int32
	Sections       []ChunkSection
	BlockEntities  []BlockEntity
	Light          LightSections
}

func NewLevelChunkWithLight(chunkX, chunkZ int32, sections []ChunkSection, entities []BlockEntity, light LightSections) *LevelChunkWithLight {
	return &LevelChunkWithLight{
		base:          base{name: "minecraft:level_chunk_with_light", state: packetid.StatePlay, bound: packetid.S2C},
		ChunkX:        chunkX,
		ChunkZ:        chunkZ,
		Sections:      sections,
		BlockEntities: entities,
		Light:         light,
	}
}

func (p *LevelChunkWithLight) Read(_ *netio.PacketBuffer, _ version.ProtocolVersion) error {
	return fmt.Errorf("level_chunk_with_light: decode not supported, clientbound-only")
}

// emptyMotionBlockingNBT is the heightmap this server always sends: all
// zeroes, since chunks are either fully solid terrain slabs or void and no
// client-visible behavior in a holding world depends on an accurate
// surface heightmap.
func emptyMotionBlockingNBT() nbt.Tag {
	return nbt.Compound{
		"MOTION_BLOCKING": nbt.LongArray(make([]int64, 37)),
	}
}

func (p *LevelChunkWithLight) Write(pb *netio.PacketBuffer, v version.ProtocolVersion) error {
	if err := pb.WriteInt32(netio.Int32(p.ChunkX)); err != nil {
		return err
	}
	if err := pb.WriteInt32(netio.Int32(p.ChunkZ)); err != nil {
		return err
	}

	if newHeightmapShape.Present(v) {
		if err := pb.WriteVarInt(1); err != nil { // one heightmap entry
			return err
		}
		if err := pb.WriteVarInt(netio.VarInt(motionBlockingHeightmap)); err != nil {
			return err
		}
		longs := make([]int64, 37)
		if err := pb.WriteVarInt(netio.VarInt(len(longs))); err != nil {
			return err
		}
		for _, l := range longs {
			if err := pb.WriteInt64(netio.Int64(l)); err != nil {
				return err
			}
		}
	} else {
		data, err := nbt.EncodeNetwork(emptyMotionBlockingNBT(), nbt.WithNamelessRoot(true))
		if err != nil {
			return fmt.Errorf("level_chunk_with_light: heightmaps: %w", err)
		}
		if _, err := pb.Write(data); err != nil {
			return err
		}
	}

	sectionBytes := netio.NewWriter()
	for _, s := range p.Sections {
		if err := s.encode(sectionBytes); err != nil {
			return err
		}
	}
	if err := pb.WriteVarInt(netio.VarInt(len(sectionBytes.Bytes()))); err != nil {
		return err
	}
	if _, err := pb.Write(sectionBytes.Bytes()); err != nil {
		return err
	}

	if err := pb.WriteVarInt(netio.VarInt(len(p.BlockEntities))); err != nil {
		return err
	}
	for _, e := range p.BlockEntities {
		if err := e.encode(pb); err != nil {
			return err
		}
	}

	return p.Light.encode(pb)
}

// SetChunkCacheCenter (>=1.19) tells the client which chunk its view
// distance is now centered on.
type SetChunkCacheCenter struct {
	base
	ChunkX, ChunkZ int32
}

func NewSetChunkCacheCenter(chunkX, chunkZ int32) *SetChunkCacheCenter {
	return &SetChunkCacheCenter{base: base{name: "minecraft:set_chunk_cache_center", state: packetid.StatePlay, bound: packetid.S2C}, ChunkX: chunkX, ChunkZ: chunkZ}
}

func (p *SetChunkCacheCenter) Read(_ *netio.PacketBuffer, _ version.ProtocolVersion) error {
	return fmt.Errorf("set_chunk_cache_center: decode not supported, clientbound-only")
}

func (p *SetChunkCacheCenter) Write(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	if err := pb.WriteVarInt(netio.VarInt(p.ChunkX)); err != nil {
		return err
	}
	return pb.WriteVarInt(netio.VarInt(p.ChunkZ))
}
