// Package schematic loads Sponge-format .schem files (versions 2 and 3)
// into a flat, position-indexable block and block-entity model built
// against the canonical cross-version block-state mapping.
package schematic

import (
	"bytes"
	"fmt"

	"github.com/go-mclib/limbo/internal/blockmapping"
	"github.com/go-mclib/limbo/internal/nbt"
	"github.com/go-mclib/limbo/internal/netio"
)

// Schematic is a loaded .schem file: its dimensions, a flat array of
// internal block-state ids indexed by position, and any block entities it
// carries.
type Schematic struct {
	Width, Height, Length int32
	// BlockData holds one internal block-state id per cell, indexed by
	// position_to_index (y*Length*Width + z*Width + x) - the schematic
	// format's own iteration order.
	BlockData     []uint16
	BlockEntities []BlockEntity
}

// airName names the block whose default state is the fallback internal id
// substituted for unparseable palette entries and out-of-bounds positions.
const airName = "minecraft:air"

// LoadFile loads and gzip/zlib-decompresses a .schem file's NBT, then
// resolves its Sponge v2 or v3 shape into a Schematic against mapping.
func LoadFile(data []byte, mapping *blockmapping.Mapping) (*Schematic, error) {
	root, _, err := nbt.DecodeCompressed(data)
	if err != nil {
		return nil, fmt.Errorf("schematic: decode nbt: %w", err)
	}
	compound, ok := root.(nbt.Compound)
	if !ok {
		return nil, fmt.Errorf("schematic: root tag is not a compound")
	}

	// v3 wraps everything in a top-level "Schematic" compound; v2 doesn't.
	body := compound
	if inner := compound.GetCompound("Schematic"); inner != nil {
		body = inner
	}

	width := int32(body.GetShort("Width"))
	height := int32(body.GetShort("Height"))
	length := int32(body.GetShort("Length"))
	if width == 0 && height == 0 && length == 0 {
		return nil, fmt.Errorf("schematic: missing or zero dimensions")
	}

	var paletteNBT nbt.Compound
	var rawData []byte
	var blockEntitiesList nbt.List

	if blocks := body.GetCompound("Blocks"); blocks != nil {
		paletteNBT = blocks.GetCompound("Palette")
		rawData = blocks.GetByteArray("Data")
		blockEntitiesList = blocks.GetList("BlockEntities")
	} else {
		paletteNBT = body.GetCompound("Palette")
		rawData = body.GetByteArray("BlockData")
		blockEntitiesList = body.GetList("BlockEntities")
		if blockEntitiesList.Len() == 0 {
			blockEntitiesList = body.GetList("TileEntities")
		}
	}
	if paletteNBT == nil {
		return nil, fmt.Errorf("schematic: missing block palette")
	}

	schematicPalette, err := buildSchematicPalette(paletteNBT, mapping)
	if err != nil {
		return nil, err
	}

	indices, err := decodeVarIntStream(rawData)
	if err != nil {
		return nil, fmt.Errorf("schematic: decode block data: %w", err)
	}

	airID, _ := mapping.DefaultStateFor(airName)
	blockData := make([]uint16, width*height*length)
	for i := range blockData {
		if i < len(indices) {
			idx := indices[i]
			if idx >= 0 && int(idx) < len(schematicPalette) {
				blockData[i] = schematicPalette[idx]
				continue
			}
		}
		blockData[i] = airID
	}

	s := &Schematic{
		Width:     width,
		Height:    height,
		Length:    length,
		BlockData: blockData,
	}
	s.BlockEntities = parseBlockEntities(blockEntitiesList)
	return s, nil
}

// buildSchematicPalette resolves a schematic's {name -> index} palette
// compound into an internal-id array indexed by schematic palette index,
// defaulting any entry that doesn't parse or doesn't resolve against
// mapping to air.
func buildSchematicPalette(paletteNBT nbt.Compound, mapping *blockmapping.Mapping) ([]uint16, error) {
	airID, ok := mapping.DefaultStateFor(airName)
	if !ok {
		return nil, fmt.Errorf("schematic: mapping has no %s state", airName)
	}

	maxIndex := int32(-1)
	for _, tag := range paletteNBT {
		if n, ok := tag.(nbt.Int); ok && int32(n) > maxIndex {
			maxIndex = int32(n)
		}
	}
	result := make([]uint16, maxIndex+1)
	for i := range result {
		result[i] = airID
	}

	for name, tag := range paletteNBT {
		n, ok := tag.(nbt.Int)
		if !ok || int32(n) < 0 || int32(n) > maxIndex {
			continue
		}
		blockName, props, err := ParseBlockStateString(name)
		if err != nil {
			result[n] = airID
			continue
		}
		id, ok := mapping.StateID(blockName, props)
		if !ok {
			result[n] = airID
			continue
		}
		result[n] = id
	}
	return result, nil
}

// decodeVarIntStream decodes a raw byte slice as a contiguous stream of
// standard protocol VarInts (no outer length prefix, no separators) -
// the Sponge format's own block-data encoding.
func decodeVarIntStream(data []byte) ([]int32, error) {
	r := bytes.NewReader(data)
	var out []int32
	for r.Len() > 0 {
		v, err := netio.DecodeVarInt(r)
		if err != nil {
			return nil, err
		}
		out = append(out, int32(v))
	}
	return out, nil
}

// PositionToIndex converts a schematic-local coordinate into an index
// into BlockData, using the schematic format's own y-outer iteration
// order.
func (s *Schematic) PositionToIndex(x, y, z int32) int {
	return int(y)*int(s.Length)*int(s.Width) + int(z)*int(s.Width) + int(x)
}

func (s *Schematic) isOutOfBounds(x, y, z int32) bool {
	return x < 0 || y < 0 || z < 0 || x >= s.Width || y >= s.Height || z >= s.Length
}

// BlockStateAt returns the internal block-state id at a schematic-local
// position, or mapping's air state if the position is out of bounds.
func (s *Schematic) BlockStateAt(x, y, z int32, mapping *blockmapping.Mapping) uint16 {
	if s.isOutOfBounds(x, y, z) {
		id, _ := mapping.DefaultStateFor(airName)
		return id
	}
	index := s.PositionToIndex(x, y, z)
	if index < 0 || index >= len(s.BlockData) {
		id, _ := mapping.DefaultStateFor(airName)
		return id
	}
	return s.BlockData[index]
}
