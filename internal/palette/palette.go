// Package palette builds the paletted-container encoding every chunk
// section's blocks and biomes are shipped in: whole-section runs collapse
// to a single id, small distinct-value sets index through a local palette,
// and everything else falls back to a direct per-cell id array. All three
// shapes pack their entries into 64-bit words without letting a cell span
// a word boundary.
package palette

import "github.com/go-mclib/limbo/internal/netio"

// Kind selects which of the three container shapes a section uses.
type Kind int

const (
	Single Kind = iota
	Paletted
	Direct
)

// Container is one section's worth of paletted data: either a single id
// for the whole volume, a local palette plus packed indices into it, or a
// packed array of raw ids. Ids stored here are whatever id space the
// caller built it from (internal ids for Container built by Build; report
// ids once Remap has run) — the container itself is id-space agnostic.
type Container struct {
	Kind         Kind
	SingleID     uint16
	BitsPerEntry uint8
	Palette      []uint16 // Paletted only
	Packed       []uint64 // Paletted (indices) or Direct (ids)
	count        int      // number of cells (4096 for blocks, 64 for biomes)
}

// Get returns the id at cell index, or false if index is out of range.
func (c *Container) Get(index int) (uint16, bool) {
	if index < 0 || index >= c.count {
		return 0, false
	}
	switch c.Kind {
	case Single:
		return c.SingleID, true
	case Direct:
		v, ok := unpackAt(c.Packed, c.BitsPerEntry, index)
		return uint16(v), ok
	case Paletted:
		idx, ok := unpackAt(c.Packed, c.BitsPerEntry, index)
		if !ok || int(idx) >= len(c.Palette) {
			return 0, false
		}
		return c.Palette[idx], true
	default:
		return 0, false
	}
}

// Build chooses a container shape for ids (in section-local cell order)
// per the standard selection rule: all cells equal collapses to Single;
// otherwise a local palette is built and used if it fits within
// maxPalettedBits (clamped to at least minBits), else the section falls
// back to Direct at directBits (the global bits-per-entry for the whole
// id space, e.g. from a ReportMapping).
func Build(ids []uint16, minBits, maxPalettedBits, directBits uint8) *Container {
	count := len(ids)

	allEqual := true
	for _, id := range ids[1:] {
		if id != ids[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return &Container{Kind: Single, SingleID: ids[0], count: count}
	}

	localPalette := make([]uint16, 0, 256)
	indexOf := make(map[uint16]uint32, 256)
	for _, id := range ids {
		if _, seen := indexOf[id]; !seen {
			indexOf[id] = uint32(len(localPalette))
			localPalette = append(localPalette, id)
		}
	}

	bits := bitsNeeded(uint32(len(localPalette)))
	if bits <= maxPalettedBits {
		if bits < minBits {
			bits = minBits
		}
		indices := make([]uint32, count)
		for i, id := range ids {
			indices[i] = indexOf[id]
		}
		return &Container{
			Kind:         Paletted,
			BitsPerEntry: bits,
			Palette:      localPalette,
			Packed:       pack(indices, bits),
			count:        count,
		}
	}

	raw := make([]uint32, count)
	for i, id := range ids {
		raw[i] = uint32(id)
	}
	return &Container{
		Kind:         Direct,
		BitsPerEntry: directBits,
		Packed:       pack(raw, directBits),
		count:        count,
	}
}

// BuildBlockSection builds a container for a 16x16x16 block section
// (4096 cells): paletted bit widths are clamped to [4,8], matching
// vanilla's block-states container.
func BuildBlockSection(ids [4096]uint16, directBits uint8) *Container {
	return Build(ids[:], 4, 8, directBits)
}

// BuildBiomeSection builds a container for a 4x4x4 biome section
// (64 cells): no minimum bit width, since a single-biome region is common
// and vanilla doesn't floor the biome palette's bit width at 4 the way it
// does for blocks.
func BuildBiomeSection(ids [64]uint16, directBits uint8) *Container {
	return Build(ids[:], 0, 8, directBits)
}

// Remap rewrites every id the container holds (single value, palette
// entries, or direct cells) through f, in place. Used to translate a
// container built from internal ids into a specific version's report ids
// immediately before the container is packed for the wire — except
// Direct containers are already packed by the time a caller knows the
// version's ids, so Remap re-derives and re-packs them.
func (c *Container) Remap(f func(uint16) uint16) {
	switch c.Kind {
	case Single:
		c.SingleID = f(c.SingleID)
	case Paletted:
		for i, id := range c.Palette {
			c.Palette[i] = f(id)
		}
	case Direct:
		ids := make([]uint32, c.count)
		for i := 0; i < c.count; i++ {
			v, _ := unpackAt(c.Packed, c.BitsPerEntry, i)
			ids[i] = uint32(f(uint16(v)))
		}
		c.Packed = pack(ids, c.BitsPerEntry)
	}
}

// Encode writes the container in vanilla's paletted-container wire shape:
// a bits-per-entry byte, a palette section whose shape depends on the
// container's kind (absent for Direct, a single VarInt for Single, a
// VarInt-prefixed array for Paletted), and the packed longs array.
func (c *Container) Encode(pb *netio.PacketBuffer) error {
	switch c.Kind {
	case Single:
		if err := pb.WriteUint8(0); err != nil {
			return err
		}
		if err := pb.WriteVarInt(netio.VarInt(c.SingleID)); err != nil {
			return err
		}
		return pb.WriteVarInt(0)
	case Paletted:
		if err := pb.WriteUint8(netio.Uint8(c.BitsPerEntry)); err != nil {
			return err
		}
		if err := pb.WriteVarInt(netio.VarInt(len(c.Palette))); err != nil {
			return err
		}
		for _, id := range c.Palette {
			if err := pb.WriteVarInt(netio.VarInt(id)); err != nil {
				return err
			}
		}
		return c.encodeData(pb)
	default: // Direct
		if err := pb.WriteUint8(netio.Uint8(c.BitsPerEntry)); err != nil {
			return err
		}
		return c.encodeData(pb)
	}
}

func (c *Container) encodeData(pb *netio.PacketBuffer) error {
	if err := pb.WriteVarInt(netio.VarInt(len(c.Packed))); err != nil {
		return err
	}
	for _, word := range c.Packed {
		if err := pb.WriteInt64(netio.Int64(word)); err != nil {
			return err
		}
	}
	return nil
}

// bitsNeeded is the minimum bit width representing n distinct palette
// entries: ceil(log2(n)), with n<=1 treated as needing 1 bit.
func bitsNeeded(n uint32) uint8 {
	if n <= 1 {
		return 1
	}
	bits := uint8(0)
	for (uint32(1) << bits) < n {
		bits++
	}
	return bits
}
