package palette

import (
	"fmt"

	"github.com/go-mclib/limbo/internal/netio"
)

// Encode writes the container to w in vanilla's paletted-container wire
// shape: bits-per-entry byte, then either a single VarInt value (bits=0),
// or a VarInt-prefixed palette of VarInt ids followed by the packed data
// (VarInt length then that many big-endian longs).
func (c *Container) Encode(pb *netio.PacketBuffer) error {
	if err := pb.WriteUint8(netio.Uint8(c.BitsPerEntry)); err != nil {
		return fmt.Errorf("palette: write bits per entry: %w", err)
	}

	switch c.Kind {
	case Single:
		if err := pb.WriteVarInt(netio.VarInt(c.SingleID)); err != nil {
			return fmt.Errorf("palette: write single value: %w", err)
		}
		return pb.WriteVarInt(0)
	case Paletted:
		if err := pb.WriteVarInt(netio.VarInt(len(c.Palette))); err != nil {
			return fmt.Errorf("palette: write palette length: %w", err)
		}
		for _, id := range c.Palette {
			if err := pb.WriteVarInt(netio.VarInt(id)); err != nil {
				return fmt.Errorf("palette: write palette entry: %w", err)
			}
		}
		return writePacked(pb, c.Packed)
	case Direct:
		return writePacked(pb, c.Packed)
	default:
		return fmt.Errorf("palette: unknown container kind %d", c.Kind)
	}
}

func writePacked(pb *netio.PacketBuffer, words []uint64) error {
	if err := pb.WriteVarInt(netio.VarInt(len(words))); err != nil {
		return fmt.Errorf("palette: write data length: %w", err)
	}
	for _, word := range words {
		if err := pb.WriteInt64(netio.Int64(word)); err != nil {
			return fmt.Errorf("palette: write data word: %w", err)
		}
	}
	return nil
}

// Decode reads a container back from pb, for round-trip testing. count is
// the number of cells the container covers (4096 for blocks, 64 for
// biomes), needed to size a Direct container's logical length.
func Decode(pb *netio.PacketBuffer, count int) (*Container, error) {
	bits, err := pb.ReadUint8()
	if err != nil {
		return nil, fmt.Errorf("palette: read bits per entry: %w", err)
	}

	if bits == 0 {
		value, err := pb.ReadVarInt()
		if err != nil {
			return nil, fmt.Errorf("palette: read single value: %w", err)
		}
		if _, err := pb.ReadVarInt(); err != nil {
			return nil, fmt.Errorf("palette: read single data length: %w", err)
		}
		return &Container{Kind: Single, SingleID: uint16(value), count: count}, nil
	}

	// A palette length is only present for the paletted shape; direct
	// containers have none. Vanilla distinguishes the two solely by bit
	// width (paletted tops out at 8 for blocks), which the caller already
	// knows from context — Decode assumes paletted here and callers that
	// need Direct-shaped round-trips use DecodeDirect instead.
	paletteLen, err := pb.ReadVarInt()
	if err != nil {
		return nil, fmt.Errorf("palette: read palette length: %w", err)
	}
	palette := make([]uint16, paletteLen)
	for i := range palette {
		id, err := pb.ReadVarInt()
		if err != nil {
			return nil, fmt.Errorf("palette: read palette entry %d: %w", i, err)
		}
		palette[i] = uint16(id)
	}
	packed, err := readPacked(pb)
	if err != nil {
		return nil, err
	}
	return &Container{Kind: Paletted, BitsPerEntry: uint8(bits), Palette: palette, Packed: packed, count: count}, nil
}

// DecodeDirect reads back a Direct-shaped container (no palette section).
func DecodeDirect(pb *netio.PacketBuffer, count int) (*Container, error) {
	bits, err := pb.ReadUint8()
	if err != nil {
		return nil, fmt.Errorf("palette: read bits per entry: %w", err)
	}
	packed, err := readPacked(pb)
	if err != nil {
		return nil, err
	}
	return &Container{Kind: Direct, BitsPerEntry: uint8(bits), Packed: packed, count: count}, nil
}

func readPacked(pb *netio.PacketBuffer) ([]uint64, error) {
	n, err := pb.ReadVarInt()
	if err != nil {
		return nil, fmt.Errorf("palette: read data length: %w", err)
	}
	words := make([]uint64, n)
	for i := range words {
		v, err := pb.ReadInt64()
		if err != nil {
			return nil, fmt.Errorf("palette: read data word %d: %w", i, err)
		}
		words[i] = uint64(v)
	}
	return words, nil
}
