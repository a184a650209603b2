package netio

import (
	"encoding/binary"
	"errors"
	"io"
)

// Position is a block position packed into a single big-endian u64:
// x(26) | z(26) | y(12), x occupying the high bits. Used by the 1.14+
// wire form referenced in spec §4.1.
type Position struct {
	X int32 // -33554432 to 33554431
	Y int16 // -2048 to 2047
	Z int32 // -33554432 to 33554431
}

func (p Position) Encode(w io.Writer) error {
	value := uint64(0)
	value |= (uint64(p.X) & 0x3FFFFFF) << 38
	value |= (uint64(p.Z) & 0x3FFFFFF) << 12
	value |= uint64(p.Y) & 0xFFF
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], value)
	_, err := w.Write(b[:])
	return err
}

func DecodePosition(r io.Reader) (Position, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return Position{}, err
	}
	value := binary.BigEndian.Uint64(b[:])

	x := int32(value >> 38)
	if x >= 1<<25 {
		x -= 1 << 26
	}
	z := int32((value >> 12) & 0x3FFFFFF)
	if z >= 1<<25 {
		z -= 1 << 26
	}
	y := int16(value & 0xFFF)
	if y >= 1<<11 {
		y -= 1 << 12
	}
	return Position{X: x, Y: y, Z: z}, nil
}

// BlockPos is the triplet-of-i32 form used for non-wire-Position fields
// (e.g. death location payloads), spec §4.1.
type BlockPos struct {
	X, Y, Z int32
}

func (p BlockPos) Encode(w io.Writer) error {
	if err := (Int32(p.X)).Encode(w); err != nil {
		return err
	}
	if err := (Int32(p.Y)).Encode(w); err != nil {
		return err
	}
	return (Int32(p.Z)).Encode(w)
}

func DecodeBlockPos(r io.Reader) (BlockPos, error) {
	x, err := DecodeInt32(r)
	if err != nil {
		return BlockPos{}, err
	}
	y, err := DecodeInt32(r)
	if err != nil {
		return BlockPos{}, err
	}
	z, err := DecodeInt32(r)
	if err != nil {
		return BlockPos{}, err
	}
	return BlockPos{X: int32(x), Y: int32(y), Z: int32(z)}, nil
}

var errNegativeLength = errors.New("netio: negative length")
