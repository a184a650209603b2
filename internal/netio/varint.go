// Package netio implements the binary primitives of the Minecraft Java
// Edition wire format: big-endian fixed-width integers, VarInt/VarLong,
// length-prefixed strings, BitSet, Position and Angle.
//
// All multi-byte integers are big-endian except VarInt/VarLong, which use
// their own 7-bit-payload little-endian-ish variable encoding.
package netio

import (
	"errors"
	"io"
)

// ErrVarIntTooBig is returned when a VarInt exceeds 5 bytes on decode.
var ErrVarIntTooBig = errors.New("netio: VarInt is too big")

// ErrVarLongTooBig is returned when a VarLong exceeds 10 bytes on decode.
var ErrVarLongTooBig = errors.New("netio: VarLong is too big")

// VarInt is a variable-length two's-complement signed 32-bit integer.
// Uses 7 bits of payload per byte with the high bit as a continuation flag.
// 1 to 5 bytes.
type VarInt int32

// Encode writes v to w using the standard VarInt encoding.
func (v VarInt) Encode(w io.Writer) error {
	var buf [5]byte
	n := 0
	value := uint32(v)
	for {
		if value&^uint32(0x7F) == 0 {
			buf[n] = byte(value)
			n++
			break
		}
		buf[n] = byte(value&0x7F) | 0x80
		n++
		value >>= 7
	}
	_, err := w.Write(buf[:n])
	return err
}

// Len returns the number of bytes v would take to encode.
func (v VarInt) Len() int {
	value := uint32(v)
	switch {
	case value < 1<<7:
		return 1
	case value < 1<<14:
		return 2
	case value < 1<<21:
		return 3
	case value < 1<<28:
		return 4
	default:
		return 5
	}
}

// DecodeVarInt reads a VarInt from r.
func DecodeVarInt(r io.Reader) (VarInt, error) {
	var value int32
	var position uint
	var b [1]byte
	for {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, err
		}
		value |= int32(b[0]&0x7F) << position
		if b[0]&0x80 == 0 {
			break
		}
		position += 7
		if position >= 35 {
			return 0, ErrVarIntTooBig
		}
	}
	return VarInt(value), nil
}

// VarLong is the 64-bit counterpart of VarInt. 1 to 10 bytes.
type VarLong int64

// Encode writes v to w.
func (v VarLong) Encode(w io.Writer) error {
	var buf [10]byte
	n := 0
	value := uint64(v)
	for {
		if value&^uint64(0x7F) == 0 {
			buf[n] = byte(value)
			n++
			break
		}
		buf[n] = byte(value&0x7F) | 0x80
		n++
		value >>= 7
	}
	_, err := w.Write(buf[:n])
	return err
}

// Len returns the number of bytes v would take to encode.
func (v VarLong) Len() int {
	value := uint64(v)
	n := 1
	for value >= 0x80 {
		value >>= 7
		n++
	}
	return n
}

// DecodeVarLong reads a VarLong from r.
func DecodeVarLong(r io.Reader) (VarLong, error) {
	var value int64
	var position uint
	var b [1]byte
	for {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, err
		}
		value |= int64(b[0]&0x7F) << position
		if b[0]&0x80 == 0 {
			break
		}
		position += 7
		if position >= 70 {
			return 0, ErrVarLongTooBig
		}
	}
	return VarLong(value), nil
}
