package netio

import (
	"encoding/binary"
	"io"
	"math"
)

// Boolean is a single byte: 0x00 = false, 0x01 = true.
type Boolean bool

func (v Boolean) Encode(w io.Writer) error {
	b := byte(0)
	if v {
		b = 1
	}
	_, err := w.Write([]byte{b})
	return err
}

func DecodeBoolean(r io.Reader) (Boolean, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

type Int8 int8

func (v Int8) Encode(w io.Writer) error {
	_, err := w.Write([]byte{byte(v)})
	return err
}

func DecodeInt8(r io.Reader) (Int8, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return Int8(b[0]), nil
}

type Uint8 uint8

func (v Uint8) Encode(w io.Writer) error {
	_, err := w.Write([]byte{byte(v)})
	return err
}

func DecodeUint8(r io.Reader) (Uint8, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return Uint8(b[0]), nil
}

type Int16 int16

func (v Int16) Encode(w io.Writer) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(v))
	_, err := w.Write(b[:])
	return err
}

func DecodeInt16(r io.Reader) (Int16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return Int16(binary.BigEndian.Uint16(b[:])), nil
}

type Uint16 uint16

func (v Uint16) Encode(w io.Writer) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(v))
	_, err := w.Write(b[:])
	return err
}

func DecodeUint16(r io.Reader) (Uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return Uint16(binary.BigEndian.Uint16(b[:])), nil
}

type Int32 int32

func (v Int32) Encode(w io.Writer) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	_, err := w.Write(b[:])
	return err
}

func DecodeInt32(r io.Reader) (Int32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return Int32(binary.BigEndian.Uint32(b[:])), nil
}

type Int64 int64

func (v Int64) Encode(w io.Writer) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	_, err := w.Write(b[:])
	return err
}

func DecodeInt64(r io.Reader) (Int64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return Int64(binary.BigEndian.Uint64(b[:])), nil
}

type Float32 float32

func (v Float32) Encode(w io.Writer) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], math.Float32bits(float32(v)))
	_, err := w.Write(b[:])
	return err
}

func DecodeFloat32(r io.Reader) (Float32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return Float32(math.Float32frombits(binary.BigEndian.Uint32(b[:]))), nil
}

type Float64 float64

func (v Float64) Encode(w io.Writer) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], math.Float64bits(float64(v)))
	_, err := w.Write(b[:])
	return err
}

func DecodeFloat64(r io.Reader) (Float64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return Float64(math.Float64frombits(binary.BigEndian.Uint64(b[:]))), nil
}

// Angle is a rotation angle stored as 1/256 of a full turn.
type Angle uint8

func (v Angle) Encode(w io.Writer) error {
	_, err := w.Write([]byte{byte(v)})
	return err
}

func DecodeAngle(r io.Reader) (Angle, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return Angle(b[0]), nil
}

// FromDegrees converts a float degree value to the wire Angle encoding.
func FromDegrees(deg float64) Angle {
	return Angle(uint8(int32(deg/360*256) & 0xFF))
}
