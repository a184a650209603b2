package netio

import (
	"bytes"
	"fmt"
	"io"
)

// PacketBuffer wraps an io.Reader or io.Writer with methods for every
// Minecraft wire primitive. A single buffer is either in read mode or
// write mode, never both.
type PacketBuffer struct {
	reader io.Reader
	writer io.Writer
	buf    *bytes.Buffer
}

// NewReader creates a PacketBuffer for reading from an in-memory payload.
func NewReader(data []byte) *PacketBuffer {
	return &PacketBuffer{reader: bytes.NewReader(data)}
}

// NewReaderFrom creates a PacketBuffer reading from an arbitrary io.Reader.
func NewReaderFrom(r io.Reader) *PacketBuffer {
	return &PacketBuffer{reader: r}
}

// NewWriter creates a PacketBuffer that accumulates written bytes internally.
func NewWriter() *PacketBuffer {
	buf := &bytes.Buffer{}
	return &PacketBuffer{writer: buf, buf: buf}
}

// NewWriterTo creates a PacketBuffer that writes directly to w.
func NewWriterTo(w io.Writer) *PacketBuffer {
	return &PacketBuffer{writer: w}
}

// Bytes returns the bytes written so far. Only valid for NewWriter buffers.
func (pb *PacketBuffer) Bytes() []byte {
	if pb.buf != nil {
		return pb.buf.Bytes()
	}
	return nil
}

func (pb *PacketBuffer) Len() int {
	if pb.buf != nil {
		return pb.buf.Len()
	}
	return 0
}

func (pb *PacketBuffer) Read(p []byte) (int, error) {
	if pb.reader == nil {
		return 0, fmt.Errorf("netio: buffer not in read mode")
	}
	return io.ReadFull(pb.reader, p)
}

func (pb *PacketBuffer) Write(p []byte) (int, error) {
	if pb.writer == nil {
		return 0, fmt.Errorf("netio: buffer not in write mode")
	}
	return pb.writer.Write(p)
}

func (pb *PacketBuffer) Reader() io.Reader { return pb.reader }
func (pb *PacketBuffer) Writer() io.Writer { return pb.writer }

func (pb *PacketBuffer) ReadVarInt() (VarInt, error)   { return DecodeVarInt(pb.reader) }
func (pb *PacketBuffer) WriteVarInt(v VarInt) error    { return v.Encode(pb.writer) }
func (pb *PacketBuffer) ReadVarLong() (VarLong, error) { return DecodeVarLong(pb.reader) }
func (pb *PacketBuffer) WriteVarLong(v VarLong) error  { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadBool() (Boolean, error) { return DecodeBoolean(pb.reader) }
func (pb *PacketBuffer) WriteBool(v Boolean) error  { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadInt8() (Int8, error) { return DecodeInt8(pb.reader) }
func (pb *PacketBuffer) WriteInt8(v Int8) error  { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadUint8() (Uint8, error) { return DecodeUint8(pb.reader) }
func (pb *PacketBuffer) WriteUint8(v Uint8) error  { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadInt16() (Int16, error) { return DecodeInt16(pb.reader) }
func (pb *PacketBuffer) WriteInt16(v Int16) error  { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadUint16() (Uint16, error) { return DecodeUint16(pb.reader) }
func (pb *PacketBuffer) WriteUint16(v Uint16) error  { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadInt32() (Int32, error) { return DecodeInt32(pb.reader) }
func (pb *PacketBuffer) WriteInt32(v Int32) error  { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadInt64() (Int64, error) { return DecodeInt64(pb.reader) }
func (pb *PacketBuffer) WriteInt64(v Int64) error  { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadFloat32() (Float32, error) { return DecodeFloat32(pb.reader) }
func (pb *PacketBuffer) WriteFloat32(v Float32) error  { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadFloat64() (Float64, error) { return DecodeFloat64(pb.reader) }
func (pb *PacketBuffer) WriteFloat64(v Float64) error  { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadAngle() (Angle, error) { return DecodeAngle(pb.reader) }
func (pb *PacketBuffer) WriteAngle(v Angle) error  { return v.Encode(pb.writer) }

// ReadString reads a UTF-8 string; maxLen is the maximum character count (0 = unbounded).
func (pb *PacketBuffer) ReadString(maxLen int) (String, error) {
	return DecodeString(pb.reader, maxLen)
}
func (pb *PacketBuffer) WriteString(v String) error { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadByteArray(maxLen int) (PrefixedByteArray, error) {
	return DecodePrefixedByteArray(pb.reader, maxLen)
}
func (pb *PacketBuffer) WriteByteArray(v PrefixedByteArray) error { return v.Encode(pb.writer) }

// ReadFixedByteArray reads exactly n bytes with no length prefix.
func (pb *PacketBuffer) ReadFixedByteArray(n int) (ByteArray, error) {
	data := make([]byte, n)
	if _, err := pb.Read(data); err != nil {
		return nil, err
	}
	return data, nil
}

func (pb *PacketBuffer) WriteFixedByteArray(v ByteArray) error {
	_, err := pb.Write(v)
	return err
}

func (pb *PacketBuffer) ReadPosition() (Position, error) { return DecodePosition(pb.reader) }
func (pb *PacketBuffer) WritePosition(v Position) error  { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadUUID() (UUID, error) { return DecodeUUID(pb.reader) }
func (pb *PacketBuffer) WriteUUID(v UUID) error  { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadBitSet() (BitSet, error) { return DecodeBitSet(pb.reader) }
func (pb *PacketBuffer) WriteBitSet(v BitSet) error  { return v.Encode(pb.writer) }
