package nbt

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"encoding/binary"
	"io"
	"math"
)

// Writer encodes NBT data to binary format.
type Writer struct {
	w            io.Writer
	buf          *bytes.Buffer // only set if we own the buffer
	namelessRoot bool
	dynamicLists bool
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithNamelessRoot selects network format: the root tag carries no name.
func WithNamelessRoot(v bool) WriterOption {
	return func(w *Writer) { w.namelessRoot = v }
}

// WithDynamicLists allows marshalling of heterogeneous Go slices into
// dynamic (Compound-wrapped) lists instead of failing. It has no effect
// on lists built by hand with WrapDynamicElement, which already carry
// their own well-formed element type.
func WithDynamicLists(v bool) WriterOption {
	return func(w *Writer) { w.dynamicLists = v }
}

// NewWriter creates a Writer that writes to an internal buffer.
// Use Bytes() to retrieve the written data.
func NewWriter(opts ...WriterOption) *Writer {
	buf := &bytes.Buffer{}
	w := &Writer{w: buf, buf: buf}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NewWriterTo creates a Writer that writes to the given io.Writer.
func NewWriterTo(dst io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{w: dst}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Bytes returns the written bytes. Only valid if created with NewWriter.
func (w *Writer) Bytes() []byte {
	if w.buf != nil {
		return w.buf.Bytes()
	}
	return nil
}

// DynamicLists reports whether this writer marshals mixed-type slices as
// dynamic lists rather than rejecting them.
func (w *Writer) DynamicLists() bool { return w.dynamicLists }

// WriteTag writes a complete NBT structure with a root tag.
func (w *Writer) WriteTag(tag Tag, rootName string) error {
	if err := w.writeByte(tag.ID()); err != nil {
		return err
	}
	if !w.namelessRoot {
		if err := w.writeString(rootName); err != nil {
			return err
		}
	}
	return tag.write(w)
}

func (w *Writer) writeByte(v byte) error {
	_, err := w.w.Write([]byte{v})
	return err
}

func (w *Writer) writeBytes(v []byte) error {
	_, err := w.w.Write(v)
	return err
}

func (w *Writer) writeShort(v int16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], uint16(v))
	_, err := w.w.Write(buf[:])
	return err
}

func (w *Writer) writeInt(v int32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v))
	_, err := w.w.Write(buf[:])
	return err
}

func (w *Writer) writeLong(v int64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	_, err := w.w.Write(buf[:])
	return err
}

func (w *Writer) writeFloat(v float32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], math.Float32bits(v))
	_, err := w.w.Write(buf[:])
	return err
}

func (w *Writer) writeDouble(v float64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], math.Float64bits(v))
	_, err := w.w.Write(buf[:])
	return err
}

// writeString writes a length-prefixed UTF-8 string, u16 big-endian length.
// Strings longer than 65535 bytes are truncated rather than rejected, since
// nothing upstream of the wire ever builds one that long.
func (w *Writer) writeString(s string) error {
	data := []byte(s)
	if len(data) > 65535 {
		data = data[:65535]
	}
	if err := w.writeShort(int16(len(data))); err != nil {
		return err
	}
	_, err := w.w.Write(data)
	return err
}

// Encode writes tag as a complete NBT structure and returns the bytes.
func Encode(tag Tag, rootName string, opts ...WriterOption) ([]byte, error) {
	w := NewWriter(opts...)
	if err := w.WriteTag(tag, rootName); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// EncodeNetwork writes tag in network format (nameless root).
func EncodeNetwork(tag Tag, opts ...WriterOption) ([]byte, error) {
	return Encode(tag, "", append(opts, WithNamelessRoot(true))...)
}

// EncodeFile writes tag in file format with the given root name.
func EncodeFile(tag Tag, rootName string, opts ...WriterOption) ([]byte, error) {
	return Encode(tag, rootName, opts...)
}

// CompressionMode selects the container compression for on-disk NBT, as
// used by region files, schematics, and level data.
type CompressionMode int

const (
	CompressionNone CompressionMode = iota
	CompressionGzip
	CompressionZlib
)

// EncodeCompressed writes tag in file format, compressing the result with
// the given mode. zlibLevel is only consulted for CompressionZlib; a level
// outside compress/zlib's accepted range falls back to zlib.DefaultCompression.
func EncodeCompressed(tag Tag, rootName string, mode CompressionMode, zlibLevel int) ([]byte, error) {
	raw, err := EncodeFile(tag, rootName)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch mode {
	case CompressionNone:
		return raw, nil
	case CompressionGzip:
		gw := gzip.NewWriter(&buf)
		if _, err := gw.Write(raw); err != nil {
			return nil, err
		}
		if err := gw.Close(); err != nil {
			return nil, err
		}
	case CompressionZlib:
		if zlibLevel < zlib.HuffmanOnly || zlibLevel > zlib.BestCompression {
			zlibLevel = zlib.DefaultCompression
		}
		zw, err := zlib.NewWriterLevel(&buf, zlibLevel)
		if err != nil {
			return nil, err
		}
		if _, err := zw.Write(raw); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
