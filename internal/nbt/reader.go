package nbt

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Reader decodes NBT data from binary format.
type Reader struct {
	r            io.Reader
	namelessRoot bool
	depth        int
	maxDepth     int
	bytesRead    int64
	maxBytes     int64
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithReaderNamelessRoot selects network format on read: the root tag
// carries no name.
func WithReaderNamelessRoot(v bool) ReaderOption {
	return func(r *Reader) { r.namelessRoot = v }
}

// WithMaxDepth sets the maximum nesting depth. Zero uses MaxDepth.
func WithMaxDepth(depth int) ReaderOption {
	return func(r *Reader) { r.maxDepth = depth }
}

// WithMaxBytes sets the maximum number of bytes the Reader will consume.
// Zero disables the limit.
func WithMaxBytes(n int64) ReaderOption {
	return func(r *Reader) { r.maxBytes = n }
}

// NewReader creates a Reader over an in-memory payload.
func NewReader(data []byte, opts ...ReaderOption) *Reader {
	return NewReaderFrom(bytes.NewReader(data), opts...)
}

// NewReaderFrom creates a Reader over an arbitrary io.Reader.
func NewReaderFrom(r io.Reader, opts ...ReaderOption) *Reader {
	reader := &Reader{
		r:        r,
		maxDepth: MaxDepth,
		maxBytes: MaxBytes,
	}
	for _, opt := range opts {
		opt(reader)
	}
	return reader
}

// ReadTag reads a complete NBT structure and returns the tag and root name
// (root name is always "" in network format).
func (r *Reader) ReadTag() (Tag, string, error) {
	tagType, err := r.readByte()
	if err != nil {
		return nil, "", fmt.Errorf("nbt: read tag type: %w", err)
	}

	if tagType == TagEnd {
		return End{}, "", nil
	}

	var rootName string
	if !r.namelessRoot {
		rootName, err = r.readString()
		if err != nil {
			return nil, "", fmt.Errorf("nbt: read root name: %w", err)
		}
	}

	tag, err := r.readTagPayload(tagType)
	if err != nil {
		return nil, "", err
	}
	return tag, rootName, nil
}

func (r *Reader) readTagPayload(tagType byte) (Tag, error) {
	switch tagType {
	case TagEnd:
		return End{}, nil
	case TagByte:
		v, err := r.readByte()
		return Byte(int8(v)), err
	case TagShort:
		v, err := r.readShort()
		return Short(v), err
	case TagInt:
		v, err := r.readInt()
		return Int(v), err
	case TagLong:
		v, err := r.readLong()
		return Long(v), err
	case TagFloat:
		v, err := r.readFloat()
		return Float(v), err
	case TagDouble:
		v, err := r.readDouble()
		return Double(v), err
	case TagByteArray:
		return r.readByteArray()
	case TagString:
		v, err := r.readString()
		return String(v), err
	case TagList:
		return r.readList()
	case TagCompound:
		return r.readCompound()
	case TagIntArray:
		return r.readIntArray()
	case TagLongArray:
		return r.readLongArray()
	default:
		return nil, fmt.Errorf("nbt: unknown tag type %d", tagType)
	}
}

func (r *Reader) readByteArray() (ByteArray, error) {
	length, err := r.readInt()
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, fmt.Errorf("nbt: negative byte array length %d", length)
	}
	data := make([]byte, length)
	if err := r.readFull(data); err != nil {
		return nil, err
	}
	return ByteArray(data), nil
}

func (r *Reader) readList() (List, error) {
	if err := r.pushDepth(); err != nil {
		return List{}, err
	}
	defer r.popDepth()

	elemType, err := r.readByte()
	if err != nil {
		return List{}, err
	}
	length, err := r.readInt()
	if err != nil {
		return List{}, err
	}
	if length < 0 {
		return List{}, fmt.Errorf("nbt: negative list length %d", length)
	}

	elements := make([]Tag, length)
	for i := range elements {
		elem, err := r.readTagPayload(elemType)
		if err != nil {
			return List{}, fmt.Errorf("nbt: list element %d: %w", i, err)
		}
		elements[i] = elem
	}
	return List{ElementType: elemType, Elements: elements}, nil
}

func (r *Reader) readCompound() (Compound, error) {
	if err := r.pushDepth(); err != nil {
		return nil, err
	}
	defer r.popDepth()

	compound := make(Compound)
	for {
		tagType, err := r.readByte()
		if err != nil {
			return nil, fmt.Errorf("nbt: read tag type in compound: %w", err)
		}
		if tagType == TagEnd {
			break
		}
		name, err := r.readString()
		if err != nil {
			return nil, fmt.Errorf("nbt: read tag name: %w", err)
		}
		tag, err := r.readTagPayload(tagType)
		if err != nil {
			return nil, fmt.Errorf("nbt: tag %q: %w", name, err)
		}
		compound[name] = tag
	}
	return compound, nil
}

func (r *Reader) readIntArray() (IntArray, error) {
	length, err := r.readInt()
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, fmt.Errorf("nbt: negative int array length %d", length)
	}
	data := make(IntArray, length)
	for i := range data {
		v, err := r.readInt()
		if err != nil {
			return nil, err
		}
		data[i] = v
	}
	return data, nil
}

func (r *Reader) readLongArray() (LongArray, error) {
	length, err := r.readInt()
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, fmt.Errorf("nbt: negative long array length %d", length)
	}
	data := make(LongArray, length)
	for i := range data {
		v, err := r.readLong()
		if err != nil {
			return nil, err
		}
		data[i] = v
	}
	return data, nil
}

func (r *Reader) readFull(p []byte) error {
	if err := r.accountBytes(int64(len(p))); err != nil {
		return err
	}
	_, err := io.ReadFull(r.r, p)
	return err
}

func (r *Reader) readByte() (byte, error) {
	if err := r.accountBytes(1); err != nil {
		return 0, err
	}
	var buf [1]byte
	_, err := io.ReadFull(r.r, buf[:])
	return buf[0], err
}

func (r *Reader) readShort() (int16, error) {
	if err := r.accountBytes(2); err != nil {
		return 0, err
	}
	var buf [2]byte
	if _, err := io.ReadFull(r.r, buf[:]); err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(buf[:])), nil
}

func (r *Reader) readInt() (int32, error) {
	if err := r.accountBytes(4); err != nil {
		return 0, err
	}
	var buf [4]byte
	if _, err := io.ReadFull(r.r, buf[:]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(buf[:])), nil
}

func (r *Reader) readLong() (int64, error) {
	if err := r.accountBytes(8); err != nil {
		return 0, err
	}
	var buf [8]byte
	if _, err := io.ReadFull(r.r, buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}

func (r *Reader) readFloat() (float32, error) {
	if err := r.accountBytes(4); err != nil {
		return 0, err
	}
	var buf [4]byte
	if _, err := io.ReadFull(r.r, buf[:]); err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(buf[:])), nil
}

func (r *Reader) readDouble() (float64, error) {
	if err := r.accountBytes(8); err != nil {
		return 0, err
	}
	var buf [8]byte
	if _, err := io.ReadFull(r.r, buf[:]); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(buf[:])), nil
}

func (r *Reader) readString() (string, error) {
	if err := r.accountBytes(2); err != nil {
		return "", err
	}
	var buf [2]byte
	if _, err := io.ReadFull(r.r, buf[:]); err != nil {
		return "", err
	}
	length := binary.BigEndian.Uint16(buf[:])
	data := make([]byte, length)
	if err := r.readFull(data); err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *Reader) pushDepth() error {
	r.depth++
	if r.maxDepth > 0 && r.depth > r.maxDepth {
		return fmt.Errorf("nbt: depth exceeds maximum of %d", r.maxDepth)
	}
	return nil
}

func (r *Reader) popDepth() { r.depth-- }

func (r *Reader) accountBytes(n int64) error {
	r.bytesRead += n
	if r.maxBytes > 0 && r.bytesRead > r.maxBytes {
		return errors.New("nbt: data exceeds maximum byte limit")
	}
	return nil
}

// Decode reads a complete NBT structure from data.
func Decode(data []byte, opts ...ReaderOption) (Tag, string, error) {
	r := NewReader(data, opts...)
	return r.ReadTag()
}

// DecodeNetwork reads NBT in network format (nameless root).
func DecodeNetwork(data []byte, opts ...ReaderOption) (Tag, error) {
	tag, _, err := Decode(data, append(opts, WithReaderNamelessRoot(true))...)
	return tag, err
}

// DecodeFile reads NBT in file format (named root) and returns the name.
func DecodeFile(data []byte, opts ...ReaderOption) (Tag, string, error) {
	return Decode(data, opts...)
}

// DetectCompression inspects the first bytes of data and reports which
// compression, if any, it appears to be wrapped in: 0x1F 0x8B is gzip,
// 0x78 followed by any FLG byte is zlib, anything else is uncompressed.
func DetectCompression(data []byte) CompressionMode {
	if len(data) >= 2 && data[0] == 0x1F && data[1] == 0x8B {
		return CompressionGzip
	}
	if len(data) >= 2 && data[0] == 0x78 {
		return CompressionZlib
	}
	return CompressionNone
}

// DecodeCompressed detects and reverses gzip/zlib compression before
// decoding data as file-format NBT.
func DecodeCompressed(data []byte, opts ...ReaderOption) (Tag, string, error) {
	switch DetectCompression(data) {
	case CompressionGzip:
		gr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, "", fmt.Errorf("nbt: gzip header: %w", err)
		}
		defer gr.Close()
		raw, err := io.ReadAll(gr)
		if err != nil {
			return nil, "", fmt.Errorf("nbt: gzip decompress: %w", err)
		}
		return DecodeFile(raw, opts...)
	case CompressionZlib:
		zr, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, "", fmt.Errorf("nbt: zlib header: %w", err)
		}
		defer zr.Close()
		raw, err := io.ReadAll(zr)
		if err != nil {
			return nil, "", fmt.Errorf("nbt: zlib decompress: %w", err)
		}
		return DecodeFile(raw, opts...)
	default:
		return DecodeFile(data, opts...)
	}
}
