package netio

import (
	"encoding/binary"
	"errors"
	"io"
)

// BitSet is a VarInt-length-prefixed vector of i64 words, little-endian
// within each word as required by spec §4.1's BitSet type.
type BitSet struct {
	Data []int64
}

// NewBitSet allocates a BitSet with room for n bits.
func NewBitSet(n int) BitSet {
	return BitSet{Data: make([]int64, (n+63)/64)}
}

// Set sets bit i.
func (b *BitSet) Set(i int) {
	word := i / 64
	for word >= len(b.Data) {
		b.Data = append(b.Data, 0)
	}
	b.Data[word] |= 1 << uint(i%64)
}

// Get returns the state of bit i.
func (b BitSet) Get(i int) bool {
	word := i / 64
	if word >= len(b.Data) {
		return false
	}
	return b.Data[word]&(1<<uint(i%64)) != 0
}

func (b BitSet) Encode(w io.Writer) error {
	if err := VarInt(len(b.Data)).Encode(w); err != nil {
		return err
	}
	var buf [8]byte
	for _, v := range b.Data {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}
	return nil
}

func DecodeBitSet(r io.Reader) (BitSet, error) {
	length, err := DecodeVarInt(r)
	if err != nil {
		return BitSet{}, err
	}
	if length < 0 {
		return BitSet{}, errNegativeLength
	}
	data := make([]int64, length)
	var buf [8]byte
	for i := range data {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return BitSet{}, err
		}
		data[i] = int64(binary.LittleEndian.Uint64(buf[:]))
	}
	return BitSet{Data: data}, nil
}

// FixedBitSet is a bitset of a fixed, externally-known bit length with no
// length prefix on the wire.
type FixedBitSet struct {
	Bits int
	Data []byte
}

func NewFixedBitSet(bits int) FixedBitSet {
	return FixedBitSet{Bits: bits, Data: make([]byte, (bits+7)/8)}
}

func (b *FixedBitSet) Set(i int) {
	b.Data[i/8] |= 1 << uint(i%8)
}

func (b FixedBitSet) Encode(w io.Writer) error {
	_, err := w.Write(b.Data)
	return err
}

func DecodeFixedBitSet(r io.Reader, bits int) (FixedBitSet, error) {
	n := (bits + 7) / 8
	data := make([]byte, n)
	if _, err := io.ReadFull(r, data); err != nil {
		return FixedBitSet{}, err
	}
	return FixedBitSet{Bits: bits, Data: data}, nil
}

var errUnexpectedEOF = errors.New("netio: unexpected end of data")
