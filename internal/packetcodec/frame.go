// Package packetcodec implements the packet stream: the VarInt-length-
// prefixed, optionally zlib-compressed framing every packet travels in,
// and the version-conditional field presence rule used to decide whether
// an optional field is on the wire for a given protocol version.
package packetcodec

import (
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"io"

	"github.com/go-mclib/limbo/internal/netio"
)

// MaxPacketLength is the largest a framed packet (id + data, before the
// length prefix) may be. A frame claiming to exceed this is rejected
// before any allocation sized by the claimed length happens.
const MaxPacketLength = 2097151

// ErrPacketTooLarge is returned when a frame's declared length exceeds
// MaxPacketLength.
var ErrPacketTooLarge = errors.New("packetcodec: packet exceeds maximum length")

// ErrZeroLengthPacket is returned when a frame declares a length of 0:
// every frame carries at least a packet id, so a zero-length frame is
// always malformed rather than merely empty.
var ErrZeroLengthPacket = errors.New("packetcodec: zero-length packet")

// Frame is one packet's framing, read off or about to be written to the
// wire: the numeric packet id plus its raw, still-encoded body.
type Frame struct {
	ID   int32
	Data []byte
}

// ReadFrame reads one framed packet from r. threshold is the compression
// threshold currently in effect (negative disables compression entirely;
// 0 or above selects the compressed framing - vanilla only turns it on after
// SetCompression/login_compression, never mid-stream for an individual frame).
func ReadFrame(r io.Reader, threshold int) (Frame, error) {
	length, err := netio.DecodeVarInt(r)
	if err != nil {
		return Frame{}, fmt.Errorf("packetcodec: read frame length: %w", err)
	}
	if length == 0 {
		return Frame{}, ErrZeroLengthPacket
	}
	if int(length) < 0 || int(length) > MaxPacketLength {
		return Frame{}, ErrPacketTooLarge
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return Frame{}, fmt.Errorf("packetcodec: read frame body: %w", err)
	}
	bodyReader := bytes.NewReader(body)

	if threshold < 0 {
		return readUncompressedFrame(bodyReader)
	}
	return readCompressedFrame(bodyReader)
}

func readUncompressedFrame(r io.Reader) (Frame, error) {
	id, err := netio.DecodeVarInt(r)
	if err != nil {
		return Frame{}, fmt.Errorf("packetcodec: read packet id: %w", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return Frame{}, fmt.Errorf("packetcodec: read packet data: %w", err)
	}
	return Frame{ID: int32(id), Data: data}, nil
}

// readCompressedFrame reads a compressed-mode frame body: a VarInt
// uncompressed-data-length, then either the id+data directly (when that
// length is 0, meaning the packet was below the compression threshold and
// sent uncompressed) or a zlib stream of id+data.
func readCompressedFrame(r io.Reader) (Frame, error) {
	dataLen, err := netio.DecodeVarInt(r)
	if err != nil {
		return Frame{}, fmt.Errorf("packetcodec: read data length: %w", err)
	}
	if dataLen == 0 {
		return readUncompressedFrame(r)
	}

	zr, err := zlib.NewReader(r)
	if err != nil {
		return Frame{}, fmt.Errorf("packetcodec: open zlib reader: %w", err)
	}
	defer zr.Close()
	return readUncompressedFrame(zr)
}

// WriteFrame writes id and data to w as one framed packet, applying
// compression per threshold: packets at or above threshold bytes (id+data
// combined) are zlib-compressed; threshold<0 disables compression.
func WriteFrame(w io.Writer, threshold int, id int32, data []byte) error {
	if threshold < 0 {
		return writeUncompressedFrame(w, id, data)
	}
	return writeCompressedFrame(w, threshold, id, data)
}

func writeUncompressedFrame(w io.Writer, id int32, data []byte) error {
	var inner bytes.Buffer
	if err := netio.VarInt(id).Encode(&inner); err != nil {
		return err
	}
	inner.Write(data)

	if err := netio.VarInt(inner.Len()).Encode(w); err != nil {
		return fmt.Errorf("packetcodec: write frame length: %w", err)
	}
	_, err := w.Write(inner.Bytes())
	return err
}

func writeCompressedFrame(w io.Writer, threshold int, id int32, data []byte) error {
	var uncompressed bytes.Buffer
	if err := netio.VarInt(id).Encode(&uncompressed); err != nil {
		return err
	}
	uncompressed.Write(data)

	if uncompressed.Len() < threshold {
		// Below threshold: data length 0 signals "sent uncompressed".
		var body bytes.Buffer
		if err := netio.VarInt(0).Encode(&body); err != nil {
			return err
		}
		body.Write(uncompressed.Bytes())
		return writeRawFrame(w, body.Bytes())
	}

	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	if _, err := zw.Write(uncompressed.Bytes()); err != nil {
		zw.Close()
		return fmt.Errorf("packetcodec: zlib compress: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("packetcodec: close zlib writer: %w", err)
	}

	var body bytes.Buffer
	if err := netio.VarInt(uncompressed.Len()).Encode(&body); err != nil {
		return err
	}
	body.Write(compressed.Bytes())
	return writeRawFrame(w, body.Bytes())
}

func writeRawFrame(w io.Writer, body []byte) error {
	if len(body) > MaxPacketLength {
		return ErrPacketTooLarge
	}
	if err := netio.VarInt(len(body)).Encode(w); err != nil {
		return fmt.Errorf("packetcodec: write frame length: %w", err)
	}
	_, err := w.Write(body)
	return err
}
