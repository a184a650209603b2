package packetcodec

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteReadFrame_Uncompressed(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFrame(&buf, -1, 0x03, []byte("hello")); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	frame, err := ReadFrame(&buf, -1)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if frame.ID != 0x03 || string(frame.Data) != "hello" {
		t.Fatalf("unexpected frame: %+v", frame)
	}
}

func TestWriteReadFrame_CompressedBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFrame(&buf, 256, 0x01, []byte("x")); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	frame, err := ReadFrame(&buf, 256)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if frame.ID != 0x01 || string(frame.Data) != "x" {
		t.Fatalf("unexpected frame: %+v", frame)
	}
}

func TestWriteReadFrame_CompressedAboveThreshold(t *testing.T) {
	payload := []byte(strings.Repeat("a", 512))
	var buf bytes.Buffer
	if err := WriteFrame(&buf, 64, 0x02, payload); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	frame, err := ReadFrame(&buf, 64)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if frame.ID != 0x02 || !bytes.Equal(frame.Data, payload) {
		t.Fatalf("unexpected frame data length %d", len(frame.Data))
	}
}

func TestReadFrame_RejectsOversizedLength(t *testing.T) {
	var buf bytes.Buffer
	writeVarIntForTest(&buf, MaxPacketLength+1)
	if _, err := ReadFrame(&buf, 0); err != ErrPacketTooLarge {
		t.Fatalf("expected ErrPacketTooLarge, got %v", err)
	}
}

func TestReadFrame_RejectsZeroLength(t *testing.T) {
	var buf bytes.Buffer
	writeVarIntForTest(&buf, 0)
	if _, err := ReadFrame(&buf, 0); err != ErrZeroLengthPacket {
		t.Fatalf("expected ErrZeroLengthPacket, got %v", err)
	}
}

func writeVarIntForTest(buf *bytes.Buffer, v int32) {
	value := uint32(v)
	for {
		if value&^uint32(0x7F) == 0 {
			buf.WriteByte(byte(value))
			return
		}
		buf.WriteByte(byte(value&0x7F) | 0x80)
		value >>= 7
	}
}
