package netio

import (
	"fmt"
	"io"
	"strings"
)

// String is a UTF-8 string with a VarInt byte-length prefix.
type String string

func (v String) Encode(w io.Writer) error {
	data := []byte(v)
	if err := VarInt(len(data)).Encode(w); err != nil {
		return fmt.Errorf("netio: write string length: %w", err)
	}
	_, err := w.Write(data)
	return err
}

// DecodeString reads a String. maxLen is the maximum character count (0 = unbounded).
// Per spec §4.1, invalid UTF-8 is replaced rather than rejected, to match vanilla
// client behaviour of never failing a connection over a malformed string.
func DecodeString(r io.Reader, maxLen int) (String, error) {
	length, err := DecodeVarInt(r)
	if err != nil {
		return "", fmt.Errorf("netio: read string length: %w", err)
	}
	if length < 0 {
		return "", fmt.Errorf("netio: negative string length %d", length)
	}
	if maxLen > 0 && int(length) > maxLen*4 {
		return "", fmt.Errorf("netio: string byte length %d exceeds maximum %d", length, maxLen*4)
	}
	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return "", fmt.Errorf("netio: read string data: %w", err)
	}
	return String(sanitizeUTF8(data)), nil
}

// ByteArray is a raw sequence of bytes whose length is known from context.
type ByteArray []byte

func (b ByteArray) ToBytes() (ByteArray, error) { return b, nil }

// PrefixedByteArray is a []byte with a VarInt length prefix.
type PrefixedByteArray []byte

func (p PrefixedByteArray) Encode(w io.Writer) error {
	if err := VarInt(len(p)).Encode(w); err != nil {
		return err
	}
	_, err := w.Write(p)
	return err
}

func DecodePrefixedByteArray(r io.Reader, maxLen int) (PrefixedByteArray, error) {
	length, err := DecodeVarInt(r)
	if err != nil {
		return nil, fmt.Errorf("netio: read byte array length: %w", err)
	}
	if length < 0 {
		return nil, fmt.Errorf("netio: negative byte array length %d", length)
	}
	if maxLen > 0 && int(length) > maxLen {
		return nil, fmt.Errorf("netio: byte array length %d exceeds maximum %d", length, maxLen)
	}
	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("netio: read byte array data: %w", err)
	}
	return PrefixedByteArray(data), nil
}

// sanitizeUTF8 replaces invalid UTF-8 with U+FFFD instead of failing the
// connection, matching vanilla's lenient string decoding (spec §4.1).
func sanitizeUTF8(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
