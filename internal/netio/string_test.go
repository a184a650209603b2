package netio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, String("hello, limbo").Encode(&buf))

	got, err := DecodeString(&buf, 0)
	require.NoError(t, err)
	require.Equal(t, String("hello, limbo"), got)
}

func TestString_MaxLenRejected(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, String("far too long a string for the limit").Encode(&buf))

	_, err := DecodeString(&buf, 4)
	require.Error(t, err)
}

func TestString_InvalidUTF8Sanitized(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, VarInt(3).Encode(&buf))
	buf.Write([]byte{'a', 0xff, 'b'})

	got, err := DecodeString(&buf, 0)
	require.NoError(t, err)
	require.NotContains(t, string(got), string(rune(0xff)))
}

func TestPrefixedByteArray_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	data := PrefixedByteArray{1, 2, 3, 4}
	require.NoError(t, data.Encode(&buf))

	got, err := DecodePrefixedByteArray(&buf, 0)
	require.NoError(t, err)
	require.Equal(t, data, got)
}
