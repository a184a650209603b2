package netio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVarInt_KnownEncodings(t *testing.T) {
	cases := []struct {
		value VarInt
		want  []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{2, []byte{0x02}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{255, []byte{0xff, 0x01}},
		{25565, []byte{0xdd, 0xc7, 0x01}},
		{2097151, []byte{0xff, 0xff, 0x7f}},
		{2147483647, []byte{0xff, 0xff, 0xff, 0xff, 0x07}},
		{-1, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
		{-2147483648, []byte{0x80, 0x80, 0x80, 0x80, 0x08}},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		require.NoError(t, c.value.Encode(&buf))
		require.Equal(t, c.want, buf.Bytes(), "encode %d", c.value)
		require.Equal(t, len(c.want), c.value.Len())

		got, err := DecodeVarInt(bytes.NewReader(c.want))
		require.NoError(t, err)
		require.Equal(t, c.value, got)
	}
}

func TestVarInt_RoundTrip(t *testing.T) {
	values := []int32{0, 1, -1, 127, 128, -128, 1 << 20, -(1 << 20), 2147483647, -2147483648}
	for _, v := range values {
		var buf bytes.Buffer
		require.NoError(t, VarInt(v).Encode(&buf))
		got, err := DecodeVarInt(&buf)
		require.NoError(t, err)
		require.Equal(t, v, int32(got))
	}
}

func TestVarInt_TooBig(t *testing.T) {
	data := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	_, err := DecodeVarInt(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrVarIntTooBig)
}

func TestVarLong_RoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 9223372036854775807, -9223372036854775808}
	for _, v := range values {
		var buf bytes.Buffer
		require.NoError(t, VarLong(v).Encode(&buf))
		got, err := DecodeVarLong(&buf)
		require.NoError(t, err)
		require.Equal(t, v, int64(got))
	}
}
