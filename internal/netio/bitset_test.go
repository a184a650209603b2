package netio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitSet_RoundTrip(t *testing.T) {
	bs := NewBitSet(130)
	bs.Set(0)
	bs.Set(63)
	bs.Set(64)
	bs.Set(129)

	var buf bytes.Buffer
	require.NoError(t, bs.Encode(&buf))

	got, err := DecodeBitSet(&buf)
	require.NoError(t, err)
	require.Equal(t, bs.Data, got.Data)
	require.True(t, got.Get(0))
	require.True(t, got.Get(63))
	require.True(t, got.Get(64))
	require.True(t, got.Get(129))
	require.False(t, got.Get(1))
}

func TestFixedBitSet_RoundTrip(t *testing.T) {
	bs := NewFixedBitSet(26)
	bs.Set(0)
	bs.Set(25)

	var buf bytes.Buffer
	require.NoError(t, bs.Encode(&buf))
	require.Equal(t, 4, buf.Len())

	got, err := DecodeFixedBitSet(&buf, 26)
	require.NoError(t, err)
	require.Equal(t, bs.Data, got.Data)
}
