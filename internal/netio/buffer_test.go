package netio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPacketBuffer_WriteReadRoundTrip(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteVarInt(300))
	require.NoError(t, w.WriteBool(true))
	require.NoError(t, w.WriteString("limbo"))
	require.NoError(t, w.WriteInt32(-42))
	require.NoError(t, w.WritePosition(Position{X: 1, Y: 2, Z: 3}))

	r := NewReader(w.Bytes())

	vi, err := r.ReadVarInt()
	require.NoError(t, err)
	require.Equal(t, VarInt(300), vi)

	b, err := r.ReadBool()
	require.NoError(t, err)
	require.True(t, bool(b))

	s, err := r.ReadString(0)
	require.NoError(t, err)
	require.Equal(t, String("limbo"), s)

	i32, err := r.ReadInt32()
	require.NoError(t, err)
	require.Equal(t, Int32(-42), i32)

	pos, err := r.ReadPosition()
	require.NoError(t, err)
	require.Equal(t, Position{X: 1, Y: 2, Z: 3}, pos)
}

func TestPacketBuffer_WrongModeErrors(t *testing.T) {
	w := NewWriter()
	_, err := w.Read(make([]byte, 1))
	require.Error(t, err)

	r := NewReader(nil)
	_, err = r.Write([]byte{1})
	require.Error(t, err)
}
