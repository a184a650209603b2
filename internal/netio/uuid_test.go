package netio

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestUUID_RoundTrip(t *testing.T) {
	id := uuid.New()
	wire := FromGoogle(id)

	var buf bytes.Buffer
	require.NoError(t, wire.Encode(&buf))
	require.Equal(t, 16, buf.Len())

	got, err := DecodeUUID(&buf)
	require.NoError(t, err)
	require.Equal(t, wire, got)
	require.Equal(t, id, got.ToGoogle())
	require.Equal(t, id.String(), got.String())
}

func TestUUID_SplitBits(t *testing.T) {
	id := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	wire := FromGoogle(id)
	require.Equal(t, int64(0), wire.MostSignificantBits())
	require.Equal(t, int64(1), wire.LeastSignificantBits())
}
