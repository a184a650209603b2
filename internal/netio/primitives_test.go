package netio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrimitives_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Boolean(true).Encode(&buf))
	require.NoError(t, Int8(-12).Encode(&buf))
	require.NoError(t, Uint8(200).Encode(&buf))
	require.NoError(t, Int16(-1000).Encode(&buf))
	require.NoError(t, Uint16(60000).Encode(&buf))
	require.NoError(t, Int32(-70000).Encode(&buf))
	require.NoError(t, Int64(-1).Encode(&buf))
	require.NoError(t, Float32(3.5).Encode(&buf))
	require.NoError(t, Float64(-2.25).Encode(&buf))

	b, err := DecodeBoolean(&buf)
	require.NoError(t, err)
	require.True(t, bool(b))

	i8, err := DecodeInt8(&buf)
	require.NoError(t, err)
	require.Equal(t, Int8(-12), i8)

	u8, err := DecodeUint8(&buf)
	require.NoError(t, err)
	require.Equal(t, Uint8(200), u8)

	i16, err := DecodeInt16(&buf)
	require.NoError(t, err)
	require.Equal(t, Int16(-1000), i16)

	u16, err := DecodeUint16(&buf)
	require.NoError(t, err)
	require.Equal(t, Uint16(60000), u16)

	i32, err := DecodeInt32(&buf)
	require.NoError(t, err)
	require.Equal(t, Int32(-70000), i32)

	i64, err := DecodeInt64(&buf)
	require.NoError(t, err)
	require.Equal(t, Int64(-1), i64)

	f32, err := DecodeFloat32(&buf)
	require.NoError(t, err)
	require.Equal(t, Float32(3.5), f32)

	f64, err := DecodeFloat64(&buf)
	require.NoError(t, err)
	require.Equal(t, Float64(-2.25), f64)
}

func TestAngle_FromDegrees(t *testing.T) {
	require.Equal(t, Angle(0), FromDegrees(0))
	require.Equal(t, Angle(128), FromDegrees(180))
	require.Equal(t, Angle(64), FromDegrees(90))
}
