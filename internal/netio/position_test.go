package netio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPosition_RoundTrip(t *testing.T) {
	cases := []Position{
		{X: 0, Y: 0, Z: 0},
		{X: 18357644, Y: 831, Z: -20882616},
		{X: -33554432, Y: -2048, Z: 33554431},
		{X: 1, Y: -1, Z: 1},
	}
	for _, p := range cases {
		var buf bytes.Buffer
		require.NoError(t, p.Encode(&buf))
		got, err := DecodePosition(&buf)
		require.NoError(t, err)
		require.Equal(t, p, got)
	}
}
