package identifier_test

import (
	"bytes"
	"testing"

	"github.com/go-mclib/limbo/internal/identifier"
	"github.com/stretchr/testify/require"
)

func TestParse_DefaultsNamespace(t *testing.T) {
	id, err := identifier.Parse("stone")
	require.NoError(t, err)
	require.Equal(t, "minecraft", id.Namespace)
	require.Equal(t, "stone", id.Thing)
}

func TestParse_ExplicitNamespace(t *testing.T) {
	id, err := identifier.Parse("custom:my_item")
	require.NoError(t, err)
	require.Equal(t, "custom", id.Namespace)
	require.Equal(t, "my_item", id.Thing)
	require.Equal(t, "custom:my_item", id.String())
}

func TestParse_RejectsUppercase(t *testing.T) {
	_, err := identifier.Parse("Custom:Thing")
	require.Error(t, err)
}

func TestParse_AllowsSlashInThing(t *testing.T) {
	id, err := identifier.Parse("minecraft:textures/block/stone.png")
	require.NoError(t, err)
	require.Equal(t, "textures/block/stone.png", id.Thing)
}

func TestParse_RejectsSlashInNamespace(t *testing.T) {
	_, err := identifier.Parse("a/b:thing")
	require.Error(t, err)
}

func TestParse_EmptyThing(t *testing.T) {
	_, err := identifier.New("minecraft", "")
	require.Error(t, err)
}

func TestIsTag(t *testing.T) {
	id, err := identifier.New("#minecraft", "planks")
	require.NoError(t, err)
	require.True(t, id.IsTag())
	require.False(t, id.Normalize().IsTag())
	require.Equal(t, "minecraft", id.Normalize().Namespace)
}

func TestWireRoundTrip(t *testing.T) {
	id := identifier.VanillaUnchecked("the_end")
	var buf bytes.Buffer
	require.NoError(t, id.Encode(&buf))

	got, err := identifier.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, id, got)
}
