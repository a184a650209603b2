package registry

import (
	"fmt"

	"github.com/go-mclib/limbo/internal/identifier"
	"github.com/go-mclib/limbo/internal/nbt"
)

// Info summarizes the fields a connection needs out of a dimension_type
// registry entry without reaching back into its raw NBT: world height,
// the y coordinate the lowest section starts at, its protocol id, and its
// registry key.
type Info struct {
	Height     int32
	MinY       int32
	ProtocolID uint32
	Key        identifier.Identifier
}

// DimensionInfo looks up dimension in the manager's dimension_type
// registry and extracts its height/min_y/protocol id.
func DimensionInfo(m *Manager, dimension identifier.Identifier) (Info, error) {
	reg, ok := m.Get(DimensionType)
	if !ok {
		return Info{}, fmt.Errorf("registry: dimension_type not registered")
	}
	entry, ok := reg.Get(dimension)
	if !ok {
		return Info{}, fmt.Errorf("registry: unknown dimension %s", dimension)
	}

	compound, ok := entry.Data.(nbt.Compound)
	if !ok {
		return Info{}, fmt.Errorf("registry: dimension %s has non-compound data", dimension)
	}

	return Info{
		Height:     compound.GetInt("height"),
		MinY:       compound.GetInt("min_y"),
		ProtocolID: entry.ProtocolID,
		Key:        entry.Name,
	}, nil
}
