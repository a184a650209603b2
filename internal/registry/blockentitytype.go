package registry

// blockEntityTypeIDs maps a handful of vanilla block entity type
// identifiers to their registry id in the (unshipped, see DESIGN.md)
// "minecraft:block_entity_type" registry - the same hand-curated,
// best-available-default status as StaticManager's dimension/biome
// entries. Only the kinds internal/schematic's block-entity parser
// distinguishes are listed.
var blockEntityTypeIDs = map[string]int32{
	"minecraft:sign":         7,
	"minecraft:hanging_sign": 29,
}

// BlockEntityTypeID resolves a block entity's type identifier to its
// wire registry id, defaulting to the sign id for any type this server
// doesn't otherwise recognize - a holding world's schematics overwhelmingly
// carry sign block entities, so that default degrades better than a
// zero id naming an unrelated entity type.
func BlockEntityTypeID(name string) int32 {
	if id, ok := blockEntityTypeIDs[name]; ok {
		return id
	}
	return blockEntityTypeIDs["minecraft:sign"]
}
