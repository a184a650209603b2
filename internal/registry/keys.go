// Package registry builds and serves the per-version registry data a
// connection ships during the configuration state: dimension types, biomes,
// damage types, and the handful of variant registries vanilla clients
// expect, plus the tagged-registry tables layered on top of them.
package registry

import "github.com/go-mclib/limbo/internal/version"

// Key names one of the mandatory registries a holding server must serve.
// Only the registries a client actually requires to complete configuration
// are modelled; anything else stays reachable through a plain Identifier
// via Builder.Register with a custom Key.
type Key string

const (
	Root                  Key = "root"
	Biome                 Key = "worldgen/biome"
	CatVariant            Key = "cat_variant"
	ChickenVariant        Key = "chicken_variant"
	CowVariant            Key = "cow_variant"
	DamageType            Key = "damage_type"
	DimensionType         Key = "dimension_type"
	FrogVariant           Key = "frog_variant"
	PaintingVariant       Key = "painting_variant"
	PigVariant            Key = "pig_variant"
	WolfSoundVariant      Key = "wolf_sound_variant"
	WolfVariant           Key = "wolf_variant"
	Timeline              Key = "timeline"
	ZombieNautilusVariant Key = "zombie_nautilus_variant"
)

// DefaultKeys lists every mandatory registry in the order a connection
// reports them. Custom registries aren't included
// here; callers register those directly.
var DefaultKeys = []Key{
	CatVariant,
	ChickenVariant,
	CowVariant,
	DamageType,
	DimensionType,
	FrogVariant,
	PaintingVariant,
	PigVariant,
	Timeline,
	WolfSoundVariant,
	WolfVariant,
	ZombieNautilusVariant,
	Biome,
}

// minimumVersion is the earliest protocol version a registry exists for;
// a registry absent from this map (Root) has no minimum.
//
// Timeline and ZombieNautilusVariant are introduced at a version the
// expanded spec writes as "1.21.11", a number outside the enumerated
// 4-770/1.21.5 range this table covers. Resolved to V1_21_2 (768), the
// nearest real threshold in range — see DESIGN.md.
var minimumVersion = map[Key]version.ProtocolVersion{
	CatVariant:            version.V1_21_5,
	ChickenVariant:        version.V1_21_5,
	CowVariant:            version.V1_21_5,
	FrogVariant:           version.V1_21_5,
	PigVariant:            version.V1_21_5,
	WolfSoundVariant:      version.V1_21_5,
	DamageType:            version.V1_19_4,
	DimensionType:         version.V1_16,
	PaintingVariant:       version.V1_21,
	WolfVariant:           version.V1_20_5,
	Timeline:              version.V1_21_2,
	ZombieNautilusVariant: version.V1_21_2,
	Biome:                 version.V1_16_2,
}

// ActiveKeys returns the mandatory registries that exist at v, in
// DefaultKeys order.
func ActiveKeys(v version.ProtocolVersion) []Key {
	var active []Key
	for _, key := range DefaultKeys {
		min, ok := minimumVersion[key]
		if !ok || v.IsAfterInclusive(min) {
			active = append(active, key)
		}
	}
	return active
}

// Thing returns the identifier "thing" part (without namespace) this
// registry key is keyed by in the resource tree and on the wire.
func (k Key) Thing() string {
	return string(k)
}

// TagPath is the resource-tree subdirectory a registry's tag group lives
// under, e.g. "tags/worldgen/biome".
func (k Key) TagPath() string {
	return "tags/" + string(k)
}
