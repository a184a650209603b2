package registry

import (
	"github.com/go-mclib/limbo/internal/identifier"
	"github.com/go-mclib/limbo/internal/nbt"
)

// StaticManager builds a Manager from a small hand-curated data set: enough
// entries per mandatory registry for a minimal holding world to complete
// configuration and enter a single dimension. This build ships no
// generated vanilla reports/data directory (see DESIGN.md); cmd/limbo
// always uses StaticManager, and internal/config has no setting that
// points LoadFromResourcePath at a resource tree.
func StaticManager() *Manager {
	m := NewBuilder().WithDefaults().Build()

	overworld := nbt.Compound{
		"piglin_safe":                     nbt.Byte(0),
		"natural":                         nbt.Byte(1),
		"ambient_light":                   nbt.Float(0),
		"infiniburn":                      nbt.String("#minecraft:infiniburn_overworld"),
		"respawn_anchor_works":            nbt.Byte(0),
		"has_skylight":                    nbt.Byte(1),
		"bed_works":                       nbt.Byte(1),
		"effects":                         nbt.String("minecraft:overworld"),
		"has_raids":                       nbt.Byte(1),
		"logical_height":                  nbt.Int(384),
		"coordinate_scale":                nbt.Double(1),
		"monster_spawn_light_level":       nbt.Int(0),
		"monster_spawn_block_light_limit": nbt.Int(0),
		"has_ceiling":                     nbt.Byte(0),
		"ultrawarm":                       nbt.Byte(0),
		"height":                          nbt.Int(384),
		"min_y":                           nbt.Int(-64),
	}
	if reg, ok := m.Get(DimensionType); ok {
		reg.Add(identifier.VanillaUnchecked("overworld"), overworld)
	}

	if reg, ok := m.Get(Biome); ok {
		reg.Add(identifier.VanillaUnchecked("plains"), nbt.Compound{
			"precipitation":   nbt.String("rain"),
			"temperature":     nbt.Float(0.8),
			"downfall":        nbt.Float(0.4),
			"has_precipitation": nbt.Byte(1),
			"effects": nbt.Compound{
				"sky_color":       nbt.Int(7907327),
				"fog_color":       nbt.Int(12638463),
				"water_color":     nbt.Int(4159204),
				"water_fog_color": nbt.Int(329011),
			},
		})
	}

	if reg, ok := m.Get(DamageType); ok {
		reg.Add(identifier.VanillaUnchecked("generic"), nbt.Compound{
			"message_id":  nbt.String("generic"),
			"scaling":     nbt.String("when_caused_by_living_non_player"),
			"exhaustion":  nbt.Float(0),
		})
	}

	for _, key := range []Key{CatVariant, ChickenVariant, CowVariant, FrogVariant, PigVariant, WolfVariant, WolfSoundVariant, PaintingVariant} {
		if reg, ok := m.Get(key); ok {
			reg.Add(identifier.VanillaUnchecked("default"), nbt.Compound{"asset_id": nbt.String("minecraft:entity/default")})
		}
	}

	return m
}

