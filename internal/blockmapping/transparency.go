package blockmapping

// lightingHints is a small hand-curated supplement for the handful of
// blocks a static holding world actually places: vanilla's generated
// blocks.json carries no transparency or light-emission data, so the
// values below are taken from the vanilla block table directly rather than
// any report. Everything not listed defaults to opaque, non-emitting,
// which is correct for the overwhelming majority of blocks.
var lightingHints = map[string]struct {
	transparent bool
	light       uint8
}{
	"minecraft:air":         {transparent: true, light: 0},
	"minecraft:cave_air":    {transparent: true, light: 0},
	"minecraft:void_air":    {transparent: true, light: 0},
	"minecraft:barrier":     {transparent: true, light: 0},
	"minecraft:water":       {transparent: true, light: 0},
	"minecraft:glass":       {transparent: true, light: 0},
	"minecraft:glowstone":   {transparent: false, light: 15},
	"minecraft:sea_lantern":  {transparent: false, light: 15},
	"minecraft:torch":       {transparent: true, light: 14},
	"minecraft:lava":        {transparent: false, light: 15},
}

func lookupLightingHints(blockName string) (transparent bool, light uint8) {
	if hint, ok := lightingHints[blockName]; ok {
		return hint.transparent, hint.light
	}
	return false, 0
}
