package schematic

import (
	"testing"

	"github.com/go-mclib/limbo/internal/blockmapping"
	"github.com/go-mclib/limbo/internal/nbt"
)

func testMapping() *blockmapping.Mapping {
	return blockmapping.Build([]blockmapping.RawBlock{
		{Name: "minecraft:air", States: []blockmapping.RawState{
			{ReportID: 0, Default: true},
		}},
		{Name: "minecraft:stone", States: []blockmapping.RawState{
			{ReportID: 1, Default: true},
		}},
		{Name: "minecraft:oak_log", States: []blockmapping.RawState{
			{ReportID: 2, Properties: []blockmapping.Property{{Name: "axis", Value: "x"}}, Default: true},
			{ReportID: 3, Properties: []blockmapping.Property{{Name: "axis", Value: "y"}}},
			{ReportID: 4, Properties: []blockmapping.Property{{Name: "axis", Value: "z"}}},
		}},
	})
}

func TestParseBlockStateString(t *testing.T) {
	cases := []struct {
		in       string
		wantName string
		wantLen  int
	}{
		{"minecraft:stone", "minecraft:stone", 0},
		{"minecraft:oak_log[axis=y]", "minecraft:oak_log", 1},
		{"minecraft:chest[facing=north,waterlogged=false]", "minecraft:chest", 2},
	}
	for _, tc := range cases {
		name, props, err := ParseBlockStateString(tc.in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.in, err)
		}
		if name != tc.wantName {
			t.Fatalf("%q: expected name %q, got %q", tc.in, tc.wantName, name)
		}
		if len(props) != tc.wantLen {
			t.Fatalf("%q: expected %d props, got %d", tc.in, tc.wantLen, len(props))
		}
	}
}

func TestParseBlockStateString_Malformed(t *testing.T) {
	if _, _, err := ParseBlockStateString("minecraft:chest[facing=north"); err == nil {
		t.Fatal("expected error for missing closing bracket")
	}
	if _, _, err := ParseBlockStateString("minecraft:chest[facing]"); err == nil {
		t.Fatal("expected error for property with no value")
	}
}

func TestBuildSchematicPalette_ResolvesSpecificState(t *testing.T) {
	mapping := testMapping()
	paletteNBT := nbt.Compound{
		"minecraft:stone":          nbt.Int(0),
		"minecraft:oak_log[axis=y]": nbt.Int(1),
	}
	palette, err := buildSchematicPalette(paletteNBT, mapping)
	if err != nil {
		t.Fatalf("buildSchematicPalette: %v", err)
	}

	stoneID, _ := mapping.DefaultStateFor("minecraft:stone")
	logYID, _ := mapping.StateID("minecraft:oak_log", []blockmapping.Property{{Name: "axis", Value: "y"}})

	if palette[0] != stoneID {
		t.Fatalf("expected palette[0] = stone id %d, got %d", stoneID, palette[0])
	}
	if palette[1] != logYID {
		t.Fatalf("expected palette[1] = oak_log[axis=y] id %d, got %d", logYID, palette[1])
	}
}

func TestBuildSchematicPalette_UnresolvableEntryDefaultsToAir(t *testing.T) {
	mapping := testMapping()
	paletteNBT := nbt.Compound{
		"minecraft:nonexistent_block": nbt.Int(0),
	}
	palette, err := buildSchematicPalette(paletteNBT, mapping)
	if err != nil {
		t.Fatalf("buildSchematicPalette: %v", err)
	}
	airID, _ := mapping.DefaultStateFor(airName)
	if palette[0] != airID {
		t.Fatalf("expected unresolvable entry to default to air (%d), got %d", airID, palette[0])
	}
}

func TestDecodeVarIntStream(t *testing.T) {
	// 0, 1, 127, 128, 300 encoded as a contiguous VarInt byte stream.
	raw := []byte{0x00, 0x01, 0x7F, 0x80, 0x01, 0xAC, 0x02}
	values, err := decodeVarIntStream(raw)
	if err != nil {
		t.Fatalf("decodeVarIntStream: %v", err)
	}
	want := []int32{0, 1, 127, 128, 300}
	if len(values) != len(want) {
		t.Fatalf("expected %d values, got %d: %v", len(want), len(values), values)
	}
	for i, v := range want {
		if values[i] != v {
			t.Fatalf("value %d: expected %d, got %d", i, v, values[i])
		}
	}
}

func TestSchematic_PositionToIndex_IsYOuterOrdering(t *testing.T) {
	s := &Schematic{Width: 3, Height: 2, Length: 4}
	// y=1, z=2, x=1 -> 1*4*3 + 2*3 + 1 = 12 + 6 + 1 = 19
	if got := s.PositionToIndex(1, 1, 2); got != 19 {
		t.Fatalf("expected index 19, got %d", got)
	}
}

func TestSchematic_BlockStateAt_OutOfBoundsDefaultsToAir(t *testing.T) {
	mapping := testMapping()
	airID, _ := mapping.DefaultStateFor(airName)
	stoneID, _ := mapping.DefaultStateFor("minecraft:stone")

	s := &Schematic{
		Width: 2, Height: 1, Length: 1,
		BlockData: []uint16{stoneID, stoneID},
	}

	if got := s.BlockStateAt(0, 0, 0, mapping); got != stoneID {
		t.Fatalf("expected stone at (0,0,0), got %d", got)
	}
	if got := s.BlockStateAt(5, 0, 0, mapping); got != airID {
		t.Fatalf("expected air for out-of-bounds x, got %d", got)
	}
	if got := s.BlockStateAt(0, -1, 0, mapping); got != airID {
		t.Fatalf("expected air for negative y, got %d", got)
	}
}

func TestGenericFromNBT_StripsReservedKeys(t *testing.T) {
	raw := nbt.Compound{
		"Id": nbt.String("minecraft:chest"),
		"Pos": nbt.IntArray{1, 2, 3},
		"x": nbt.Int(1), "y": nbt.Int(2), "z": nbt.Int(3),
		"keepPacked": nbt.Byte(1),
		"Items":      nbt.List{},
	}
	filtered := GenericFromNBT(raw)
	if len(filtered) != 1 {
		t.Fatalf("expected only Items to survive, got %d keys: %v", len(filtered), filtered)
	}
	if _, ok := filtered["Items"]; !ok {
		t.Fatalf("expected Items to survive filtering")
	}
}

func TestParseBlockEntities_SplitsSignFromGeneric(t *testing.T) {
	list := nbt.List{
		ElementType: nbt.TagCompound,
		Elements: []nbt.Tag{
			nbt.Compound{
				"Id":  nbt.String("minecraft:sign"),
				"Pos": nbt.IntArray{1, 2, 3},
				"front_text": nbt.Compound{
					"color":            nbt.String("red"),
					"has_glowing_text": nbt.Byte(1),
					"messages":         nbt.List{ElementType: nbt.TagString, Elements: []nbt.Tag{nbt.String(`"hello"`)}},
				},
				"back_text": nbt.Compound{
					"color": nbt.String("black"),
				},
				"is_waxed": nbt.Byte(0),
			},
			nbt.Compound{
				"Id":    nbt.String("minecraft:chest"),
				"x":     nbt.Int(4),
				"y":     nbt.Int(5),
				"z":     nbt.Int(6),
				"Items": nbt.List{},
			},
		},
	}

	entities := parseBlockEntities(list)
	if len(entities) != 2 {
		t.Fatalf("expected 2 block entities, got %d", len(entities))
	}

	sign := entities[0]
	if sign.Kind != Sign {
		t.Fatalf("expected first entity to be Sign, got %v", sign.Kind)
	}
	if sign.X != 1 || sign.Y != 2 || sign.Z != 3 {
		t.Fatalf("unexpected sign position: %d,%d,%d", sign.X, sign.Y, sign.Z)
	}
	if sign.Sign.FrontFace.Color != "red" || !sign.Sign.FrontFace.IsGlowing {
		t.Fatalf("unexpected front face: %+v", sign.Sign.FrontFace)
	}

	chest := entities[1]
	if chest.Kind != Generic {
		t.Fatalf("expected second entity to be Generic, got %v", chest.Kind)
	}
	if chest.X != 4 || chest.Y != 5 || chest.Z != 6 {
		t.Fatalf("unexpected chest position: %d,%d,%d", chest.X, chest.Y, chest.Z)
	}
	if _, ok := chest.NBT["Items"]; !ok {
		t.Fatalf("expected chest NBT to retain Items")
	}
	if _, ok := chest.NBT["Id"]; ok {
		t.Fatalf("expected chest NBT to have Id filtered out")
	}
}
