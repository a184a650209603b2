package blockmapping_test

import (
	"testing"

	"github.com/go-mclib/limbo/internal/blockmapping"
	"github.com/go-mclib/limbo/internal/version"
)

func TestBuild_CanonicalOrder(t *testing.T) {
	report := []blockmapping.RawBlock{
		{Name: "minecraft:stone", States: []blockmapping.RawState{{ReportID: 1, Default: true}}},
		{Name: "minecraft:air", States: []blockmapping.RawState{{ReportID: 0, Default: true}}},
	}
	mapping := blockmapping.Build(report)

	if mapping.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", mapping.Len())
	}
	// "minecraft:air" sorts before "minecraft:stone" lexicographically.
	if mapping.Blocks[0].Name != "minecraft:air" {
		t.Fatalf("Blocks[0].Name = %q, want minecraft:air", mapping.Blocks[0].Name)
	}
	if mapping.Blocks[0].States[0].InternalID != 0 {
		t.Fatalf("air's internal id = %d, want 0", mapping.Blocks[0].States[0].InternalID)
	}
}

func TestBuild_PropertySortWithinBlock(t *testing.T) {
	report := []blockmapping.RawBlock{
		{Name: "minecraft:grass_block", States: []blockmapping.RawState{
			{ReportID: 9, Properties: []blockmapping.Property{{Name: "snowy", Value: "false"}}, Default: true},
			{ReportID: 8, Properties: []blockmapping.Property{{Name: "snowy", Value: "true"}}},
		}},
	}
	mapping := blockmapping.Build(report)
	block := mapping.Blocks[0]
	if len(block.States) != 2 {
		t.Fatalf("expected 2 states, got %d", len(block.States))
	}
	// "snowy=false;" < "snowy=true;" lexicographically.
	if block.States[0].Properties[0].Value != "false" {
		t.Fatalf("states[0] properties = %#v", block.States[0].Properties)
	}
	if block.DefaultState != 0 {
		t.Fatalf("DefaultState = %d, want 0", block.DefaultState)
	}
}

func TestBuildReportMapping_StoneFallback(t *testing.T) {
	canonical := []blockmapping.RawBlock{
		{Name: "minecraft:air", States: []blockmapping.RawState{{ReportID: 0, Default: true}}},
		{Name: "minecraft:stone", States: []blockmapping.RawState{{ReportID: 1, Default: true}}},
		{Name: "minecraft:future_block", States: []blockmapping.RawState{{ReportID: 500, Default: true}}},
	}
	mapping := blockmapping.Build(canonical)

	// simulate an older report that doesn't know about future_block
	oldReport := []blockmapping.RawBlock{
		{Name: "minecraft:air", States: []blockmapping.RawState{{ReportID: 0, Default: true}}},
		{Name: "minecraft:stone", States: []blockmapping.RawState{{ReportID: 1, Default: true}}},
	}
	rm := blockmapping.BuildReportMapping(version.V1_8, oldReport, mapping)

	id, _ := mapping.DefaultStateFor("minecraft:future_block")
	if rm.Entries[id] != blockmapping.StoneReportID {
		t.Fatalf("expected stone fallback, got %d", rm.Entries[id])
	}
}

func TestStaticMapping(t *testing.T) {
	mapping, report := blockmapping.StaticMapping()
	if mapping.Len() == 0 {
		t.Fatalf("expected non-empty static mapping")
	}
	airID, ok := mapping.DefaultStateFor("minecraft:air")
	if !ok {
		t.Fatalf("expected minecraft:air in static mapping")
	}
	if report.Entries[airID] != 0 {
		t.Fatalf("air report id = %d, want 0", report.Entries[airID])
	}
	block, state, ok := mapping.ByInternalID(airID)
	if !ok || block.Name != "minecraft:air" || !state.Transparent {
		t.Fatalf("ByInternalID(air) = %#v, %#v, %v", block, state, ok)
	}
}
