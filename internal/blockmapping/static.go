package blockmapping

import "github.com/go-mclib/limbo/internal/version"

// staticReport is the built-in report StaticMapping builds from; cmd/limbo
// always uses it, since internal/config has no setting that points at a
// generated `reports/blocks.json` for LoadReport to read. Just enough
// states for the block mapping's own test fixtures and for a minimal
// holding world to place air, stone, and bedrock. It is intentionally not
// a full vanilla block table — see DESIGN.md for why the generated vanilla
// reports aren't available to this build.
var staticReport = []RawBlock{
	{Name: "minecraft:air", States: []RawState{
		{ReportID: 0, Default: true, Transparent: true, LightLevel: 0},
	}},
	{Name: "minecraft:stone", States: []RawState{
		{ReportID: 1, Default: true},
	}},
	{Name: "minecraft:bedrock", States: []RawState{
		{ReportID: 33, Default: true},
	}},
	{Name: "minecraft:dirt", States: []RawState{
		{ReportID: 10, Default: true},
	}},
	{Name: "minecraft:grass_block", States: []RawState{
		{ReportID: 9, Properties: []Property{{Name: "snowy", Value: "false"}}, Default: true},
		{ReportID: 8, Properties: []Property{{Name: "snowy", Value: "true"}}},
	}},
	{Name: "minecraft:barrier", States: []RawState{
		{ReportID: 7804, Default: true, Transparent: true},
	}},
}

// StaticMapping builds the canonical Mapping and a single-version
// ReportMapping from the built-in fallback report. Useful for tests and
// for running a holding server with no generated registry data configured.
func StaticMapping() (*Mapping, *ReportMapping) {
	mapping := Build(staticReport)
	report := BuildReportMapping(version.Latest, staticReport, mapping)
	return mapping, report
}
