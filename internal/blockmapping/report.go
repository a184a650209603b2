package blockmapping

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// reportBlock and reportState mirror the shape of vanilla's generated
// `reports/blocks.json`: a map from block name to its property domain and
// state list, each state carrying the version's own numeric id.
//
// Grounded on blocks_report_data's BlockData/Block/BlockState Deserialize
// structs: properties is an optional map of allowed property values (unused
// here beyond presence), states carry the report id, an optional property
// assignment, and a default flag.
type reportBlock struct {
	Properties map[string][]string `json:"properties,omitempty"`
	States     []reportState       `json:"states"`
}

type reportState struct {
	ID         uint16            `json:"id"`
	Properties map[string]string `json:"properties,omitempty"`
	Default    bool              `json:"default,omitempty"`
}

// LoadReport reads a vanilla `reports/blocks.json` file - gzip-compressed
// if its name ends in .gz, since the data generator's full report set is
// large enough that operators often ship it compressed - and converts it
// to the []RawBlock shape Build/BuildReportMapping consume, applying the
// transparency/light supplementary table (see transparency.go) since that
// information isn't part of the generated report.
func LoadReport(path string) ([]RawBlock, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("blockmapping: open report %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("blockmapping: open gzip report %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	var raw map[string]reportBlock
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("blockmapping: parse report %s: %w", path, err)
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	blocks := make([]RawBlock, 0, len(names))
	for _, name := range names {
		rb := raw[name]
		block := RawBlock{Name: name}
		for _, st := range rb.States {
			props := make([]Property, 0, len(st.Properties))
			for k, v := range st.Properties {
				props = append(props, Property{Name: k, Value: v})
			}
			sort.Slice(props, func(i, j int) bool { return props[i].Name < props[j].Name })

			transparent, light := lookupLightingHints(name)
			block.States = append(block.States, RawState{
				ReportID:    st.ID,
				Properties:  props,
				Default:     st.Default,
				Transparent: transparent,
				LightLevel:  light,
			})
		}
		blocks = append(blocks, block)
	}

	return blocks, nil
}
