package schematic

import (
	"fmt"
	"strings"

	"github.com/go-mclib/limbo/internal/blockmapping"
)

// ParseBlockStateString parses a schematic palette entry's block-state
// string, e.g. "minecraft:oak_log[axis=y]" or "minecraft:stone", into a
// block name and its sorted property list. This is the standard
// blockstate-string syntax vanilla's own data generator and schematic
// format both use: "<name>[<key>=<value>,<key>=<value>,...]", properties
// optional.
func ParseBlockStateString(s string) (name string, props []blockmapping.Property, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil, fmt.Errorf("schematic: empty block state string")
	}

	open := strings.IndexByte(s, '[')
	if open < 0 {
		return s, nil, nil
	}
	if !strings.HasSuffix(s, "]") {
		return "", nil, fmt.Errorf("schematic: malformed block state string %q: missing closing ]", s)
	}

	name = s[:open]
	body := s[open+1 : len(s)-1]
	if body == "" {
		return name, nil, nil
	}

	for _, pair := range strings.Split(body, ",") {
		eq := strings.IndexByte(pair, '=')
		if eq < 0 {
			return "", nil, fmt.Errorf("schematic: malformed property %q in %q", pair, s)
		}
		props = append(props, blockmapping.Property{
			Name:  strings.TrimSpace(pair[:eq]),
			Value: strings.TrimSpace(pair[eq+1:]),
		})
	}
	return name, props, nil
}
