// Package blockmapping builds and serves the canonical, version-independent
// block-state table every connected client is remapped through: a single
// "internal id" space assigned once across all supported protocol versions,
// plus a per-version table translating internal ids back to that version's
// own numeric block-state id (its "report id", named for the vanilla data
// generator's `reports/blocks.json`).
package blockmapping

import (
	"sort"

	"github.com/go-mclib/limbo/internal/version"
)

// Property is a single block-state property key/value pair, e.g. ("facing",
// "north"). A state's property set is always stored sorted by Name so two
// equal states compare and hash identically regardless of source order.
type Property struct {
	Name  string
	Value string
}

// State is one block state: a unique internal id, its sorted properties,
// and the lighting/visibility facts the chunk/palette engine needs.
type State struct {
	InternalID    uint16
	Properties    []Property
	Transparent   bool
	LightLevel    uint8 // 0-15
}

// Block is a block name and the ordered list of its states.
type Block struct {
	Name         string
	States       []State
	DefaultState int // index into States
}

// Mapping is the canonical, cross-version table: block names sorted
// lexicographically, and within a block its states sorted by property
// tuple (lexicographic on sorted property keys), matching the order the
// spec's InternalBlockMapping is defined to hold.
type Mapping struct {
	Blocks     []Block
	byInternal []stateRef // indexed by InternalID
	byName     map[string]int
}

type stateRef struct {
	block int
	state int
}

// StoneReportID is the fallback report id ("minecraft:stone") substituted
// for any version that lacks a canonical state.
const StoneReportID = 1

// ByInternalID returns the block and state for an internal id, or false if
// it's out of range.
func (m *Mapping) ByInternalID(id uint16) (Block, State, bool) {
	if int(id) >= len(m.byInternal) {
		return Block{}, State{}, false
	}
	ref := m.byInternal[id]
	return m.Blocks[ref.block], m.Blocks[ref.block].States[ref.state], true
}

// DefaultStateFor returns the default state's internal id for a block name.
func (m *Mapping) DefaultStateFor(name string) (uint16, bool) {
	i, ok := m.byName[name]
	if !ok {
		return 0, false
	}
	b := m.Blocks[i]
	return b.States[b.DefaultState].InternalID, true
}

// StateID returns the internal id of the state matching name and props
// exactly, falling back to the block's default state if props is empty.
func (m *Mapping) StateID(name string, props []Property) (uint16, bool) {
	i, ok := m.byName[name]
	if !ok {
		return 0, false
	}
	b := m.Blocks[i]
	if len(props) == 0 {
		return b.States[b.DefaultState].InternalID, true
	}
	key := propertyKey(props)
	for _, st := range b.States {
		if propertyKey(st.Properties) == key {
			return st.InternalID, true
		}
	}
	return 0, false
}

// Len reports the number of canonical internal states.
func (m *Mapping) Len() int {
	return len(m.byInternal)
}

// stateKey identifies a state across versions: block name plus its sorted
// property tuple. Two reports' states with the same key are the same
// canonical state.
type stateKey struct {
	name  string
	props string // properties joined deterministically, see propertyKey
}

func propertyKey(props []Property) string {
	sorted := append([]Property(nil), props...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	var b []byte
	for _, p := range sorted {
		b = append(b, p.Name...)
		b = append(b, '=')
		b = append(b, p.Value...)
		b = append(b, ';')
	}
	return string(b)
}

// RawBlock and RawState mirror the shape of a version's reports/blocks.json
// entry, decoded by LoadReport in report.go.
type RawBlock struct {
	Name   string
	States []RawState
}

type RawState struct {
	ReportID   uint16
	Properties []Property
	Default    bool
	// Transparent and LightLevel aren't part of vanilla's blocks.json; they
	// come from a small supplementary table (see transparency.go) since no
	// report carries them.
	Transparent bool
	LightLevel  uint8
}

// Build canonicalises one or more versions' raw block reports into a single
// Mapping, in the deterministic order the spec requires: block names sorted
// lexicographically, then each block's states sorted by property tuple.
//
// A state seen in more than one report is folded into a single canonical
// entry as long as its (name, properties) key matches; Transparent/LightLevel
// are taken from whichever report supplies them (vanilla block metadata
// doesn't vary across the versions this matters for).
func Build(reports ...[]RawBlock) *Mapping {
	type seen struct {
		transparent bool
		lightLevel  uint8
		isDefault   bool
	}
	blocksByName := make(map[string]map[stateKey]seen)
	order := make(map[string][]stateKey)

	for _, report := range reports {
		for _, rb := range report {
			states, ok := blocksByName[rb.Name]
			if !ok {
				states = make(map[stateKey]seen)
				blocksByName[rb.Name] = states
			}
			for _, rs := range rb.States {
				key := stateKey{name: rb.Name, props: propertyKey(rs.Properties)}
				if _, exists := states[key]; !exists {
					order[rb.Name] = append(order[rb.Name], key)
				}
				prev := states[key]
				states[key] = seen{
					transparent: rs.Transparent || prev.transparent,
					lightLevel:  maxU8(rs.LightLevel, prev.lightLevel),
					isDefault:   rs.Default || prev.isDefault,
				}
			}
		}
	}

	names := make([]string, 0, len(blocksByName))
	for name := range blocksByName {
		names = append(names, name)
	}
	sort.Strings(names)

	propsByKey := make(map[stateKey][]Property)
	for _, report := range reports {
		for _, rb := range report {
			for _, rs := range rb.States {
				key := stateKey{name: rb.Name, props: propertyKey(rs.Properties)}
				if _, ok := propsByKey[key]; !ok {
					propsByKey[key] = rs.Properties
				}
			}
		}
	}

	m := &Mapping{byName: make(map[string]int, len(names))}
	var nextID uint16

	for _, name := range names {
		keys := order[name]
		sort.Slice(keys, func(i, j int) bool { return keys[i].props < keys[j].props })

		block := Block{Name: name, DefaultState: 0}
		for i, key := range keys {
			info := blocksByName[name][key]
			block.States = append(block.States, State{
				InternalID:  nextID,
				Properties:  propsByKey[key],
				Transparent: info.transparent,
				LightLevel:  info.lightLevel,
			})
			if info.isDefault {
				block.DefaultState = i
			}
			m.byInternal = append(m.byInternal, stateRef{block: len(m.Blocks), state: i})
			nextID++
		}
		m.byName[name] = len(m.Blocks)
		m.Blocks = append(m.Blocks, block)
	}

	return m
}

func maxU8(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}

// ReportMapping is a single version's internal-id -> report-id table, plus
// the bit width the palette engine packs it at.
type ReportMapping struct {
	Version      version.ProtocolVersion
	Entries      []uint16 // indexed by internal id
	BitsPerEntry uint8
}

// BuildReportMapping produces the per-version report-id array for one
// report against the already-canonicalised Mapping, falling back to
// StoneReportID for any canonical state the report doesn't define.
func BuildReportMapping(v version.ProtocolVersion, report []RawBlock, mapping *Mapping) *ReportMapping {
	entries := make([]uint16, mapping.Len())
	for i := range entries {
		entries[i] = StoneReportID
	}

	for _, rb := range report {
		blockIdx, ok := mapping.byName[rb.Name]
		if !ok {
			continue
		}
		block := mapping.Blocks[blockIdx]
		byProps := make(map[string]uint16, len(block.States))
		for _, st := range block.States {
			byProps[propertyKey(st.Properties)] = st.InternalID
		}
		for _, rs := range rb.States {
			if internalID, ok := byProps[propertyKey(rs.Properties)]; ok {
				entries[internalID] = rs.ReportID
			}
		}
	}

	var maxID uint16
	for _, id := range entries {
		if id > maxID {
			maxID = id
		}
	}

	return &ReportMapping{
		Version:      v,
		Entries:      entries,
		BitsPerEntry: bitsNeeded(maxID),
	}
}

// bitsNeeded is ceil(log2(n+1)), with a floor of 1 bit.
func bitsNeeded(n uint16) uint8 {
	if n == 0 {
		return 1
	}
	bits := uint8(0)
	for (uint16(1) << bits) <= n {
		bits++
	}
	return bits
}
