package registry

import (
	"fmt"

	"github.com/go-mclib/limbo/internal/identifier"
	"github.com/go-mclib/limbo/internal/nbt"
	"github.com/go-mclib/limbo/internal/version"
)

// encodeNamelessCompound serializes value the way every registry/dimension
// blob is shipped on the wire: nameless root from 1.20.2 onward (the play
// state's network NBT convention), named-with-empty-name root before that.
func encodeNamelessCompound(v version.ProtocolVersion, value nbt.Tag) ([]byte, error) {
	if v.SupportsConfigurationState() {
		return nbt.EncodeNetwork(value, nbt.WithNamelessRoot(true))
	}
	return nbt.Encode(value, "")
}

// DimensionCodecV1_16_2 builds the single-dimension codec blob sent between
// 1.16.2 and 1.18.2, before registries were unified into one codec tag.
func DimensionCodecV1_16_2(m *Manager, v version.ProtocolVersion, dimension identifier.Identifier) ([]byte, error) {
	reg, ok := m.Get(DimensionType)
	if !ok {
		return nil, fmt.Errorf("registry: dimension_type not registered")
	}
	entry, ok := reg.Get(dimension)
	if !ok {
		return nil, fmt.Errorf("registry: unknown dimension %s", dimension)
	}
	return encodeNamelessCompound(v, entry.Data)
}

// RegistryCodecV1_16 builds the 1.16/1.16.1 registry codec: a bare
// "dimension" list of {name, ...element fields}, the only registry vanilla
// required clients to know about at that point.
func RegistryCodecV1_16(m *Manager, v version.ProtocolVersion) ([]byte, error) {
	reg, ok := m.Get(DimensionType)
	if !ok {
		return nil, fmt.Errorf("registry: dimension_type not registered")
	}

	var dims []nbt.Tag
	for _, entry := range reg.Entries() {
		dims = append(dims, flattenInto(nbt.Compound{"name": nbt.String(entry.Name.String())}, entry.Data))
	}

	root := nbt.Compound{
		"dimension": nbt.List{ElementType: nbt.TagCompound, Elements: dims},
	}
	return encodeNamelessCompound(v, root)
}

// RegistryCodecV1_16_2 builds the whole-codec blob sent from 1.16.2 through
// 1.20.3(inclusive, i.e. every version before per-registry RegistryData
// packets were introduced): one compound per active registry, each shaped
// {type, value:[{name, id, element...}]}.
func RegistryCodecV1_16_2(m *Manager, v version.ProtocolVersion) ([]byte, error) {
	root := nbt.Compound{}
	for _, key := range ActiveKeys(v) {
		reg, ok := m.Get(key)
		if !ok {
			continue
		}
		registryType := identifierFor(key).String()

		var values []nbt.Tag
		for i, entry := range reg.Entries() {
			values = append(values, flattenInto(nbt.Compound{
				"name": nbt.String(entry.Name.String()),
				"id":   nbt.Int(i),
			}, entry.Data))
		}

		root[registryType] = nbt.Compound{
			"type":  nbt.String(registryType),
			"value": nbt.List{ElementType: nbt.TagCompound, Elements: values},
		}
	}
	return encodeNamelessCompound(v, root)
}

// DataEntry is one entry of a per-registry RegistryData packet (1.20.5+):
// the entry's identifier and its already-serialized NBT payload.
type DataEntry struct {
	Name     identifier.Identifier
	NBTBytes []byte
}

// RegistryDataSet is one registry's worth of RegistryData packet payloads.
type RegistryDataSet struct {
	RegistryID identifier.Identifier
	Entries    []DataEntry
}

// RegistryData builds the per-registry entry lists sent as individual
// RegistryData packets from 1.20.5 onward, one call's worth of []byte per
// entry rather than one combined codec blob.
func RegistryData(m *Manager, v version.ProtocolVersion) ([]RegistryDataSet, error) {
	var out []RegistryDataSet
	for _, key := range ActiveKeys(v) {
		reg, ok := m.Get(key)
		if !ok {
			continue
		}
		var entries []DataEntry
		for _, entry := range reg.Entries() {
			data, err := nbt.EncodeNetwork(entry.Data, nbt.WithNamelessRoot(true), nbt.WithDynamicLists(true))
			if err != nil {
				return nil, fmt.Errorf("registry: encode %s: %w", entry.Name, err)
			}
			entries = append(entries, DataEntry{Name: entry.Name, NBTBytes: data})
		}
		out = append(out, RegistryDataSet{RegistryID: identifierFor(key), Entries: entries})
	}
	return out, nil
}

// TaggedRegistryTag is one resolved tag within a TaggedRegistry: its name
// and the flat list of protocol ids it covers.
type TaggedRegistryTag struct {
	Name identifier.Identifier
	IDs  []uint32
}

// TaggedRegistry is one registry's worth of tag data, as sent in the
// UpdateTags packet.
type TaggedRegistry struct {
	RegistryID identifier.Identifier
	Tags       []TaggedRegistryTag
}

// taggedKeys lists the registries whose tags are exposed over the wire.
// Only Timeline carries tags a holding server needs to resolve; every
// other mandatory registry's tags (if any) stay internal to data-pack
// tooling rather than being forwarded to clients.
var taggedKeys = []Key{Timeline}

// TaggedRegistries resolves every tag on every registry named in
// taggedKeys into its flat protocol-id list, for versions that support
// tagged-registry sync (see version.SupportsTaggedRegistries).
func TaggedRegistries(m *Manager) ([]TaggedRegistry, error) {
	var out []TaggedRegistry
	for _, key := range taggedKeys {
		reg, ok := m.Get(key)
		if !ok {
			continue
		}
		var tags []TaggedRegistryTag
		for _, name := range reg.TagNames() {
			ids, err := reg.ResolveTag(name)
			if err != nil {
				return nil, err
			}
			tags = append(tags, TaggedRegistryTag{Name: name.Normalize(), IDs: ids})
		}
		out = append(out, TaggedRegistry{RegistryID: identifierFor(key), Tags: tags})
	}
	return out, nil
}

// flattenInto merges extra's compound fields into base, returning base.
// element is always a Compound for registry entry data; anything else is
// nested under "element" instead of being flattened.
func flattenInto(base nbt.Compound, element nbt.Tag) nbt.Compound {
	if compound, ok := element.(nbt.Compound); ok {
		for k, v := range compound {
			base[k] = v
		}
		return base
	}
	base["element"] = element
	return base
}

func identifierFor(key Key) identifier.Identifier {
	return identifier.VanillaUnchecked(key.Thing())
}
