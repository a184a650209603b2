package registry

import (
	"fmt"
	"sort"

	"github.com/go-mclib/limbo/internal/identifier"
	"github.com/go-mclib/limbo/internal/nbt"
)

// Entry is one value inside a Registry: its identifier, the protocol id a
// client is told to use for it on the wire, and its raw NBT payload.
type Entry struct {
	Name       identifier.Identifier
	ProtocolID uint32
	Data       nbt.Tag
}

// Tag is a named group of entries (or nested tags) within one registry,
// e.g. "minecraft:is_hill" under worldgen/biome.
type Tag struct {
	Name   identifier.Identifier
	Values []identifier.Identifier
}

// Registry holds every entry for one Key, keyed by identifier, plus any
// tags defined over it. Entries keep the insertion order they were loaded
// in; ProtocolID is assigned sequentially starting at 0 as entries load,
// matching the order files are read from disk.
type Registry struct {
	key     Key
	entries map[string]Entry
	order   []string
	tags    map[string]Tag
}

func newRegistry(key Key) *Registry {
	return &Registry{key: key, entries: make(map[string]Entry), tags: make(map[string]Tag)}
}

// Key reports which registry this is.
func (r *Registry) Key() Key { return r.key }

// Add inserts an entry, assigning it the next sequential protocol id.
// Re-adding an existing name replaces it without changing its protocol id.
func (r *Registry) Add(name identifier.Identifier, data nbt.Tag) Entry {
	key := name.String()
	if existing, ok := r.entries[key]; ok {
		existing.Data = data
		r.entries[key] = existing
		return existing
	}
	entry := Entry{Name: name, ProtocolID: uint32(len(r.order)), Data: data}
	r.entries[key] = entry
	r.order = append(r.order, key)
	return entry
}

// Get returns the entry named by ident, or false if it isn't present.
func (r *Registry) Get(ident identifier.Identifier) (Entry, bool) {
	e, ok := r.entries[ident.String()]
	return e, ok
}

// Entries returns every entry in protocol-id order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.order))
	for i, key := range r.order {
		out[i] = r.entries[key]
	}
	return out
}

// AddTag defines or replaces a tag over this registry.
func (r *Registry) AddTag(name identifier.Identifier, values []identifier.Identifier) {
	r.tags[name.String()] = Tag{Name: name, Values: values}
}

// GetTag returns a tag by name.
func (r *Registry) GetTag(name identifier.Identifier) (Tag, bool) {
	t, ok := r.tags[name.String()]
	return t, ok
}

// TagNames returns every tag name defined on this registry, sorted.
func (r *Registry) TagNames() []identifier.Identifier {
	names := make([]string, 0, len(r.tags))
	for name := range r.tags {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]identifier.Identifier, len(names))
	for i, name := range names {
		out[i] = r.tags[name].Name
	}
	return out
}

// ResolveTag expands a tag into the flat list of protocol ids it covers,
// recursively following any nested tag references (an identifier prefixed
// with '#' inside a tag's value list names another tag rather than a
// direct entry).
func (r *Registry) ResolveTag(name identifier.Identifier) ([]uint32, error) {
	return r.resolveTag(name, make(map[string]bool))
}

func (r *Registry) resolveTag(name identifier.Identifier, seen map[string]bool) ([]uint32, error) {
	key := name.String()
	if seen[key] {
		return nil, fmt.Errorf("registry: cyclic tag reference %s", key)
	}
	seen[key] = true

	tag, ok := r.GetTag(name)
	if !ok {
		return nil, fmt.Errorf("registry: unknown tag %s in %s", key, r.key)
	}

	var ids []uint32
	for _, value := range tag.Values {
		if value.IsTag() {
			nested, err := r.resolveTag(value.Normalize(), seen)
			if err != nil {
				return nil, err
			}
			ids = append(ids, nested...)
			continue
		}
		if entry, ok := r.Get(value); ok {
			ids = append(ids, entry.ProtocolID)
		}
	}
	return ids, nil
}
