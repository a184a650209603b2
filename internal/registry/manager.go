package registry

// Manager holds one Registry per Key for a single loaded data set (usually
// one protocol version's resource directory).
type Manager struct {
	registries map[Key]*Registry
}

// Get returns the registry for key, or false if it was never registered.
func (m *Manager) Get(key Key) (*Registry, bool) {
	r, ok := m.registries[key]
	return r, ok
}

// MustGet is Get but panics if key isn't registered; for call sites that
// already established via ActiveKeys that it must be.
func (m *Manager) MustGet(key Key) *Registry {
	r, ok := m.Get(key)
	if !ok {
		panic("registry: unregistered key " + string(key))
	}
	return r
}

// Builder assembles a Manager: register the keys you want data for, then
// load entries into them from a resource directory (or add them directly
// for static/embedded data).
type Builder struct {
	manager *Manager
}

// NewBuilder starts an empty Builder.
func NewBuilder() *Builder {
	return &Builder{manager: &Manager{registries: make(map[Key]*Registry)}}
}

// Register ensures key has an (initially empty) Registry.
func (b *Builder) Register(key Key) *Builder {
	if _, ok := b.manager.registries[key]; !ok {
		b.manager.registries[key] = newRegistry(key)
	}
	return b
}

// RegisterAll registers every key in keys.
func (b *Builder) RegisterAll(keys []Key) *Builder {
	for _, key := range keys {
		b.Register(key)
	}
	return b
}

// WithDefaults registers every mandatory registry.
func (b *Builder) WithDefaults() *Builder {
	return b.RegisterAll(DefaultKeys)
}

// Build finalizes the Manager.
func (b *Builder) Build() *Manager {
	return b.manager
}
