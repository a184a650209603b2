package registry_test

import (
	"testing"

	"github.com/go-mclib/limbo/internal/identifier"
	"github.com/go-mclib/limbo/internal/nbt"
	"github.com/go-mclib/limbo/internal/registry"
	"github.com/go-mclib/limbo/internal/version"
)

func TestActiveKeys_FiltersByVersion(t *testing.T) {
	keys := registry.ActiveKeys(version.V1_16_4)
	for _, k := range keys {
		if k == registry.Biome || k == registry.DimensionType {
			continue
		}
		t.Fatalf("unexpected active key %s at 1.16.4", k)
	}

	keysLatest := registry.ActiveKeys(version.V1_21_5)
	found := map[registry.Key]bool{}
	for _, k := range keysLatest {
		found[k] = true
	}
	if !found[registry.CatVariant] || !found[registry.Timeline] {
		t.Fatalf("expected cat_variant and timeline active at 1.21.5, got %v", keysLatest)
	}
}

func TestRegistry_AddAndProtocolID(t *testing.T) {
	m := registry.NewBuilder().Register(registry.Biome).Build()
	reg, ok := m.Get(registry.Biome)
	if !ok {
		t.Fatalf("expected biome registry registered")
	}
	plains := reg.Add(identifier.VanillaUnchecked("plains"), nbt.Compound{})
	desert := reg.Add(identifier.VanillaUnchecked("desert"), nbt.Compound{})
	if plains.ProtocolID != 0 || desert.ProtocolID != 1 {
		t.Fatalf("protocol ids = %d, %d, want 0, 1", plains.ProtocolID, desert.ProtocolID)
	}
}

func TestRegistry_ResolveTagWithNesting(t *testing.T) {
	m := registry.NewBuilder().Register(registry.Timeline).Build()
	reg, _ := m.Get(registry.Timeline)
	a := reg.Add(identifier.VanillaUnchecked("a"), nbt.Compound{})
	b := reg.Add(identifier.VanillaUnchecked("b"), nbt.Compound{})

	reg.AddTag(identifier.VanillaUnchecked("inner"), []identifier.Identifier{
		identifier.VanillaUnchecked("b"),
	})
	reg.AddTag(identifier.VanillaUnchecked("outer"), []identifier.Identifier{
		identifier.VanillaUnchecked("a"),
		identifier.NewUnchecked("#minecraft", "inner"),
	})

	ids, err := reg.ResolveTag(identifier.VanillaUnchecked("outer"))
	if err != nil {
		t.Fatalf("ResolveTag: %v", err)
	}
	if len(ids) != 2 || ids[0] != a.ProtocolID || ids[1] != b.ProtocolID {
		t.Fatalf("ResolveTag(outer) = %v, want [%d %d]", ids, a.ProtocolID, b.ProtocolID)
	}
}

func TestStaticManager_DimensionInfo(t *testing.T) {
	m := registry.StaticManager()
	info, err := registry.DimensionInfo(m, identifier.VanillaUnchecked("overworld"))
	if err != nil {
		t.Fatalf("DimensionInfo: %v", err)
	}
	if info.Height != 384 || info.MinY != -64 {
		t.Fatalf("info = %+v, want height=384 min_y=-64", info)
	}
}

func TestRegistryCodecV1_16_2_ContainsBiome(t *testing.T) {
	m := registry.StaticManager()
	data, err := registry.RegistryCodecV1_16_2(m, version.V1_19)
	if err != nil {
		t.Fatalf("RegistryCodecV1_16_2: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected non-empty codec bytes")
	}
}

func TestRegistryData_V1_20_5(t *testing.T) {
	m := registry.StaticManager()
	sets, err := registry.RegistryData(m, version.V1_20_5)
	if err != nil {
		t.Fatalf("RegistryData: %v", err)
	}
	if len(sets) == 0 {
		t.Fatalf("expected at least one registry data set")
	}
	for _, set := range sets {
		if set.RegistryID.Thing == "" {
			t.Fatalf("empty registry id in set %+v", set)
		}
	}
}

func TestTaggedRegistries_ResolvesTimeline(t *testing.T) {
	m := registry.NewBuilder().Register(registry.Timeline).Build()
	reg, _ := m.Get(registry.Timeline)
	e := reg.Add(identifier.VanillaUnchecked("overworld"), nbt.Compound{})
	reg.AddTag(identifier.VanillaUnchecked("normal"), []identifier.Identifier{
		identifier.VanillaUnchecked("overworld"),
	})

	out, err := registry.TaggedRegistries(m)
	if err != nil {
		t.Fatalf("TaggedRegistries: %v", err)
	}
	if len(out) != 1 || len(out[0].Tags) != 1 || out[0].Tags[0].IDs[0] != e.ProtocolID {
		t.Fatalf("TaggedRegistries = %+v", out)
	}
}
