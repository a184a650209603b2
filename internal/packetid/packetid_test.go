package packetid

import (
	"testing"

	"github.com/go-mclib/limbo/internal/version"
)

func TestStaticRegistry_DecodeEncodeRoundTrip(t *testing.T) {
	r := StaticRegistry()

	id, ok := r.Encode(version.V1_21_5, StateHandshake, C2S, "minecraft:intention")
	if !ok || id != 0x00 {
		t.Fatalf("expected intention id 0x00, got %#x ok=%v", id, ok)
	}

	name, ok := r.Decode(version.V1_21_5, StateHandshake, C2S, 0x00)
	if !ok || name != "minecraft:intention" {
		t.Fatalf("expected intention, got %q ok=%v", name, ok)
	}
}

func TestRegistry_MissIsNonFatal(t *testing.T) {
	r := StaticRegistry()
	if _, ok := r.Decode(version.V1_21_5, StatePlay, C2S, 0x7F); ok {
		t.Fatalf("expected miss for unregistered id")
	}
}

func TestRegistry_SameIDDifferentStatesDontCollide(t *testing.T) {
	r := StaticRegistry()
	status, ok := r.Decode(version.V1_21_5, StateStatus, C2S, 0x00)
	if !ok || status != "minecraft:status_request" {
		t.Fatalf("expected status_request, got %q ok=%v", status, ok)
	}
	handshake, ok := r.Decode(version.V1_21_5, StateHandshake, C2S, 0x00)
	if !ok || handshake != "minecraft:intention" {
		t.Fatalf("expected intention, got %q ok=%v", handshake, ok)
	}
}

func TestMustEncode_PanicsOnMiss(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on unregistered name")
		}
	}()
	StaticRegistry().MustEncode(version.V1_21_5, StatePlay, C2S, "minecraft:does_not_exist")
}
