package clientstate

import (
	"testing"

	"github.com/go-mclib/limbo/internal/packetid"
)

func TestMachine_LegalTransitions(t *testing.T) {
	m := NewMachine()
	if m.Current() != packetid.StateHandshake {
		t.Fatalf("expected to start in Handshake, got %s", m.Current())
	}
	if err := m.TransitionTo(packetid.StateLogin); err != nil {
		t.Fatalf("Handshake -> Login should be legal: %v", err)
	}
	if err := m.TransitionTo(packetid.StateConfiguration); err != nil {
		t.Fatalf("Login -> Configuration should be legal: %v", err)
	}
	if err := m.TransitionTo(packetid.StatePlay); err != nil {
		t.Fatalf("Configuration -> Play should be legal: %v", err)
	}
}

func TestMachine_IllegalTransition(t *testing.T) {
	m := NewMachine()
	if err := m.TransitionTo(packetid.StatePlay); err == nil {
		t.Fatal("expected Handshake -> Play to be illegal")
	}
}

func TestNewServerBoundFactory_KnownAndUnknownNames(t *testing.T) {
	f := NewServerBoundFactory()
	if _, ok := f("minecraft:intention"); !ok {
		t.Fatal("expected intention to have a factory entry")
	}
	if _, ok := f("minecraft:does_not_exist"); ok {
		t.Fatal("expected unknown name to miss")
	}
}
