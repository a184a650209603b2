package serverstate

import "testing"

func TestBuilder_DefaultsAndValidation(t *testing.T) {
	state, err := NewBuilder().Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if state.GameMode != GameModeSurvival || state.MaxPlayers != 20 {
		t.Fatalf("unexpected defaults: %+v", state)
	}
}

func TestBuilder_RejectsNegativeViewDistance(t *testing.T) {
	_, err := NewBuilder().WithViewDistance(-1).Build()
	if err == nil {
		t.Fatal("expected error for negative view distance")
	}
}

func TestBuilder_RejectsBadCompressionLevel(t *testing.T) {
	_, err := NewBuilder().WithCompression(256, 12).Build()
	if err == nil {
		t.Fatal("expected error for compression level > 9")
	}
}

func TestServerState_ConnectedClientsTracksIncrementDecrement(t *testing.T) {
	state, err := NewBuilder().Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := state.IncrementConnected(); got != 1 {
		t.Fatalf("expected 1 after first increment, got %d", got)
	}
	if got := state.IncrementConnected(); got != 2 {
		t.Fatalf("expected 2 after second increment, got %d", got)
	}
	if got := state.DecrementConnected(); got != 1 {
		t.Fatalf("expected 1 after decrement, got %d", got)
	}
}

func TestServerState_AtCapacity(t *testing.T) {
	state, err := NewBuilder().WithMaxPlayers(1).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if state.AtCapacity() {
		t.Fatal("expected not at capacity with 0 connected")
	}
	state.IncrementConnected()
	if !state.AtCapacity() {
		t.Fatal("expected at capacity with 1/1 connected")
	}
}
