package packet

import (
	"testing"

	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/text"
	"github.com/go-mclib/limbo/internal/version"
)

func TestIntention_RoundTrips(t *testing.T) {
	w := netio.NewWriter()
	in := &Intention{ProtocolVersion: 770, ServerAddress: "play.example.com", ServerPort: 25565, NextState: NextStateLogin}
	if err := in.Write(w, version.V1_21_5); err != nil {
		t.Fatalf("Write: %v", err)
	}

	out := NewIntention()
	if err := out.Read(netio.NewReader(w.Bytes()), version.V1_21_5); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if out.ProtocolVersion != 770 || out.ServerAddress != "play.example.com" || out.ServerPort != 25565 || out.NextState != NextStateLogin {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestLoginStart_UUIDPresenceVariesByVersion(t *testing.T) {
	w := netio.NewWriter()
	in := &LoginStart{Username: "Notch"}
	if err := in.Write(w, version.V1_16); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := NewLoginStart()
	if err := out.Read(netio.NewReader(w.Bytes()), version.V1_16); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if out.HasUUID {
		t.Fatal("expected no uuid field before 1.19.1")
	}

	w2 := netio.NewWriter()
	in2 := &LoginStart{Username: "Notch", UUID: netio.UUID{1, 2, 3}}
	if err := in2.Write(w2, version.V1_19_1); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out2 := NewLoginStart()
	if err := out2.Read(netio.NewReader(w2.Bytes()), version.V1_19_1); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !out2.HasUUID || out2.UUID != in2.UUID {
		t.Fatalf("expected uuid field at 1.19.1+, got %+v", out2)
	}
}

func TestKeepAlive_RoundTrips(t *testing.T) {
	w := netio.NewWriter()
	in := NewKeepAlive(0, 0, 123456789)
	if err := in.Write(w, version.V1_21_5); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := &KeepAlive{}
	if err := out.Read(netio.NewReader(w.Bytes()), version.V1_21_5); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if out.ID != 123456789 {
		t.Fatalf("expected id 123456789, got %d", out.ID)
	}
}

func TestDisconnect_JSONBeforeNBTAfter(t *testing.T) {
	reason := text.New("kicked")

	wJSON := netio.NewWriter()
	if err := NewDisconnect(0, reason).Write(wJSON, version.V1_20_2); err != nil {
		t.Fatalf("Write JSON: %v", err)
	}
	gotJSON := &Disconnect{}
	if err := gotJSON.Read(netio.NewReader(wJSON.Bytes()), version.V1_20_2); err != nil {
		t.Fatalf("Read JSON: %v", err)
	}
	if gotJSON.Reason.Plain() != "kicked" {
		t.Fatalf("expected plain text 'kicked', got %q", gotJSON.Reason.Plain())
	}

	wNBT := netio.NewWriter()
	if err := NewDisconnect(0, reason).Write(wNBT, version.V1_20_3); err != nil {
		t.Fatalf("Write NBT: %v", err)
	}
	gotNBT := &Disconnect{}
	if err := gotNBT.Read(netio.NewReader(wNBT.Bytes()), version.V1_20_3); err != nil {
		t.Fatalf("Read NBT: %v", err)
	}
	if gotNBT.Reason.Plain() != "kicked" {
		t.Fatalf("expected plain text 'kicked', got %q", gotNBT.Reason.Plain())
	}
}

func TestPongResponse_EchoesNonce(t *testing.T) {
	w := netio.NewWriter()
	p := NewPongResponse(42)
	if err := p.Write(w, version.V1_21_5); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := &PongResponse{}
	if err := out.Read(netio.NewReader(w.Bytes()), version.V1_21_5); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if out.Nonce != 42 {
		t.Fatalf("expected nonce 42, got %d", out.Nonce)
	}
}
