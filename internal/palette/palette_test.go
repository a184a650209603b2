package palette

import (
	"testing"

	"github.com/go-mclib/limbo/internal/netio"
)

func TestBuild_AllEqualIsSingle(t *testing.T) {
	ids := make([]uint16, 4096)
	for i := range ids {
		ids[i] = 7
	}
	c := Build(ids, 4, 8, 15)
	if c.Kind != Single {
		t.Fatalf("expected Single, got %v", c.Kind)
	}
	if c.SingleID != 7 {
		t.Fatalf("expected single id 7, got %d", c.SingleID)
	}
	v, ok := c.Get(1234)
	if !ok || v != 7 {
		t.Fatalf("Get: expected (7, true), got (%d, %v)", v, ok)
	}
}

func TestBuild_SmallDistinctSetIsPaletted(t *testing.T) {
	ids := make([]uint16, 4096)
	for i := range ids {
		ids[i] = uint16(i % 3)
	}
	c := Build(ids, 4, 8, 15)
	if c.Kind != Paletted {
		t.Fatalf("expected Paletted, got %v", c.Kind)
	}
	if c.BitsPerEntry != 4 {
		t.Fatalf("expected clamped bits 4, got %d", c.BitsPerEntry)
	}
	for i, want := range ids {
		got, ok := c.Get(i)
		if !ok || got != want {
			t.Fatalf("Get(%d): expected %d, got %d (ok=%v)", i, want, got, ok)
		}
	}
}

func TestBuild_WideDistinctSetFallsBackToDirect(t *testing.T) {
	ids := make([]uint16, 4096)
	for i := range ids {
		ids[i] = uint16(i)
	}
	c := Build(ids, 4, 8, 15)
	if c.Kind != Direct {
		t.Fatalf("expected Direct, got %v", c.Kind)
	}
	if c.BitsPerEntry != 15 {
		t.Fatalf("expected direct bits 15, got %d", c.BitsPerEntry)
	}
	for i, want := range ids {
		got, ok := c.Get(i)
		if !ok || got != want {
			t.Fatalf("Get(%d): expected %d, got %d (ok=%v)", i, want, got, ok)
		}
	}
}

func TestBuild_BiomeSectionHasNoBitFloor(t *testing.T) {
	ids := [64]uint16{}
	ids[0] = 1
	ids[1] = 2
	c := BuildBiomeSection(ids, 6)
	if c.Kind != Paletted {
		t.Fatalf("expected Paletted, got %v", c.Kind)
	}
	if c.BitsPerEntry != 2 {
		t.Fatalf("expected unfloored bits 2 for a 3-entry palette, got %d", c.BitsPerEntry)
	}
}

func TestPackUnpack_NoSpanningAcrossBitWidths(t *testing.T) {
	for bits := uint8(4); bits <= 8; bits++ {
		count := 4096
		values := make([]uint32, count)
		max := uint32(1)<<bits - 1
		for i := range values {
			values[i] = uint32(i) % (max + 1)
		}
		words := pack(values, bits)

		entriesPerLong := 64 / int(bits)
		wantLongs := (count + entriesPerLong - 1) / entriesPerLong
		if len(words) != wantLongs {
			t.Fatalf("bits=%d: expected %d words, got %d", bits, wantLongs, len(words))
		}

		for i, want := range values {
			got, ok := unpackAt(words, bits, i)
			if !ok || got != want {
				t.Fatalf("bits=%d: unpackAt(%d): expected %d, got %d (ok=%v)", bits, i, want, got, ok)
			}
		}
	}
}

func TestRemap_RewritesEveryShape(t *testing.T) {
	double := func(id uint16) uint16 { return id * 2 }

	single := &Container{Kind: Single, SingleID: 5, count: 4096}
	single.Remap(double)
	if single.SingleID != 10 {
		t.Fatalf("Single remap: expected 10, got %d", single.SingleID)
	}

	ids := make([]uint16, 64)
	for i := range ids {
		ids[i] = uint16(i % 4)
	}
	paletted := Build(ids, 0, 8, 15)
	paletted.Remap(double)
	for i, orig := range ids {
		got, ok := paletted.Get(i)
		if !ok || got != orig*2 {
			t.Fatalf("Paletted remap Get(%d): expected %d, got %d", i, orig*2, got)
		}
	}

	wide := make([]uint16, 4096)
	for i := range wide {
		wide[i] = uint16(i)
	}
	direct := Build(wide, 4, 8, 15)
	if direct.Kind != Direct {
		t.Fatalf("expected Direct fixture, got %v", direct.Kind)
	}
	direct.Remap(double)
	for i, orig := range wide {
		got, ok := direct.Get(i)
		if !ok || got != orig*2 {
			t.Fatalf("Direct remap Get(%d): expected %d, got %d", i, orig*2, got)
		}
	}
}

func TestEncodeDecode_SingleRoundTrips(t *testing.T) {
	c := &Container{Kind: Single, SingleID: 0, count: 4096}
	pb := netio.NewWriter()
	if err := c.Encode(pb); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	// Matches vanilla's void-section wire shape: bits=0, value=0, dataLen=0.
	if got := pb.Bytes(); len(got) != 3 || got[0] != 0 || got[1] != 0 || got[2] != 0 {
		t.Fatalf("expected [0 0 0] for a void single section, got %v", got)
	}

	rpb := netio.NewReader(pb.Bytes())
	decoded, err := Decode(rpb, 4096)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Kind != Single || decoded.SingleID != 0 {
		t.Fatalf("decoded mismatch: %+v", decoded)
	}
}

func TestEncodeDecode_PalettedRoundTrips(t *testing.T) {
	ids := make([]uint16, 4096)
	for i := range ids {
		ids[i] = uint16(i % 5)
	}
	c := Build(ids, 4, 8, 15)

	pb := netio.NewWriter()
	if err := c.Encode(pb); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	rpb := netio.NewReader(pb.Bytes())
	decoded, err := Decode(rpb, 4096)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for i, want := range ids {
		got, ok := decoded.Get(i)
		if !ok || got != want {
			t.Fatalf("Get(%d): expected %d, got %d (ok=%v)", i, want, got, ok)
		}
	}
}

func TestEncodeDecode_DirectRoundTrips(t *testing.T) {
	ids := make([]uint16, 4096)
	for i := range ids {
		ids[i] = uint16(i)
	}
	c := Build(ids, 4, 8, 15)
	if c.Kind != Direct {
		t.Fatalf("expected Direct fixture, got %v", c.Kind)
	}

	pb := netio.NewWriter()
	if err := c.Encode(pb); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	rpb := netio.NewReader(pb.Bytes())
	decoded, err := DecodeDirect(rpb, 4096)
	if err != nil {
		t.Fatalf("DecodeDirect: %v", err)
	}
	for i, want := range ids {
		got, ok := decoded.Get(i)
		if !ok || got != want {
			t.Fatalf("Get(%d): expected %d, got %d (ok=%v)", i, want, got, ok)
		}
	}
}
