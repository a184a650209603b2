package nbt_test

import (
	"testing"

	"github.com/go-mclib/limbo/internal/nbt"
)

func TestEncodeDecodePrimitives(t *testing.T) {
	tests := []struct {
		name string
		tag  nbt.Tag
	}{
		{"byte", nbt.Byte(42)},
		{"byte negative", nbt.Byte(-1)},
		{"short", nbt.Short(12345)},
		{"int", nbt.Int(123456789)},
		{"int negative", nbt.Int(-123456789)},
		{"long", nbt.Long(9223372036854775807)},
		{"float", nbt.Float(3.14159)},
		{"double", nbt.Double(3.141592653589793)},
		{"string", nbt.String("Hello, NBT!")},
		{"string unicode", nbt.String("日本語テスト")},
		{"byte array", nbt.ByteArray{1, 2, 3, 4, 5}},
		{"int array", nbt.IntArray{1, 2, 3, 4, 5}},
		{"long array", nbt.LongArray{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compound := nbt.Compound{"value": tt.tag}

			data, err := nbt.EncodeNetwork(compound)
			if err != nil {
				t.Fatalf("EncodeNetwork() error = %v", err)
			}

			decoded, err := nbt.DecodeNetwork(data)
			if err != nil {
				t.Fatalf("DecodeNetwork() error = %v", err)
			}

			c, ok := decoded.(nbt.Compound)
			if !ok {
				t.Fatalf("expected Compound, got %T", decoded)
			}
			if c.Get("value").ID() != tt.tag.ID() {
				t.Fatalf("round-trip type mismatch: got %s, want %s",
					nbt.TagName(c.Get("value").ID()), nbt.TagName(tt.tag.ID()))
			}
		})
	}
}

func TestFileFormatRoundTripsRootName(t *testing.T) {
	tag := nbt.Compound{"hello world": nbt.Compound{"name": nbt.String("Bananrama")}}
	data, err := nbt.EncodeFile(tag, "root")
	if err != nil {
		t.Fatalf("EncodeFile() error = %v", err)
	}
	decoded, name, err := nbt.DecodeFile(data)
	if err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}
	if name != "root" {
		t.Fatalf("root name = %q, want %q", name, "root")
	}
	if _, ok := decoded.(nbt.Compound); !ok {
		t.Fatalf("expected Compound, got %T", decoded)
	}
}

func TestNetworkFormatOmitsRootName(t *testing.T) {
	tag := nbt.Compound{"a": nbt.Int(1)}
	data, err := nbt.EncodeNetwork(tag)
	if err != nil {
		t.Fatalf("EncodeNetwork() error = %v", err)
	}
	// network format: 1 byte tag id + compound body, no 2-byte name length
	if data[0] != nbt.TagCompound {
		t.Fatalf("first byte = %d, want TagCompound", data[0])
	}
	if data[1] == 0 && data[2] == 0 {
		t.Fatalf("unexpected zero name-length prefix in network format")
	}
}

func TestDynamicListRoundTrip(t *testing.T) {
	list := nbt.List{
		ElementType: nbt.TagCompound,
		Elements: []nbt.Tag{
			nbt.WrapDynamicElement(nbt.Int(1)),
			nbt.WrapDynamicElement(nbt.String("two")),
			nbt.WrapDynamicElement(nbt.Double(3.5)),
		},
	}
	if !list.IsDynamicWrapper() {
		t.Fatalf("expected IsDynamicWrapper() == true")
	}

	data, err := nbt.EncodeNetwork(nbt.Compound{"l": list})
	if err != nil {
		t.Fatalf("EncodeNetwork() error = %v", err)
	}
	decoded, err := nbt.DecodeNetwork(data)
	if err != nil {
		t.Fatalf("DecodeNetwork() error = %v", err)
	}
	c := decoded.(nbt.Compound)
	gotList := c.GetList("l")
	elems := gotList.AsDynamicElements()
	if len(elems) != 3 {
		t.Fatalf("got %d elements, want 3", len(elems))
	}
	if elems[0].(nbt.Int) != 1 || elems[1].(nbt.String) != "two" || elems[2].(nbt.Double) != 3.5 {
		t.Fatalf("unexpected dynamic list contents: %#v", elems)
	}
}

func TestMarshalMixedSliceRequiresDynamicLists(t *testing.T) {
	type Mixed struct {
		Values []any `nbt:"values"`
	}
	v := Mixed{Values: []any{1, "two", 3.0}}

	if _, err := nbt.Marshal(v); err == nil {
		t.Fatalf("expected error marshalling mixed slice without dynamic lists")
	}

	data, err := nbt.Marshal(v, nbt.WithDynamicLists(true))
	if err != nil {
		t.Fatalf("Marshal() with dynamic lists error = %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected non-empty output")
	}
}

func TestDetectCompression(t *testing.T) {
	tag := nbt.Compound{"x": nbt.Int(7)}

	gz, err := nbt.EncodeCompressed(tag, "", nbt.CompressionGzip, 0)
	if err != nil {
		t.Fatalf("EncodeCompressed(gzip) error = %v", err)
	}
	if nbt.DetectCompression(gz) != nbt.CompressionGzip {
		t.Fatalf("DetectCompression did not identify gzip")
	}
	decoded, _, err := nbt.DecodeCompressed(gz)
	if err != nil {
		t.Fatalf("DecodeCompressed(gzip) error = %v", err)
	}
	if decoded.(nbt.Compound).GetInt("x") != 7 {
		t.Fatalf("gzip round trip mismatch")
	}

	zl, err := nbt.EncodeCompressed(tag, "", nbt.CompressionZlib, 6)
	if err != nil {
		t.Fatalf("EncodeCompressed(zlib) error = %v", err)
	}
	if nbt.DetectCompression(zl) != nbt.CompressionZlib {
		t.Fatalf("DetectCompression did not identify zlib")
	}

	raw, err := nbt.EncodeCompressed(tag, "", nbt.CompressionNone, 0)
	if err != nil {
		t.Fatalf("EncodeCompressed(none) error = %v", err)
	}
	if nbt.DetectCompression(raw) != nbt.CompressionNone {
		t.Fatalf("DetectCompression misidentified uncompressed data")
	}
}
