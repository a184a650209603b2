package nbt_test

import (
	"testing"

	"github.com/go-mclib/limbo/internal/nbt"
)

func TestSNBTPrintKnownForms(t *testing.T) {
	cases := []struct {
		tag  nbt.Tag
		want string
	}{
		{nbt.Byte(5), "5b"},
		{nbt.Short(-5), "-5s"},
		{nbt.Int(42), "42"},
		{nbt.Long(9000000000), "9000000000L"},
		{nbt.String("hello"), "hello"},
		{nbt.String("has space"), `"has space"`},
		{nbt.String("123abc"), `"123abc"`},
	}
	for _, c := range cases {
		got := nbt.ToSNBT(c.tag)
		if got != c.want {
			t.Errorf("ToSNBT(%#v) = %q, want %q", c.tag, got, c.want)
		}
	}
}

func TestSNBTRoundTrip(t *testing.T) {
	original := nbt.Compound{
		"name":   nbt.String("limbo"),
		"health": nbt.Float(20),
		"pos":    nbt.List{ElementType: nbt.TagDouble, Elements: []nbt.Tag{nbt.Double(0), nbt.Double(64), nbt.Double(0)}},
		"tags":   nbt.IntArray{1, 2, 3},
		"nested": nbt.Compound{"inner": nbt.Byte(1)},
	}

	text := nbt.ToSNBT(original)
	parsed, err := nbt.ParseSNBT(text)
	if err != nil {
		t.Fatalf("ParseSNBT(%q) error = %v", text, err)
	}
	c, ok := parsed.(nbt.Compound)
	if !ok {
		t.Fatalf("expected Compound, got %T", parsed)
	}
	if c.GetString("name") != "limbo" {
		t.Fatalf("name = %q", c.GetString("name"))
	}
	if c.GetFloat("health") != 20 {
		t.Fatalf("health = %v", c.GetFloat("health"))
	}
	if len(c.GetIntArray("tags")) != 3 {
		t.Fatalf("tags length = %d", len(c.GetIntArray("tags")))
	}
	if c.GetCompound("nested").GetByte("inner") != 1 {
		t.Fatalf("nested.inner mismatch")
	}
}

func TestSNBTPrettyIsParseable(t *testing.T) {
	tag := nbt.Compound{"a": nbt.List{ElementType: nbt.TagInt, Elements: []nbt.Tag{nbt.Int(1), nbt.Int(2)}}}
	pretty := nbt.ToSNBTPretty(tag)
	parsed, err := nbt.ParseSNBT(pretty)
	if err != nil {
		t.Fatalf("ParseSNBT(pretty) error = %v\ninput:\n%s", err, pretty)
	}
	if parsed.(nbt.Compound).GetList("a").Len() != 2 {
		t.Fatalf("list length mismatch after pretty round trip")
	}
}

func TestJSONBridge(t *testing.T) {
	tag := nbt.Compound{
		"text":  nbt.String("hi"),
		"bold":  nbt.Byte(1),
		"extra": nbt.List{ElementType: nbt.TagString, Elements: []nbt.Tag{nbt.String("a"), nbt.String("b")}},
	}
	data, err := nbt.ToJSONBytes(tag)
	if err != nil {
		t.Fatalf("ToJSONBytes() error = %v", err)
	}

	back, err := nbt.FromJSONBytes(data, false)
	if err != nil {
		t.Fatalf("FromJSONBytes() error = %v", err)
	}
	c, ok := back.(nbt.Compound)
	if !ok {
		t.Fatalf("expected Compound, got %T", back)
	}
	if c.GetString("text") != "hi" {
		t.Fatalf("text = %q", c.GetString("text"))
	}
}
