package text_test

import (
	"bytes"
	"testing"

	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/text"
)

func TestLegacy_ColorAndStyle(t *testing.T) {
	tc := text.New("Hello").WithColor("red")
	tc.Bold = true
	got := tc.Legacy()
	want := "§c§lHello"
	if got != want {
		t.Fatalf("Legacy() = %q, want %q", got, want)
	}
}

func TestLegacy_Children(t *testing.T) {
	tc := text.TextComponent{
		Text: "a",
		Extra: []text.TextComponent{
			{Text: "b", Color: "blue"},
		},
	}
	got := tc.Legacy()
	want := "a§r§9b"
	if got != want {
		t.Fatalf("Legacy() = %q, want %q", got, want)
	}
}

func TestJSON_StringShorthandUnmarshal(t *testing.T) {
	tc, err := text.FromJSON([]byte(`"hi there"`))
	if err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}
	if tc.Text != "hi there" {
		t.Fatalf("Text = %q", tc.Text)
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	tc := text.TextComponent{
		Text:  "hi",
		Color: "gold",
		Bold:  true,
		Extra: []text.TextComponent{{Text: "!"}},
	}
	data, err := tc.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	back, err := text.FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}
	if back.Text != tc.Text || back.Color != tc.Color || back.Bold != tc.Bold {
		t.Fatalf("round trip mismatch: %#v", back)
	}
	if len(back.Extra) != 1 || back.Extra[0].Text != "!" {
		t.Fatalf("extra mismatch: %#v", back.Extra)
	}
}

func TestNBT_RoundTrip(t *testing.T) {
	tc := text.TextComponent{
		Text:       "kicked",
		Color:      "dark_red",
		Obfuscated: true,
		Extra:      []text.TextComponent{{Text: "bye"}},
	}
	tag := tc.ToNBT()
	back := text.FromNBT(tag)
	if back.Text != tc.Text || back.Color != tc.Color || back.Obfuscated != tc.Obfuscated {
		t.Fatalf("round trip mismatch: %#v", back)
	}
	if len(back.Extra) != 1 || back.Extra[0].Text != "bye" {
		t.Fatalf("extra mismatch: %#v", back.Extra)
	}
}

func TestWire_JSONMode(t *testing.T) {
	var buf bytes.Buffer
	w := netio.NewWriterTo(&buf)
	tc := text.New("hello")
	if err := text.Encode(w, tc, false); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	r := netio.NewReaderFrom(&buf)
	got, err := text.Decode(r, false)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Text != "hello" {
		t.Fatalf("Text = %q", got.Text)
	}
}

func TestWire_NBTMode(t *testing.T) {
	var buf bytes.Buffer
	w := netio.NewWriterTo(&buf)
	tc := text.TextComponent{Text: "hello", Color: "green"}
	if err := text.Encode(w, tc, true); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	r := netio.NewReaderFrom(&buf)
	got, err := text.Decode(r, true)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Text != "hello" || got.Color != "green" {
		t.Fatalf("got = %#v", got)
	}
}

func TestParseMiniMessage_NestedTags(t *testing.T) {
	tc, err := text.ParseMiniMessage("<red><bold>Hello,</bold></red> <blue>world!</blue>")
	if err != nil {
		t.Fatalf("ParseMiniMessage() error = %v", err)
	}
	if len(tc.Extra) != 3 {
		t.Fatalf("expected 3 parts, got %d: %#v", len(tc.Extra), tc.Extra)
	}
	if tc.Extra[0].Text != "Hello," || tc.Extra[0].Color != "red" || !tc.Extra[0].Bold {
		t.Fatalf("part 0 = %#v", tc.Extra[0])
	}
	if tc.Extra[1].Text != " " {
		t.Fatalf("part 1 = %#v", tc.Extra[1])
	}
	if tc.Extra[2].Text != "world!" || tc.Extra[2].Color != "blue" {
		t.Fatalf("part 2 = %#v", tc.Extra[2])
	}
}

func TestParseMiniMessage_Newline(t *testing.T) {
	tc, err := text.ParseMiniMessage("First line.<newline>Second line.")
	if err != nil {
		t.Fatalf("ParseMiniMessage() error = %v", err)
	}
	if len(tc.Extra) != 3 || tc.Extra[1].Text != "\n" {
		t.Fatalf("got %#v", tc.Extra)
	}
}

func TestParseMiniMessage_SelfClosingNewline(t *testing.T) {
	tc, err := text.ParseMiniMessage("<green>Hello<newline/>world!</green>")
	if err != nil {
		t.Fatalf("ParseMiniMessage() error = %v", err)
	}
	if len(tc.Extra) != 3 {
		t.Fatalf("got %#v", tc.Extra)
	}
	if tc.Extra[1].Text != "\n" || tc.Extra[1].Color != "green" {
		t.Fatalf("newline part = %#v", tc.Extra[1])
	}
}

func TestParseMiniMessage_NonClosingTagsTolerated(t *testing.T) {
	tc, err := text.ParseMiniMessage("<red><bold>Non-closing tags<italic> are supported</bold></red>")
	if err != nil {
		t.Fatalf("ParseMiniMessage() error = %v", err)
	}
	if len(tc.Extra) != 2 {
		t.Fatalf("got %#v", tc.Extra)
	}
	if !tc.Extra[1].Italic || !tc.Extra[1].Bold || tc.Extra[1].Color != "red" {
		t.Fatalf("part 1 = %#v", tc.Extra[1])
	}
}

func TestParseMiniMessage_Empty(t *testing.T) {
	tc, err := text.ParseMiniMessage("")
	if err != nil {
		t.Fatalf("ParseMiniMessage() error = %v", err)
	}
	if tc.Text != "" || len(tc.Extra) != 0 {
		t.Fatalf("expected zero value, got %#v", tc)
	}
}
