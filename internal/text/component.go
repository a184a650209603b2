// Package text implements Minecraft's chat text component: structured rich
// text with color and style flags, dual JSON/NBT wire serialisation, legacy
// formatting-code emission, and a small MiniMessage-style tag parser.
package text

import "strings"

// TextComponent is a single node of rich text. Extra holds child components
// appended after this node's own text, inheriting nothing automatically —
// each child carries its own full style.
type TextComponent struct {
	Text          string          `json:"text"`
	Color         string          `json:"color,omitempty"`
	Bold          bool            `json:"bold,omitempty"`
	Italic        bool            `json:"italic,omitempty"`
	Underlined    bool            `json:"underlined,omitempty"`
	Strikethrough bool            `json:"strikethrough,omitempty"`
	Obfuscated    bool            `json:"obfuscated,omitempty"`
	Extra         []TextComponent `json:"extra,omitempty"`
}

// New builds a plain, unstyled text component.
func New(content string) TextComponent {
	return TextComponent{Text: content}
}

// WithColor returns a copy of the component with Color set.
func (tc TextComponent) WithColor(color string) TextComponent {
	tc.Color = color
	return tc
}

// Plain renders the component and its children as flat, unformatted text,
// discarding all styling. Useful for logs and console output.
func (tc TextComponent) Plain() string {
	var b strings.Builder
	tc.writePlain(&b)
	return b.String()
}

func (tc TextComponent) writePlain(b *strings.Builder) {
	b.WriteString(tc.Text)
	for _, child := range tc.Extra {
		child.writePlain(b)
	}
}
