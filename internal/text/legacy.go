package text

import "strings"

// Legacy renders the component tree as a single string using legacy §
// formatting codes, for chat recipients on clients older than 1.20.3.
func (tc TextComponent) Legacy() string {
	var b strings.Builder
	tc.writeLegacy(&b, true)
	return b.String()
}

func (tc TextComponent) writeLegacy(b *strings.Builder, isRoot bool) {
	if !isRoot {
		// reset before applying this node's own style
		b.WriteRune('§')
		b.WriteByte('r')
	}

	if tc.Color != "" {
		writeFormatCode(b, legacyColorCode(tc.Color))
	}
	if tc.Bold {
		writeFormatCode(b, 'l')
	}
	if tc.Italic {
		writeFormatCode(b, 'o')
	}
	if tc.Underlined {
		writeFormatCode(b, 'n')
	}
	if tc.Strikethrough {
		writeFormatCode(b, 'm')
	}
	if tc.Obfuscated {
		writeFormatCode(b, 'k')
	}

	b.WriteString(tc.Text)

	for _, child := range tc.Extra {
		child.writeLegacy(b, false)
	}
}

func writeFormatCode(b *strings.Builder, code byte) {
	b.WriteRune('§')
	b.WriteByte(code)
}
