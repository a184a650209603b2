package text

import "github.com/go-mclib/limbo/internal/nbt"

// ToNBT builds the component's NBT compound representation, used for chat
// and disconnect payloads on clients at or after 1.20.3.
func (tc TextComponent) ToNBT() nbt.Tag {
	compound := nbt.Compound{"text": nbt.String(tc.Text)}

	if tc.Color != "" {
		compound["color"] = nbt.String(tc.Color)
	}
	if tc.Bold {
		compound["bold"] = nbt.Byte(1)
	}
	if tc.Italic {
		compound["italic"] = nbt.Byte(1)
	}
	if tc.Underlined {
		compound["underlined"] = nbt.Byte(1)
	}
	if tc.Strikethrough {
		compound["strikethrough"] = nbt.Byte(1)
	}
	if tc.Obfuscated {
		compound["obfuscated"] = nbt.Byte(1)
	}
	if len(tc.Extra) > 0 {
		elements := make([]nbt.Tag, len(tc.Extra))
		for i, child := range tc.Extra {
			elements[i] = child.ToNBT()
		}
		compound["extra"] = nbt.List{ElementType: nbt.TagCompound, Elements: elements}
	}

	return compound
}

// FromNBT reads a component back out of its compound (or bare String
// shorthand) representation.
func FromNBT(tag nbt.Tag) TextComponent {
	if s, ok := tag.(nbt.String); ok {
		return TextComponent{Text: string(s)}
	}
	c, ok := tag.(nbt.Compound)
	if !ok {
		return TextComponent{}
	}

	tc := TextComponent{
		Text:          c.GetString("text"),
		Color:         c.GetString("color"),
		Bold:          c.GetByte("bold") != 0,
		Italic:        c.GetByte("italic") != 0,
		Underlined:    c.GetByte("underlined") != 0,
		Strikethrough: c.GetByte("strikethrough") != 0,
		Obfuscated:    c.GetByte("obfuscated") != 0,
	}

	if extra, ok := c["extra"].(nbt.List); ok {
		tc.Extra = make([]TextComponent, len(extra.Elements))
		for i, elem := range extra.Elements {
			tc.Extra[i] = FromNBT(elem)
		}
	}

	return tc
}
