package text

import "strings"

// style is the accumulated formatting in effect at a point in the tag tree.
type style struct {
	color                                                string
	bold, italic, underlined, strikethrough, obfuscated bool
}

func (s style) apply(tag string) style {
	switch tag {
	case "bold", "b":
		s.bold = true
	case "italic", "i", "em":
		s.italic = true
	case "underlined", "u":
		s.underlined = true
	case "strikethrough", "st":
		s.strikethrough = true
	case "obfuscated", "obf":
		s.obfuscated = true
	default:
		if isColorTag(tag) {
			s.color = tag
		}
	}
	return s
}

func (s style) component(t string) TextComponent {
	return TextComponent{
		Text:          t,
		Color:         s.color,
		Bold:          s.bold,
		Italic:        s.italic,
		Underlined:    s.underlined,
		Strikethrough: s.strikethrough,
		Obfuscated:    s.obfuscated,
	}
}

// ParseMiniMessage parses a small subset of MiniMessage tag syntax: the 16
// named colors, bold/b, italic/i/em, underlined/u, strikethrough/st,
// obfuscated/obf, nesting of any of the above, and a <newline> (or
// self-closing <newline/>) tag that inserts a literal line break. Unknown
// tags are ignored. Closing tags pop the style stack unconditionally
// (regardless of name) so malformed or non-matching close tags, like a
// <bold> closed by an enclosing </red>, don't abort the parse.
func ParseMiniMessage(input string) (TextComponent, error) {
	var flat []TextComponent
	stack := []style{{}}

	i := 0
	for i < len(input) {
		lt := strings.IndexByte(input[i:], '<')
		if lt < 0 {
			if text := input[i:]; text != "" {
				flat = append(flat, stack[len(stack)-1].component(text))
			}
			break
		}
		if lt > 0 {
			flat = append(flat, stack[len(stack)-1].component(input[i:i+lt]))
		}
		i += lt

		gt := strings.IndexByte(input[i:], '>')
		if gt < 0 {
			// unterminated tag: treat the rest as literal text
			flat = append(flat, stack[len(stack)-1].component(input[i:]))
			break
		}
		tagBody := input[i+1 : i+gt]
		i += gt + 1

		closing := strings.HasPrefix(tagBody, "/")
		if closing {
			tagBody = tagBody[1:]
		}
		selfClosing := strings.HasSuffix(tagBody, "/")
		if selfClosing {
			tagBody = tagBody[:len(tagBody)-1]
		}
		name := strings.TrimSpace(tagBody)

		switch {
		case name == "newline":
			flat = append(flat, stack[len(stack)-1].component("\n"))
		case closing:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		default:
			if _, ok := styleTags[name]; ok {
				stack = append(stack, stack[len(stack)-1].apply(name))
				if selfClosing && len(stack) > 1 {
					stack = stack[:len(stack)-1]
				}
			}
		}
	}

	if len(flat) == 0 {
		return TextComponent{}, nil
	}
	return TextComponent{Extra: flat}, nil
}
