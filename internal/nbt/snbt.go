package nbt

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ToSNBT renders tag as compact stringified NBT (SNBT), Minecraft's
// command-line text form: `{a:1b,b:"hi",c:[1,2,3]}`.
func ToSNBT(tag Tag) string {
	var b strings.Builder
	writeSNBT(&b, tag, false, 0)
	return b.String()
}

// ToSNBTPretty renders tag as indented, multi-line SNBT.
func ToSNBTPretty(tag Tag) string {
	var b strings.Builder
	writeSNBT(&b, tag, true, 0)
	return b.String()
}

func writeSNBT(b *strings.Builder, tag Tag, pretty bool, depth int) {
	switch t := tag.(type) {
	case Byte:
		fmt.Fprintf(b, "%db", int8(t))
	case Short:
		fmt.Fprintf(b, "%ds", int16(t))
	case Int:
		fmt.Fprintf(b, "%d", int32(t))
	case Long:
		fmt.Fprintf(b, "%dL", int64(t))
	case Float:
		b.WriteString(formatSNBTFloat(float64(t), 32))
		b.WriteByte('f')
	case Double:
		b.WriteString(formatSNBTFloat(float64(t), 64))
	case String:
		writeSNBTString(b, string(t))
	case ByteArray:
		writeSNBTNumArray(b, "B", len(t), func(i int) string { return strconv.Itoa(int(int8(t[i]))) })
	case IntArray:
		writeSNBTNumArray(b, "I", len(t), func(i int) string { return strconv.Itoa(int(t[i])) })
	case LongArray:
		writeSNBTNumArray(b, "L", len(t), func(i int) string { return strconv.FormatInt(t[i], 10) })
	case List:
		writeSNBTList(b, t, pretty, depth)
	case Compound:
		writeSNBTCompound(b, t, pretty, depth)
	case End:
		// nothing printable
	default:
		fmt.Fprintf(b, "<%T>", tag)
	}
}

func formatSNBTFloat(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func writeSNBTNumArray(b *strings.Builder, tag string, n int, elem func(int) string) {
	b.WriteByte('[')
	b.WriteString(tag)
	b.WriteByte(';')
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(elem(i))
	}
	b.WriteByte(']')
}

func writeSNBTList(b *strings.Builder, l List, pretty bool, depth int) {
	if len(l.Elements) == 0 {
		b.WriteString("[]")
		return
	}
	b.WriteByte('[')
	for i, elem := range l.Elements {
		if i > 0 {
			b.WriteByte(',')
		}
		writeNewlineIndent(b, pretty, depth+1)
		writeSNBT(b, elem, pretty, depth+1)
	}
	writeNewlineIndent(b, pretty, depth)
	b.WriteByte(']')
}

func writeSNBTCompound(b *strings.Builder, c Compound, pretty bool, depth int) {
	if len(c) == 0 {
		b.WriteString("{}")
		return
	}
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		writeNewlineIndent(b, pretty, depth+1)
		writeSNBTKey(b, k)
		b.WriteByte(':')
		if pretty {
			b.WriteByte(' ')
		}
		writeSNBT(b, c[k], pretty, depth+1)
	}
	writeNewlineIndent(b, pretty, depth)
	b.WriteByte('}')
}

func writeNewlineIndent(b *strings.Builder, pretty bool, depth int) {
	if !pretty {
		return
	}
	b.WriteByte('\n')
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}

// isUnquotedRune reports whether r is allowed in a bare (unquoted) SNBT token.
func isUnquotedRune(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') ||
		r == '_' || r == '.' || r == '+' || r == '-'
}

func canBeUnquotedString(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isUnquotedRune(r) {
			return false
		}
	}
	first := s[0]
	if first >= '0' && first <= '9' {
		return false
	}
	return first != '+' && first != '-' && first != '.'
}

func writeSNBTString(b *strings.Builder, s string) {
	if canBeUnquotedString(s) {
		b.WriteString(s)
		return
	}
	b.WriteByte('"')
	for _, r := range s {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
}

func writeSNBTKey(b *strings.Builder, s string) {
	allUnquoted := s != ""
	for _, r := range s {
		if !isUnquotedRune(r) {
			allUnquoted = false
			break
		}
	}
	if allUnquoted {
		b.WriteString(s)
		return
	}
	writeSNBTString(b, s)
}

// ParseSNBT parses a stringified-NBT document into a Tag.
func ParseSNBT(s string) (Tag, error) {
	p := &snbtParser{s: s}
	p.skipWS()
	tag, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipWS()
	if p.pos != len(p.s) {
		return nil, fmt.Errorf("nbt: trailing data in SNBT at offset %d", p.pos)
	}
	return tag, nil
}

type snbtParser struct {
	s   string
	pos int
}

func (p *snbtParser) skipWS() {
	for p.pos < len(p.s) {
		switch p.s[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *snbtParser) peek() (byte, bool) {
	if p.pos >= len(p.s) {
		return 0, false
	}
	return p.s[p.pos], true
}

func (p *snbtParser) parseValue() (Tag, error) {
	c, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("nbt: unexpected end of SNBT input")
	}
	switch {
	case c == '{':
		return p.parseCompound()
	case c == '[':
		return p.parseListOrArray()
	case c == '"' || c == '\'':
		s, err := p.parseQuotedString()
		if err != nil {
			return nil, err
		}
		return String(s), nil
	default:
		return p.parseBareToken()
	}
}

func (p *snbtParser) parseCompound() (Tag, error) {
	p.pos++ // consume '{'
	compound := make(Compound)
	p.skipWS()
	if c, ok := p.peek(); ok && c == '}' {
		p.pos++
		return compound, nil
	}
	for {
		p.skipWS()
		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		p.skipWS()
		if c, ok := p.peek(); !ok || c != ':' {
			return nil, fmt.Errorf("nbt: expected ':' after key %q at offset %d", key, p.pos)
		}
		p.pos++
		p.skipWS()
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		compound[key] = value

		p.skipWS()
		c, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("nbt: unterminated compound")
		}
		if c == ',' {
			p.pos++
			continue
		}
		if c == '}' {
			p.pos++
			return compound, nil
		}
		return nil, fmt.Errorf("nbt: expected ',' or '}' at offset %d", p.pos)
	}
}

func (p *snbtParser) parseKey() (string, error) {
	if c, ok := p.peek(); ok && (c == '"' || c == '\'') {
		return p.parseQuotedString()
	}
	start := p.pos
	for p.pos < len(p.s) && isUnquotedRune(rune(p.s[p.pos])) {
		p.pos++
	}
	if p.pos == start {
		return "", fmt.Errorf("nbt: expected key at offset %d", p.pos)
	}
	return p.s[start:p.pos], nil
}

func (p *snbtParser) parseQuotedString() (string, error) {
	quote := p.s[p.pos]
	p.pos++
	var b strings.Builder
	for {
		if p.pos >= len(p.s) {
			return "", fmt.Errorf("nbt: unterminated string")
		}
		c := p.s[p.pos]
		if c == '\\' && p.pos+1 < len(p.s) {
			p.pos++
			b.WriteByte(p.s[p.pos])
			p.pos++
			continue
		}
		if c == quote {
			p.pos++
			return b.String(), nil
		}
		b.WriteByte(c)
		p.pos++
	}
}

func (p *snbtParser) parseListOrArray() (Tag, error) {
	p.pos++ // consume '['
	if p.pos+1 < len(p.s) && p.s[p.pos+1] == ';' {
		switch p.s[p.pos] {
		case 'B':
			p.pos += 2
			return p.parseByteArray()
		case 'I':
			p.pos += 2
			return p.parseIntArray()
		case 'L':
			p.pos += 2
			return p.parseLongArray()
		}
	}
	return p.parseList()
}

func (p *snbtParser) parseByteArray() (Tag, error) {
	var out ByteArray
	p.skipWS()
	if c, ok := p.peek(); ok && c == ']' {
		p.pos++
		return out, nil
	}
	for {
		p.skipWS()
		start := p.pos
		for p.pos < len(p.s) && p.s[p.pos] != ',' && p.s[p.pos] != ']' {
			p.pos++
		}
		n, err := strconv.ParseInt(strings.TrimRight(p.s[start:p.pos], "bB"), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("nbt: bad byte array element: %w", err)
		}
		out = append(out, byte(int8(n)))
		if c, ok := p.peek(); ok && c == ',' {
			p.pos++
			continue
		}
		break
	}
	if c, ok := p.peek(); !ok || c != ']' {
		return nil, fmt.Errorf("nbt: unterminated byte array")
	}
	p.pos++
	return out, nil
}

func (p *snbtParser) parseIntArray() (Tag, error) {
	var out IntArray
	p.skipWS()
	if c, ok := p.peek(); ok && c == ']' {
		p.pos++
		return out, nil
	}
	for {
		p.skipWS()
		start := p.pos
		for p.pos < len(p.s) && p.s[p.pos] != ',' && p.s[p.pos] != ']' {
			p.pos++
		}
		n, err := strconv.ParseInt(p.s[start:p.pos], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("nbt: bad int array element: %w", err)
		}
		out = append(out, int32(n))
		if c, ok := p.peek(); ok && c == ',' {
			p.pos++
			continue
		}
		break
	}
	if c, ok := p.peek(); !ok || c != ']' {
		return nil, fmt.Errorf("nbt: unterminated int array")
	}
	p.pos++
	return out, nil
}

func (p *snbtParser) parseLongArray() (Tag, error) {
	var out LongArray
	p.skipWS()
	if c, ok := p.peek(); ok && c == ']' {
		p.pos++
		return out, nil
	}
	for {
		p.skipWS()
		start := p.pos
		for p.pos < len(p.s) && p.s[p.pos] != ',' && p.s[p.pos] != ']' {
			p.pos++
		}
		n, err := strconv.ParseInt(strings.TrimRight(p.s[start:p.pos], "lL"), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("nbt: bad long array element: %w", err)
		}
		out = append(out, n)
		if c, ok := p.peek(); ok && c == ',' {
			p.pos++
			continue
		}
		break
	}
	if c, ok := p.peek(); !ok || c != ']' {
		return nil, fmt.Errorf("nbt: unterminated long array")
	}
	p.pos++
	return out, nil
}

func (p *snbtParser) parseList() (Tag, error) {
	var elements []Tag
	var elemType byte
	p.skipWS()
	if c, ok := p.peek(); ok && c == ']' {
		p.pos++
		return List{ElementType: TagEnd}, nil
	}
	for {
		p.skipWS()
		elem, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if len(elements) == 0 {
			elemType = elem.ID()
		} else if elem.ID() != elemType {
			return nil, fmt.Errorf("nbt: list has mixed element types %s and %s",
				TagName(elemType), TagName(elem.ID()))
		}
		elements = append(elements, elem)

		p.skipWS()
		c, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("nbt: unterminated list")
		}
		if c == ',' {
			p.pos++
			continue
		}
		if c == ']' {
			p.pos++
			return List{ElementType: elemType, Elements: elements}, nil
		}
		return nil, fmt.Errorf("nbt: expected ',' or ']' at offset %d", p.pos)
	}
}

func (p *snbtParser) parseBareToken() (Tag, error) {
	start := p.pos
	for p.pos < len(p.s) && isUnquotedRune(rune(p.s[p.pos])) {
		p.pos++
	}
	if p.pos == start {
		return nil, fmt.Errorf("nbt: unexpected character %q at offset %d", p.s[p.pos], p.pos)
	}
	tok := p.s[start:p.pos]
	return parseNumericOrString(tok)
}

func parseNumericOrString(tok string) (Tag, error) {
	if tok == "" {
		return nil, fmt.Errorf("nbt: empty token")
	}
	last := tok[len(tok)-1]
	body := tok
	switch last {
	case 'b', 'B':
		body = tok[:len(tok)-1]
		if n, err := strconv.ParseInt(body, 10, 8); err == nil {
			return Byte(n), nil
		}
	case 's', 'S':
		body = tok[:len(tok)-1]
		if n, err := strconv.ParseInt(body, 10, 16); err == nil {
			return Short(n), nil
		}
	case 'l', 'L':
		body = tok[:len(tok)-1]
		if n, err := strconv.ParseInt(body, 10, 64); err == nil {
			return Long(n), nil
		}
	case 'f', 'F':
		body = tok[:len(tok)-1]
		if f, err := strconv.ParseFloat(body, 32); err == nil {
			return Float(f), nil
		}
	case 'd', 'D':
		body = tok[:len(tok)-1]
		if f, err := strconv.ParseFloat(body, 64); err == nil {
			return Double(f), nil
		}
	}

	if n, err := strconv.ParseInt(tok, 10, 32); err == nil {
		return Int(n), nil
	}
	if strings.ContainsAny(tok, ".eE") {
		if f, err := strconv.ParseFloat(tok, 64); err == nil {
			return Double(f), nil
		}
	}
	if !canBeUnquotedString(tok) {
		return nil, fmt.Errorf("nbt: invalid bare token %q", tok)
	}
	return String(tok), nil
}
