// Package identifier implements Minecraft's namespaced identifier type:
// `namespace:thing`, the addressing scheme used throughout the protocol
// for block states, registry entries, dimensions, and tags.
package identifier

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-mclib/limbo/internal/netio"
)

// DefaultNamespace is substituted when a raw string carries no namespace.
const DefaultNamespace = "minecraft"

// Identifier is a validated namespace:thing pair.
type Identifier struct {
	Namespace string
	Thing     string
}

// New validates namespace and thing and returns an Identifier.
func New(namespace, thing string) (Identifier, error) {
	if namespace == "" {
		return Identifier{}, fmt.Errorf("identifier: empty namespace")
	}
	if thing == "" {
		return Identifier{}, fmt.Errorf("identifier: empty thing")
	}
	for i, c := range namespace {
		if !isValidNamespaceChar(c) {
			return Identifier{}, fmt.Errorf("identifier: illegal character %q at position %d in namespace %q", c, i, namespace)
		}
	}
	for i, c := range thing {
		if !isValidThingChar(c) {
			return Identifier{}, fmt.Errorf("identifier: illegal character %q at position %d in thing %q", c, i, thing)
		}
	}
	return Identifier{Namespace: namespace, Thing: thing}, nil
}

// NewUnchecked builds an Identifier without validating its characters.
// Only for call sites that already know the value is well-formed, such as
// static registry tables built at compile time.
func NewUnchecked(namespace, thing string) Identifier {
	return Identifier{Namespace: namespace, Thing: thing}
}

// Vanilla builds a minecraft-namespaced Identifier, validating thing.
func Vanilla(thing string) (Identifier, error) {
	return New(DefaultNamespace, thing)
}

// VanillaUnchecked builds a minecraft-namespaced Identifier without validation.
func VanillaUnchecked(thing string) Identifier {
	return NewUnchecked(DefaultNamespace, thing)
}

// Parse splits "namespace:thing" (or a bare "thing", defaulting the
// namespace to "minecraft") and validates both halves.
func Parse(s string) (Identifier, error) {
	namespace, thing, ok := strings.Cut(s, ":")
	if !ok {
		namespace, thing = DefaultNamespace, s
	}
	return New(namespace, thing)
}

// MustParse is Parse, panicking on error. Intended for static tables
// built from literal strings known at compile time.
func MustParse(s string) Identifier {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// IsTag reports whether this identifier names a tag reference rather than
// a concrete entry, i.e. its namespace is '#'-prefixed.
func (id Identifier) IsTag() bool {
	return strings.HasPrefix(id.Namespace, "#")
}

// Normalize strips a tag-reference '#' prefix from the namespace, if present.
func (id Identifier) Normalize() Identifier {
	if id.IsTag() {
		return Identifier{Namespace: id.Namespace[1:], Thing: id.Thing}
	}
	return id
}

func (id Identifier) String() string {
	return id.Namespace + ":" + id.Thing
}

// Encode writes the identifier to the wire as a length-prefixed string.
func (id Identifier) Encode(w io.Writer) error {
	return netio.String(id.String()).Encode(w)
}

// maxWireLen matches the teacher's identifier string bound (spec has no
// dedicated Identifier length cap, so this follows the protocol's general
// 32767-character resource-location limit).
const maxWireLen = 32767

// Decode reads a length-prefixed string from the wire and parses it as an
// Identifier.
func Decode(r io.Reader) (Identifier, error) {
	s, err := netio.DecodeString(r, maxWireLen)
	if err != nil {
		return Identifier{}, err
	}
	return Parse(string(s))
}

func isValidBaseChar(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || c == '_' || c == '-' || c == '.'
}

func isValidNamespaceChar(c rune) bool {
	return isValidBaseChar(c) || c == '#'
}

func isValidThingChar(c rune) bool {
	return isValidBaseChar(c) || c == '/'
}
