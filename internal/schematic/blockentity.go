package schematic

import (
	"github.com/go-mclib/limbo/internal/nbt"
	"github.com/go-mclib/limbo/internal/text"
)

// BlockEntityKind selects which shape a BlockEntity carries.
type BlockEntityKind int

const (
	// Generic covers every block entity type without special handling:
	// its raw NBT is kept verbatim, reserved placement keys stripped.
	Generic BlockEntityKind = iota
	// Sign is handled specially because its wire shape changed across
	// versions (legacy Text1-4 strings vs modern front/back text faces).
	Sign
)

// SignFace is one face of a sign: up to four lines of text, a dye color
// name, and whether the text glows.
type SignFace struct {
	Messages [4]text.TextComponent
	Color    string
	IsGlowing bool
}

// SignData is the intermediate representation of a sign block entity,
// sitting between the raw schematic NBT and a specific protocol version's
// wire shape.
type SignData struct {
	FrontFace SignFace
	BackFace  SignFace
	IsWaxed   bool
}

// BlockEntity is a schematic block entity: its position (schematic-local,
// not yet translated to world coordinates), block type identifier, and
// intermediate-form data.
type BlockEntity struct {
	X, Y, Z         int32
	BlockEntityType string
	Kind            BlockEntityKind
	Sign            SignData  // valid when Kind == Sign
	NBT             nbt.Compound // valid when Kind == Generic
}

// reservedBlockEntityKeys are placement fields vanilla stores alongside a
// block entity's own data; GenericFromNBT strips them since position is
// tracked separately in BlockEntity and re-derived on write.
var reservedBlockEntityKeys = map[string]bool{
	"Id": true, "Pos": true, "x": true, "y": true, "z": true, "keepPacked": true,
}

// GenericFromNBT builds a Generic block entity's NBT payload by filtering
// the reserved placement keys out of a raw compound.
func GenericFromNBT(raw nbt.Compound) nbt.Compound {
	filtered := make(nbt.Compound, len(raw))
	for k, v := range raw {
		if reservedBlockEntityKeys[k] {
			continue
		}
		filtered[k] = v
	}
	return filtered
}

// signColorNames are the sixteen dye colors a sign face may use, matching
// vanilla's SignColor enum; the zero value defaults to "black".
var signColorNames = map[string]bool{
	"black": true, "white": true, "orange": true, "magenta": true,
	"light_blue": true, "yellow": true, "lime": true, "pink": true,
	"gray": true, "light_gray": true, "cyan": true, "purple": true,
	"blue": true, "brown": true, "green": true, "red": true,
}

// normalizeSignColor returns name if it's a recognized sign color, else
// the default "black".
func normalizeSignColor(name string) string {
	if signColorNames[name] {
		return name
	}
	return "black"
}

// parseBlockEntities converts a schematic's raw BlockEntities/TileEntities
// list into intermediate BlockEntity values, splitting sign entities out
// for their specialized wire handling and leaving everything else Generic.
func parseBlockEntities(list nbt.List) []BlockEntity {
	out := make([]BlockEntity, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		compound, ok := list.Get(i).(nbt.Compound)
		if !ok {
			continue
		}

		x, y, z, ok := blockEntityPosition(compound)
		if !ok {
			continue
		}
		entityType := compound.GetString("Id")

		be := BlockEntity{X: x, Y: y, Z: z, BlockEntityType: entityType}
		if isSignType(entityType) {
			be.Kind = Sign
			be.Sign = parseSignData(compound)
		} else {
			be.Kind = Generic
			be.NBT = GenericFromNBT(compound)
		}
		out = append(out, be)
	}
	return out
}

// blockEntityPosition reads a block entity's position: v3 schematics store
// a "Pos" int array, v2/legacy schematics store separate "x"/"y"/"z" ints.
func blockEntityPosition(c nbt.Compound) (x, y, z int32, ok bool) {
	if pos := c.GetIntArray("Pos"); len(pos) == 3 {
		return pos[0], pos[1], pos[2], true
	}
	xi, xok := c["x"].(nbt.Int)
	yi, yok := c["y"].(nbt.Int)
	zi, zok := c["z"].(nbt.Int)
	if xok && yok && zok {
		return int32(xi), int32(yi), int32(zi), true
	}
	return 0, 0, 0, false
}

func isSignType(entityType string) bool {
	switch entityType {
	case "minecraft:sign", "minecraft:hanging_sign":
		return true
	default:
		return false
	}
}

// parseSignData reads either the legacy Text1-4/Color/GlowingText shape or
// the modern front_text/back_text shape out of a sign block entity's NBT.
func parseSignData(c nbt.Compound) SignData {
	if front, ok := c["front_text"].(nbt.Compound); ok {
		back, _ := c["back_text"].(nbt.Compound)
		return SignData{
			FrontFace: parseSignFace(front),
			BackFace:  parseSignFace(back),
			IsWaxed:   c.GetByte("is_waxed") != 0,
		}
	}

	color := normalizeSignColor(c.GetString("Color"))
	glowing := c.GetByte("GlowingText") != 0
	face := SignFace{Color: color, IsGlowing: glowing}
	for i, key := range []string{"Text1", "Text2", "Text3", "Text4"} {
		if line := c.GetString(key); line != "" {
			parsed, err := text.FromJSON([]byte(line))
			if err == nil {
				face.Messages[i] = parsed
			} else {
				face.Messages[i] = text.New(line)
			}
		}
	}
	return SignData{FrontFace: face, BackFace: SignFace{Color: "black"}}
}

func parseSignFace(c nbt.Compound) SignFace {
	if c == nil {
		return SignFace{Color: "black"}
	}
	face := SignFace{
		Color:     normalizeSignColor(c.GetString("color")),
		IsGlowing: c.GetByte("has_glowing_text") != 0,
	}
	messages := c.GetList("messages")
	for i := 0; i < messages.Len() && i < 4; i++ {
		if s, ok := messages.Get(i).(nbt.String); ok {
			parsed, err := text.FromJSON([]byte(s))
			if err == nil {
				face.Messages[i] = parsed
			} else {
				face.Messages[i] = text.New(string(s))
			}
		}
	}
	return face
}
