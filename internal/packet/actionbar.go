package packet

import (
	"fmt"

	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/packetid"
	"github.com/go-mclib/limbo/internal/text"
	"github.com/go-mclib/limbo/internal/version"
)

// SetActionBarText displays a message above the hotbar.
type SetActionBarText struct {
	base
	Text text.TextComponent
}

func NewSetActionBarText(tc text.TextComponent) *SetActionBarText {
	return &SetActionBarText{base: base{name: "minecraft:set_action_bar_text", state: packetid.StatePlay, bound: packetid.S2C}, Text: tc}
}

func (p *SetActionBarText) Read(_ *netio.PacketBuffer, _ version.ProtocolVersion) error {
	return fmt.Errorf("set_action_bar_text: decode not supported, clientbound-only")
}

func (p *SetActionBarText) Write(pb *netio.PacketBuffer, v version.ProtocolVersion) error {
	return text.Encode(pb, p.Text, nbtTextComponents.Present(v))
}
