package packet

import (
	"fmt"

	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/packetid"
	"github.com/go-mclib/limbo/internal/text"
	"github.com/go-mclib/limbo/internal/version"
)

// TabList sets the static header/footer text shown above and below the
// player list.
type TabList struct {
	base
	Header text.TextComponent
	Footer text.TextComponent
}

func NewTabList(header, footer text.TextComponent) *TabList {
	return &TabList{base: base{name: "minecraft:tab_list", state: packetid.StatePlay, bound: packetid.S2C}, Header: header, Footer: footer}
}

func (p *TabList) Read(_ *netio.PacketBuffer, _ version.ProtocolVersion) error {
	return fmt.Errorf("tab_list: decode not supported, clientbound-only")
}

func (p *TabList) Write(pb *netio.PacketBuffer, v version.ProtocolVersion) error {
	if err := text.Encode(pb, p.Header, nbtTextComponents.Present(v)); err != nil {
		return err
	}
	return text.Encode(pb, p.Footer, nbtTextComponents.Present(v))
}
