package packet

import (
	"fmt"

	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/packetid"
	"github.com/go-mclib/limbo/internal/text"
	"github.com/go-mclib/limbo/internal/version"
)

// BossBarColor and BossBarDivisions mirror vanilla's boss-bar enums.
type BossBarColor int32

const (
	BossBarPink BossBarColor = iota
	BossBarBlue
	BossBarRed
	BossBarGreen
	BossBarYellow
	BossBarPurple
	BossBarWhite
)

type BossBarDivisions int32

const (
	BossBarNoDivisions BossBarDivisions = iota
	BossBarSixNotches
	BossBarTenNotches
	BossBarTwelveNotches
	BossBarTwentyNotches
)

// BossEvent manages a client's boss bar. A holding server only ever adds
// one bar at join time, so only the Add action is implemented; Remove and
// the update variants aren't needed without a way to later change it.
type BossEvent struct {
	base
	UUID     netio.UUID
	Title    text.TextComponent
	Health   float32
	Color    BossBarColor
	Division BossBarDivisions
}

func NewBossEventAdd(id netio.UUID, title text.TextComponent, health float32, color BossBarColor, division BossBarDivisions) *BossEvent {
	return &BossEvent{
		base:     base{name: "minecraft:boss_event", state: packetid.StatePlay, bound: packetid.S2C},
		UUID:     id,
		Title:    title,
		Health:   health,
		Color:    color,
		Division: division,
	}
}

func (p *BossEvent) Read(_ *netio.PacketBuffer, _ version.ProtocolVersion) error {
	return fmt.Errorf("boss_event: decode not supported, clientbound-only")
}

func (p *BossEvent) Write(pb *netio.PacketBuffer, v version.ProtocolVersion) error {
	if err := pb.WriteUUID(p.UUID); err != nil {
		return err
	}
	if err := pb.WriteVarInt(0); err != nil { // action: add
		return err
	}
	if err := text.Encode(pb, p.Title, nbtTextComponents.Present(v)); err != nil {
		return err
	}
	if err := pb.WriteFloat32(netio.Float32(p.Health)); err != nil {
		return err
	}
	if err := pb.WriteVarInt(netio.VarInt(p.Color)); err != nil {
		return err
	}
	if err := pb.WriteVarInt(netio.VarInt(p.Division)); err != nil {
		return err
	}
	return pb.WriteUint8(0) // flags: none set
}
