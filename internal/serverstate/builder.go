package serverstate

import (
	"fmt"

	"github.com/go-mclib/limbo/internal/blockmapping"
	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/schematic"
	"github.com/go-mclib/limbo/internal/text"
)

// Builder assembles a ServerState step by step, validating boundary
// geometry and loading the optional world before Build hands out an
// immutable result - mirroring registry.Builder/Manager's
// construct-then-freeze shape.
type Builder struct {
	state *ServerState
	err   error
}

// NewBuilder starts a Builder with the spec's documented defaults
// (Survival, non-hardcore, player-listed, skins fetched, debug info
// shown, clock running).
func NewBuilder() *Builder {
	return &Builder{
		state: &ServerState{
			GameMode:         GameModeSurvival,
			IsPlayerListed:   true,
			FetchPlayerSkins: true,
			ReducedDebugInfo: false,
			MaxPlayers:       20,
			ViewDistance:     10,
			SpawnDimension:   "minecraft:overworld",
			MOTD:             text.New("A Minecraft Server"),
		},
	}
}

// WithForwarding selects the proxy-forwarding verifier mode and, for
// BungeeGuard/Modern, the shared secret that verifier checks against.
func (b *Builder) WithForwarding(mode ForwardingMode, secret string) *Builder {
	b.state.ForwardingMode = mode
	b.state.ForwardingSecret = secret
	return b
}

func (b *Builder) WithSpawn(dimension string, pos netio.Position, yaw, pitch float32) *Builder {
	b.state.SpawnDimension = dimension
	b.state.SpawnPosition = pos
	b.state.SpawnYaw = yaw
	b.state.SpawnPitch = pitch
	return b
}

func (b *Builder) WithViewDistance(n int32) *Builder {
	b.state.ViewDistance = n
	return b
}

func (b *Builder) WithMOTD(motd text.TextComponent) *Builder {
	b.state.MOTD = motd
	return b
}

func (b *Builder) WithWelcomeMessage(msg text.TextComponent) *Builder {
	b.state.WelcomeMessage = &msg
	return b
}

func (b *Builder) WithActionBarText(msg text.TextComponent) *Builder {
	b.state.ActionBarText = &msg
	return b
}

func (b *Builder) WithBossBar(title text.TextComponent, health float32, color, division int32) *Builder {
	b.state.BossBar = &BossBarSettings{Title: title, Health: health, Color: color, Division: division}
	return b
}

func (b *Builder) WithTabList(header, footer text.TextComponent) *Builder {
	b.state.TabList = &TabListSettings{Header: header, Footer: footer}
	return b
}

func (b *Builder) WithMaxPlayers(n int32) *Builder {
	b.state.MaxPlayers = n
	return b
}

func (b *Builder) WithGameMode(mode GameMode, hardcore bool) *Builder {
	b.state.GameMode = mode
	b.state.Hardcore = hardcore
	return b
}

func (b *Builder) WithCompression(threshold int32, level int) *Builder {
	b.state.Compression = CompressionSettings{Threshold: threshold, Level: level}
	return b
}

func (b *Builder) WithCommands(commands []string) *Builder {
	b.state.Commands = commands
	return b
}

func (b *Builder) WithFavIcon(base64PNG string) *Builder {
	b.state.FavIcon = base64PNG
	return b
}

func (b *Builder) WithTime(ticks int64, lock bool) *Builder {
	b.state.TimeOfDay = ticks
	b.state.LockTime = lock
	return b
}

// WithWorld loads a .schem file's bytes against mapping as the server's
// static world. A loading failure is recorded and surfaces from Build,
// matching spec §4.9's "if loading fails the process exits with a
// non-zero code; no partial startup".
func (b *Builder) WithWorld(schemBytes []byte, mapping *blockmapping.Mapping) *Builder {
	if b.err != nil {
		return b
	}
	world, err := schematic.LoadFile(schemBytes, mapping)
	if err != nil {
		b.err = fmt.Errorf("serverstate: load world: %w", err)
		return b
	}
	b.state.World = world
	return b
}

// Build validates and freezes the ServerState, or returns the first error
// recorded during construction.
func (b *Builder) Build() (*ServerState, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.state.validate(); err != nil {
		return nil, err
	}
	return b.state, nil
}
