// Package serverstate implements ServerState (spec component P): the
// process-wide, read-mostly configuration every connection consults - MOTD,
// spawn parameters, forwarding mode, the optional world - plus the one
// piece of genuinely mutable shared state, the connected-player count.
package serverstate

import (
	"fmt"
	"sync/atomic"

	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/schematic"
	"github.com/go-mclib/limbo/internal/text"
)

// ForwardingMode selects which proxy-forwarding scheme, if any, verifies
// incoming connections. The concrete verifiers live in
// internal/forwarding; ServerState only carries the selector.
type ForwardingMode int

const (
	ForwardingNone ForwardingMode = iota
	ForwardingLegacy
	ForwardingBungeeGuard
	ForwardingModern
)

func (f ForwardingMode) String() string {
	switch f {
	case ForwardingLegacy:
		return "legacy"
	case ForwardingBungeeGuard:
		return "bungee_guard"
	case ForwardingModern:
		return "modern"
	default:
		return "none"
	}
}

// CompressionSettings is the negotiated SetCompression threshold and the
// configured zlib level. Level is validated but not passed on: packetcodec
// compresses every frame at compress/zlib's default level.
type CompressionSettings struct {
	Threshold int32
	Level     int
}

// TabListSettings sets the static header/footer text shown above and
// below a client's player list.
type TabListSettings struct {
	Header text.TextComponent
	Footer text.TextComponent
}

// BossBarSettings describes the one boss bar a holding server displays
// for the duration of a connection - no progress updates, since nothing
// in a holding world ever changes it after join.
type BossBarSettings struct {
	Title    text.TextComponent
	Health   float32
	Color    int32 // packet.BossBarColor
	Division int32 // packet.BossBarDivisions
}

// GameMode mirrors vanilla's four game modes; Spectator is rewritten to
// Creative for clients older than 1.8, which predate it (spec §4.6).
type GameMode byte

const (
	GameModeSurvival GameMode = iota
	GameModeCreative
	GameModeAdventure
	GameModeSpectator
)

// ServerState is immutable after ServerStateBuilder.Build, except
// ConnectedClients, which every connection's play-state transition
// updates via atomic add/subtract - no lock is ever held across a
// connection's socket read or write, so this field has to be lock-free.
type ServerState struct {
	ForwardingMode ForwardingMode
	// ForwardingSecret is the shared value the configured ForwardingMode
	// checks against: the BungeeGuard token for ForwardingBungeeGuard, or
	// the HMAC-SHA256 key for ForwardingModern. Unused for None/Legacy.
	ForwardingSecret string

	SpawnDimension string
	SpawnPosition  netio.Position
	SpawnYaw       float32
	SpawnPitch     float32
	ViewDistance   int32

	World *schematic.Schematic

	MOTD           text.TextComponent
	WelcomeMessage *text.TextComponent
	ActionBarText  *text.TextComponent
	BossBar        *BossBarSettings
	TabList        *TabListSettings
	MaxPlayers     int32
	GameMode       GameMode
	Hardcore       bool
	IsPlayerListed bool
	Commands       []string
	FavIcon        string

	Compression CompressionSettings

	FetchPlayerSkins    bool
	ReducedDebugInfo    bool
	TimeOfDay           int64
	LockTime            bool

	connectedClients atomic.Uint32
}

// ConnectedClients returns the current number of clients that have
// reached the Play state.
func (s *ServerState) ConnectedClients() uint32 {
	return s.connectedClients.Load()
}

// IncrementConnected records a client entering Play, returning the new
// count. Called exactly once per connection, at the point spec §4.6's
// join batch completes and keep-alive is enabled.
func (s *ServerState) IncrementConnected() uint32 {
	return s.connectedClients.Add(1)
}

// DecrementConnected records a client that had reached Play disconnecting.
// Connections that never reach Play (status pings, rejected logins) must
// not call this - there is nothing to undo.
func (s *ServerState) DecrementConnected() uint32 {
	return s.connectedClients.Add(^uint32(0))
}

// AtCapacity reports whether the server has reached MaxPlayers (<=0 means
// unlimited).
func (s *ServerState) AtCapacity() bool {
	if s.MaxPlayers <= 0 {
		return false
	}
	return s.ConnectedClients() >= uint32(s.MaxPlayers)
}

// validate checks the invariants ServerStateBuilder.Build enforces before
// handing out an immutable ServerState: a malformed config must fail
// startup outright, never produce a half-usable server.
func (s *ServerState) validate() error {
	if s.ViewDistance < 0 {
		return fmt.Errorf("serverstate: view distance must be >= 0, got %d", s.ViewDistance)
	}
	if s.Compression.Level > 9 {
		return fmt.Errorf("serverstate: compression level must be 0-9, got %d", s.Compression.Level)
	}
	if s.SpawnDimension == "" {
		return fmt.Errorf("serverstate: spawn dimension must be set")
	}
	return nil
}
