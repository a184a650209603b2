// Package config implements spec §6's "Configuration" external
// interface: a TOML file defining bind address, forwarding mode, spawn
// parameters, compression, the optional schematic world, and the
// join-sequence text/command extras, materialized as a commented
// default file on first run.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/pelletier/go-toml/v2"

	"github.com/go-mclib/limbo/internal/blockmapping"
	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/serverstate"
	"github.com/go-mclib/limbo/internal/text"
)

// Config mirrors the TOML schema spec §6 names as its minimum
// configuration: bind, forwarding.type, spawn position/rotation,
// dimension, view distance, compression, schematic file, MOTD, command
// aliases - plus the join-batch extras (welcome message, action bar,
// boss bar, tab list) ServerState.Builder already exposes.
type Config struct {
	Bind        string            `toml:"bind" comment:"Address the server listens on, e.g. \"0.0.0.0:25565\"."`
	Forwarding  ForwardingConfig  `toml:"forwarding"`
	Spawn       SpawnConfig       `toml:"spawn"`
	ViewDistance int32            `toml:"view_distance" comment:"Chunk radius sent at join; also reported as simulation_distance."`
	Compression CompressionConfig `toml:"compression"`
	Schematic   string            `toml:"schematic" comment:"Path to a .schem world file. Leave empty for a flat void with no blocks."`

	MOTD           string `toml:"motd"`
	WelcomeMessage string `toml:"welcome_message" comment:"MiniMessage-formatted chat line sent once at join. Leave empty to disable."`
	ActionBarText  string `toml:"action_bar_text" comment:"MiniMessage-formatted action-bar text shown at join. Leave empty to disable."`

	BossBar *BossBarConfig `toml:"boss_bar"`
	TabList *TabListConfig `toml:"tab_list"`

	MaxPlayers       int32    `toml:"max_players"`
	GameMode         string   `toml:"game_mode" comment:"survival, creative, adventure, or spectator."`
	Hardcore         bool     `toml:"hardcore"`
	PlayerListed     bool     `toml:"player_listed" comment:"Whether the join batch lists this connection in its own tab list."`
	FetchPlayerSkins bool     `toml:"fetch_player_skins" comment:"Look up the joining player's skin from Mojang's session server."`
	ReducedDebugInfo bool     `toml:"reduced_debug_info"`
	Commands         []string `toml:"commands" comment:"Allowlisted slash commands: any of transfer, motd, who."`
	FavIcon          string   `toml:"fav_icon" comment:"Path to a 64x64 PNG shown as the server list icon. Leave empty for none."`

	Time TimeConfig `toml:"time"`
}

type ForwardingConfig struct {
	Type   string `toml:"type" comment:"none, legacy, bungee_guard, or modern."`
	Secret string `toml:"secret" comment:"Shared token (bungee_guard) or HMAC key (modern). Unused otherwise."`
}

type SpawnConfig struct {
	Dimension string  `toml:"dimension"`
	X         float64 `toml:"x"`
	Y         float64 `toml:"y"`
	Z         float64 `toml:"z"`
	Yaw       float32 `toml:"yaw"`
	Pitch     float32 `toml:"pitch"`
}

type CompressionConfig struct {
	Threshold int32 `toml:"threshold" comment:"Negative disables compression entirely."`
	Level     int   `toml:"level" comment:"zlib level, 0-9."`
}

type BossBarConfig struct {
	Title    string `toml:"title"`
	Health   float32 `toml:"health"`
	Color    string  `toml:"color" comment:"pink, blue, red, green, yellow, purple, or white."`
	Division string  `toml:"division" comment:"none, six, ten, twelve, or twenty."`
}

type TabListConfig struct {
	Header string `toml:"header"`
	Footer string `toml:"footer"`
}

type TimeConfig struct {
	Ticks int64 `toml:"ticks"`
	Lock  bool  `toml:"lock" comment:"Freeze the day/night cycle at ticks."`
}

// Default returns the configuration this server runs with when no file
// is present yet - a small flat spawn in the overworld, no forwarding,
// compression on past 256 bytes, skins fetched, nothing gated behind the
// command allowlist.
func Default() Config {
	return Config{
		Bind: "0.0.0.0:25565",
		Forwarding: ForwardingConfig{Type: "none"},
		Spawn: SpawnConfig{
			Dimension: "minecraft:overworld",
			X:         0.5, Y: 64, Z: 0.5,
			Yaw: 0, Pitch: 0,
		},
		ViewDistance: 6,
		Compression:  CompressionConfig{Threshold: 256, Level: 6},
		MOTD:         "A Limbo Server",
		MaxPlayers:   20,
		GameMode:     "survival",
		PlayerListed: true,
		FetchPlayerSkins: true,
		Commands:     []string{"transfer", "motd", "who"},
		Time:         TimeConfig{Ticks: 6000, Lock: true},
	}
}

// Load reads path and decodes it as TOML. If path doesn't exist, a
// commented default file is written there first (spec §6's "materialises
// a commented default file on first run") and that same default is
// returned, so a first launch runs immediately instead of requiring a
// second invocation.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		def := Default()
		if writeErr := writeDefault(path, def); writeErr != nil {
			return Config{}, fmt.Errorf("config: write default: %w", writeErr)
		}
		return def, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// defaultFileTemplate renders Default()'s values into a TOML file with a
// header comment; text/template here is one level above go-toml/v2's own
// struct marshaling, since a hand-authored template can order sections
// and interleave prose comments the struct tags alone can't express.
const defaultFileTemplate = `# Limbo server configuration.
# Generated on first run - edit freely, the server rereads this file on
# every restart.

bind = {{printf "%q" .Bind}}

[forwarding]
# none, legacy, bungee_guard, or modern.
type = {{printf "%q" .Forwarding.Type}}
secret = {{printf "%q" .Forwarding.Secret}}

[spawn]
dimension = {{printf "%q" .Spawn.Dimension}}
x = {{.Spawn.X}}
y = {{.Spawn.Y}}
z = {{.Spawn.Z}}
yaw = {{.Spawn.Yaw}}
pitch = {{.Spawn.Pitch}}

view_distance = {{.ViewDistance}}

[compression]
threshold = {{.Compression.Threshold}}
level = {{.Compression.Level}}

# Path to a .schem world file. Leave empty for a flat void with no blocks.
schematic = ""

motd = {{printf "%q" .MOTD}}
welcome_message = ""
action_bar_text = ""

max_players = {{.MaxPlayers}}
game_mode = {{printf "%q" .GameMode}}
hardcore = false
player_listed = {{.PlayerListed}}
fetch_player_skins = {{.FetchPlayerSkins}}
reduced_debug_info = false
commands = [{{range $i, $c := .Commands}}{{if $i}}, {{end}}{{printf "%q" $c}}{{end}}]
fav_icon = ""

[time]
ticks = {{.Time.Ticks}}
lock = {{.Time.Lock}}
`

func writeDefault(path string, cfg Config) error {
	tpl, err := template.New("default").Parse(defaultFileTemplate)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, cfg); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

var forwardingModes = map[string]serverstate.ForwardingMode{
	"none":         serverstate.ForwardingNone,
	"legacy":       serverstate.ForwardingLegacy,
	"bungee_guard": serverstate.ForwardingBungeeGuard,
	"modern":       serverstate.ForwardingModern,
}

var gameModes = map[string]serverstate.GameMode{
	"survival":  serverstate.GameModeSurvival,
	"creative":  serverstate.GameModeCreative,
	"adventure": serverstate.GameModeAdventure,
	"spectator": serverstate.GameModeSpectator,
}

// bossBarColors/bossBarDivisions mirror packet.BossBarColor/
// BossBarDivisions's iota ordering without importing internal/packet
// from a config package that has no other reason to know about wire
// packets - ServerState.BossBarSettings already carries these as plain
// int32 for the same reason.
var bossBarColors = map[string]int32{
	"pink": 0, "blue": 1, "red": 2, "green": 3, "yellow": 4, "purple": 5, "white": 6,
}

var bossBarDivisions = map[string]int32{
	"none": 0, "six": 1, "ten": 2, "twelve": 3, "twenty": 4,
}

// BuildServerState assembles a serverstate.ServerState from cfg, parsing
// MiniMessage text, resolving the forwarding/game-mode/boss-bar enums,
// and loading the schematic file when one is configured.
func (cfg Config) BuildServerState(mapping *blockmapping.Mapping) (*serverstate.ServerState, error) {
	forwardingMode, ok := forwardingModes[cfg.Forwarding.Type]
	if !ok {
		return nil, fmt.Errorf("config: unknown forwarding.type %q", cfg.Forwarding.Type)
	}
	gameMode, ok := gameModes[cfg.GameMode]
	if !ok {
		return nil, fmt.Errorf("config: unknown game_mode %q", cfg.GameMode)
	}

	motd, err := text.ParseMiniMessage(cfg.MOTD)
	if err != nil {
		return nil, fmt.Errorf("config: parse motd: %w", err)
	}

	spawnPos := netio.Position{X: int32(cfg.Spawn.X), Y: int16(cfg.Spawn.Y), Z: int32(cfg.Spawn.Z)}

	b := serverstate.NewBuilder().
		WithForwarding(forwardingMode, cfg.Forwarding.Secret).
		WithSpawn(cfg.Spawn.Dimension, spawnPos, cfg.Spawn.Yaw, cfg.Spawn.Pitch).
		WithViewDistance(cfg.ViewDistance).
		WithMOTD(motd).
		WithMaxPlayers(cfg.MaxPlayers).
		WithGameMode(gameMode, cfg.Hardcore).
		WithCompression(cfg.Compression.Threshold, cfg.Compression.Level).
		WithCommands(cfg.Commands).
		WithFavIcon(cfg.FavIcon).
		WithTime(cfg.Time.Ticks, cfg.Time.Lock)

	if cfg.WelcomeMessage != "" {
		tc, err := text.ParseMiniMessage(cfg.WelcomeMessage)
		if err != nil {
			return nil, fmt.Errorf("config: parse welcome_message: %w", err)
		}
		b = b.WithWelcomeMessage(tc)
	}
	if cfg.ActionBarText != "" {
		tc, err := text.ParseMiniMessage(cfg.ActionBarText)
		if err != nil {
			return nil, fmt.Errorf("config: parse action_bar_text: %w", err)
		}
		b = b.WithActionBarText(tc)
	}
	if cfg.BossBar != nil {
		color, ok := bossBarColors[cfg.BossBar.Color]
		if !ok {
			return nil, fmt.Errorf("config: unknown boss_bar.color %q", cfg.BossBar.Color)
		}
		division, ok := bossBarDivisions[cfg.BossBar.Division]
		if !ok {
			return nil, fmt.Errorf("config: unknown boss_bar.division %q", cfg.BossBar.Division)
		}
		title, err := text.ParseMiniMessage(cfg.BossBar.Title)
		if err != nil {
			return nil, fmt.Errorf("config: parse boss_bar.title: %w", err)
		}
		b = b.WithBossBar(title, cfg.BossBar.Health, color, division)
	}
	if cfg.TabList != nil {
		header, err := text.ParseMiniMessage(cfg.TabList.Header)
		if err != nil {
			return nil, fmt.Errorf("config: parse tab_list.header: %w", err)
		}
		footer, err := text.ParseMiniMessage(cfg.TabList.Footer)
		if err != nil {
			return nil, fmt.Errorf("config: parse tab_list.footer: %w", err)
		}
		b = b.WithTabList(header, footer)
	}

	if cfg.Schematic != "" {
		data, err := os.ReadFile(cfg.Schematic)
		if err != nil {
			return nil, fmt.Errorf("config: read schematic: %w", err)
		}
		b = b.WithWorld(data, mapping)
	}

	state, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("config: build server state: %w", err)
	}
	state.FetchPlayerSkins = cfg.FetchPlayerSkins
	state.ReducedDebugInfo = cfg.ReducedDebugInfo
	state.IsPlayerListed = cfg.PlayerListed
	return state, nil
}
