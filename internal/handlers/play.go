package handlers

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/google/uuid"

	"github.com/go-mclib/limbo/internal/batch"
	"github.com/go-mclib/limbo/internal/identifier"
	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/netstream"
	"github.com/go-mclib/limbo/internal/packet"
	"github.com/go-mclib/limbo/internal/packetid"
	"github.com/go-mclib/limbo/internal/registry"
	"github.com/go-mclib/limbo/internal/serverstate"
	"github.com/go-mclib/limbo/internal/sessionauth"
	"github.com/go-mclib/limbo/internal/version"
)

// keepAliveInterval is how often runPlay's read loop interrupts a
// blocked ReadPacket call to send the next keep-alive ping.
const keepAliveInterval = 20 * time.Second

// runPlay builds and drains the join batch (spec §4.6's eleven-step Play
// sequence), then hands the connection to the keep-alive loop. Any error
// building or draining the batch - an unresolvable spawn dimension, a
// write failure - ends the connection without ever reaching Play, so
// Run's deferred decrement correctly never fires for it.
func (s *Session) runPlay() {
	v := s.Stream.Version

	dimension, err := identifier.Parse(s.Deps.State.SpawnDimension)
	if err != nil {
		s.log.WithError(err).Warn("play: invalid spawn dimension")
		s.kick("Server is misconfigured: invalid spawn dimension")
		return
	}
	info, err := registry.DimensionInfo(s.Deps.Registries, dimension)
	if err != nil {
		s.log.WithError(err).Warn("play: spawn dimension not found in registry")
		s.kick("Server is misconfigured: unknown spawn dimension")
		return
	}

	gameMode := s.Deps.State.GameMode
	if gameMode == serverstate.GameModeSpectator && !v.IsAfterInclusive(version.V1_8) {
		gameMode = serverstate.GameModeCreative
	}

	s.feetY = float64(s.Deps.State.SpawnPosition.Y)

	b := batch.New()
	b.Add(s.buildLogin(dimension, info, gameMode))
	b.AddIf(v.IsAfterInclusive(version.V1_19), packet.NewSetDefaultSpawnPosition(s.Deps.State.SpawnPosition))
	b.Add(packet.NewSynchronizePlayerPosition(
		float64(s.Deps.State.SpawnPosition.X), s.feetY, float64(s.Deps.State.SpawnPosition.Z),
		s.Deps.State.SpawnYaw, s.Deps.State.SpawnPitch,
	))
	b.AddIf(v.IsAfterInclusive(version.V1_13), packet.NewCommands())
	b.AddIf(v.InRange(version.V1_13, version.V1_20_2), packet.NewCustomPayload(packetid.StatePlay, packetid.S2C, "minecraft:brand", brandPayload()))

	if welcome := s.Deps.State.WelcomeMessage; welcome != nil {
		if v.IsAfterInclusive(version.V1_19) {
			b.Add(packet.NewSystemChat(*welcome, false))
		} else {
			b.Add(packet.NewLegacyChatMessage(*welcome, 1))
		}
	}

	b.Add(packet.NewUpdateTime(s.Deps.State.TimeOfDay, s.Deps.State.TimeOfDay, !s.Deps.State.LockTime))

	if v.IsAfterInclusive(version.V1_8) {
		if abText := s.Deps.State.ActionBarText; abText != nil {
			b.Add(packet.NewSetActionBarText(*abText))
		}
		b.AddDeferred(s.buildPlayerInfoProducer())
		b.Add(packet.NewSetEntityMetadataSkinLayers(0, 0))
	}

	if v.IsAfterInclusive(version.V1_9) {
		if boss := s.Deps.State.BossBar; boss != nil {
			id := netio.FromGoogle(uuid.New())
			b.Add(packet.NewBossEventAdd(id, boss.Title, boss.Health, packet.BossBarColor(boss.Color), packet.BossBarDivisions(boss.Division)))
		}
	}

	if v.IsAfterInclusive(version.V1_16) && v.IsAfterInclusive(version.V1_20_3) {
		b.Add(packet.NewGameEvent(packet.GameEventStartWaitingForChunks, 0))
	}

	if v.IsAfterInclusive(version.V1_16) {
		s.addChunks(b, info)
	}

	if err := b.Drain(s.Stream); err != nil {
		s.log.WithError(err).Debug("play: drain join batch failed")
		return
	}

	s.reachedPlay = true
	count := s.Deps.State.IncrementConnected()
	s.log.WithField("connected_clients", count).Info("client joined")
	s.Deps.Metrics.Inc("joins")

	s.runKeepAliveLoop()
}

// buildLogin fills a Login packet per spec §4.6's literal field list. Login
// itself picks one of three historical wire shapes by version (see
// packet.Login.Write); versions that predate the Configuration state
// (<1.20.2) never get a separate registry sync, so this is also the one
// place old clients receive their registry/dimension codec bytes - built
// here with the same registry helpers Configuration uses, and handed to
// Login as pre-encoded NBT blobs.
func (s *Session) buildLogin(dimension identifier.Identifier, info registry.Info, gameMode serverstate.GameMode) *packet.Login {
	v := s.Stream.Version

	p := packet.NewLogin()
	p.EntityID = 0
	p.GameMode = byte(gameMode)
	p.IsHardcore = s.Deps.State.Hardcore
	p.Dimension = dimension.String()
	p.LegacyDimensionID = legacyDimensionID(dimension)
	p.DimensionTypeIndex = int32(info.ProtocolID)
	p.MaxPlayers = s.Deps.State.MaxPlayers
	p.ViewDistance = s.Deps.State.ViewDistance
	p.SimulationDistance = s.Deps.State.ViewDistance
	p.ReducedDebugInfo = s.Deps.State.ReducedDebugInfo
	p.EnableRespawnScreen = true
	p.DoLimitedCrafting = false
	p.IsDebug = false
	p.IsFlat = true
	p.HashedSeed = 0
	p.PortalCooldown = 0
	p.SeaLevel = 63

	if !v.SupportsConfigurationState() && v.HasRegistries() {
		if v.IsAfterInclusive(version.V1_16_2) {
			if blob, err := registry.RegistryCodecV1_16_2(s.Deps.Registries, v); err != nil {
				s.log.WithError(err).Warn("play: build whole registry codec failed")
			} else {
				p.RegistryCodecBytes = blob
			}
			if v.IsBeforeInclusive(version.V1_18_2) {
				if blob, err := registry.DimensionCodecV1_16_2(s.Deps.Registries, v, dimension); err != nil {
					s.log.WithError(err).Warn("play: build dimension codec failed")
				} else {
					p.DimensionCodecBytes = blob
				}
			}
		} else {
			if blob, err := registry.RegistryCodecV1_16(s.Deps.Registries, v); err != nil {
				s.log.WithError(err).Warn("play: build 1.16 registry codec failed")
			} else {
				p.RegistryCodecBytes = blob
			}
		}
	}

	return p
}

// legacyDimensionID maps a dimension identifier to the signed numeric id
// pre-1.16 clients expect in Login and chunk packets. Any dimension
// outside the three vanilla ones defaults to the overworld, since a
// holding server never advertises a custom dimension to those clients.
func legacyDimensionID(dimension identifier.Identifier) int8 {
	switch dimension.String() {
	case "minecraft:the_nether":
		return packet.LegacyDimensionNether
	case "minecraft:the_end":
		return packet.LegacyDimensionEnd
	default:
		return packet.LegacyDimensionOverworld
	}
}

// buildPlayerInfoProducer defers the tab-list AddPlayer announcement
// until the batch actually drains, so a skin lookup (when configured)
// blocks only this one entry rather than delaying every packet queued
// ahead of it.
func (s *Session) buildPlayerInfoProducer() batch.Producer {
	return func() (netstream.Encodable, error) {
		props := s.Properties
		if s.Deps.State.FetchPlayerSkins && len(props) == 0 {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			profile, err := sessionauth.FetchProfile(ctx, s.Deps.HTTPClient, s.UUID)
			if err != nil {
				s.log.WithError(err).Debug("play: fetch player profile failed")
			} else if profile != nil {
				props = profile.Properties
			}
		}

		entry := packet.PlayerInfoEntry{
			UUID:       s.UUID,
			Name:       s.Username,
			Properties: loginPlayerInfoProperties(props),
			Listed:     s.Deps.State.IsPlayerListed,
			GameMode:   int32(s.Deps.State.GameMode),
		}
		actions := packet.ActionAddPlayer | packet.ActionUpdateListed
		return packet.NewPlayerInfoUpdate(actions, []packet.PlayerInfoEntry{entry}), nil
	}
}

func loginPlayerInfoProperties(props []sessionauth.Property) []packet.PlayerInfoProperty {
	out := make([]packet.PlayerInfoProperty, len(props))
	for i, p := range props {
		out[i] = packet.PlayerInfoProperty{
			Name:      p.Name,
			Value:     p.Value,
			Signature: p.Signature,
			HasSig:    p.Signature != "",
		}
	}
	return out
}

// runKeepAliveLoop alternates a blocking ReadPacket with a read deadline
// armed for keepAliveInterval: a timeout isn't a dead connection, just a
// cue to send the next keep-alive and arm the next deadline; any other
// read error - including the client closing the socket - ends the
// connection.
func (s *Session) runKeepAliveLoop() {
	for {
		if err := s.Stream.SetReadDeadline(time.Now().Add(keepAliveInterval)); err != nil {
			s.log.WithError(err).Debug("play: set read deadline failed")
			return
		}

		name, pkt, err := s.Stream.ReadPacket(s.factory)
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				if err := s.sendKeepAlive(); err != nil {
					s.log.WithError(err).Debug("play: send keep_alive failed")
					return
				}
				continue
			}
			if errors.Is(err, netstream.ErrPacketNotFound) {
				continue
			}
			s.log.WithError(err).Trace("play: read failed")
			return
		}

		switch name {
		case "minecraft:chat_command":
			cmd := pkt.(*packet.ChatCommand)
			s.handleCommand(cmd.Command)
		case "minecraft:chat":
			s.log.WithField("name", name).Trace("ignoring chat in a holding world")
		case "minecraft:keep_alive":
			// Client echo: nothing to verify against, since this server
			// never tracks per-connection round-trip latency.
		default:
			s.log.WithField("name", name).Trace("ignoring packet during play")
		}
	}
}

func (s *Session) sendKeepAlive() error {
	s.keepAliveID++
	return s.Stream.WritePacket(packet.NewKeepAlive(packetid.StatePlay, packetid.S2C, s.keepAliveID))
}
