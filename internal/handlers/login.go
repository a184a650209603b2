package handlers

import (
	"fmt"

	"github.com/go-mclib/limbo/internal/forwarding"
	"github.com/go-mclib/limbo/internal/packet"
	"github.com/go-mclib/limbo/internal/packetid"
	"github.com/go-mclib/limbo/internal/sessionauth"
)

// runLogin implements spec §4.6's Login sequence: receive LoginStart,
// run the configured forwarding verifier, derive the client's uuid,
// switch on compression, send LoginSuccess, and - for versions that
// have one - wait for LoginAcknowledged before moving to Configuration.
// Versions without a Configuration state (<1.20.2) jump straight to Play.
func (s *Session) runLogin() {
	name, pkt, err := s.Stream.ReadPacket(s.factory)
	if err != nil {
		s.log.WithError(err).Trace("login: read failed")
		return
	}
	loginStart, ok := pkt.(*packet.LoginStart)
	if !ok || name != "minecraft:hello" {
		s.log.WithField("name", name).Warn("expected hello as the first login packet")
		return
	}

	if !s.Stream.Version.Supported() {
		s.log.Info("login: rejecting unsupported protocol version")
		s.kick(fmt.Sprintf("Unsupported protocol version %d", int32(s.Stream.Version)))
		return
	}

	identity, err := forwarding.Verify(s.Deps.State.ForwardingMode, s.hostname, s.Stream, s.Deps.State.ForwardingSecret)
	if err != nil {
		s.log.WithError(err).Info("login: forwarding verification failed")
		s.kick("Proxy verification failed")
		return
	}

	switch {
	case identity != nil:
		s.UUID = identity.UUID
		s.Username = identity.Username
		s.Properties = identity.Properties
	case s.Stream.Version.SupportsProvidedUUID() && loginStart.HasUUID:
		s.UUID = loginStart.UUID
		s.Username = loginStart.Username
	default:
		s.UUID = sessionauth.OfflineUUID(loginStart.Username)
		s.Username = loginStart.Username
	}

	if threshold := s.Deps.State.Compression.Threshold; threshold >= 0 {
		if err := s.Stream.WritePacket(packet.NewSetCompression(threshold)); err != nil {
			s.log.WithError(err).Debug("login: write set_compression failed")
			return
		}
		s.Stream.EnableCompression(int(threshold))
	}

	if err := s.Stream.WritePacket(packet.NewLoginSuccess(s.UUID, s.Username, loginSuccessProperties(s.Properties))); err != nil {
		s.log.WithError(err).Debug("login: write login_success failed")
		return
	}

	if !s.Stream.Version.SupportsConfigurationState() {
		s.Stream.State = packetid.StatePlay
		s.runPlay()
		return
	}

	name, _, err = s.Stream.ReadPacket(s.factory)
	if err != nil {
		s.log.WithError(err).Trace("login: waiting for login_acknowledged failed")
		return
	}
	if name != "minecraft:login_acknowledged" {
		s.log.WithField("name", name).Warn("expected login_acknowledged")
		return
	}

	s.Stream.State = packetid.StateConfiguration
	s.runConfiguration()
}

func loginSuccessProperties(props []sessionauth.Property) []packet.LoginSuccessProperty {
	out := make([]packet.LoginSuccessProperty, len(props))
	for i, p := range props {
		out[i] = packet.LoginSuccessProperty{
			Name:      p.Name,
			Value:     p.Value,
			Signature: p.Signature,
			HasSig:    p.Signature != "",
		}
	}
	return out
}
