// Package handlers implements the per-connection state machine (spec
// component M): one Session per accepted socket, driven through
// Handshake -> (Status | Login) -> Configuration? -> Play exactly as
// spec §4.6 describes, using the packet/netstream/batch/registry/
// blockmapping/schematic packages built underneath it.
package handlers

import (
	"net"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/go-mclib/limbo/internal/clientstate"
	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/netstream"
	"github.com/go-mclib/limbo/internal/packet"
	"github.com/go-mclib/limbo/internal/packetid"
	"github.com/go-mclib/limbo/internal/sessionauth"
	"github.com/go-mclib/limbo/internal/version"
)

var nextConnID uint64

// Session is one connection's mutable state: the packet stream, the
// identity established during Login, and the few values the Play join
// batch needs to remember afterward (spawn feet height, the
// last-sent keep-alive id). Everything process-wide and read-only lives
// in Deps instead, shared across every Session.
type Session struct {
	Stream *netstream.Stream
	Deps   *Deps
	log    *logrus.Entry

	factory netstream.Factory

	hostname string

	UUID       netio.UUID
	Username   string
	Properties []sessionauth.Property

	reachedPlay bool
	feetY       float64
	keepAliveID int64
}

// NewSession wraps conn in a packet Stream and returns a ready-to-run
// Session. deps.Log is tagged with a conn_id field so every log line
// this connection produces can be grepped out of the rest of the
// server's log stream.
func NewSession(conn net.Conn, deps *Deps) *Session {
	id := atomic.AddUint64(&nextConnID, 1)
	log := deps.Log.WithField("conn_id", id)
	stream := netstream.New(conn, deps.PacketIDs, log)
	return &Session{
		Stream:  stream,
		Deps:    deps,
		log:     log,
		factory: clientstate.NewServerBoundFactory(),
	}
}

// Run drives one connection end to end. It always closes the socket on
// return and, if the client had reached Play, decrements the
// connected-client count - spec §5's "decrements the connected-count if
// the client had reached play" on EOF or reset.
func (s *Session) Run() {
	defer s.Stream.Close()
	defer func() {
		if r := recover(); r != nil {
			s.log.WithField("panic", r).Error("recovered from panic in connection handler")
		}
		if s.reachedPlay {
			count := s.Deps.State.DecrementConnected()
			s.log.WithField("connected_clients", count).Info("client disconnected")
		}
	}()

	name, pkt, err := s.Stream.ReadPacket(s.factory)
	if err != nil {
		s.log.WithError(err).Trace("handshake: read failed")
		return
	}
	intention, ok := pkt.(*packet.Intention)
	if !ok || name != "minecraft:intention" {
		s.log.WithField("name", name).Warn("expected intention as the first packet")
		return
	}

	s.hostname = intention.ServerAddress
	s.Stream.Version = version.ProtocolVersion(intention.ProtocolVersion)
	s.log = s.log.WithField("protocol_version", intention.ProtocolVersion)

	switch intention.NextState {
	case packet.NextStateStatus:
		s.Stream.State = packetid.StateStatus
		s.runStatus()
	case packet.NextStateLogin, packet.NextStateTransfer:
		s.Stream.State = packetid.StateLogin
		s.runLogin()
	default:
		s.log.WithField("next_state", intention.NextState).Warn("unrecognized handshake next_state")
	}
}
