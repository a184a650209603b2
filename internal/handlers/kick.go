package handlers

import (
	"github.com/go-mclib/limbo/internal/packet"
	"github.com/go-mclib/limbo/internal/packetid"
	"github.com/go-mclib/limbo/internal/text"
)

// kick sends the version- and state-appropriate disconnect packet and
// closes the socket: Login gets LoginDisconnect (always JSON), every
// other state gets Disconnect gated on the caller's current
// packetid.State, which is the only thing distinguishing a Configuration
// kick from a Play kick at the wire level (spec §4.6's "Disconnect").
// Any write failure here is swallowed - per spec §7, a failed kick
// terminates silently rather than retrying or escalating.
func (s *Session) kick(reason string) {
	tc := text.New(reason)
	var err error
	switch s.Stream.State {
	case packetid.StateLogin:
		err = s.Stream.WritePacket(packet.NewLoginDisconnect(tc))
	default:
		err = s.Stream.WritePacket(packet.NewDisconnect(s.Stream.State, tc))
	}
	if err != nil {
		s.log.WithError(err).Debug("kick: failed to send disconnect packet")
	}
}
