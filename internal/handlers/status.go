package handlers

import (
	"github.com/go-mclib/limbo/internal/packet"
)

// runStatus implements spec §4.6's Status sequence: StatusRequest ->
// StatusResponse, PingRequest -> PongResponse (echo), then the client
// closes the connection. Any read failure (including a clean EOF after
// the pong) simply ends the loop - a status ping never reaches Play, so
// Run's deferred decrement never needs to fire for this path.
func (s *Session) runStatus() {
	for {
		name, pkt, err := s.Stream.ReadPacket(s.factory)
		if err != nil {
			return
		}
		switch name {
		case "minecraft:status_request":
			if err := s.Stream.WritePacket(s.buildStatusResponse()); err != nil {
				s.log.WithError(err).Debug("status: write response failed")
				return
			}
		case "minecraft:ping_request":
			ping := pkt.(*packet.PingRequest)
			if err := s.Stream.WritePacket(packet.NewPongResponse(ping.Nonce)); err != nil {
				s.log.WithError(err).Debug("status: write pong failed")
			}
			return
		default:
			s.log.WithField("name", name).Trace("unexpected packet in status state")
		}
	}
}

func (s *Session) buildStatusResponse() *packet.StatusResponse {
	resp := packet.NewStatusResponse()
	resp.Payload = packet.StatusResponsePayload{
		Version: packet.StatusVersion{
			Name:     s.Stream.Version.Name(),
			Protocol: int32(s.Stream.Version),
		},
		Players: packet.StatusPlayers{
			Max:    int(s.Deps.State.MaxPlayers),
			Online: int(s.Deps.State.ConnectedClients()),
		},
		Description: s.Deps.State.MOTD,
		Favicon:     s.Deps.State.FavIcon,
	}
	return resp
}
