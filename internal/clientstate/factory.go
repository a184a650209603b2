package clientstate

import (
	"github.com/go-mclib/limbo/internal/netstream"
	"github.com/go-mclib/limbo/internal/packet"
	"github.com/go-mclib/limbo/internal/packetid"
)

// serverBoundFactories builds a fresh, Read-ready packet for every
// serverbound packet name this server understands. A name resolved by
// packetid but absent here still decodes as "not found" in netstream -
// that's correct: plenty of registered names (every clientbound-only
// packet) have no serverbound constructor and never will.
var serverBoundFactories = map[packetid.Name]func() netstream.Decodable{
	"minecraft:intention":           func() netstream.Decodable { return packet.NewIntention() },
	"minecraft:status_request":      func() netstream.Decodable { return packet.NewStatusRequest() },
	"minecraft:ping_request":        func() netstream.Decodable { return packet.NewPingRequest() },
	"minecraft:hello":                func() netstream.Decodable { return packet.NewLoginStart() },
	"minecraft:custom_query_answer": func() netstream.Decodable { return packet.NewCustomQueryAnswer() },
	"minecraft:login_acknowledged":  func() netstream.Decodable { return packet.NewLoginAcknowledged() },
	"minecraft:client_information": func() netstream.Decodable { return packet.NewClientInformation() },
	"minecraft:chat_command":       func() netstream.Decodable { return packet.NewChatCommand() },
	"minecraft:chat":               func() netstream.Decodable { return packet.NewChatMessage() },
	"minecraft:finish_configuration": func() netstream.Decodable {
		return packet.NewFinishConfiguration(packetid.C2S)
	},
	"minecraft:keep_alive": func() netstream.Decodable {
		return packet.NewKeepAlive(packetid.StatePlay, packetid.C2S, 0)
	},
}

// NewServerBoundFactory returns a netstream.Factory backed by
// serverBoundFactories, ready to pass to Stream.ReadPacket.
func NewServerBoundFactory() netstream.Factory {
	return func(name packetid.Name) (netstream.Decodable, bool) {
		ctor, ok := serverBoundFactories[name]
		if !ok {
			return nil, false
		}
		return ctor(), true
	}
}
