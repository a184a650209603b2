package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-mclib/limbo/internal/packet"
	"github.com/go-mclib/limbo/internal/text"
	"github.com/go-mclib/limbo/internal/version"
)

// handleCommand runs a slash command read off chat_command. Only names
// present in the configured command allowlist (ServerState.Commands) are
// recognized - everything else, including a perfectly well-formed
// /transfer on a server that didn't enable it, is silently ignored, since
// this server never sent a real command graph for the client to validate
// against.
func (s *Session) handleCommand(raw string) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return
	}
	name := strings.ToLower(fields[0])
	if !s.commandEnabled(name) {
		s.log.WithField("command", name).Trace("command not in allowlist")
		return
	}

	switch name {
	case "transfer":
		s.handleTransferCommand(fields[1:])
	case "motd":
		s.sendChatMessage(s.Deps.State.MOTD)
	case "who":
		count := s.Deps.State.ConnectedClients()
		s.sendChatMessage(text.New(fmt.Sprintf("%d player(s) connected", count)))
	default:
		s.log.WithField("command", name).Trace("unhandled allowlisted command")
	}
}

func (s *Session) commandEnabled(name string) bool {
	for _, allowed := range s.Deps.State.Commands {
		if strings.EqualFold(allowed, name) {
			return true
		}
	}
	return false
}

// handleTransferCommand implements spec §4.6's "/transfer <host> [port]":
// >=1.20.5 only, since Transfer itself doesn't exist on older clients.
func (s *Session) handleTransferCommand(args []string) {
	if !s.Stream.Version.SupportsTransfer() {
		s.log.Debug("transfer: client predates the transfer packet")
		return
	}
	if len(args) < 1 {
		s.sendChatMessage(text.New("Usage: /transfer <host> [port]"))
		return
	}

	host := args[0]
	port := int32(25565)
	if len(args) >= 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n <= 0 || n > 65535 {
			s.sendChatMessage(text.New("Invalid port"))
			return
		}
		port = int32(n)
	}

	if err := s.Stream.WritePacket(packet.NewTransfer(host, port)); err != nil {
		s.log.WithError(err).Debug("transfer: write failed")
	}
}

// sendChatMessage writes message using whichever chat packet the
// connection's version actually has, mirroring runPlay's own welcome-
// message branch.
func (s *Session) sendChatMessage(message text.TextComponent) {
	var err error
	if s.Stream.Version.IsAfterInclusive(version.V1_19) {
		err = s.Stream.WritePacket(packet.NewSystemChat(message, false))
	} else {
		err = s.Stream.WritePacket(packet.NewLegacyChatMessage(message, 1))
	}
	if err != nil {
		s.log.WithError(err).Debug("play: send chat message failed")
	}
}
