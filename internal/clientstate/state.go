// Package clientstate implements the client connection state machine
// (spec component M): the legal Handshaking -> (Status | Login) ->
// Configuration? -> Play -> (Transfer)? transitions, and the factory that
// turns a resolved packet name into a concrete, Read-ready packet.Packet
// for netstream to decode into.
package clientstate

import (
	"fmt"

	"github.com/go-mclib/limbo/internal/packetid"
)

// validTransitions enumerates the states each state is allowed to move
// into next. Configuration is reachable from both Login (first join) and
// Play (a later "back to configuration" round-trip some clients use for
// resource pack reloads), matching vanilla's actual graph rather than a
// strict linear pipeline.
var validTransitions = map[packetid.State][]packetid.State{
	packetid.StateHandshake:     {packetid.StateStatus, packetid.StateLogin},
	packetid.StateStatus:        {},
	packetid.StateLogin:         {packetid.StateConfiguration, packetid.StatePlay},
	packetid.StateConfiguration: {packetid.StatePlay},
	packetid.StatePlay:          {packetid.StateConfiguration},
}

// Machine tracks one connection's current state and validates transitions
// against validTransitions; it does not itself decide WHEN to transition -
// that's the join sequence's job (internal/handlers) - only whether a
// requested transition is legal.
type Machine struct {
	current packetid.State
}

// NewMachine returns a Machine starting in Handshaking, the state every
// connection begins in.
func NewMachine() *Machine {
	return &Machine{current: packetid.StateHandshake}
}

// Current returns the connection's current state.
func (m *Machine) Current() packetid.State {
	return m.current
}

// TransitionTo moves the connection to next, or returns an error if next
// isn't reachable from the current state.
func (m *Machine) TransitionTo(next packetid.State) error {
	for _, allowed := range validTransitions[m.current] {
		if allowed == next {
			m.current = next
			return nil
		}
	}
	return fmt.Errorf("clientstate: illegal transition %s -> %s", m.current, next)
}
