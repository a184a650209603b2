package packet

import (
	"encoding/json"
	"fmt"

	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/packetid"
	"github.com/go-mclib/limbo/internal/version"
)

// StatusRequest is the empty serverbound packet requesting a status response.
type StatusRequest struct{ base }

func NewStatusRequest() *StatusRequest {
	return &StatusRequest{base{name: "minecraft:status_request", state: packetid.StateStatus, bound: packetid.C2S}}
}

func (p *StatusRequest) Read(_ *netio.PacketBuffer, _ version.ProtocolVersion) error  { return nil }
func (p *StatusRequest) Write(_ *netio.PacketBuffer, _ version.ProtocolVersion) error { return nil }

// StatusPlayers is the player-count section of a status response.
type StatusPlayers struct {
	Max    int    `json:"max"`
	Online int    `json:"online"`
	Sample []any  `json:"sample,omitempty"`
}

// StatusVersion is the version section of a status response.
type StatusVersion struct {
	Name     string `json:"name"`
	Protocol int32  `json:"protocol"`
}

// StatusResponsePayload is the JSON document a StatusResponse carries.
type StatusResponsePayload struct {
	Version     StatusVersion `json:"version"`
	Players     StatusPlayers `json:"players"`
	Description any           `json:"description"`
	Favicon     string        `json:"favicon,omitempty"`
}

// StatusResponse answers a StatusRequest with a JSON server-list entry.
type StatusResponse struct {
	base
	Payload StatusResponsePayload
}

func NewStatusResponse() *StatusResponse {
	return &StatusResponse{base: base{name: "minecraft:status_response", state: packetid.StateStatus, bound: packetid.S2C}}
}

func (p *StatusResponse) Read(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	raw, err := pb.ReadString(0)
	if err != nil {
		return fmt.Errorf("status_response: %w", err)
	}
	return json.Unmarshal([]byte(raw), &p.Payload)
}

func (p *StatusResponse) Write(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	raw, err := json.Marshal(p.Payload)
	if err != nil {
		return fmt.Errorf("status_response: marshal: %w", err)
	}
	return pb.WriteString(netio.String(raw))
}

// PingRequest carries a client-chosen nonce to be echoed back.
type PingRequest struct {
	base
	Nonce int64
}

func NewPingRequest() *PingRequest {
	return &PingRequest{base: base{name: "minecraft:ping_request", state: packetid.StateStatus, bound: packetid.C2S}}
}

func (p *PingRequest) Read(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	v, err := pb.ReadInt64()
	p.Nonce = int64(v)
	return err
}

func (p *PingRequest) Write(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	return pb.WriteInt64(netio.Int64(p.Nonce))
}

// PongResponse echoes a PingRequest's nonce.
type PongResponse struct {
	base
	Nonce int64
}

func NewPongResponse(nonce int64) *PongResponse {
	return &PongResponse{base: base{name: "minecraft:pong_response", state: packetid.StateStatus, bound: packetid.S2C}, Nonce: nonce}
}

func (p *PongResponse) Read(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	v, err := pb.ReadInt64()
	p.Nonce = int64(v)
	return err
}

func (p *PongResponse) Write(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	return pb.WriteInt64(netio.Int64(p.Nonce))
}
