package forwarding

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"

	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/netstream"
	"github.com/go-mclib/limbo/internal/packet"
	"github.com/go-mclib/limbo/internal/packetid"
	"github.com/go-mclib/limbo/internal/sessionauth"
)

// modernForwardingChannel is the Login-state plugin-message channel a
// Velocity-style modern-forwarding proxy answers on.
const modernForwardingChannel = "velocity:player_info"

// modernForwardingVersion is the only forwarding-payload version this
// server understands; a proxy sending a newer version than it would have
// to be signaling a feature this verifier doesn't parse.
const modernForwardingVersion = 1

// modernForwardingRequestID is fixed rather than randomised per
// connection: nothing in this round trip is replayable across
// connections in a way a fixed id would weaken, since the signature
// covers the player identity, not the request id.
const modernForwardingRequestID = 0

// VerifyModern performs the Login-state CustomQuery/CustomQueryAnswer
// round trip and validates the HMAC-SHA256 signature a modern-forwarding
// proxy attaches to the player identity it resolved.
func VerifyModern(stream *netstream.Stream, secret string) (*Identity, error) {
	query := packet.NewCustomQuery(modernForwardingRequestID, modernForwardingChannel, nil)
	if err := stream.WritePacket(query); err != nil {
		return nil, fmt.Errorf("forwarding: modern: send custom_query: %w", err)
	}

	factory := func(name packetid.Name) (netstream.Decodable, bool) {
		if name == "minecraft:custom_query_answer" {
			return packet.NewCustomQueryAnswer(), true
		}
		return nil, false
	}
	_, pkt, err := stream.ReadPacket(factory)
	if err != nil {
		return nil, fmt.Errorf("forwarding: modern: read custom_query_answer: %w", err)
	}
	answer, ok := pkt.(*packet.CustomQueryAnswer)
	if !ok {
		return nil, fmt.Errorf("%w: modern: unexpected reply to custom_query", ErrRejected)
	}
	if answer.MessageID != modernForwardingRequestID {
		return nil, fmt.Errorf("%w: modern: message id mismatch", ErrRejected)
	}
	if !answer.HasData {
		return nil, fmt.Errorf("%w: modern: client has no forwarding data (not behind the proxy?)", ErrRejected)
	}

	return parseModernPayload(answer.Data, []byte(secret))
}

func parseModernPayload(data, secret []byte) (*Identity, error) {
	const sigLen = sha256.Size
	if len(data) < sigLen {
		return nil, fmt.Errorf("%w: modern: payload shorter than signature", ErrRejected)
	}
	signature, signed := data[:sigLen], data[sigLen:]

	mac := hmac.New(sha256.New, secret)
	mac.Write(signed)
	if !hmac.Equal(signature, mac.Sum(nil)) {
		return nil, fmt.Errorf("%w: modern: signature mismatch", ErrRejected)
	}

	pb := netio.NewReader(signed)
	ver, err := pb.ReadVarInt()
	if err != nil {
		return nil, fmt.Errorf("forwarding: modern: version: %w", err)
	}
	if int32(ver) != modernForwardingVersion {
		return nil, fmt.Errorf("%w: modern: unsupported forwarding version %d", ErrRejected, ver)
	}
	if _, err := pb.ReadString(0); err != nil { // client remote address, unused
		return nil, fmt.Errorf("forwarding: modern: remote address: %w", err)
	}
	id, err := pb.ReadUUID()
	if err != nil {
		return nil, fmt.Errorf("forwarding: modern: uuid: %w", err)
	}
	username, err := pb.ReadString(16)
	if err != nil {
		return nil, fmt.Errorf("forwarding: modern: username: %w", err)
	}
	count, err := pb.ReadVarInt()
	if err != nil {
		return nil, fmt.Errorf("forwarding: modern: property count: %w", err)
	}

	props := make([]sessionauth.Property, 0, count)
	for i := 0; i < int(count); i++ {
		name, err := pb.ReadString(0)
		if err != nil {
			return nil, fmt.Errorf("forwarding: modern: property %d name: %w", i, err)
		}
		value, err := pb.ReadString(0)
		if err != nil {
			return nil, fmt.Errorf("forwarding: modern: property %d value: %w", i, err)
		}
		isSigned, err := pb.ReadBool()
		if err != nil {
			return nil, fmt.Errorf("forwarding: modern: property %d signed flag: %w", i, err)
		}
		prop := sessionauth.Property{Name: string(name), Value: string(value)}
		if isSigned {
			sig, err := pb.ReadString(0)
			if err != nil {
				return nil, fmt.Errorf("forwarding: modern: property %d signature: %w", i, err)
			}
			prop.Signature = string(sig)
		}
		props = append(props, prop)
	}

	return &Identity{UUID: id, Username: string(username), Properties: props}, nil
}
