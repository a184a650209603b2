package forwarding

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"net"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/netstream"
	"github.com/go-mclib/limbo/internal/packet"
	"github.com/go-mclib/limbo/internal/packetcodec"
	"github.com/go-mclib/limbo/internal/packetid"
	"github.com/go-mclib/limbo/internal/serverstate"
	"github.com/go-mclib/limbo/internal/version"
)

func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(discardWriter{})
	return logrus.NewEntry(l)
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestVerifyLegacy_ParsesPayload(t *testing.T) {
	hostname := "play.example.com\x00127.0.0.1\x00069a79f4-44e9-4726-a5be-fca90e38aaf5\x00" +
		`[{"name":"textures","value":"abc","signature":"sig"}]`

	id, err := VerifyLegacy(hostname)
	if err != nil {
		t.Fatalf("VerifyLegacy: %v", err)
	}
	if id.UUID.String() != "069a79f4-44e9-4726-a5be-fca90e38aaf5" {
		t.Fatalf("unexpected uuid: %s", id.UUID)
	}
	if len(id.Properties) != 1 || id.Properties[0].Name != "textures" {
		t.Fatalf("expected one textures property, got %+v", id.Properties)
	}
}

func TestVerifyLegacy_RejectsMalformedPayload(t *testing.T) {
	if _, err := VerifyLegacy("just-a-hostname"); !errors.Is(err, ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", err)
	}
}

func TestVerifyBungeeGuard_ChecksToken(t *testing.T) {
	hostname := "play.example.com\x00127.0.0.1\x00069a79f4-44e9-4726-a5be-fca90e38aaf5\x00" +
		`[{"name":"bungeeguard-token","value":"secret123"}]`

	if _, err := VerifyBungeeGuard(hostname, "wrong"); !errors.Is(err, ErrRejected) {
		t.Fatalf("expected token mismatch rejection, got %v", err)
	}

	id, err := VerifyBungeeGuard(hostname, "secret123")
	if err != nil {
		t.Fatalf("VerifyBungeeGuard: %v", err)
	}
	if len(id.Properties) != 0 {
		t.Fatalf("expected the token property stripped out, got %+v", id.Properties)
	}
}

func TestVerifyBungeeGuard_RequiresTokenProperty(t *testing.T) {
	hostname := "play.example.com\x00127.0.0.1\x00069a79f4-44e9-4726-a5be-fca90e38aaf5\x00[]"
	if _, err := VerifyBungeeGuard(hostname, "secret123"); !errors.Is(err, ErrRejected) {
		t.Fatalf("expected rejection for missing token property, got %v", err)
	}
}

func buildModernPayload(t *testing.T, secret string, uuid netio.UUID, username string) []byte {
	t.Helper()
	pb := netio.NewWriter()
	if err := pb.WriteVarInt(netio.VarInt(modernForwardingVersion)); err != nil {
		t.Fatal(err)
	}
	if err := pb.WriteString("127.0.0.1"); err != nil {
		t.Fatal(err)
	}
	if err := pb.WriteUUID(uuid); err != nil {
		t.Fatal(err)
	}
	if err := pb.WriteString(netio.String(username)); err != nil {
		t.Fatal(err)
	}
	if err := pb.WriteVarInt(0); err != nil {
		t.Fatal(err)
	}
	signed := pb.Bytes()

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(signed)
	sig := mac.Sum(nil)

	return append(sig, signed...)
}

// fakeProxyClient drives the raw connection the way an actual client
// would for the modern-forwarding round trip: Stream is deliberately
// server-shaped (ReadPacket always decodes C2S, WritePacket always
// encodes S2C), so the far end of the pipe talks packetcodec/packetid
// directly instead of through a second Stream.
type fakeProxyClient struct {
	t        *testing.T
	conn     net.Conn
	registry *packetid.Registry
}

func (c *fakeProxyClient) readCustomQuery() (messageID int32) {
	c.t.Helper()
	frame, err := packetcodec.ReadFrame(c.conn, -1)
	if err != nil {
		c.t.Fatalf("read custom_query frame: %v", err)
	}
	name, ok := c.registry.Decode(version.Any, packetid.StateLogin, packetid.S2C, frame.ID)
	if !ok || name != "minecraft:custom_query" {
		c.t.Fatalf("expected minecraft:custom_query, got name=%q ok=%v", name, ok)
	}
	pb := netio.NewReader(frame.Data)
	id, err := pb.ReadVarInt()
	if err != nil {
		c.t.Fatalf("decode message id: %v", err)
	}
	return int32(id)
}

func (c *fakeProxyClient) writeCustomQueryAnswer(answer *packet.CustomQueryAnswer) {
	c.t.Helper()
	id, ok := c.registry.Encode(version.Any, packetid.StateLogin, packetid.C2S, answer.Name())
	if !ok {
		c.t.Fatalf("no id registered for %s", answer.Name())
	}
	pb := netio.NewWriter()
	if err := answer.Write(pb, version.Any); err != nil {
		c.t.Fatalf("encode custom_query_answer: %v", err)
	}
	if err := packetcodec.WriteFrame(c.conn, -1, id, pb.Bytes()); err != nil {
		c.t.Fatalf("write custom_query_answer frame: %v", err)
	}
}

func TestVerifyModern_RoundTripsOverPluginMessage(t *testing.T) {
	serverConn, clientConn := net.Pipe()
	defer serverConn.Close()
	defer clientConn.Close()

	registry := packetid.StaticRegistry()
	server := netstream.New(serverConn, registry, discardLogger())
	server.State = packetid.StateLogin
	client := &fakeProxyClient{t: t, conn: clientConn, registry: registry}

	wantUUID := netio.UUID{1, 2, 3}
	payload := buildModernPayload(t, "topsecret", wantUUID, "Notch")

	type result struct {
		id  *Identity
		err error
	}
	done := make(chan result, 1)
	go func() {
		id, err := VerifyModern(server, "topsecret")
		done <- result{id, err}
	}()

	messageID := client.readCustomQuery()
	answer := packet.NewCustomQueryAnswer()
	answer.MessageID = messageID
	answer.HasData = true
	answer.Data = payload
	client.writeCustomQueryAnswer(answer)

	got := <-done
	if got.err != nil {
		t.Fatalf("VerifyModern: %v", got.err)
	}
	if got.id.UUID != wantUUID {
		t.Fatalf("uuid mismatch: got %s", got.id.UUID)
	}
	if got.id.Username != "Notch" {
		t.Fatalf("username mismatch: got %q", got.id.Username)
	}
}

func TestVerifyModern_RejectsBadSignature(t *testing.T) {
	serverConn, clientConn := net.Pipe()
	defer serverConn.Close()
	defer clientConn.Close()

	registry := packetid.StaticRegistry()
	server := netstream.New(serverConn, registry, discardLogger())
	server.State = packetid.StateLogin
	client := &fakeProxyClient{t: t, conn: clientConn, registry: registry}

	payload := buildModernPayload(t, "wrong-secret", netio.UUID{1}, "Notch")

	done := make(chan error, 1)
	go func() {
		_, err := VerifyModern(server, "topsecret")
		done <- err
	}()

	messageID := client.readCustomQuery()
	answer := packet.NewCustomQueryAnswer()
	answer.MessageID = messageID
	answer.HasData = true
	answer.Data = payload
	client.writeCustomQueryAnswer(answer)

	if err := <-done; !errors.Is(err, ErrRejected) {
		t.Fatalf("expected ErrRejected for a signature signed with the wrong secret, got %v", err)
	}
}

func TestDispatch_NoneModeIsNoOp(t *testing.T) {
	id, err := Verify(serverstate.ForwardingNone, "", nil, "")
	if err != nil || id != nil {
		t.Fatalf("expected (nil, nil) for ForwardingNone, got (%v, %v)", id, err)
	}
}
