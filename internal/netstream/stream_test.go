package netstream

import (
	"net"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/packetid"
	"github.com/go-mclib/limbo/internal/version"
)

type fakePacket struct {
	name  packetid.Name
	value int32
}

func (p *fakePacket) Name() packetid.Name { return p.name }

func (p *fakePacket) Read(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	v, err := pb.ReadVarInt()
	p.value = int32(v)
	return err
}

func (p *fakePacket) Write(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	return pb.WriteVarInt(netio.VarInt(p.value))
}

func testRegistry() *packetid.Registry {
	return packetid.NewBuilder().
		Register(packetid.Registration{State: packetid.StateHandshake, Bound: packetid.C2S, Name: "test:ping", ID: 0x00, Lo: version.Any, Hi: version.Any}).
		Register(packetid.Registration{State: packetid.StateHandshake, Bound: packetid.S2C, Name: "test:ping", ID: 0x00, Lo: version.Any, Hi: version.Any})
}

func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(discardWriter{})
	return logrus.NewEntry(l)
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestStream_WriteThenReadPacket_RoundTrips(t *testing.T) {
	serverConn, clientConn := net.Pipe()
	defer serverConn.Close()
	defer clientConn.Close()

	registry := testRegistry()
	server := New(serverConn, registry, discardLogger())
	client := New(clientConn, registry, discardLogger())

	done := make(chan error, 1)
	go func() {
		done <- server.WritePacket(&fakePacket{name: "test:ping", value: 99})
	}()

	factory := func(name packetid.Name) (Decodable, bool) {
		if name == "test:ping" {
			return &fakePacket{name: name}, true
		}
		return nil, false
	}

	name, pkt, err := client.ReadPacket(factory)
	if err != nil {
		t.Fatalf("ReadPacket: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("WritePacket: %v", err)
	}
	if name != "test:ping" {
		t.Fatalf("expected test:ping, got %q", name)
	}
	if pkt.(*fakePacket).value != 99 {
		t.Fatalf("expected value 99, got %d", pkt.(*fakePacket).value)
	}
}

func TestStream_ReadPacket_UnknownIDIsNonFatal(t *testing.T) {
	serverConn, clientConn := net.Pipe()
	defer serverConn.Close()
	defer clientConn.Close()

	registry := testRegistry()
	server := New(serverConn, registry, discardLogger())
	client := New(clientConn, registry, discardLogger())

	done := make(chan error, 1)
	go func() {
		done <- server.WritePacket(&fakePacket{name: "test:ping", value: 1})
	}()

	// Client expects a different state, so the frame's id won't resolve.
	client.State = packetid.StatePlay
	_, _, err := client.ReadPacket(func(packetid.Name) (Decodable, bool) { return nil, false })
	<-done
	if err != ErrPacketNotFound {
		t.Fatalf("expected ErrPacketNotFound, got %v", err)
	}
}
