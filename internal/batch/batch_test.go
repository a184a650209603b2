package batch

import (
	"errors"
	"net"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/packetid"
	"github.com/go-mclib/limbo/internal/netstream"
	"github.com/go-mclib/limbo/internal/version"
)

type fakePacket struct {
	name packetid.Name
}

func (p *fakePacket) Name() packetid.Name { return p.name }
func (p *fakePacket) Write(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	return pb.WriteVarInt(1)
}

func testStream(t *testing.T, conn net.Conn) *netstream.Stream {
	t.Helper()
	registry := packetid.NewBuilder().
		Register(packetid.Registration{State: packetid.StateHandshake, Bound: packetid.S2C, Name: "test:a", ID: 0, Lo: version.Any, Hi: version.Any}).
		Register(packetid.Registration{State: packetid.StateHandshake, Bound: packetid.S2C, Name: "test:b", ID: 1, Lo: version.Any, Hi: version.Any}).
		Register(packetid.Registration{State: packetid.StateHandshake, Bound: packetid.C2S, Name: "test:a", ID: 0, Lo: version.Any, Hi: version.Any}).
		Register(packetid.Registration{State: packetid.StateHandshake, Bound: packetid.C2S, Name: "test:b", ID: 1, Lo: version.Any, Hi: version.Any})
	log := logrus.NewEntry(logrus.New())
	return netstream.New(conn, registry, log)
}

func TestBatch_DrainSendsInOrder(t *testing.T) {
	serverConn, clientConn := net.Pipe()
	defer serverConn.Close()
	defer clientConn.Close()

	server := testStream(t, serverConn)

	b := New().
		Add(&fakePacket{name: "test:a"}).
		AddIf(false, &fakePacket{name: "test:b"}).
		AddDeferred(func() (netstream.Encodable, error) { return &fakePacket{name: "test:b"}, nil })

	if b.Len() != 2 {
		t.Fatalf("expected 2 queued entries (AddIf(false,...) should add nothing), got %d", b.Len())
	}

	done := make(chan error, 1)
	go func() { done <- b.Drain(server) }()

	factory := func(packetid.Name) (netstream.Decodable, bool) { return nil, false }
	client := testStream(t, clientConn)

	first, err := readRawID(client, factory)
	if err != nil {
		t.Fatalf("read first: %v", err)
	}
	if first != "test:a" {
		t.Fatalf("expected test:a first, got %q", first)
	}
	second, err := readRawID(client, factory)
	if err != nil {
		t.Fatalf("read second: %v", err)
	}
	if second != "test:b" {
		t.Fatalf("expected test:b second (from the deferred producer), got %q", second)
	}
	if err := <-done; err != nil {
		t.Fatalf("Drain: %v", err)
	}
}

func readRawID(s *netstream.Stream, factory netstream.Factory) (packetid.Name, error) {
	name, _, err := s.ReadPacket(factory)
	if err != nil && !errors.Is(err, netstream.ErrPacketNotFound) {
		return "", err
	}
	return name, nil
}

func TestBatch_DrainStopsOnProducerError(t *testing.T) {
	serverConn, clientConn := net.Pipe()
	defer serverConn.Close()
	defer clientConn.Close()
	server := testStream(t, serverConn)

	wantErr := errors.New("profile fetch failed")
	b := New().AddDeferred(func() (netstream.Encodable, error) { return nil, wantErr })

	err := b.Drain(server)
	if err == nil || !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped producer error, got %v", err)
	}
	_ = clientConn
}
