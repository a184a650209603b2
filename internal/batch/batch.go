// Package batch implements the send pipeline (spec component O): a
// producer-stream of packets a handler queues, each entry either a
// packet ready to send or a deferred producer that yields one when
// polled (e.g. a skin-texture fetch that must not block the connection
// task while it runs). Drain writes a Batch's entries in the order they
// were queued; the Play join sequence is the one caller that builds and
// drains one.
package batch

import (
	"fmt"

	"github.com/go-mclib/limbo/internal/netstream"
)

// Producer yields one packet when polled, or an error to abort the drain.
// A Producer that blocks (an HTTP profile fetch, say) blocks the
// connection task for exactly the one entry it's wrapping - batch itself
// does no concurrency; a caller wanting true async fetch-ahead resolves
// the producer on its own goroutine and wraps the result, not the fetch,
// in the Producer passed to AddDeferred.
type Producer func() (netstream.Encodable, error)

// entry is either a precomputed packet or a deferred Producer; never both.
type entry struct {
	packet   netstream.Encodable
	producer Producer
}

// Batch is an ordered queue of entries to send on a Stream, in the order
// they were added.
type Batch struct {
	entries []entry
}

// New returns an empty Batch.
func New() *Batch {
	return &Batch{}
}

// Add queues a precomputed packet.
func (b *Batch) Add(p netstream.Encodable) *Batch {
	b.entries = append(b.entries, entry{packet: p})
	return b
}

// AddIf queues p only when cond is true - a shorthand for the join
// sequence's many version-gated steps ("if >=1.19: SetDefaultSpawnPosition").
func (b *Batch) AddIf(cond bool, p netstream.Encodable) *Batch {
	if cond {
		b.Add(p)
	}
	return b
}

// AddDeferred queues a Producer, resolved only when Drain reaches it.
func (b *Batch) AddDeferred(p Producer) *Batch {
	b.entries = append(b.entries, entry{producer: p})
	return b
}

// Len returns the number of queued entries.
func (b *Batch) Len() int {
	return len(b.entries)
}

// Drain resolves and writes every entry, in order, to stream. A deferred
// producer's error or a write failure stops the drain and returns the
// error; entries already sent stay sent - per spec, the connection task
// doesn't attempt to retract partially-delivered state on a failed drain.
func (b *Batch) Drain(stream *netstream.Stream) error {
	for i, e := range b.entries {
		pkt := e.packet
		if e.producer != nil {
			resolved, err := e.producer()
			if err != nil {
				return fmt.Errorf("batch: entry %d: resolve producer: %w", i, err)
			}
			pkt = resolved
		}
		if pkt == nil {
			continue
		}
		if err := stream.WritePacket(pkt); err != nil {
			return fmt.Errorf("batch: entry %d: write %s: %w", i, pkt.Name(), err)
		}
	}
	return nil
}
