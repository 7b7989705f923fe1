// SPDX-License-Identifier: MIT

package stream

import "io"

// Channel is an ordered, reliable, unidirectional byte stream with two
// distinct endpoints: the producer end (worker-owned) and the consumer end
// (coordinator-owned). It is backed by an in-process pipe, so delivery is
// synchronous and bytes arrive strictly in write order.
//
// Endpoint discipline (single writer / single reader, enforced by ownership,
// not locks):
//   - the worker only ever calls Producer, CloseProducer or AbortProducer;
//   - the coordinator only ever calls Consumer and CloseConsumer;
//   - each owner closes its own end exactly once and never uses it again.
type Channel struct {
	pr *io.PipeReader // consumer end
	pw *io.PipeWriter // producer end
}

// NewChannel opens a fresh one-way channel with both endpoints ready.
// Complexity: O(1).
func NewChannel() *Channel {
	pr, pw := io.Pipe()

	return &Channel{pr: pr, pw: pw}
}

// Producer returns the write side. A write blocks until the consumer has
// taken the bytes or the consumer end is closed (which fails the write).
func (c *Channel) Producer() io.Writer { return c.pw }

// CloseProducer half-closes the channel: the consumer's next read observes
// end-of-stream after draining buffered bytes. Idempotent for the owner.
func (c *Channel) CloseProducer() error { return c.pw.Close() }

// AbortProducer closes the producer end carrying err; the consumer's reads
// fail with err instead of a clean end-of-stream. Used by a worker whose
// compute or write failed mid-block, so the coordinator observes a short,
// errored transfer rather than a silent truncation.
func (c *Channel) AbortProducer(err error) { _ = c.pw.CloseWithError(err) }

// Consumer returns the read side. A read blocks until at least one byte is
// available or the producer end has been closed.
func (c *Channel) Consumer() io.Reader { return c.pr }

// CloseConsumer releases the consumer end after collection. Any later writes
// by a straggling producer fail rather than block forever.
func (c *Channel) CloseConsumer() error { return c.pr.Close() }
