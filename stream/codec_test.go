// Package stream_test contains unit tests for the raw block codec and the
// unidirectional channel endpoints.
package stream_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/katalvlaran/parmul/stream"
	"github.com/stretchr/testify/require"
)

// TestWriteReadRoundTrip checks that a block survives encode → decode intact.
func TestWriteReadRoundTrip(t *testing.T) {
	block := []int64{0, 1, -1, 42, -1 << 40, 1<<62 - 1} // mixed signs and magnitudes

	var buf bytes.Buffer
	require.NoError(t, stream.WriteBlock(&buf, block)) // encode onto the buffer

	// Exact wire size, no framing bytes.
	require.Equal(t, len(block)*stream.ElemSize, buf.Len())

	got, err := stream.ReadBlock(&buf, len(block)) // decode the same element count
	require.NoError(t, err)
	require.Equal(t, block, got) // values preserved exactly
}

// TestZeroLengthBlock ensures empty transfers are immediately satisfied on both ends.
func TestZeroLengthBlock(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, stream.WriteBlock(&buf, nil)) // nothing written
	require.Zero(t, buf.Len())

	got, err := stream.ReadBlock(&buf, 0) // nothing expected, nothing read
	require.NoError(t, err)               // never a failure
	require.Empty(t, got)
}

// TestReadBlockShortTransfer injects a truncated stream and expects detection.
func TestReadBlockShortTransfer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, stream.WriteBlock(&buf, []int64{1, 2, 3})) // only 3 elements available

	_, err := stream.ReadBlock(&buf, 5) // consumer expects 5

	require.ErrorIs(t, err, stream.ErrShortTransfer)   // short count must be detected
	require.Contains(t, err.Error(), "24 of 40 bytes") // got/want diagnostics preserved
}

// TestReadBlockEmptyStream treats an immediately-closed stream as short when
// bytes were expected.
func TestReadBlockEmptyStream(t *testing.T) {
	_, err := stream.ReadBlock(bytes.NewReader(nil), 2)
	require.ErrorIs(t, err, stream.ErrShortTransfer)
}

// TestReadBlockInvalidCount rejects negative element counts.
func TestReadBlockInvalidCount(t *testing.T) {
	_, err := stream.ReadBlock(bytes.NewReader(nil), -1)
	require.ErrorIs(t, err, stream.ErrInvalidCount)
}

// TestChannelProducerToConsumer moves a block across a live channel with the
// producer half-closing after the write.
func TestChannelProducerToConsumer(t *testing.T) {
	ch := stream.NewChannel()
	block := []int64{7, 8, 9, 10}

	go func() { // producer side: write then half-close
		if err := stream.WriteBlock(ch.Producer(), block); err != nil {
			ch.AbortProducer(err)

			return
		}
		_ = ch.CloseProducer()
	}()

	got, err := stream.ReadBlock(ch.Consumer(), len(block)) // consumer side
	require.NoError(t, err)
	require.Equal(t, block, got)

	// After the half-close the stream is cleanly at end-of-stream.
	n, err := ch.Consumer().Read(make([]byte, 1))
	require.Zero(t, n)
	require.ErrorIs(t, err, io.EOF)
	require.NoError(t, ch.CloseConsumer())
}

// TestChannelAbortSurfacesError ensures AbortProducer carries the worker's
// failure to the consumer instead of a clean EOF.
func TestChannelAbortSurfacesError(t *testing.T) {
	ch := stream.NewChannel()
	cause := errors.New("kernel exploded")

	go func() { // producer writes half a block, then aborts
		_ = stream.WriteBlock(ch.Producer(), []int64{1})
		ch.AbortProducer(cause)
	}()

	_, err := stream.ReadBlock(ch.Consumer(), 2) // expecting two elements
	require.Error(t, err)
	require.ErrorIs(t, err, cause) // the worker's cause is observable
	require.NoError(t, ch.CloseConsumer())
}

// TestChannelTruncatedClose ensures a premature clean close reads as a short
// transfer, the exact condition the coordinator reports per worker.
func TestChannelTruncatedClose(t *testing.T) {
	ch := stream.NewChannel()

	go func() { // producer delivers fewer elements than promised
		_ = stream.WriteBlock(ch.Producer(), []int64{1, 2})
		_ = ch.CloseProducer()
	}()

	_, err := stream.ReadBlock(ch.Consumer(), 4)
	require.ErrorIs(t, err, stream.ErrShortTransfer)
	require.NoError(t, ch.CloseConsumer())
}

// TestWriteBlockConsumerGone ensures a write against a closed consumer end
// fails instead of blocking forever.
func TestWriteBlockConsumerGone(t *testing.T) {
	ch := stream.NewChannel()
	require.NoError(t, ch.CloseConsumer()) // coordinator walked away

	err := stream.WriteBlock(ch.Producer(), []int64{1, 2, 3})
	require.Error(t, err) // pipe reports closure to the producer
}
