package core

import "errors"

// Batch sizing on the wire: 10 little-endian int32 samples, no header.
const (
	BatchSize        = 10
	SampleWireSize   = 4
	BatchPayloadSize = BatchSize * SampleWireSize
)

// ErrBatchSize is returned when decoding a payload that is not one batch.
var ErrBatchSize = errors.New("core: payload is not one batch")

// Batch is a fixed group of samples sent as one message.
type Batch [BatchSize]Sample

// EncodeBatch writes b into dst in wire order.
func EncodeBatch(dst *[BatchPayloadSize]byte, b *Batch) {
	for i, s := range b {
		v := uint32(s)
		off := i * SampleWireSize
		dst[off] = byte(v)
		dst[off+1] = byte(v >> 8)
		dst[off+2] = byte(v >> 16)
		dst[off+3] = byte(v >> 24)
	}
}

// DecodeBatch parses one wire payload.
func DecodeBatch(payload []byte) (Batch, error) {
	var b Batch
	if len(payload) != BatchPayloadSize {
		return b, ErrBatchSize
	}
	for i := range b {
		off := i * SampleWireSize
		b[i] = Sample(int32(uint32(payload[off]) |
			uint32(payload[off+1])<<8 |
			uint32(payload[off+2])<<16 |
			uint32(payload[off+3])<<24))
	}
	return b, nil
}

// DispatchStats counts dispatcher outcomes.
type DispatchStats struct {
	Samples uint32
	Sent    uint32
	Dropped uint32
}

// Dispatcher accumulates samples and replies to the host with every full
// batch. A failed send loses that batch; there is no retry.
type Dispatcher struct {
	session *Session
	batch   Batch
	index   int
	payload [BatchPayloadSize]byte
	stats   DispatchStats
}

// NewDispatcher sends batches through session.
func NewDispatcher(session *Session) *Dispatcher {
	return &Dispatcher{session: session}
}

// Push appends s and transmits the batch once it holds BatchSize samples.
func (d *Dispatcher) Push(s Sample) {
	d.batch[d.index] = s
	d.index++
	d.stats.Samples++
	if d.index < BatchSize {
		return
	}
	d.index = 0

	EncodeBatch(&d.payload, &d.batch)
	n := d.stats.Sent + d.stats.Dropped + 1
	if err := d.session.Reply(d.payload[:]); err != nil {
		d.stats.Dropped++
		RecordEvent(EvtBatchDropped, n, 0)
		return
	}
	d.stats.Sent++
	RecordEvent(EvtBatchSent, n, d.session.Src)
}

// Pending returns the number of samples waiting for the next send.
func (d *Dispatcher) Pending() int {
	return d.index
}

// Stats returns the dispatcher counters.
func (d *Dispatcher) Stats() DispatchStats {
	return d.stats
}
