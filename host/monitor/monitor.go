// Package monitor reads sample batches produced by the co-processor
// firmware from a host character device or serial bridge.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"pruadc/core"
)

// BatchHandler is called for every decoded batch, in arrival order.
type BatchHandler func(seq uint64, b core.Batch) error

// Stats summarises what the monitor has seen.
type Stats struct {
	Batches uint64
	Samples uint64
	Min     core.Sample
	Max     core.Sample
}

func (s *Stats) add(b core.Batch) {
	for _, v := range b {
		if s.Samples == 0 || v < s.Min {
			s.Min = v
		}
		if s.Samples == 0 || v > s.Max {
			s.Max = v
		}
		s.Samples++
	}
	s.Batches++
}

// Monitor decodes 40-byte batch messages from a stream.
type Monitor struct {
	in    io.Reader
	log   zerolog.Logger
	stats Stats
	buf   [core.BatchPayloadSize]byte
}

// New creates a monitor reading from in.
func New(in io.Reader, log zerolog.Logger) *Monitor {
	return &Monitor{in: in, log: log}
}

// Trigger writes the start message to the host-to-device channel. Any
// payload starts sampling; the firmware does not interpret it.
func Trigger(w io.Writer, payload []byte) error {
	if len(payload) == 0 {
		payload = []byte{0}
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("send trigger: %w", err)
	}
	return nil
}

// Next reads and decodes one batch.
func (m *Monitor) Next() (core.Batch, error) {
	if _, err := io.ReadFull(m.in, m.buf[:]); err != nil {
		return core.Batch{}, err
	}
	b, err := core.DecodeBatch(m.buf[:])
	if err != nil {
		return core.Batch{}, err
	}
	m.stats.add(b)
	return b, nil
}

// Run reads batches until ctx is done, the stream ends, limit batches have
// been read (0 means no limit) or handle fails. A clean end of stream
// returns nil.
func (m *Monitor) Run(ctx context.Context, limit uint64, handle BatchHandler) error {
	for limit == 0 || m.stats.Batches < limit {
		if err := ctx.Err(); err != nil {
			return nil
		}
		seq := m.stats.Batches
		b, err := m.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				m.log.Info().Uint64("batches", m.stats.Batches).Msg("stream closed")
				return nil
			}
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read batch: %w", err)
		}
		m.log.Debug().Uint64("seq", seq).Int32("first", int32(b[0])).Msg("batch")
		if handle != nil {
			if err := handle(seq, b); err != nil {
				return fmt.Errorf("handle batch %d: %w", seq, err)
			}
		}
	}
	return nil
}

// Stats returns the counters so far.
func (m *Monitor) Stats() Stats {
	return m.stats
}
