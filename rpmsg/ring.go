package rpmsg

import "sync/atomic"

// Ring is a single-producer single-consumer ring of vring buffers living in
// memory shared by both sides. The producer owns head, the consumer owns
// tail; a slot is only touched by the side that currently owns it.
type Ring struct {
	bufs [NumBuffers][BufferSize]byte
	lens [NumBuffers]uint16
	head atomic.Uint32 // next slot to fill
	tail atomic.Uint32 // next slot to drain
}

// Put copies frame into the next free buffer.
func (r *Ring) Put(frame []byte) error {
	if len(frame) > BufferSize {
		return ErrBufSize
	}
	head := r.head.Load()
	if head-r.tail.Load() >= NumBuffers {
		// Ring full
		return ErrNoBuffer
	}
	slot := head % NumBuffers
	copy(r.bufs[slot][:], frame)
	r.lens[slot] = uint16(len(frame))
	r.head.Store(head + 1)
	return nil
}

// Get copies the oldest buffer into dst and releases it.
func (r *Ring) Get(dst []byte) (int, error) {
	tail := r.tail.Load()
	if tail == r.head.Load() {
		// Ring empty
		return 0, ErrNoBuffer
	}
	slot := tail % NumBuffers
	n := int(r.lens[slot])
	if n > len(dst) {
		return 0, ErrBufSize
	}
	copy(dst, r.bufs[slot][:n])
	r.tail.Store(tail + 1)
	return n, nil
}

// Available returns the number of filled buffers
func (r *Ring) Available() int {
	return int(r.head.Load() - r.tail.Load())
}

// Free returns the number of buffers that can still be filled
func (r *Ring) Free() int {
	return NumBuffers - r.Available()
}

// IsEmpty returns true if the ring holds no buffers
func (r *Ring) IsEmpty() bool {
	return r.Available() == 0
}

// Reset drops every buffer. Only safe while neither side is running.
func (r *Ring) Reset() {
	r.head.Store(0)
	r.tail.Store(0)
}
