package rpmsg

import "pruadc/core"

// Message is one buffer received by the host.
type Message struct {
	Header
	Payload []byte
}

// NS decodes the message as a name service announcement.
func (m Message) NS() (NSMessage, bool) {
	if m.Dst != NSAddr {
		return NSMessage{}, false
	}
	ns, err := DecodeNSMessage(m.Payload)
	if err != nil {
		return NSMessage{}, false
	}
	return ns, true
}

// Host is the host side of the channel, standing in for the kernel's
// rpmsg driver.
type Host struct {
	shm *Shared
	// Endpoint the host sends from
	Addr uint32

	buf [BufferSize]byte
}

// NewHost attaches a host endpoint to shm.
func NewHost(shm *Shared, addr uint32) *Host {
	return &Host{shm: shm, Addr: addr}
}

// SetDriverOK empties both vrings and reports the host driver ready. The
// co-processor is still polling the status byte at this point.
func (h *Host) SetDriverOK() {
	h.shm.Vring0.Reset()
	h.shm.Vring1.Reset()
	h.shm.VDev.SetStatus(h.shm.VDev.Status() | core.DriverOK)
}

// Kicked reports and clears a pending kick from the co-processor.
func (h *Host) Kicked() bool {
	if !h.shm.Intc.Pending(core.ToHostEvent) {
		return false
	}
	h.shm.Intc.ClearEvent(core.ToHostEvent)
	return true
}

// Recv dequeues the next message sent by the co-processor. The payload is
// copied out of the ring.
func (h *Host) Recv() (Message, error) {
	n, err := h.shm.Vring0.Get(h.buf[:])
	if err != nil {
		return Message{}, err
	}
	hdr, err := DecodeHeader(h.buf[:n])
	if err != nil {
		return Message{}, err
	}
	payload := make([]byte, hdr.Len)
	copy(payload, h.buf[HeaderSize:])
	return Message{Header: hdr, Payload: payload}, nil
}

// SendTo queues payload for port dst and kicks the co-processor.
func (h *Host) SendTo(dst uint32, payload []byte) error {
	if len(payload) > MaxPayload {
		return ErrBufSize
	}
	var frame [BufferSize]byte
	Header{Src: h.Addr, Dst: dst, Len: uint16(len(payload))}.Encode(frame[:])
	n := copy(frame[HeaderSize:], payload)
	if err := h.shm.Vring1.Put(frame[:HeaderSize+n]); err != nil {
		return err
	}
	h.shm.Intc.Raise(core.FromHostEvent)
	return nil
}
