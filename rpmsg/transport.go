package rpmsg

import "pruadc/core"

// Transport is the co-processor side of the channel. Its scratch buffers
// live inside the struct so sends and receives never allocate.
type Transport struct {
	shm *Shared
	vq  [2]Virtqueue

	txBuf [BufferSize]byte
	rxBuf [BufferSize]byte
}

// NewTransport creates an uninitialised transport over shm.
func NewTransport(shm *Shared) *Transport {
	return &Transport{shm: shm}
}

// InitQueue binds queue q to its vring and events.
func (t *Transport) InitQueue(q core.Queue, toHost, fromHost uint32) error {
	if q != core.QueueToHost && q != core.QueueFromHost {
		return ErrNotInitialized
	}
	t.vq[q].Init(t.shm.vring(q), &t.shm.Intc, toHost, fromHost)
	return nil
}

// Channel sends a name service message for port to the host.
func (t *Transport) Channel(cmd uint32, name, desc string, port uint32) error {
	var payload [NSMessageSize]byte
	NSMessage{Name: name, Desc: desc, Addr: port, Flags: cmd}.Encode(payload[:])
	return t.Send(port, NSAddr, payload[:])
}

// Receive dequeues one message from the host. It returns ErrNoBuffer when
// nothing is queued and ErrBufSize when buf cannot hold the payload; an
// oversized message is consumed and lost.
func (t *Transport) Receive(buf []byte) (src, dst uint32, n int, err error) {
	size, err := t.vq[core.QueueFromHost].Get(t.rxBuf[:])
	if err != nil {
		return 0, 0, 0, err
	}
	hdr, err := DecodeHeader(t.rxBuf[:size])
	if err != nil {
		return 0, 0, 0, err
	}
	if int(hdr.Len) > len(buf) {
		return 0, 0, 0, ErrBufSize
	}
	n = copy(buf, t.rxBuf[HeaderSize:HeaderSize+int(hdr.Len)])
	return hdr.Src, hdr.Dst, n, nil
}

// Send queues payload from src to dst and kicks the host.
func (t *Transport) Send(src, dst uint32, payload []byte) error {
	if len(payload) > MaxPayload {
		return ErrBufSize
	}
	Header{Src: src, Dst: dst, Len: uint16(len(payload))}.Encode(t.txBuf[:])
	n := copy(t.txBuf[HeaderSize:], payload)
	return t.vq[core.QueueToHost].Add(t.txBuf[:HeaderSize+n])
}

// StatusReader returns the vdev status as seen by the handshake.
func (t *Transport) StatusReader() core.StatusReader {
	return &t.shm.VDev
}

// Events returns the shared event controller.
func (t *Transport) Events() core.EventController {
	return &t.shm.Intc
}
