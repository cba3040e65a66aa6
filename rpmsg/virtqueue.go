package rpmsg

// Virtqueue is one vring bound to the events used to signal across it.
type Virtqueue struct {
	ring     *Ring
	intc     *Intc
	toHost   uint32
	fromHost uint32
}

// Init binds the virtqueue to ring and its signalling events.
func (vq *Virtqueue) Init(ring *Ring, intc *Intc, toHost, fromHost uint32) {
	vq.ring = ring
	vq.intc = intc
	vq.toHost = toHost
	vq.fromHost = fromHost
}

// Ready reports whether Init has been called.
func (vq *Virtqueue) Ready() bool {
	return vq.ring != nil
}

// Add queues frame and kicks the host.
func (vq *Virtqueue) Add(frame []byte) error {
	if !vq.Ready() {
		return ErrNotInitialized
	}
	if err := vq.ring.Put(frame); err != nil {
		return err
	}
	vq.Kick()
	return nil
}

// Get dequeues the next frame into dst.
func (vq *Virtqueue) Get(dst []byte) (int, error) {
	if !vq.Ready() {
		return 0, ErrNotInitialized
	}
	return vq.ring.Get(dst)
}

// Kick raises the to-host event.
func (vq *Virtqueue) Kick() {
	vq.intc.Raise(vq.toHost)
}
