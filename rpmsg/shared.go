package rpmsg

import (
	"sync/atomic"

	"pruadc/core"
)

// VDev is the virtio device status field the host driver writes.
type VDev struct {
	status atomic.Uint32
}

// Status returns the current status byte.
func (v *VDev) Status() uint8 {
	return uint8(v.status.Load())
}

// SetStatus replaces the status byte.
func (v *VDev) SetStatus(s uint8) {
	v.status.Store(uint32(s))
}

// Shared is the memory region both sides see: the vdev status, one vring
// per direction and the event controller.
type Shared struct {
	VDev   VDev
	Vring0 Ring // co-processor to host
	Vring1 Ring // host to co-processor
	Intc   Intc
}

// NewShared returns a zeroed shared region.
func NewShared() *Shared {
	return &Shared{}
}

func (s *Shared) vring(q core.Queue) *Ring {
	if q == core.QueueToHost {
		return &s.Vring0
	}
	return &s.Vring1
}
