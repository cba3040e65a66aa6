package rpmsg

import "sync/atomic"

// Intc models the interrupt controller's system event status. Events
// 16-31 are the ones routed between the co-processors and the host.
type Intc struct {
	pending atomic.Uint32
}

func eventMask(event uint32) uint32 {
	return 1 << (event % 32)
}

// Raise marks event pending.
func (c *Intc) Raise(event uint32) {
	mask := eventMask(event)
	for {
		old := c.pending.Load()
		if c.pending.CompareAndSwap(old, old|mask) {
			return
		}
	}
}

// ClearEvent clears a pending event.
func (c *Intc) ClearEvent(event uint32) {
	mask := eventMask(event)
	for {
		old := c.pending.Load()
		if c.pending.CompareAndSwap(old, old&^mask) {
			return
		}
	}
}

// Pending reports whether event is raised.
func (c *Intc) Pending(event uint32) bool {
	return c.pending.Load()&eventMask(event) != 0
}
