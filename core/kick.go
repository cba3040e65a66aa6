package core

// MessageBufferSize bounds one inbound message payload.
const MessageBufferSize = 496

// KickHandler polls for host kicks and drains inbound messages. The kick
// bit is level-held until the event is cleared, so Acknowledge must run
// before the next Pending check to re-arm detection.
type KickHandler struct {
	port    SignalPort
	events  EventController
	session *Session
	pins    PinMap

	buf   [MessageBufferSize]byte
	kicks uint32
}

// NewKickHandler creates a handler draining into session.
func NewKickHandler(port SignalPort, events EventController, session *Session, pins PinMap) *KickHandler {
	return &KickHandler{
		port:    port,
		events:  events,
		session: session,
		pins:    pins,
	}
}

// Pending reports whether the host has kicked us.
func (k *KickHandler) Pending() bool {
	return k.port.ReadInput()&k.pins.Kick != 0
}

// Acknowledge clears the from-host event.
func (k *KickHandler) Acknowledge() {
	k.events.ClearEvent(FromHostEvent)
	k.kicks++
	RecordEvent(EvtKick, k.kicks, 0)
}

// Drain dequeues one inbound message. The content is not interpreted.
func (k *KickHandler) Drain() bool {
	n, ok := k.session.Receive(k.buf[:])
	if !ok {
		return false
	}
	RecordEvent(EvtMessage, k.session.Src, uint32(n))
	return true
}

// Kicks returns the number of kicks acknowledged.
func (k *KickHandler) Kicks() uint32 {
	return k.kicks
}
