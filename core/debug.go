package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// FirmwareEvent captures a notable firmware event for post-mortem analysis
type FirmwareEvent struct {
	EventType uint8  // Event type code
	Seq       uint32 // Monotonic event number
	Value1    uint32 // Context-dependent value
	Value2    uint32 // Context-dependent value
}

// Event type codes
const (
	EvtDriverReady      = 1 // host driver reported DRIVER_OK
	EvtChannelAnnounced = 2 // channel announced (port, attempts)
	EvtKick             = 3 // host kick seen
	EvtMessage          = 4 // inbound message dequeued (src, len)
	EvtBatchSent        = 5 // batch queued for the host (batch number)
	EvtBatchDropped     = 6 // batch send failed (batch number)
)

const (
	EventRingSize = 32 // Keep last 32 events for post-mortem
)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active.
	// Never enable it while sampling: a slow writer stretches the clock.
	debugEnabled bool = false

	eventRing     [EventRingSize]FirmwareEvent
	eventRingHead uint8
	eventSeq      uint32
)

// SetDebugWriter sets the platform-specific debug output function
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// DebugPrintln writes a debug message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// RecordEvent stores an event in the ring buffer. It never blocks and
// never allocates, so it is safe inside the sampling loop.
func RecordEvent(eventType uint8, value1, value2 uint32) {
	eventSeq++
	idx := eventRingHead
	eventRing[idx] = FirmwareEvent{
		EventType: eventType,
		Seq:       eventSeq,
		Value1:    value1,
		Value2:    value2,
	}
	eventRingHead = (idx + 1) % EventRingSize
}

// Events returns the recorded events, oldest first.
func Events() []FirmwareEvent {
	out := make([]FirmwareEvent, 0, EventRingSize)
	start := eventRingHead
	for i := uint8(0); i < EventRingSize; i++ {
		evt := eventRing[(start+i)%EventRingSize]
		if evt.EventType == 0 {
			continue
		}
		out = append(out, evt)
	}
	return out
}

func eventName(t uint8) string {
	switch t {
	case EvtDriverReady:
		return "DRIVER_OK"
	case EvtChannelAnnounced:
		return "CHANNEL"
	case EvtKick:
		return "KICK"
	case EvtMessage:
		return "MESSAGE"
	case EvtBatchSent:
		return "BATCH_SENT"
	case EvtBatchDropped:
		return "BATCH_DROPPED!"
	default:
		return "UNKNOWN"
	}
}

// DumpEventRing outputs the event ring buffer through the debug writer
func DumpEventRing() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[EVENTS] === Event Ring Dump ===")
	for _, evt := range Events() {
		debugPrintln("[EVENTS] " + eventName(evt.EventType) +
			" seq=" + utoa(evt.Seq) +
			" v1=" + utoa(evt.Value1) +
			" v2=" + utoa(evt.Value2))
	}
	debugPrintln("[EVENTS] === End Dump ===")
}

// ClearEventRing clears the event buffer
func ClearEventRing() {
	for i := range eventRing {
		eventRing[i] = FirmwareEvent{}
	}
	eventRingHead = 0
	eventSeq = 0
}
