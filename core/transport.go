package core

// Queue identifies one direction of the virtqueue pair.
type Queue uint8

const (
	QueueToHost   Queue = 0 // vring0, co-processor to host
	QueueFromHost Queue = 1 // vring1, host to co-processor
)

// System events used for the message channel. PRU1 signals the host on
// event 18 and is kicked by the host on event 19.
const (
	ToHostEvent   uint32 = 18
	FromHostEvent uint32 = 19
)

// DriverOK is the status bit the host driver sets once it can talk to us.
const DriverOK uint8 = 0x4

// Channel announcement commands
const (
	ChannelCreate  uint32 = 0
	ChannelDestroy uint32 = 1
)

// Transport is the message queue pair shared with the host.
type Transport interface {
	// InitQueue binds queue q to its signalling events
	InitQueue(q Queue, toHost, fromHost uint32) error

	// Channel announces (or withdraws) a named channel on port
	Channel(cmd uint32, name, desc string, port uint32) error

	// Receive dequeues one inbound message into buf
	Receive(buf []byte) (src, dst uint32, n int, err error)

	// Send queues payload for the host
	Send(src, dst uint32, payload []byte) error
}

// StatusReader exposes the shared vdev status field.
type StatusReader interface {
	Status() uint8
}

// EventController clears pending system events in the interrupt controller.
type EventController interface {
	ClearEvent(event uint32)
}

// ChannelDescriptor identifies one logical endpoint on the transport.
type ChannelDescriptor struct {
	Name string
	Desc string
	Port uint32
}

// ChannelName is probed by the host's rpmsg_pru driver.
const ChannelName = "rpmsg-pru"

// Channel descriptors announced at startup, one per data direction.
var (
	HostToDeviceChannel = ChannelDescriptor{Name: ChannelName, Desc: "Channel 31", Port: 31}
	DeviceToHostChannel = ChannelDescriptor{Name: ChannelName, Desc: "Channel 30", Port: 30}
)

// Session is the live transport plus the endpoints of the last message
// received from the host.
type Session struct {
	transport Transport
	Src       uint32
	Dst       uint32
}

// NewSession wraps t with no endpoints recorded yet.
func NewSession(t Transport) *Session {
	return &Session{transport: t}
}

// Receive dequeues one message into buf and records its endpoints.
func (s *Session) Receive(buf []byte) (int, bool) {
	src, dst, n, err := s.transport.Receive(buf)
	if err != nil {
		return 0, false
	}
	s.Src = src
	s.Dst = dst
	return n, true
}

// Reply sends payload back to the sender of the last received message.
func (s *Session) Reply(payload []byte) error {
	return s.transport.Send(s.Dst, s.Src, payload)
}
