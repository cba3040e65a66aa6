package core

// Handshake brings up the message channel with the host.
type Handshake struct {
	Transport Transport
	Status    StatusReader
	Events    EventController
	Channels  []ChannelDescriptor
}

// NewHandshake uses the default channel pair.
func NewHandshake(t Transport, status StatusReader, events EventController) *Handshake {
	return &Handshake{
		Transport: t,
		Status:    status,
		Events:    events,
		Channels:  []ChannelDescriptor{HostToDeviceChannel, DeviceToHostChannel},
	}
}

// Establish blocks until the host driver is ready and every channel has been
// announced. It never fails; an absent host stalls it forever.
func (h *Handshake) Establish() *Session {
	// Clear the event the host will use to kick us
	h.Events.ClearEvent(FromHostEvent)

	for h.Status.Status()&DriverOK == 0 {
	}
	RecordEvent(EvtDriverReady, 0, 0)

	// Init failures leave the queue unusable, which shows up later as a
	// failed announcement and another retry
	_ = h.Transport.InitQueue(QueueToHost, ToHostEvent, FromHostEvent)
	_ = h.Transport.InitQueue(QueueFromHost, ToHostEvent, FromHostEvent)

	for _, ch := range h.Channels {
		var attempts uint32
		for {
			attempts++
			if h.Transport.Channel(ChannelCreate, ch.Name, ch.Desc, ch.Port) == nil {
				break
			}
		}
		RecordEvent(EvtChannelAnnounced, ch.Port, attempts)
		DebugPrintln("[RPMSG] announced " + ch.Name + " port=" + utoa(ch.Port))
	}

	return NewSession(h.Transport)
}
