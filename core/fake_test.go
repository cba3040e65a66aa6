package core

import "errors"

// errFake is returned by fakes simulating a failure.
var errFake = errors.New("fake failure")

// KickSource reports whether the host kick line is raised.
type KickSource func() bool

// FakeConverter emulates a 24-bit serial converter wired to the signal
// registers. DOUT idles high, falls when a conversion is ready, shifts out
// one bit per rising clock edge MSB first and returns high on the 25th
// pulse (or a strobe pulse on a separate line).
type FakeConverter struct {
	Pins  PinMap
	Words []uint32 // conversions still to deliver
	Kick  KickSource

	out uint32

	ready     bool
	edges     int
	reads     int
	idleSince int

	RisingEdges int // total clock rising edges
	Strobes     int // total strobe rising edges
	Delivered   int // words fully shifted out
}

// NewFakeConverter creates a converter queued with words.
func NewFakeConverter(pins PinMap, words ...uint32) *FakeConverter {
	return &FakeConverter{Pins: pins, Words: words}
}

// Queue appends more conversions.
func (f *FakeConverter) Queue(words ...uint32) {
	f.Words = append(f.Words, words...)
}

// Output returns the output register.
func (f *FakeConverter) Output() uint32 {
	return f.out
}

func (f *FakeConverter) dout() bool {
	if !f.ready {
		return true
	}
	if f.edges == 0 {
		return false
	}
	if f.edges > SampleBits {
		return true
	}
	bit := SampleBits - f.edges
	return (f.Words[0]>>bit)&1 != 0
}

func (f *FakeConverter) ReadInput() uint32 {
	f.reads++
	// A conversion becomes ready on the third read after the last one
	if !f.ready && len(f.Words) > 0 && f.reads-f.idleSince >= 3 {
		f.ready = true
		f.edges = 0
	}

	var in uint32
	if f.dout() {
		in |= f.Pins.Data | f.Pins.Control | f.Pins.Start
	}
	if f.Kick != nil && f.Kick() {
		in |= f.Pins.Kick
	}
	return in
}

func (f *FakeConverter) SetOutputBits(mask uint32) {
	rising := mask &^ f.out
	f.out |= mask
	if rising&f.Pins.Clock != 0 {
		f.RisingEdges++
		if f.ready {
			f.edges++
			if f.edges > SampleBits {
				f.finish()
			}
		}
	}
	if rising&f.Pins.Strobe != 0 {
		f.Strobes++
		if f.Pins.Strobe != f.Pins.Clock && f.ready && f.edges == SampleBits {
			f.finish()
		}
	}
}

func (f *FakeConverter) ClearOutputBits(mask uint32) {
	f.out &^= mask
}

func (f *FakeConverter) finish() {
	f.Words = f.Words[1:]
	f.Delivered++
	f.ready = false
	f.edges = 0
	f.idleSince = f.reads
}

// FakeTransport records transport calls.
type FakeTransport struct {
	Inits     []Queue
	Announced []ChannelDescriptor
	Sent      [][]byte
	SentSrc   []uint32
	SentDst   []uint32

	// Inbound messages still to deliver; each carries src and dst
	Inbound []FakeMessage

	ChannelFailures int   // Channel calls to fail before succeeding
	SendErr         error // returned by every Send when set
	ChannelCalls    int
}

// FakeMessage is one queued inbound message.
type FakeMessage struct {
	Src, Dst uint32
	Payload  []byte
}

func (t *FakeTransport) InitQueue(q Queue, toHost, fromHost uint32) error {
	t.Inits = append(t.Inits, q)
	return nil
}

func (t *FakeTransport) Channel(cmd uint32, name, desc string, port uint32) error {
	t.ChannelCalls++
	if t.ChannelFailures > 0 {
		t.ChannelFailures--
		return errFake
	}
	t.Announced = append(t.Announced, ChannelDescriptor{Name: name, Desc: desc, Port: port})
	return nil
}

func (t *FakeTransport) Receive(buf []byte) (uint32, uint32, int, error) {
	if len(t.Inbound) == 0 {
		return 0, 0, 0, errFake
	}
	m := t.Inbound[0]
	t.Inbound = t.Inbound[1:]
	n := copy(buf, m.Payload)
	return m.Src, m.Dst, n, nil
}

func (t *FakeTransport) Send(src, dst uint32, payload []byte) error {
	if t.SendErr != nil {
		return t.SendErr
	}
	t.Sent = append(t.Sent, append([]byte(nil), payload...))
	t.SentSrc = append(t.SentSrc, src)
	t.SentDst = append(t.SentDst, dst)
	return nil
}

// FakeStatus reports DriverOK after ReadyAfter polls.
type FakeStatus struct {
	ReadyAfter int
	Polls      int
}

func (s *FakeStatus) Status() uint8 {
	s.Polls++
	if s.Polls > s.ReadyAfter {
		return DriverOK
	}
	return 0
}

// FakeEvents records cleared events.
type FakeEvents struct {
	Cleared []uint32
}

func (e *FakeEvents) ClearEvent(event uint32) {
	e.Cleared = append(e.Cleared, event)
}
