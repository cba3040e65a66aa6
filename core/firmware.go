package core

// State is the firmware control loop state.
type State uint8

const (
	StateAwaitingKick State = iota
	StateDraining
	StateSampling
)

func (s State) String() string {
	switch s {
	case StateAwaitingKick:
		return "awaiting-kick"
	case StateDraining:
		return "draining"
	case StateSampling:
		return "sampling"
	default:
		return "unknown"
	}
}

// Config wires the firmware to its hardware and host collaborators.
type Config struct {
	Port      SignalPort
	Transport Transport
	Status    StatusReader
	Events    EventController
	Pins      PinMap
}

// Firmware is the co-processor control loop.
//
// Once a message has moved the loop into StateSampling it stays there until
// the host resets the co-processor: later kicks and messages are never
// looked at. Hosts therefore trigger sampling exactly once per boot.
type Firmware struct {
	cfg   Config
	state State

	session    *Session
	kick       *KickHandler
	sampler    *Sampler
	dispatcher *Dispatcher
}

// NewFirmware builds the loop. Zero-valued Pins select DefaultPinMap.
func NewFirmware(cfg Config) *Firmware {
	if cfg.Pins == (PinMap{}) {
		cfg.Pins = DefaultPinMap
	}
	return &Firmware{cfg: cfg}
}

// Start runs the host handshake. It blocks until the host is ready.
func (f *Firmware) Start() {
	hs := NewHandshake(f.cfg.Transport, f.cfg.Status, f.cfg.Events)
	f.session = hs.Establish()
	f.kick = NewKickHandler(f.cfg.Port, f.cfg.Events, f.session, f.cfg.Pins)
	f.sampler = NewSampler(f.cfg.Port, f.cfg.Pins)
	f.dispatcher = NewDispatcher(f.session)
	f.state = StateAwaitingKick
}

// Step runs one iteration of the current state. It does nothing before
// Start.
func (f *Firmware) Step() {
	if f.kick == nil {
		return
	}
	switch f.state {
	case StateAwaitingKick:
		f.cfg.Port.ClearOutputBits(f.cfg.Pins.Outputs())
		if f.kick.Pending() {
			f.kick.Acknowledge()
			f.state = StateDraining
		}
	case StateDraining:
		// A kick may carry several messages; the first one starts sampling
		if f.kick.Drain() {
			f.state = StateSampling
		} else {
			f.state = StateAwaitingKick
		}
	case StateSampling:
		f.sampler.Poll(f.dispatcher)
	}
}

// Run starts the firmware and never returns.
func (f *Firmware) Run() {
	f.Start()
	for {
		f.Step()
	}
}

// State returns the current control loop state.
func (f *Firmware) State() State {
	return f.state
}

// Session returns the host session, nil before Start.
func (f *Firmware) Session() *Session {
	return f.session
}

// Sampler returns the ADC sampler, nil before Start.
func (f *Firmware) Sampler() *Sampler {
	return f.sampler
}

// Dispatcher returns the batch dispatcher, nil before Start.
func (f *Firmware) Dispatcher() *Dispatcher {
	return f.dispatcher
}
