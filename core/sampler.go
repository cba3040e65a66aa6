package core

// SampleBits is the width of one converter word.
const SampleBits = 24

// Sample is a 24-bit two's-complement reading widened to int32.
type Sample int32

// SignExtend24 interprets the low 24 bits of raw as a signed value.
// Shifting bit 23 up to bit 31 and back arithmetically copies it through
// bits 24-31.
func SignExtend24(raw uint32) Sample {
	return Sample(int32(raw<<8) >> 8)
}

// SampleSink consumes samples in acquisition order.
type SampleSink interface {
	Push(s Sample)
}

// Sampler bit-bangs the converter's serial read protocol.
type Sampler struct {
	port SignalPort
	pins PinMap

	// Previous level of the control line, for edge detection
	prevControl uint32

	acquisitions uint32
}

// NewSampler creates a sampler with the control line assumed low.
func NewSampler(port SignalPort, pins PinMap) *Sampler {
	return &Sampler{
		port: port,
		pins: pins,
	}
}

// Poll runs one iteration of the sampling loop. On a control line
// transition with the start condition asserted it reads one word, hands it
// to sink and pulses the strobe. It returns true if a sample was produced.
func (s *Sampler) Poll(sink SampleSink) bool {
	in := s.port.ReadInput()
	if (in^s.prevControl)&s.pins.Control == 0 {
		return false
	}
	s.prevControl = in & s.pins.Control

	// SCLK low before shift and read
	s.port.ClearOutputBits(s.pins.Clock)

	if s.port.ReadInput()&s.pins.Start != 0 {
		return false
	}

	sample := SignExtend24(s.shiftIn())
	s.acquisitions++
	sink.Push(sample)

	s.port.SetOutputBits(s.pins.Strobe)
	DelayCycles(StrobeCycles)
	s.port.ClearOutputBits(s.pins.Strobe)
	return true
}

// shiftIn clocks in one word MSB first.
func (s *Sampler) shiftIn() uint32 {
	var data uint32
	for i := 0; i < SampleBits; i++ {
		s.port.SetOutputBits(s.pins.Clock)
		DelayCycles(ClockHighCycles)

		data <<= 1
		if s.port.ReadInput()&s.pins.Data != 0 {
			data |= 1
		}

		s.port.ClearOutputBits(s.pins.Clock)
		DelayCycles(ClockLowCycles)
	}
	return data
}

// Acquisitions returns the number of words read since startup.
func (s *Sampler) Acquisitions() uint32 {
	return s.acquisitions
}
