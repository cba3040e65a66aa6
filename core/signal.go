package core

// SignalPort is the raw boundary to the co-processor's two signal registers.
// Inputs are read as one word; outputs are changed with read-modify-write
// set/clear operations so unrelated output lines keep their level.
type SignalPort interface {
	// ReadInput returns the current value of the input register
	ReadInput() uint32

	// SetOutputBits drives every line in mask high
	SetOutputBits(mask uint32)

	// ClearOutputBits drives every line in mask low
	ClearOutputBits(mask uint32)
}

// Input register lines
const (
	HostKickBit  uint32 = 1 << 31 // host-to-device interrupt flag
	DataReadyBit uint32 = 0x0004  // data-ready / clock-sync line
	DataOutBit   uint32 = 1 << 2  // converter serial data out
)

// Output register lines
const (
	SerialClockBit uint32 = 1 << 1
	StrobeBit      uint32 = 1 << 1 // trailing pulse after each sample
)

// PinMap assigns each logical line to a bit mask in the signal registers.
type PinMap struct {
	Kick    uint32 // input: host kick
	Control uint32 // input: edge-detected control line
	Start   uint32 // input: start condition, active low
	Data    uint32 // input: serial data from the converter
	Clock   uint32 // output: software serial clock
	Strobe  uint32 // output: acquisition-complete strobe
}

// DefaultPinMap is the register layout of pr1_pru1 on the BeagleBone Black.
// The converter's DOUT line doubles as data-ready, so Control, Start and
// Data all share input bit 2, and the strobe is the 25th clock pulse.
var DefaultPinMap = PinMap{
	Kick:    HostKickBit,
	Control: DataReadyBit,
	Start:   DataOutBit,
	Data:    DataOutBit,
	Clock:   SerialClockBit,
	Strobe:  StrobeBit,
}

// Outputs returns every output line in the map.
func (p PinMap) Outputs() uint32 {
	return p.Clock | p.Strobe
}
