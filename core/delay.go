package core

// Calibration constants, in co-processor execution cycles (5ns at 200MHz).
// The clock-high hold is longer than the clock-low hold to meet the
// converter's data setup time; do not unify them.
const (
	ClockHighCycles = 2000
	ClockLowCycles  = 1000
	StrobeCycles    = 1000
)

// DelayFunc busy-waits for the given number of execution cycles.
type DelayFunc func(cycles uint32)

// delayCycles is a no-op until a target installs a real delay.
var delayCycles DelayFunc = func(cycles uint32) {}

// SetDelayFunc is called by target-specific code to register its delay loop.
func SetDelayFunc(d DelayFunc) {
	if d == nil {
		d = func(cycles uint32) {}
	}
	delayCycles = d
}

// DelayCycles spins for the given number of execution cycles.
func DelayCycles(cycles uint32) {
	delayCycles(cycles)
}
