//go:build rp2040 || rp2350

package main

import (
	"time"

	"tinygo.org/x/drivers/delay"
)

// coprocessorCycle is one execution cycle of the 200MHz PRU the calibration
// constants were measured on.
const coprocessorCycle = 5 * time.Nanosecond

// DelayCycles busy-waits for the wall time of cycles co-processor cycles.
func DelayCycles(cycles uint32) {
	delay.Sleep(time.Duration(cycles) * coprocessorCycle)
}
