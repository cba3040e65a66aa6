//go:build rp2040 || rp2350

package main

import (
	"device/rp"
	"machine"

	"pruadc/core"
	"pruadc/rpmsg"
)

// Converter pins; their GPIO numbers match the bits in core.DefaultPinMap
const (
	pinDataOut = machine.GPIO2
	pinClock   = machine.GPIO1
)

// InitPins configures the converter lines.
func InitPins() {
	pinDataOut.Configure(machine.PinConfig{Mode: machine.PinInput})
	pinClock.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pinClock.Low()
}

// sioPort backs core.SignalPort with the single-cycle IO block. The kick
// line is not a GPIO; it mirrors the pending from-host event.
type sioPort struct {
	intc *rpmsg.Intc
}

func newSIOPort(intc *rpmsg.Intc) *sioPort {
	return &sioPort{intc: intc}
}

func (p *sioPort) ReadInput() uint32 {
	in := rp.SIO.GPIO_IN.Get() &^ core.HostKickBit
	if p.intc.Pending(core.FromHostEvent) {
		in |= core.HostKickBit
	}
	return in
}

func (p *sioPort) SetOutputBits(mask uint32) {
	rp.SIO.GPIO_OUT_SET.Set(mask &^ core.HostKickBit)
}

func (p *sioPort) ClearOutputBits(mask uint32) {
	rp.SIO.GPIO_OUT_CLR.Set(mask &^ core.HostKickBit)
}
