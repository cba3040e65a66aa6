//go:build rp2040 || rp2350

// RP2040 build: core 1 runs the sampling firmware as the dedicated real-time
// co-processor, core 0 plays the host and bridges batches to USB CDC.
//
// Wiring: converter DOUT -> GP2, converter SCK -> GP1.
package main

import (
	"machine"
	"time"

	"pruadc/core"
	"pruadc/rpmsg"
)

// hostAddr is the endpoint core 0 sends from
const hostAddr = 1024

var (
	shm    *rpmsg.Shared
	bridge *hostBridge

	// Debug counters
	batchesForwarded uint32
	triggersSent     uint32
)

func main() {
	// Disable watchdog on boot to clear any previous state
	err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})
	if err != nil {
		return
	}

	InitUSB()
	InitDebugUART()
	core.SetDebugWriter(DebugPrintln)
	core.SetDebugEnabled(true)

	shm = rpmsg.NewShared()
	bridge = newHostBridge(shm, hostAddr)

	InitPins()
	core.SetDelayFunc(DelayCycles)

	machine.Core1.Start(coprocessorMain)

	// Host side: the driver is ready as soon as core 1 is running
	bridge.host.SetDriverOK()
	bridge.awaitChannels()
	DebugPrintln("host: channels up")

	for {
		// A byte from the USB host is the trigger, as a write to
		// /dev/rpmsg_pru31 would be
		if USBAvailable() > 0 {
			b, err := USBRead()
			if err == nil && bridge.trigger([]byte{b}) == nil {
				triggersSent++
			}
		}

		if bridge.host.Kicked() {
			batchesForwarded += bridge.forward(USBWriteBytes)
		}

		handleDebugCommand()

		time.Sleep(10 * time.Microsecond)
	}
}

// coprocessorMain is the firmware loop on core 1. It never returns.
func coprocessorMain() {
	tr := rpmsg.NewTransport(shm)
	fw := core.NewFirmware(core.Config{
		Port:      newSIOPort(&shm.Intc),
		Transport: tr,
		Status:    tr.StatusReader(),
		Events:    tr.Events(),
		Pins:      core.DefaultPinMap,
	})
	fw.Start()
	// UART writes would stretch the software clock
	core.SetDebugEnabled(false)
	for {
		fw.Step()
	}
}
