//go:build rp2040 || rp2350

package main

import (
	"machine"

	"pruadc/core"
)

var (
	debugUART    *machine.UART
	debugEnabled bool
)

// InitDebugUART initializes UART1 on GPIO4 (TX) and GPIO5 (RX) for debugging.
// UART0's default pins collide with the converter clock.
func InitDebugUART() {
	debugUART = machine.UART1

	err := debugUART.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GPIO4,
		RX:       machine.GPIO5,
	})
	if err != nil {
		debugEnabled = false
		return
	}

	debugEnabled = true
	DebugPrintln("=== pruadc debug UART ===")
}

// DebugPrintln writes a string to the debug UART with newline
func DebugPrintln(s string) {
	if !debugEnabled || debugUART == nil {
		return
	}
	debugUART.Write([]byte(s))
	debugUART.Write([]byte("\r\n"))
}

// Debug UART command bytes
const (
	cmdDumpEvents  = 'e'
	cmdClearEvents = 'c'
)

// handleDebugCommand serves one pending command byte from the debug UART.
func handleDebugCommand() {
	if debugUART == nil || debugUART.Buffered() == 0 {
		return
	}
	b, err := debugUART.ReadByte()
	if err != nil {
		return
	}
	switch b {
	case cmdDumpEvents:
		core.DumpEventRing()
	case cmdClearEvents:
		core.ClearEventRing()
		DebugPrintln("events cleared")
	}
}
