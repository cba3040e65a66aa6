//go:build rp2040 || rp2350

package main

import (
	"pruadc/core"
	"pruadc/rpmsg"
)

// hostBridge is the core 0 end of the channel.
type hostBridge struct {
	host     *rpmsg.Host
	channels map[uint32]string
}

func newHostBridge(shm *rpmsg.Shared, addr uint32) *hostBridge {
	return &hostBridge{
		host:     rpmsg.NewHost(shm, addr),
		channels: make(map[uint32]string),
	}
}

// awaitChannels consumes name service messages until both channels exist.
func (b *hostBridge) awaitChannels() {
	for len(b.channels) < 2 {
		msg, err := b.host.Recv()
		if err != nil {
			continue
		}
		if ns, ok := msg.NS(); ok {
			b.announce(ns)
		}
	}
}

// announce applies a name service create or destroy.
func (b *hostBridge) announce(ns rpmsg.NSMessage) {
	switch ns.Flags {
	case core.ChannelCreate:
		b.channels[ns.Addr] = ns.Desc
	case core.ChannelDestroy:
		delete(b.channels, ns.Addr)
	}
}

// trigger sends payload to the host-to-device channel.
func (b *hostBridge) trigger(payload []byte) error {
	return b.host.SendTo(core.HostToDeviceChannel.Port, payload)
}

// forward writes every queued batch to w and returns how many were written.
func (b *hostBridge) forward(w func([]byte) (int, error)) uint32 {
	var n uint32
	for {
		msg, err := b.host.Recv()
		if err != nil {
			return n
		}
		if ns, ok := msg.NS(); ok {
			b.announce(ns)
			continue
		}
		if len(msg.Payload) != core.BatchPayloadSize {
			continue
		}
		if _, err := w(msg.Payload); err != nil {
			continue
		}
		n++
	}
}
