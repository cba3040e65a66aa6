// Package rpmsg implements the shared-memory message transport between the
// co-processor and its host: a vring pair, the system event controller used
// to kick each side, rpmsg framing and name service announcements.
package rpmsg

import (
	"encoding/binary"
	"errors"
)

// Buffer layout
const (
	BufferSize    = 512 // one vring buffer, header included
	HeaderSize    = 16
	MaxPayload    = BufferSize - HeaderSize
	NameSize      = 32
	NSMessageSize = 2*NameSize + 8
	NumBuffers    = 16 // buffers per vring

	// NSAddr is the name service endpoint on the host
	NSAddr = 53
)

var (
	ErrNoBuffer       = errors.New("rpmsg: no buffer available")
	ErrBufSize        = errors.New("rpmsg: buffer too small")
	ErrInvalidHead    = errors.New("rpmsg: invalid message header")
	ErrNotInitialized = errors.New("rpmsg: virtqueue not initialized")
)

// Header precedes every payload in a vring buffer.
type Header struct {
	Src      uint32
	Dst      uint32
	Reserved uint32
	Len      uint16
	Flags    uint16
}

// Encode writes h into the first HeaderSize bytes of b.
func (h Header) Encode(b []byte) {
	binary.LittleEndian.PutUint32(b[0:], h.Src)
	binary.LittleEndian.PutUint32(b[4:], h.Dst)
	binary.LittleEndian.PutUint32(b[8:], h.Reserved)
	binary.LittleEndian.PutUint16(b[12:], h.Len)
	binary.LittleEndian.PutUint16(b[14:], h.Flags)
}

// DecodeHeader parses the header of vring buffer b and checks that Len
// fits in it.
func DecodeHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, ErrInvalidHead
	}
	h := Header{
		Src:      binary.LittleEndian.Uint32(b[0:]),
		Dst:      binary.LittleEndian.Uint32(b[4:]),
		Reserved: binary.LittleEndian.Uint32(b[8:]),
		Len:      binary.LittleEndian.Uint16(b[12:]),
		Flags:    binary.LittleEndian.Uint16(b[14:]),
	}
	if int(h.Len) > len(b)-HeaderSize {
		return Header{}, ErrInvalidHead
	}
	return h, nil
}

// NSMessage announces or withdraws a channel to the host's name service.
type NSMessage struct {
	Name  string
	Desc  string
	Addr  uint32
	Flags uint32
}

// Encode writes m into b, truncating name and description to NameSize-1
// bytes so both stay NUL terminated.
func (m NSMessage) Encode(b []byte) int {
	putName(b[0:NameSize], m.Name)
	putName(b[NameSize:2*NameSize], m.Desc)
	binary.LittleEndian.PutUint32(b[2*NameSize:], m.Addr)
	binary.LittleEndian.PutUint32(b[2*NameSize+4:], m.Flags)
	return NSMessageSize
}

// DecodeNSMessage parses a name service payload.
func DecodeNSMessage(b []byte) (NSMessage, error) {
	if len(b) < NSMessageSize {
		return NSMessage{}, ErrBufSize
	}
	return NSMessage{
		Name:  getName(b[0:NameSize]),
		Desc:  getName(b[NameSize : 2*NameSize]),
		Addr:  binary.LittleEndian.Uint32(b[2*NameSize:]),
		Flags: binary.LittleEndian.Uint32(b[2*NameSize+4:]),
	}, nil
}

func putName(dst []byte, s string) {
	n := copy(dst[:len(dst)-1], s)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

func getName(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
