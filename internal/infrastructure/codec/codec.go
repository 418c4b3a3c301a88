// Package codec encodes canonical key events for the flutter/keydata channel.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/bnema/droidkeys/internal/domain/entity"
	"github.com/bnema/droidkeys/internal/domain/keymap"
)

// HeaderSize is the fixed part of a packet: seven little-endian 64-bit
// fields ahead of the character bytes.
const HeaderSize = 7 * 8

var (
	// ErrShortPacket is returned when a packet is smaller than its header.
	ErrShortPacket = errors.New("key data packet too short")
	// ErrCharSizeMismatch is returned when the declared character length
	// does not match the bytes that follow the header.
	ErrCharSizeMismatch = errors.New("key data character size mismatch")
)

// EncodeKeyData serializes d. Field order: character size, timestamp,
// type, physical, logical, synthesized, device, then the UTF-8 character.
func EncodeKeyData(d entity.KeyData) []byte {
	char := []byte(d.Character)
	buf := make([]byte, HeaderSize+len(char))
	offset := 0

	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[offset:], v)
		offset += 8
	}

	put(uint64(len(char)))
	put(d.Timestamp)
	put(uint64(d.Type))
	put(uint64(d.Physical))
	put(uint64(d.Logical))
	if d.Synthesized {
		put(1)
	} else {
		put(0)
	}
	put(uint64(d.Device))

	copy(buf[offset:], char)
	return buf
}

// DecodeKeyData parses a packet produced by EncodeKeyData.
func DecodeKeyData(data []byte) (entity.KeyData, error) {
	if len(data) < HeaderSize {
		return entity.KeyData{}, fmt.Errorf("%w: %d bytes", ErrShortPacket, len(data))
	}

	offset := 0
	next := func() uint64 {
		v := binary.LittleEndian.Uint64(data[offset:])
		offset += 8
		return v
	}

	charSize := next()
	if charSize != uint64(len(data)-HeaderSize) {
		return entity.KeyData{}, fmt.Errorf("%w: declared %d, have %d",
			ErrCharSizeMismatch, charSize, len(data)-HeaderSize)
	}

	d := entity.KeyData{
		Timestamp:   next(),
		Type:        entity.KeyEventType(next()),
		Physical:    keymap.PhysicalKey(next()),
		Logical:     keymap.LogicalKey(next()),
		Synthesized: next() != 0,
		Device:      entity.DeviceKind(next()),
	}
	d.Character = string(data[HeaderSize:])
	return d, nil
}
