package entity

import (
	"fmt"

	"github.com/bnema/droidkeys/internal/domain/keymap"
)

// KeyEventType is the type of a canonical key event.
type KeyEventType int64

const (
	KeyDown   KeyEventType = 0
	KeyUp     KeyEventType = 1
	KeyRepeat KeyEventType = 2
)

// String returns the type name.
func (t KeyEventType) String() string {
	switch t {
	case KeyDown:
		return "down"
	case KeyUp:
		return "up"
	case KeyRepeat:
		return "repeat"
	default:
		return fmt.Sprintf("type(%d)", int64(t))
	}
}

// DeviceKind is the canonical device type sent to the engine.
type DeviceKind int64

const (
	DeviceKeyboard       DeviceKind = 0
	DeviceDirectionalPad DeviceKind = 1
	DeviceGamepad        DeviceKind = 2
	DeviceJoystick       DeviceKind = 3
	DeviceHdmi           DeviceKind = 4
)

// KeyData is the canonical key event delivered to the engine.
type KeyData struct {
	Timestamp   uint64 // milliseconds
	Type        KeyEventType
	Physical    keymap.PhysicalKey
	Logical     keymap.LogicalKey
	Character   string // empty when the event produces no character
	Synthesized bool
	Device      DeviceKind
}

// IsEmpty reports whether this is the placeholder event sent for raw
// events that produced no key data.
func (d KeyData) IsEmpty() bool {
	return d.Physical == 0 && d.Logical == 0
}

// String renders the event for logs and CLI output.
func (d KeyData) String() string {
	s := fmt.Sprintf("%s %s/%s", d.Type, keymap.PhysicalName(d.Physical), keymap.LogicalName(d.Logical))
	if d.Character != "" {
		s += fmt.Sprintf(" %q", d.Character)
	}
	if d.Synthesized {
		s += " (synthesized)"
	}
	return s
}
