package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// EventID correlates a raw key event across responders and host redispatch.
type EventID string

// NewEventID mints a fresh correlation id.
func NewEventID() EventID {
	return EventID(uuid.NewString())
}

// KeyAction is the action reported by the host for a key event.
type KeyAction int

const (
	ActionDown KeyAction = iota
	ActionUp
	// ActionMultiple covers host actions other than down and up.
	// Responders do not process them.
	ActionMultiple
)

// String returns the action name.
func (a KeyAction) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionUp:
		return "up"
	case ActionMultiple:
		return "multiple"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// InputSource is the kind of device that produced a raw event.
type InputSource int

const (
	SourceKeyboard InputSource = iota
	SourceDpad
	SourceGamepad
	SourceJoystick
	SourceHdmi
	SourceOther
)

// String returns the source name.
func (s InputSource) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourceDpad:
		return "dpad"
	case SourceGamepad:
		return "gamepad"
	case SourceJoystick:
		return "joystick"
	case SourceHdmi:
		return "hdmi"
	default:
		return "other"
	}
}

// ParseInputSource converts a source name back to an InputSource.
// Unknown names map to SourceOther.
func ParseInputSource(name string) InputSource {
	switch name {
	case "", "keyboard":
		return SourceKeyboard
	case "dpad":
		return SourceDpad
	case "gamepad":
		return SourceGamepad
	case "joystick":
		return SourceJoystick
	case "hdmi":
		return SourceHdmi
	default:
		return SourceOther
	}
}

// Device returns the canonical device kind for this source.
func (s InputSource) Device() DeviceKind {
	switch s {
	case SourceDpad:
		return DeviceDirectionalPad
	case SourceGamepad:
		return DeviceGamepad
	case SourceJoystick:
		return DeviceJoystick
	case SourceHdmi:
		return DeviceHdmi
	default:
		return DeviceKeyboard
	}
}

// RawKeyEvent is a key event as reported by the host.
type RawKeyEvent struct {
	ID          EventID
	ScanCode    uint32 // 0 when the host has no hardware scan code
	KeyCode     uint32
	Action      KeyAction
	RepeatCount uint32
	MetaState   uint32 // modifier bitmask
	UnicodeChar uint32 // 0 = none, high bit flags a combining accent
	PlainChar   uint32 // character without modifiers applied, 0 = none
	EventTime   uint64 // milliseconds
	Source      InputSource

	// Host metadata forwarded on the legacy key event channel.
	DeviceID  int32
	ProductID int32
	Flags     uint32
}

// HasIdentity reports whether the event carries a scan code or key code.
func (e RawKeyEvent) HasIdentity() bool {
	return e.ScanCode != 0 || e.KeyCode != 0
}

// IsDown reports whether the host action is down.
func (e RawKeyEvent) IsDown() bool {
	return e.Action == ActionDown
}
