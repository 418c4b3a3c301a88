// Package trace loads recorded host key event sequences from YAML files.
package trace

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/bnema/droidkeys/internal/domain/entity"
	"github.com/bnema/droidkeys/internal/domain/keymap"
)

var (
	// ErrEmptyTrace is returned for a trace without events.
	ErrEmptyTrace = errors.New("trace has no events")
	// ErrInvalidEvent is returned for an event that cannot be converted.
	ErrInvalidEvent = errors.New("invalid trace event")
)

// modifierBits maps modifier names usable in traces to meta state bits.
var modifierBits = map[string]uint32{
	"shift":       keymap.MetaShiftOn,
	"shift_left":  keymap.MetaShiftOn | keymap.MetaShiftLeftOn,
	"shift_right": keymap.MetaShiftOn | keymap.MetaShiftRightOn,
	"ctrl":        keymap.MetaCtrlOn,
	"ctrl_left":   keymap.MetaCtrlOn | keymap.MetaCtrlLeftOn,
	"ctrl_right":  keymap.MetaCtrlOn | keymap.MetaCtrlRightOn,
	"alt":         keymap.MetaAltOn,
	"alt_left":    keymap.MetaAltOn | keymap.MetaAltLeftOn,
	"alt_right":   keymap.MetaAltOn | keymap.MetaAltRightOn,
	"meta":        keymap.MetaMetaOn,
	"meta_left":   keymap.MetaMetaOn | keymap.MetaMetaLeftOn,
	"meta_right":  keymap.MetaMetaOn | keymap.MetaMetaRightOn,
	"caps_lock":   keymap.MetaCapsLockOn,
	"num_lock":    keymap.MetaNumLockOn,
}

// Trace is a named sequence of host events.
type Trace struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Events      []Event `yaml:"events"`
}

// Event is one host key event as written in a trace file.
type Event struct {
	ID        string   `yaml:"id"`
	Action    string   `yaml:"action"`
	Scan      uint32   `yaml:"scan"`
	Key       uint32   `yaml:"key"`
	Repeat    uint32   `yaml:"repeat"`
	Meta      uint32   `yaml:"meta"`
	Modifiers []string `yaml:"modifiers"`
	Char      string   `yaml:"char"`
	Dead      bool     `yaml:"dead"`
	Time      uint64   `yaml:"time"`
	Source    string   `yaml:"source"`
	Device    int32    `yaml:"device"`
}

// Load reads and parses a trace file.
func Load(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trace %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse trace %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a YAML trace.
func Parse(data []byte) (*Trace, error) {
	var t Trace
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	if len(t.Events) == 0 {
		return nil, ErrEmptyTrace
	}
	return &t, nil
}

// RawEvents converts every event of the trace.
func (t *Trace) RawEvents() ([]entity.RawKeyEvent, error) {
	out := make([]entity.RawKeyEvent, 0, len(t.Events))
	for i, e := range t.Events {
		ev, err := e.Raw()
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		out = append(out, ev)
	}
	return out, nil
}

// Raw converts e into a host event.
func (e Event) Raw() (entity.RawKeyEvent, error) {
	var action entity.KeyAction
	switch strings.ToLower(e.Action) {
	case "down", "":
		action = entity.ActionDown
	case "up":
		action = entity.ActionUp
	case "multiple":
		action = entity.ActionMultiple
	default:
		return entity.RawKeyEvent{}, fmt.Errorf("%w: action %q", ErrInvalidEvent, e.Action)
	}

	meta := e.Meta
	for _, name := range e.Modifiers {
		bits, ok := modifierBits[strings.ToLower(name)]
		if !ok {
			return entity.RawKeyEvent{}, fmt.Errorf("%w: modifier %q", ErrInvalidEvent, name)
		}
		meta |= bits
	}

	var char uint32
	if e.Char != "" {
		r, size := utf8.DecodeRuneInString(e.Char)
		if r == utf8.RuneError || size != len(e.Char) {
			return entity.RawKeyEvent{}, fmt.Errorf("%w: char %q must be one character", ErrInvalidEvent, e.Char)
		}
		char = uint32(r)
		if e.Dead {
			char |= entity.CombiningAccent
		}
	}

	return entity.RawKeyEvent{
		ID:          entity.EventID(e.ID),
		ScanCode:    e.Scan,
		KeyCode:     e.Key,
		Action:      action,
		RepeatCount: e.Repeat,
		MetaState:   meta,
		UnicodeChar: char,
		EventTime:   e.Time,
		Source:      entity.ParseInputSource(e.Source),
		DeviceID:    e.Device,
	}, nil
}
