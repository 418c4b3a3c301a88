// Package textinput provides the focused text field that gets a chance at
// key events no responder handled.
package textinput

import (
	"context"
	"sync"

	"github.com/bnema/droidkeys/internal/application/port"
	"github.com/bnema/droidkeys/internal/domain/entity"
	"github.com/bnema/droidkeys/internal/domain/keymap"
	"github.com/bnema/droidkeys/internal/logging"
)

// TextField is an editable field that consumes printable key presses and
// backspace while focused.
// It implements port.TextInputConsumer.
type TextField struct {
	text    []rune
	focused bool
	mu      sync.RWMutex
}

// Compile-time interface check.
var _ port.TextInputConsumer = (*TextField)(nil)

// NewTextField creates an empty field.
func NewTextField(focused bool) *TextField {
	return &TextField{focused: focused}
}

// SetFocused gives or removes focus.
func (f *TextField) SetFocused(focused bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.focused = focused
}

// Focused reports whether the field has focus.
func (f *TextField) Focused() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.focused
}

// Text returns the field contents.
func (f *TextField) Text() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return string(f.text)
}

// ConsumeIfTextField edits the field for key downs it understands.
// Releases, dead keys and keys without a character are left alone.
func (f *TextField) ConsumeIfTextField(ctx context.Context, ev entity.RawKeyEvent) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.focused || ev.Action != entity.ActionDown {
		return false
	}

	switch {
	case ev.KeyCode == keymap.KeycodeDel:
		if len(f.text) > 0 {
			f.text = f.text[:len(f.text)-1]
		}
	case ev.UnicodeChar != 0 && !entity.IsDeadKey(ev.UnicodeChar):
		f.text = append(f.text, rune(ev.UnicodeChar))
	default:
		return false
	}

	logging.FromContext(ctx).Debug().Str("text", string(f.text)).Msg("text field consumed key")
	return true
}
