package textinput

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/droidkeys/internal/domain/entity"
	"github.com/bnema/droidkeys/internal/domain/keymap"
)

func press(char uint32, keyCode uint32) entity.RawKeyEvent {
	return entity.RawKeyEvent{Action: entity.ActionDown, KeyCode: keyCode, UnicodeChar: char}
}

func TestTextField_ConsumesWhenFocused(t *testing.T) {
	ctx := context.Background()
	f := NewTextField(true)

	assert.True(t, f.ConsumeIfTextField(ctx, press('h', keymap.KeycodeA+7)))
	assert.True(t, f.ConsumeIfTextField(ctx, press('i', keymap.KeycodeA+8)))
	assert.True(t, f.ConsumeIfTextField(ctx, press('!', 0)))
	assert.True(t, f.ConsumeIfTextField(ctx, press(0, keymap.KeycodeDel)))

	assert.Equal(t, "hi", f.Text())
}

func TestTextField_Ignores(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		focused bool
		ev      entity.RawKeyEvent
	}{
		{"unfocused", false, press('a', keymap.KeycodeA)},
		{"release", true, entity.RawKeyEvent{Action: entity.ActionUp, UnicodeChar: 'a'}},
		{"no character", true, press(0, keymap.KeycodeF1)},
		{"dead key", true, press(entity.CombiningAccent|'`', keymap.KeycodeGrave)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewTextField(tt.focused)
			assert.False(t, f.ConsumeIfTextField(ctx, tt.ev))
			assert.Empty(t, f.Text())
		})
	}
}

func TestTextField_Focus(t *testing.T) {
	f := NewTextField(false)
	f.SetFocused(true)
	assert.True(t, f.Focused())
}
