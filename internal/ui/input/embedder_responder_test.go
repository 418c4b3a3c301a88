package input

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/droidkeys/internal/domain/entity"
	"github.com/bnema/droidkeys/internal/domain/keymap"
	"github.com/bnema/droidkeys/internal/infrastructure/messenger"
)

const (
	scanKeyA = 30
	scanKeyB = 48
	keycodeB = keymap.KeycodeA + 1
)

var (
	physicalKeyA = keymap.PhysicalKeyFor(scanKeyA, keymap.KeycodeA)
	logicalKeyA  = keymap.LogicalKeyFor(keymap.KeycodeA)
	logicalKeyB  = keymap.LogicalKeyFor(keycodeB)
)

func TestEmbedderResponder_FreshDown(t *testing.T) {
	f := newFixture(t, messenger.ReplySync)
	ev := keyEvent(entity.ActionDown, scanKeyA, keymap.KeycodeA)
	ev.UnicodeChar = 'a'

	o := f.send(t, ev)

	events := f.take()
	require.Len(t, events, 1)
	assert.Equal(t, entity.KeyData{
		Timestamp: 100,
		Type:      entity.KeyDown,
		Physical:  physicalKeyA,
		Logical:   logicalKeyA,
		Character: "a",
		Device:    entity.DeviceKeyboard,
	}, events[0])
	assert.Equal(t, map[keymap.PhysicalKey]keymap.LogicalKey{physicalKeyA: logicalKeyA}, f.responder.PressedKeys())
	assert.Equal(t, 1, o.calls)
	assert.False(t, o.handled)
}

func TestEmbedderResponder_StuckDownIsHealed(t *testing.T) {
	f := newFixture(t, messenger.ReplySync)
	f.send(t, keyEvent(entity.ActionDown, scanKeyA, keymap.KeycodeA))
	f.take()

	// Same physical key, different layout result, no release in between.
	f.send(t, keyEvent(entity.ActionDown, scanKeyA, keycodeB))

	events := f.take()
	require.Len(t, events, 2)
	assert.Equal(t, entity.KeyUp, events[0].Type)
	assert.True(t, events[0].Synthesized)
	assert.Equal(t, logicalKeyA, events[0].Logical)
	assert.Equal(t, physicalKeyA, events[0].Physical)
	assert.Equal(t, entity.KeyDown, events[1].Type)
	assert.False(t, events[1].Synthesized)
	assert.Equal(t, logicalKeyB, events[1].Logical)
	assert.Equal(t, map[keymap.PhysicalKey]keymap.LogicalKey{physicalKeyA: logicalKeyB}, f.responder.PressedKeys())
}

func TestEmbedderResponder_RepeatKeepsState(t *testing.T) {
	f := newFixture(t, messenger.ReplySync)
	f.send(t, keyEvent(entity.ActionDown, scanKeyA, keymap.KeycodeA))
	f.take()

	ev := keyEvent(entity.ActionDown, scanKeyA, keymap.KeycodeA)
	ev.RepeatCount = 1
	ev.UnicodeChar = 'a'
	f.send(t, ev)

	events := f.take()
	require.Len(t, events, 1)
	assert.Equal(t, entity.KeyRepeat, events[0].Type)
	assert.Equal(t, "a", events[0].Character)
	assert.Len(t, f.responder.PressedKeys(), 1)
}

func TestEmbedderResponder_RepeatWithoutDownIsADown(t *testing.T) {
	f := newFixture(t, messenger.ReplySync)
	ev := keyEvent(entity.ActionDown, scanKeyA, keymap.KeycodeA)
	ev.RepeatCount = 3

	f.send(t, ev)

	events := f.take()
	require.Len(t, events, 1)
	assert.Equal(t, entity.KeyDown, events[0].Type)
}

func TestEmbedderResponder_UpOfUntrackedKeyIsDropped(t *testing.T) {
	f := newFixture(t, messenger.ReplySync)

	o := f.send(t, keyEvent(entity.ActionUp, scanKeyA, keymap.KeycodeA))

	assert.Empty(t, f.take())
	assert.Equal(t, 1, o.calls)
	assert.True(t, o.handled)
	assert.Empty(t, f.responder.PressedKeys())
}

func TestEmbedderResponder_EventWithoutIdentity(t *testing.T) {
	f := newFixture(t, messenger.ReplyDeferred)

	o := f.send(t, keyEvent(entity.ActionDown, 0, 0))

	// Answered before the loop ever runs.
	assert.Equal(t, 1, o.calls)
	assert.True(t, o.handled)
	events := f.take()
	require.Len(t, events, 1)
	assert.Equal(t, entity.KeyData{Type: entity.KeyDown, Synthesized: true}, events[0])
	f.loop.RunPending()
	assert.Equal(t, 1, o.calls)
}

func TestEmbedderResponder_OtherActionsGetThePlaceholder(t *testing.T) {
	f := newFixture(t, messenger.ReplySync)

	o := f.send(t, keyEvent(entity.ActionMultiple, scanKeyA, keymap.KeycodeA))

	events := f.take()
	require.Len(t, events, 1)
	assert.True(t, events[0].IsEmpty())
	assert.True(t, o.handled)
	assert.Empty(t, f.responder.PressedKeys())
}

func TestEmbedderResponder_Replies(t *testing.T) {
	tests := []struct {
		name  string
		reply []byte
		want  bool
	}{
		{"handled", []byte{1}, true},
		{"not handled", []byte{0}, false},
		{"empty", []byte{}, false},
		{"null", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, messenger.ReplySync)
			f.engine.reply = tt.reply

			o := f.send(t, keyEvent(entity.ActionDown, scanKeyA, keymap.KeycodeA))

			assert.Equal(t, 1, o.calls)
			assert.Equal(t, tt.want, o.handled)
		})
	}
}

func TestEmbedderResponder_DeferredReplyWaitsForLoop(t *testing.T) {
	f := newFixture(t, messenger.ReplyDeferred)
	f.engine.reply = []byte{1}

	o := f.send(t, keyEvent(entity.ActionDown, scanKeyA, keymap.KeycodeA))
	assert.Zero(t, o.calls)

	f.loop.RunPending()
	assert.Equal(t, 1, o.calls)
	assert.True(t, o.handled)
}

func TestEmbedderResponder_ShiftDriftAroundKey(t *testing.T) {
	f := newFixture(t, messenger.ReplySync)

	down := keyEvent(entity.ActionDown, scanKeyA, keymap.KeycodeA)
	down.MetaState = keymap.MetaShiftOn
	f.send(t, down)

	events := f.take()
	require.Len(t, events, 2)
	assert.Equal(t, entity.KeyData{
		Timestamp:   100,
		Type:        entity.KeyDown,
		Physical:    keymap.PhysicalShiftLeft,
		Logical:     keymap.LogicalShiftLeft,
		Synthesized: true,
	}, events[0])
	assert.Equal(t, logicalKeyA, events[1].Logical)

	f.send(t, keyEvent(entity.ActionUp, scanKeyA, keymap.KeycodeA))

	events = f.take()
	require.Len(t, events, 2)
	assert.Equal(t, entity.KeyUp, events[0].Type)
	assert.Equal(t, keymap.PhysicalShiftLeft, events[0].Physical)
	assert.True(t, events[0].Synthesized)
	assert.Equal(t, entity.KeyUp, events[1].Type)
	assert.Equal(t, physicalKeyA, events[1].Physical)
	assert.Empty(t, f.responder.PressedKeys())
}

func TestEmbedderResponder_ShiftDownWithBitClearIsReleasedAfter(t *testing.T) {
	f := newFixture(t, messenger.ReplySync)

	f.send(t, keyEvent(entity.ActionDown, keymap.ScanCodeShiftLeft, keymap.KeycodeShiftLeft))

	events := f.take()
	require.Len(t, events, 2)
	assert.Equal(t, entity.KeyDown, events[0].Type)
	assert.False(t, events[0].Synthesized)
	assert.Equal(t, entity.KeyUp, events[1].Type)
	assert.True(t, events[1].Synthesized)
	assert.Equal(t, keymap.PhysicalShiftLeft, events[1].Physical)
	assert.Empty(t, f.responder.PressedKeys())
}

func TestEmbedderResponder_ShiftDownWithBitSetIsNotDuplicated(t *testing.T) {
	f := newFixture(t, messenger.ReplySync)
	ev := keyEvent(entity.ActionDown, keymap.ScanCodeShiftLeft, keymap.KeycodeShiftLeft)
	ev.MetaState = keymap.MetaShiftOn | keymap.MetaShiftLeftOn

	f.send(t, ev)

	events := f.take()
	require.Len(t, events, 1)
	assert.False(t, events[0].Synthesized)
	assert.Len(t, f.responder.PressedKeys(), 1)
}

func TestEmbedderResponder_ShiftRepeatWithoutScanCodeReleasesTrackedKey(t *testing.T) {
	f := newFixture(t, messenger.ReplySync)
	physical := keymap.PhysicalKeyFor(0, keymap.KeycodeShiftLeft)

	down := keyEvent(entity.ActionDown, 0, keymap.KeycodeShiftLeft)
	down.MetaState = keymap.MetaShiftOn | keymap.MetaShiftLeftOn
	f.send(t, down)
	require.Len(t, f.take(), 1)
	require.Equal(t, map[keymap.PhysicalKey]keymap.LogicalKey{physical: keymap.LogicalShiftLeft}, f.responder.PressedKeys())

	repeat := keyEvent(entity.ActionDown, 0, keymap.KeycodeShiftLeft)
	repeat.RepeatCount = 1
	require.NotPanics(t, func() { f.send(t, repeat) })

	events := f.take()
	require.Len(t, events, 2)
	assert.Equal(t, entity.KeyRepeat, events[0].Type)
	assert.False(t, events[0].Synthesized)
	assert.Equal(t, physical, events[0].Physical)
	assert.Equal(t, entity.KeyUp, events[1].Type)
	assert.True(t, events[1].Synthesized)
	assert.Equal(t, physical, events[1].Physical)
	assert.Equal(t, keymap.LogicalShiftLeft, events[1].Logical)
	assert.Empty(t, f.responder.PressedKeys())
}

func TestEmbedderResponder_CapsLockDrift(t *testing.T) {
	f := newFixture(t, messenger.ReplySync)
	ev := keyEvent(entity.ActionDown, scanKeyA, keymap.KeycodeA)
	ev.MetaState = keymap.MetaCapsLockOn

	f.send(t, ev)

	events := f.take()
	require.Len(t, events, 3)
	assert.Equal(t, entity.KeyDown, events[0].Type)
	assert.Equal(t, keymap.LogicalCapsLock, events[0].Logical)
	assert.Equal(t, entity.KeyUp, events[1].Type)
	assert.Equal(t, keymap.LogicalCapsLock, events[1].Logical)
	assert.Equal(t, logicalKeyA, events[2].Logical)

	// The goal is now on: the same bitmask needs no more correction.
	ev.RepeatCount = 1
	f.send(t, ev)
	events = f.take()
	require.Len(t, events, 1)
	assert.Equal(t, entity.KeyRepeat, events[0].Type)
}

func TestEmbedderResponder_CapsLockPressTogglesWithoutSynthesis(t *testing.T) {
	f := newFixture(t, messenger.ReplySync)

	f.send(t, keyEvent(entity.ActionDown, keymap.ScanCodeCapsLock, keymap.KeycodeCapsLock))
	f.send(t, keyEvent(entity.ActionUp, keymap.ScanCodeCapsLock, keymap.KeycodeCapsLock))
	require.Len(t, f.take(), 2)

	ev := keyEvent(entity.ActionDown, scanKeyA, keymap.KeycodeA)
	ev.MetaState = keymap.MetaCapsLockOn
	f.send(t, ev)

	events := f.take()
	require.Len(t, events, 1)
	assert.False(t, events[0].Synthesized)
}

func TestEmbedderResponder_DeadKeyCombines(t *testing.T) {
	f := newFixture(t, messenger.ReplySync)

	accent := keyEvent(entity.ActionDown, scanKeyA, keymap.KeycodeA)
	accent.UnicodeChar = entity.CombiningAccent | '`'
	f.send(t, accent)
	f.send(t, keyEvent(entity.ActionUp, scanKeyA, keymap.KeycodeA))

	base := keyEvent(entity.ActionDown, scanKeyA, keymap.KeycodeA)
	base.UnicodeChar = 'a'
	f.send(t, base)

	events := f.take()
	require.Len(t, events, 3)
	assert.Equal(t, "`", events[0].Character)
	assert.Empty(t, events[1].Character)
	assert.Equal(t, "à", events[2].Character)
}

func TestEmbedderResponder_DeviceFromSource(t *testing.T) {
	f := newFixture(t, messenger.ReplySync)
	ev := keyEvent(entity.ActionDown, scanKeyA, keymap.KeycodeA)
	ev.Source = entity.SourceGamepad

	f.send(t, ev)

	events := f.take()
	require.Len(t, events, 1)
	assert.Equal(t, entity.DeviceGamepad, events[0].Device)
}

func TestEmbedderResponder_PressingStateFollowsLastEvent(t *testing.T) {
	f := newFixture(t, messenger.ReplySync)
	keys := []struct {
		scan, code uint32
	}{
		{scanKeyA, keymap.KeycodeA},
		{scanKeyB, keycodeB},
		{0, keymap.KeycodeZ},
	}
	want := map[keymap.PhysicalKey]keymap.LogicalKey{}
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 200; i++ {
		k := keys[rng.IntN(len(keys))]
		physical := keymap.PhysicalKeyFor(k.scan, k.code)
		action := entity.ActionUp
		if rng.IntN(2) == 0 {
			action = entity.ActionDown
		}

		o := f.send(t, keyEvent(action, k.scan, k.code))
		require.Equal(t, 1, o.calls)

		if action == entity.ActionDown {
			want[physical] = keymap.LogicalKeyFor(k.code)
		} else {
			delete(want, physical)
		}
		require.Equal(t, want, f.responder.PressedKeys(), "step %d", i)
	}
}
