package keystate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/droidkeys/internal/domain/entity"
	"github.com/bnema/droidkeys/internal/domain/keymap"
)

const (
	physicalKeyA keymap.PhysicalKey = 0x00070004
	logicalKeyA  keymap.LogicalKey  = 0x61
)

type recorder struct {
	events []entity.KeyData
}

func (r *recorder) emit(d entity.KeyData) {
	r.events = append(r.events, d)
}

func newFixture(t *testing.T) (*Tracker, *Synchronizer, *recorder, keymap.Map) {
	t.Helper()
	m := keymap.Default()
	tr := NewTracker(m.TogglingGoals())
	rec := &recorder{}
	return tr, NewSynchronizer(tr, rec.emit), rec, m
}

func shiftGroup(t *testing.T, m keymap.Map) keymap.PressingGroup {
	t.Helper()
	for _, g := range m.PressingGroups() {
		if g.Name == "Shift" {
			return g
		}
	}
	t.Fatal("shift group missing")
	return keymap.PressingGroup{}
}

func capsGoal(t *testing.T, m keymap.Map) keymap.TogglingGoal {
	t.Helper()
	goals := m.TogglingGoals()
	require.Len(t, goals, 1)
	return goals[0]
}

func keyADown() Trigger {
	return Trigger{Physical: physicalKeyA, Logical: logicalKeyA, Type: entity.KeyDown, Timestamp: 10}
}

func TestSynchronizePressing_AgreementEmitsNothing(t *testing.T) {
	tests := []struct {
		name        string
		pressed     []keymap.KeyPair
		truePressed bool
	}{
		{"nothing pressed, bit clear", nil, false},
		{"left pressed, bit set", []keymap.KeyPair{{Physical: keymap.PhysicalShiftLeft, Logical: keymap.LogicalShiftLeft}}, true},
		{"right pressed, bit set", []keymap.KeyPair{{Physical: keymap.PhysicalShiftRight, Logical: keymap.LogicalShiftRight}}, true},
		{
			"both pressed, bit set",
			[]keymap.KeyPair{
				{Physical: keymap.PhysicalShiftLeft, Logical: keymap.LogicalShiftLeft},
				{Physical: keymap.PhysicalShiftRight, Logical: keymap.LogicalShiftRight},
			},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, s, rec, m := newFixture(t)
			for _, p := range tt.pressed {
				tr.Press(p.Physical, p.Logical)
			}

			deferred := s.SynchronizePressing(shiftGroup(t, m), tt.truePressed, keyADown())

			assert.Empty(t, deferred)
			assert.Empty(t, rec.events)
			assert.Equal(t, len(tt.pressed), len(tr.pressing))
		})
	}
}

func TestSynchronizePressing_MissingPressSynthesizesFirstKey(t *testing.T) {
	tr, s, rec, m := newFixture(t)

	deferred := s.SynchronizePressing(shiftGroup(t, m), true, keyADown())

	assert.Empty(t, deferred)
	require.Len(t, rec.events, 1)
	got := rec.events[0]
	assert.Equal(t, entity.KeyDown, got.Type)
	assert.Equal(t, keymap.PhysicalShiftLeft, got.Physical)
	assert.Equal(t, keymap.LogicalShiftLeft, got.Logical)
	assert.True(t, got.Synthesized)
	assert.Empty(t, got.Character)
	assert.Equal(t, uint64(10), got.Timestamp)
	assert.True(t, tr.IsPressed(keymap.PhysicalShiftLeft))
	assert.False(t, tr.IsPressed(keymap.PhysicalShiftRight))
}

func TestSynchronizePressing_StalePressesAreReleased(t *testing.T) {
	tr, s, rec, m := newFixture(t)
	tr.Press(keymap.PhysicalShiftLeft, keymap.LogicalShiftLeft)
	tr.Press(keymap.PhysicalShiftRight, keymap.LogicalShiftRight)

	deferred := s.SynchronizePressing(shiftGroup(t, m), false, keyADown())

	assert.Empty(t, deferred)
	require.Len(t, rec.events, 2)
	assert.Equal(t, entity.KeyUp, rec.events[0].Type)
	assert.Equal(t, keymap.PhysicalShiftLeft, rec.events[0].Physical)
	assert.Equal(t, entity.KeyUp, rec.events[1].Type)
	assert.Equal(t, keymap.PhysicalShiftRight, rec.events[1].Physical)
	assert.Zero(t, len(tr.pressing))
}

func TestSynchronizePressing_DownOfGroupKeyLeavesTransitionToTrigger(t *testing.T) {
	tr, s, rec, m := newFixture(t)
	trig := Trigger{
		Physical:  keymap.PhysicalShiftLeft,
		Logical:   keymap.LogicalShiftLeft,
		Type:      entity.KeyDown,
		Timestamp: 5,
	}

	deferred := s.SynchronizePressing(shiftGroup(t, m), true, trig)

	assert.Empty(t, rec.events, "the trigger supplies the down itself")
	assert.Empty(t, deferred)
	assert.Zero(t, len(tr.pressing))
}

func TestSynchronizePressing_DownOfGroupKeyAlreadyTrackedIsReleasedFirst(t *testing.T) {
	tr, s, rec, m := newFixture(t)
	tr.Press(keymap.PhysicalShiftLeft, keymap.LogicalShiftLeft)
	trig := Trigger{Physical: keymap.PhysicalShiftLeft, Logical: keymap.LogicalShiftLeft, Type: entity.KeyDown}

	s.SynchronizePressing(shiftGroup(t, m), true, trig)

	require.Len(t, rec.events, 1)
	assert.Equal(t, entity.KeyUp, rec.events[0].Type)
	assert.False(t, tr.IsPressed(keymap.PhysicalShiftLeft))
}

func TestSynchronizePressing_DownWithBitClearDefersRelease(t *testing.T) {
	_, s, rec, m := newFixture(t)
	emulated := keymap.PhysicalKeyFor(0, keymap.KeycodeShiftLeft)
	trig := Trigger{Physical: emulated, Logical: keymap.LogicalShiftLeft, Type: entity.KeyDown, Timestamp: 7}

	deferred := s.SynchronizePressing(shiftGroup(t, m), false, trig)

	assert.Empty(t, rec.events)
	require.Len(t, deferred, 1)
	assert.Equal(t, Pending{Down: false, Physical: emulated, Logical: keymap.LogicalShiftLeft, Timestamp: 7}, deferred[0])
}

func TestSynchronizePressing_RepeatWithBitClearDefersRelease(t *testing.T) {
	tr, s, rec, m := newFixture(t)
	tr.Press(keymap.PhysicalShiftLeft, keymap.LogicalShiftLeft)
	trig := Trigger{Physical: keymap.PhysicalShiftLeft, Logical: keymap.LogicalShiftLeft, Type: entity.KeyRepeat}

	deferred := s.SynchronizePressing(shiftGroup(t, m), false, trig)

	assert.Empty(t, rec.events, "a repeat keeps its key pressed until after it is sent")
	require.Len(t, deferred, 1)
	assert.Equal(t, keymap.PhysicalShiftLeft, deferred[0].Physical)

	s.Flush(deferred)
	require.Len(t, rec.events, 1)
	assert.Equal(t, entity.KeyUp, rec.events[0].Type)
	assert.Zero(t, len(tr.pressing))
}

func TestSynchronizePressing_UpOfOneSideKeepsOtherSide(t *testing.T) {
	tr, s, rec, m := newFixture(t)
	tr.Press(keymap.PhysicalShiftLeft, keymap.LogicalShiftLeft)
	trig := Trigger{Physical: keymap.PhysicalShiftLeft, Logical: keymap.LogicalShiftLeft, Type: entity.KeyUp}

	// Right shift is still held according to the host.
	s.SynchronizePressing(shiftGroup(t, m), true, trig)

	require.Len(t, rec.events, 1)
	assert.Equal(t, entity.KeyDown, rec.events[0].Type)
	assert.Equal(t, keymap.PhysicalShiftRight, rec.events[0].Physical)
	assert.True(t, tr.IsPressed(keymap.PhysicalShiftLeft), "the trigger releases left shift itself")
}

func TestSynchronizeToggling_SelfEventNeverSynthesizes(t *testing.T) {
	for _, trueEnabled := range []bool{true, false} {
		tr, s, rec, m := newFixture(t)
		goal := capsGoal(t, m)
		trig := Trigger{Physical: goal.Physical, Logical: goal.Logical, Type: entity.KeyDown}

		s.SynchronizeToggling(goal, trueEnabled, trig)

		assert.Empty(t, rec.events)
		assert.False(t, tr.Enabled(goal.Logical))
	}
}

func TestSynchronizeToggling_MismatchSynthesizesDownThenUp(t *testing.T) {
	tr, s, rec, m := newFixture(t)
	goal := capsGoal(t, m)

	s.SynchronizeToggling(goal, true, keyADown())

	require.Len(t, rec.events, 2)
	assert.Equal(t, entity.KeyDown, rec.events[0].Type)
	assert.Equal(t, entity.KeyUp, rec.events[1].Type)
	for _, ev := range rec.events {
		assert.Equal(t, goal.Physical, ev.Physical)
		assert.Equal(t, goal.Logical, ev.Logical)
		assert.True(t, ev.Synthesized)
	}
	assert.True(t, tr.Enabled(goal.Logical))
	assert.False(t, tr.IsPressed(goal.Physical))
}

func TestSynchronizeToggling_HeldLockKeyIsReleasedFirst(t *testing.T) {
	tr, s, rec, m := newFixture(t)
	goal := capsGoal(t, m)
	tr.Press(goal.Physical, goal.Logical)

	s.SynchronizeToggling(goal, true, keyADown())

	require.Len(t, rec.events, 2)
	assert.Equal(t, entity.KeyUp, rec.events[0].Type)
	assert.Equal(t, entity.KeyDown, rec.events[1].Type)
	assert.True(t, tr.Enabled(goal.Logical))
	assert.True(t, tr.IsPressed(goal.Physical))
}

func TestSynchronizeToggling_AgreementEmitsNothing(t *testing.T) {
	_, s, rec, m := newFixture(t)

	s.SynchronizeToggling(capsGoal(t, m), false, keyADown())

	assert.Empty(t, rec.events)
}

func TestSynthesize_PlaceholderLeavesTrackerAlone(t *testing.T) {
	tr, s, rec, _ := newFixture(t)

	s.Synthesize(true, 0, 0, 0)

	require.Len(t, rec.events, 1)
	assert.True(t, rec.events[0].IsEmpty())
	assert.Zero(t, len(tr.pressing))
}
