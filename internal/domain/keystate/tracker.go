package keystate

import (
	"fmt"
	"maps"

	"github.com/bnema/droidkeys/internal/domain/keymap"
)

// Tracker holds the pressing state (physical key to the logical key it
// produced when pressed) and the enabled flag of every toggling goal.
type Tracker struct {
	pressing map[keymap.PhysicalKey]keymap.LogicalKey
	enabled  map[keymap.LogicalKey]bool
}

// NewTracker creates an empty tracker. Every goal starts disabled.
func NewTracker(goals []keymap.TogglingGoal) *Tracker {
	t := &Tracker{
		pressing: make(map[keymap.PhysicalKey]keymap.LogicalKey),
		enabled:  make(map[keymap.LogicalKey]bool, len(goals)),
	}
	for _, g := range goals {
		t.enabled[g.Logical] = false
	}
	return t
}

// Press records physical as pressed, producing logical.
// It panics if physical is already pressed.
func (t *Tracker) Press(physical keymap.PhysicalKey, logical keymap.LogicalKey) {
	if prev, ok := t.pressing[physical]; ok {
		panic(fmt.Errorf("%w: press of %s while already pressed as %s",
			ErrPressingStateViolation, keymap.PhysicalName(physical), keymap.LogicalName(prev)))
	}
	t.pressing[physical] = logical
}

// Release clears physical. It panics if physical is not pressed.
func (t *Tracker) Release(physical keymap.PhysicalKey) {
	if _, ok := t.pressing[physical]; !ok {
		panic(fmt.Errorf("%w: release of %s while not pressed",
			ErrPressingStateViolation, keymap.PhysicalName(physical)))
	}
	delete(t.pressing, physical)
}

// Update presses or releases physical depending on down.
func (t *Tracker) Update(physical keymap.PhysicalKey, logical keymap.LogicalKey, down bool) {
	if down {
		t.Press(physical, logical)
		return
	}
	t.Release(physical)
}

// IsPressed reports whether physical is pressed.
func (t *Tracker) IsPressed(physical keymap.PhysicalKey) bool {
	_, ok := t.pressing[physical]
	return ok
}

// Logical returns the logical key recorded for a pressed physical key.
func (t *Tracker) Logical(physical keymap.PhysicalKey) (keymap.LogicalKey, bool) {
	l, ok := t.pressing[physical]
	return l, ok
}

// Pressed returns a copy of the pressing state.
func (t *Tracker) Pressed() map[keymap.PhysicalKey]keymap.LogicalKey {
	return maps.Clone(t.pressing)
}

// Enabled reports whether the toggling goal for logical is on.
func (t *Tracker) Enabled(logical keymap.LogicalKey) bool {
	return t.enabled[logical]
}

// IsToggling reports whether logical is the key of a toggling goal.
func (t *Tracker) IsToggling(logical keymap.LogicalKey) bool {
	_, ok := t.enabled[logical]
	return ok
}

// Toggle flips the goal for logical. It returns false, and does nothing,
// if logical is not a toggling goal.
func (t *Tracker) Toggle(logical keymap.LogicalKey) bool {
	v, ok := t.enabled[logical]
	if !ok {
		return false
	}
	t.enabled[logical] = !v
	return true
}
