package keystate

import (
	"github.com/bnema/droidkeys/internal/domain/entity"
	"github.com/bnema/droidkeys/internal/domain/keymap"
)

// Emitter receives every synthesized event, in order.
type Emitter func(entity.KeyData)

// Trigger describes the raw event being synchronized against.
// Type is derived from the host action alone: a down with a non-zero
// repeat count is a repeat, whatever the tracker believes.
type Trigger struct {
	Physical  keymap.PhysicalKey
	Logical   keymap.LogicalKey
	Type      entity.KeyEventType
	Timestamp uint64
}

// Pending is a synthesized event deferred until after the triggering
// event has been sent.
type Pending struct {
	Down      bool
	Physical  keymap.PhysicalKey
	Logical   keymap.LogicalKey
	Timestamp uint64
}

// Synchronizer reconciles a Tracker with host modifier bitmasks.
type Synchronizer struct {
	tracker *Tracker
	emit    Emitter
}

// NewSynchronizer creates a synchronizer that updates tracker and hands
// synthesized events to emit.
func NewSynchronizer(tracker *Tracker, emit Emitter) *Synchronizer {
	if emit == nil {
		emit = func(entity.KeyData) {}
	}
	return &Synchronizer{tracker: tracker, emit: emit}
}

// SynchronizePressing makes the tracked state of group agree with
// truePressed.
//
// Keys whose tracked state must change before the triggering event are
// synthesized immediately. The triggering key's own transition is never
// suppressed or duplicated: when it contradicts truePressed, the fix is
// returned as a Pending release to run after the trigger has been sent.
func (s *Synchronizer) SynchronizePressing(group keymap.PressingGroup, truePressed bool, trig Trigger) []Pending {
	n := len(group.Keys)
	if n == 0 {
		return nil
	}

	now := make([]bool, n)
	pre := make([]bool, n)
	decided := make([]bool, n)
	anyPressed := false
	var deferred []Pending

	for i, key := range group.Keys {
		now[i] = s.tracker.IsPressed(key.Physical)
		if key.Logical != trig.Logical {
			anyPressed = anyPressed || now[i]
			continue
		}

		decided[i] = true
		switch trig.Type {
		case entity.KeyDown:
			// The trigger itself supplies the down transition.
			pre[i] = false
			anyPressed = true
			if !truePressed {
				deferred = append(deferred, Pending{
					Physical:  trig.Physical,
					Logical:   key.Logical,
					Timestamp: trig.Timestamp,
				})
			}
		case entity.KeyUp:
			pre[i] = now[i]
		case entity.KeyRepeat:
			pre[i] = now[i]
			anyPressed = true
			if !truePressed {
				deferred = append(deferred, Pending{
					Physical:  trig.Physical,
					Logical:   key.Logical,
					Timestamp: trig.Timestamp,
				})
			}
		}
	}

	if truePressed {
		for i := range group.Keys {
			if decided[i] {
				continue
			}
			if anyPressed {
				pre[i] = now[i]
			} else {
				pre[i] = true
				anyPressed = true
			}
		}
		if !anyPressed {
			pre[0] = true
		}
	}

	for i, key := range group.Keys {
		if now[i] != pre[i] {
			s.Synthesize(pre[i], key.Physical, key.Logical, trig.Timestamp)
		}
	}
	return deferred
}

// SynchronizeToggling makes the tracked enabled flag of goal agree with
// trueEnabled by synthesizing one press and one release of the lock key.
// The flag flips with the synthesized down, so a key that is currently
// held gets its release first and ends up held again.
//
// Events on the lock key itself are skipped: the host bitmask is not
// reliable for them.
func (s *Synchronizer) SynchronizeToggling(goal keymap.TogglingGoal, trueEnabled bool, trig Trigger) {
	if goal.Logical == trig.Logical {
		return
	}
	if s.tracker.Enabled(goal.Logical) == trueEnabled {
		return
	}

	firstIsDown := !s.tracker.IsPressed(goal.Physical)
	if firstIsDown {
		s.tracker.Toggle(goal.Logical)
	}
	s.Synthesize(firstIsDown, goal.Physical, goal.Logical, trig.Timestamp)
	if !firstIsDown {
		s.tracker.Toggle(goal.Logical)
	}
	s.Synthesize(!firstIsDown, goal.Physical, goal.Logical, trig.Timestamp)
}

// Synthesize applies a synthesized down or up to the tracker and emits it.
// The placeholder event (both ids zero) leaves the tracker untouched.
func (s *Synchronizer) Synthesize(down bool, physical keymap.PhysicalKey, logical keymap.LogicalKey, timestamp uint64) {
	typ := entity.KeyUp
	if down {
		typ = entity.KeyDown
	}
	if physical != 0 && logical != 0 {
		s.tracker.Update(physical, logical, down)
	}
	s.emit(entity.KeyData{
		Timestamp:   timestamp,
		Type:        typ,
		Physical:    physical,
		Logical:     logical,
		Synthesized: true,
		Device:      entity.DeviceKeyboard,
	})
}

// Flush synthesizes deferred events in order.
func (s *Synchronizer) Flush(pending []Pending) {
	for _, p := range pending {
		s.Synthesize(p.Down, p.Physical, p.Logical, p.Timestamp)
	}
}
