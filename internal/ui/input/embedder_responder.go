package input

import (
	"context"

	"github.com/bnema/droidkeys/internal/application/port"
	"github.com/bnema/droidkeys/internal/domain/entity"
	"github.com/bnema/droidkeys/internal/domain/keymap"
	"github.com/bnema/droidkeys/internal/domain/keystate"
	"github.com/bnema/droidkeys/internal/infrastructure/codec"
	"github.com/bnema/droidkeys/internal/logging"
)

// EmbedderResponder converts raw host events into canonical key data for
// the flutter/keydata channel, healing drift between its tracked state
// and the host's modifier bitmask on every event.
type EmbedderResponder struct {
	messenger port.BinaryMessenger
	keys      keymap.Map
	tracker   *keystate.Tracker
	combiner  *CharacterCombiner
}

var _ port.Responder = (*EmbedderResponder)(nil)

// NewEmbedderResponder creates a responder with empty pressing state and
// every toggling goal disabled.
func NewEmbedderResponder(messenger port.BinaryMessenger, keys keymap.Map) *EmbedderResponder {
	return &EmbedderResponder{
		messenger: messenger,
		keys:      keys,
		tracker:   keystate.NewTracker(keys.TogglingGoals()),
		combiner:  NewCharacterCombiner(),
	}
}

// PressedKeys returns a snapshot of the pressing state.
func (r *EmbedderResponder) PressedKeys() map[keymap.PhysicalKey]keymap.LogicalKey {
	return r.tracker.Pressed()
}

// HandleEvent implements port.Responder.
func (r *EmbedderResponder) HandleEvent(ctx context.Context, ev entity.RawKeyEvent, done *port.Completion) {
	ctx = logging.WithComponent(ctx, "embedder-responder")
	syncer := keystate.NewSynchronizer(r.tracker, func(d entity.KeyData) {
		logging.FromContext(ctx).Debug().Stringer("key_data", d).Msg("synthesized")
		r.send(ctx, d, nil)
	})

	if r.handle(ctx, ev, syncer, done) {
		return
	}

	logging.FromContext(ctx).Debug().
		Uint32("scan_code", ev.ScanCode).
		Uint32("key_code", ev.KeyCode).
		Stringer("action", ev.Action).
		Msg("event carries no key data")
	syncer.Synthesize(true, 0, 0, 0)
	done.Resolve(true)
}

// handle runs the per-event pipeline. It returns false when the event
// must be answered with the empty placeholder instead.
func (r *EmbedderResponder) handle(ctx context.Context, ev entity.RawKeyEvent, syncer *keystate.Synchronizer, done *port.Completion) bool {
	if !ev.HasIdentity() {
		return false
	}
	if ev.Action != entity.ActionDown && ev.Action != entity.ActionUp {
		return false
	}

	physical := r.keys.PhysicalKeyFor(ev.ScanCode, ev.KeyCode)
	logical := r.keys.LogicalKeyFor(ev.KeyCode)
	trig := keystate.Trigger{
		Physical:  physical,
		Logical:   logical,
		Type:      actionType(ev),
		Timestamp: ev.EventTime,
	}

	var deferred []keystate.Pending
	for _, group := range r.keys.PressingGroups() {
		deferred = append(deferred, syncer.SynchronizePressing(group, group.Pressed(ev.MetaState), trig)...)
	}
	for _, goal := range r.keys.TogglingGoals() {
		syncer.SynchronizeToggling(goal, goal.Enabled(ev.MetaState), trig)
	}

	var typ entity.KeyEventType
	var character rune
	last, tracked := r.tracker.Logical(physical)
	if ev.IsDown() {
		switch {
		case !tracked:
			typ = entity.KeyDown
		case ev.RepeatCount > 0:
			typ = entity.KeyRepeat
		default:
			// The key never saw its release: close it before the new press.
			logging.FromContext(ctx).Debug().
				Str("physical", keymap.PhysicalName(physical)).
				Msg("healing stuck key")
			syncer.Synthesize(false, physical, last, ev.EventTime)
			typ = entity.KeyDown
		}
		character = r.combiner.Apply(ev.UnicodeChar)
	} else {
		if !tracked {
			logging.FromContext(ctx).Debug().
				Str("physical", keymap.PhysicalName(physical)).
				Msg("dropping release of untracked key")
			done.Resolve(true)
			return true
		}
		typ = entity.KeyUp
	}

	switch typ {
	case entity.KeyDown:
		r.tracker.Press(physical, logical)
		r.tracker.Toggle(logical)
	case entity.KeyUp:
		r.tracker.Release(physical)
	}

	d := entity.KeyData{
		Timestamp: ev.EventTime,
		Type:      typ,
		Physical:  physical,
		Logical:   logical,
		Device:    ev.Source.Device(),
	}
	if character != 0 {
		d.Character = string(character)
	}

	r.send(ctx, d, func(reply []byte) {
		done.Resolve(decodeHandled(ctx, reply))
	})
	syncer.Flush(deferred)
	return true
}

func (r *EmbedderResponder) send(ctx context.Context, d entity.KeyData, reply port.BinaryReply) {
	r.messenger.Send(ctx, port.KeyDataChannel, codec.EncodeKeyData(d), reply)
}

// actionType classifies the host action alone. Whether a down is a fresh
// press also depends on the tracker, which the pipeline checks later.
func actionType(ev entity.RawKeyEvent) entity.KeyEventType {
	if !ev.IsDown() {
		return entity.KeyUp
	}
	if ev.RepeatCount > 0 {
		return entity.KeyRepeat
	}
	return entity.KeyDown
}

// decodeHandled reads the engine's answer: a non-zero first byte.
func decodeHandled(ctx context.Context, reply []byte) bool {
	if reply == nil {
		logging.FromContext(ctx).Warn().Msg("null reply for key data, treating as unhandled")
		return false
	}
	return len(reply) > 0 && reply[0] != 0
}
