package input

import (
	"context"

	"github.com/bnema/droidkeys/internal/application/port"
	"github.com/bnema/droidkeys/internal/domain/entity"
	"github.com/bnema/droidkeys/internal/domain/keymap"
	"github.com/bnema/droidkeys/internal/logging"
)

// pressedKeysSource is implemented by responders that track key state.
type pressedKeysSource interface {
	PressedKeys() map[keymap.PhysicalKey]keymap.LogicalKey
}

// KeyboardManager fans host key events out to its responders and, when
// none of them handles an event, offers it to the focused text field and
// finally hands it back to the host.
//
// It must be driven from the UI thread only.
type KeyboardManager struct {
	responders   []port.Responder
	textInput    port.TextInputConsumer
	host         port.HostRedispatcher
	redispatched map[entity.EventID]struct{}
}

var _ KeyboardStateProvider = (*KeyboardManager)(nil)

// NewKeyboardManager creates a manager. textInput and host may be nil.
func NewKeyboardManager(responders []port.Responder, textInput port.TextInputConsumer, host port.HostRedispatcher) *KeyboardManager {
	return &KeyboardManager{
		responders:   responders,
		textInput:    textInput,
		host:         host,
		redispatched: make(map[entity.EventID]struct{}),
	}
}

// HandleEvent processes a host event and reports whether the manager took
// it. A false return means the event is one of ours coming back from the
// host and must go through the host's default handling.
//
// Events without an ID get one; the same ID identifies the event when it
// is redispatched.
func (m *KeyboardManager) HandleEvent(ctx context.Context, ev entity.RawKeyEvent) bool {
	if ev.ID != "" {
		if _, ok := m.redispatched[ev.ID]; ok {
			delete(m.redispatched, ev.ID)
			return false
		}
	} else {
		ev.ID = entity.NewEventID()
	}

	ctx = logging.WithEventID(logging.WithComponent(ctx, "keyboard-manager"), string(ev.ID))

	if len(m.responders) == 0 {
		m.onUnhandled(ctx, ev)
		return true
	}

	// The count is fixed before the first responder runs: a responder may
	// answer synchronously from inside HandleEvent.
	d := &dispatch{manager: m, ctx: ctx, ev: ev, unreplied: len(m.responders)}
	for _, r := range m.responders {
		r.HandleEvent(ctx, ev, port.NewCompletion(d.reply))
	}
	return true
}

// PendingRedispatches returns the number of redispatched events that have
// not come back yet.
func (m *KeyboardManager) PendingRedispatches() int {
	return len(m.redispatched)
}

// KeyboardState returns the pressing state of the first responder that
// tracks one, or an empty map.
func (m *KeyboardManager) KeyboardState() map[keymap.PhysicalKey]keymap.LogicalKey {
	for _, r := range m.responders {
		if src, ok := r.(pressedKeysSource); ok {
			return src.PressedKeys()
		}
	}
	return map[keymap.PhysicalKey]keymap.LogicalKey{}
}

// Destroy reports redispatched events that never came back.
func (m *KeyboardManager) Destroy(ctx context.Context) {
	if n := len(m.redispatched); n > 0 {
		logging.FromContext(ctx).Warn().
			Int("pending", n).
			Msg("keyboard manager destroyed with unhandled redispatch events")
	}
}

func (m *KeyboardManager) onUnhandled(ctx context.Context, ev entity.RawKeyEvent) {
	log := logging.FromContext(ctx)

	if m.textInput != nil && m.textInput.ConsumeIfTextField(ctx, ev) {
		log.Debug().Msg("consumed by text input")
		return
	}
	if m.host == nil {
		log.Debug().Msg("no host to redispatch to")
		return
	}

	m.redispatched[ev.ID] = struct{}{}
	m.host.Redispatch(ctx, ev)
	if _, ok := m.redispatched[ev.ID]; ok {
		delete(m.redispatched, ev.ID)
		log.Warn().Msg("redispatched key event was consumed before reaching the keyboard manager")
	}
}

// dispatch aggregates the answers for one event.
type dispatch struct {
	manager   *KeyboardManager
	ctx       context.Context
	ev        entity.RawKeyEvent
	unreplied int
	handled   bool
}

func (d *dispatch) reply(handled bool) {
	d.unreplied--
	d.handled = d.handled || handled
	if d.unreplied == 0 && !d.handled {
		d.manager.onUnhandled(d.ctx, d.ev)
	}
}
