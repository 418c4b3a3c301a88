// Package host models the host side of key dispatch: the entry point that
// offers every event to the keyboard manager first and falls back to the
// platform's default handling.
package host

import (
	"context"

	"github.com/bnema/droidkeys/internal/application/port"
	"github.com/bnema/droidkeys/internal/domain/entity"
	"github.com/bnema/droidkeys/internal/logging"
)

// Dispatcher is the keyboard manager entry point. It returns false for
// events the host must handle itself.
type Dispatcher func(ctx context.Context, ev entity.RawKeyEvent) bool

// Host delivers events and records those that reach default handling.
type Host struct {
	dispatch      Dispatcher
	defaultEvents []entity.RawKeyEvent
	redispatches  int
}

var _ port.HostRedispatcher = (*Host)(nil)

func New() *Host {
	return &Host{}
}

// Bind sets the dispatcher. It is separate from New because the keyboard
// manager needs the host to exist first.
func (h *Host) Bind(d Dispatcher) {
	h.dispatch = d
}

// Deliver runs ev through the normal input path.
func (h *Host) Deliver(ctx context.Context, ev entity.RawKeyEvent) {
	if h.dispatch != nil && h.dispatch(ctx, ev) {
		return
	}
	logging.FromContext(ctx).Debug().Str("event_id", string(ev.ID)).Msg("default handling")
	h.defaultEvents = append(h.defaultEvents, ev)
}

// Redispatch implements port.HostRedispatcher by sending ev down the
// normal input path again.
func (h *Host) Redispatch(ctx context.Context, ev entity.RawKeyEvent) {
	h.redispatches++
	h.Deliver(ctx, ev)
}

// DefaultHandled returns the events that reached default handling.
func (h *Host) DefaultHandled() []entity.RawKeyEvent {
	return h.defaultEvents
}

// Redispatches returns how many events were handed back.
func (h *Host) Redispatches() int {
	return h.redispatches
}
