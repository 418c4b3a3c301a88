package port

import (
	"context"

	"github.com/bnema/droidkeys/internal/domain/entity"
)

// TextInputConsumer gives the focused text field a chance to take an
// event nobody else handled.
type TextInputConsumer interface {
	// ConsumeIfTextField returns true if a text field consumed ev.
	ConsumeIfTextField(ctx context.Context, ev entity.RawKeyEvent) bool
}

// HostRedispatcher hands an event back to the host's default dispatch.
// The host routes it through the normal input path, which calls back into
// the keyboard manager with the same event ID, before Redispatch returns.
type HostRedispatcher interface {
	Redispatch(ctx context.Context, ev entity.RawKeyEvent)
}
