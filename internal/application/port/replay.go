package port

import (
	"context"

	"github.com/bnema/droidkeys/internal/domain/entity"
	"github.com/bnema/droidkeys/internal/domain/keymap"
)

// ChannelRecord is one message the framework side received on a key channel.
type ChannelRecord struct {
	Channel string
	KeyData entity.KeyData // set for KeyDataChannel
	Message []byte         // raw JSON for KeyEventChannel
	Handled bool
}

// ChannelRecorder exposes the messages received so far, in order.
type ChannelRecorder interface {
	Records() []ChannelRecord
}

// KeyEventHost is the host input path: the entry point for raw events and
// the place unhandled events end up.
type KeyEventHost interface {
	Deliver(ctx context.Context, ev entity.RawKeyEvent)
	DefaultHandled() []entity.RawKeyEvent
	Redispatches() int
}

// EventPump runs callbacks posted to the platform loop.
type EventPump interface {
	RunPending() int
}

// KeyboardStateReader asks the embedding which keys it believes are pressed.
type KeyboardStateReader interface {
	ReadKeyboardState(ctx context.Context) (map[keymap.PhysicalKey]keymap.LogicalKey, error)
}
