// Package messenger provides an in-process BinaryMessenger that connects
// the embedding to an engine running in the same process.
package messenger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bnema/droidkeys/internal/application/port"
	"github.com/bnema/droidkeys/internal/logging"
	"github.com/bnema/droidkeys/internal/ui/mainloop"
)

// ReplyMode selects when replies reach the sender.
type ReplyMode string

const (
	// ReplySync invokes the reply inside the handler's call stack.
	ReplySync ReplyMode = "sync"
	// ReplyDeferred posts the reply onto the UI loop.
	ReplyDeferred ReplyMode = "deferred"
)

var (
	// ErrUnknownReplyMode is returned for a mode other than sync or deferred.
	ErrUnknownReplyMode = errors.New("unknown reply mode")
	// ErrLoopRequired is returned when deferred delivery has no loop.
	ErrLoopRequired = errors.New("deferred reply mode requires a main loop")
)

// ParseReplyMode validates a configured reply mode.
func ParseReplyMode(s string) (ReplyMode, error) {
	switch ReplyMode(s) {
	case ReplySync, ReplyDeferred:
		return ReplyMode(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownReplyMode, s)
	}
}

// Messenger routes messages to handlers registered per channel.
type Messenger struct {
	mu       sync.RWMutex
	handlers map[string]port.MessageHandler
	mode     ReplyMode
	loop     *mainloop.Loop
}

var _ port.BinaryMessenger = (*Messenger)(nil)

// New creates a messenger. loop may be nil in sync mode.
func New(mode ReplyMode, loop *mainloop.Loop) (*Messenger, error) {
	switch mode {
	case ReplySync:
	case ReplyDeferred:
		if loop == nil {
			return nil, ErrLoopRequired
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownReplyMode, mode)
	}
	return &Messenger{
		handlers: make(map[string]port.MessageHandler),
		mode:     mode,
		loop:     loop,
	}, nil
}

// Mode returns the reply delivery mode.
func (m *Messenger) Mode() ReplyMode {
	return m.mode
}

// SetMessageHandler implements port.BinaryMessenger.
func (m *Messenger) SetMessageHandler(channel string, handler port.MessageHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if handler == nil {
		delete(m.handlers, channel)
		return
	}
	m.handlers[channel] = handler
}

// Send implements port.BinaryMessenger. A channel without a handler
// answers with a nil reply.
func (m *Messenger) Send(ctx context.Context, channel string, message []byte, reply port.BinaryReply) {
	ctx = logging.WithChannel(ctx, channel)
	log := logging.FromContext(ctx)

	m.mu.RLock()
	handler := m.handlers[channel]
	m.mu.RUnlock()

	if handler == nil {
		log.Debug().Int("bytes", len(message)).Msg("no handler registered, replying empty")
		m.deliver(reply, nil)
		return
	}

	var replied atomic.Bool
	handler(ctx, message, func(r []byte) {
		if !replied.CompareAndSwap(false, true) {
			log.Warn().Msg("handler replied more than once, dropping reply")
			return
		}
		m.deliver(reply, r)
	})
}

func (m *Messenger) deliver(reply port.BinaryReply, payload []byte) {
	if reply == nil {
		return
	}
	if m.mode == ReplyDeferred {
		m.loop.Post(func() { reply(payload) })
		return
	}
	reply(payload)
}
