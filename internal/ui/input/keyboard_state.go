package input

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/bnema/droidkeys/internal/application/port"
	"github.com/bnema/droidkeys/internal/domain/keymap"
	"github.com/bnema/droidkeys/internal/logging"
)

// GetKeyboardStateMethod is the method name answered on flutter/keyboard.
const GetKeyboardStateMethod = "getKeyboardState"

// KeyboardStateProvider exposes the current pressing state.
type KeyboardStateProvider interface {
	KeyboardState() map[keymap.PhysicalKey]keymap.LogicalKey
}

// KeyboardStateHandler answers keyboard state queries from the engine,
// used when the engine starts after keys are already held.
type KeyboardStateHandler struct {
	provider KeyboardStateProvider
}

func NewKeyboardStateHandler(provider KeyboardStateProvider) *KeyboardStateHandler {
	return &KeyboardStateHandler{provider: provider}
}

// Register installs the handler on the keyboard channel.
func (h *KeyboardStateHandler) Register(m port.BinaryMessenger) {
	m.SetMessageHandler(port.KeyboardChannel, h.Handle)
}

// Handle implements port.MessageHandler. Unknown methods get a nil reply.
// A successful call is answered with a one element envelope holding an
// object from physical to logical id, both in decimal.
func (h *KeyboardStateHandler) Handle(ctx context.Context, message []byte, reply port.BinaryReply) {
	log := logging.FromContext(ctx)

	method := gjson.GetBytes(message, "method").String()
	if method != GetKeyboardStateMethod {
		log.Debug().Str("method", method).Msg("keyboard channel method not implemented")
		reply(nil)
		return
	}

	pressed := h.provider.KeyboardState()
	state := make(map[string]uint64, len(pressed))
	for physical, logical := range pressed {
		state[strconv.FormatUint(uint64(physical), 10)] = uint64(logical)
	}

	body, err := json.Marshal([]any{state})
	if err != nil {
		log.Error().Err(err).Msg("failed to encode keyboard state")
		reply(nil)
		return
	}
	reply(body)
}
