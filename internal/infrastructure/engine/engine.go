// Package engine is an in-process stand-in for the framework side of the
// key channels. It records what the embedding sends and answers with a
// configurable handling policy.
package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/bnema/droidkeys/internal/application/port"
	"github.com/bnema/droidkeys/internal/domain/keymap"
	"github.com/bnema/droidkeys/internal/infrastructure/codec"
	"github.com/bnema/droidkeys/internal/logging"
)

// ErrBadKeyboardState is returned when the keyboard state reply cannot be read.
var ErrBadKeyboardState = errors.New("malformed keyboard state reply")

// Policy decides which events the engine claims.
type Policy struct {
	HandleAll      bool
	HandledLogical map[keymap.LogicalKey]bool
}

// Handles reports whether the engine claims a non synthesized event for logical.
func (p Policy) Handles(logical keymap.LogicalKey) bool {
	return p.HandleAll || p.HandledLogical[logical]
}

// Engine records messages from the embedding.
type Engine struct {
	policy  Policy
	records []port.ChannelRecord
}

func New(policy Policy) *Engine {
	return &Engine{policy: policy}
}

// Attach registers the engine's handlers on m.
func (e *Engine) Attach(m port.BinaryMessenger) {
	m.SetMessageHandler(port.KeyDataChannel, e.handleKeyData)
	m.SetMessageHandler(port.KeyEventChannel, e.handleKeyEvent)
}

// Records returns everything received so far.
func (e *Engine) Records() []port.ChannelRecord {
	return e.records
}

func (e *Engine) handleKeyData(ctx context.Context, message []byte, reply port.BinaryReply) {
	d, err := codec.DecodeKeyData(message)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("engine dropped key data packet")
		reply(nil)
		return
	}

	handled := !d.Synthesized && !d.IsEmpty() && e.policy.Handles(d.Logical)
	e.records = append(e.records, port.ChannelRecord{Channel: port.KeyDataChannel, KeyData: d, Handled: handled})

	if handled {
		reply([]byte{1})
		return
	}
	reply([]byte{0})
}

func (e *Engine) handleKeyEvent(ctx context.Context, message []byte, reply port.BinaryReply) {
	if !gjson.ValidBytes(message) {
		logging.FromContext(ctx).Warn().Msg("engine dropped malformed key event message")
		reply(nil)
		return
	}

	keyCode := uint32(gjson.GetBytes(message, "keyCode").Uint())
	handled := e.policy.Handles(keymap.LogicalKeyFor(keyCode))
	e.records = append(e.records, port.ChannelRecord{Channel: port.KeyEventChannel, Message: message, Handled: handled})

	body, err := json.Marshal(map[string]bool{"handled": handled})
	if err != nil {
		reply(nil)
		return
	}
	reply(body)
}

// QueryKeyboardState asks the embedding for its pressed keys over the
// keyboard method channel, the way the engine does at startup. drain, if
// set, is run when the reply did not arrive synchronously.
func QueryKeyboardState(ctx context.Context, m port.BinaryMessenger, drain func()) (map[keymap.PhysicalKey]keymap.LogicalKey, error) {
	var (
		payload []byte
		replied bool
	)
	m.Send(ctx, port.KeyboardChannel, []byte(`{"method":"getKeyboardState","args":null}`), func(r []byte) {
		payload = r
		replied = true
	})
	if !replied && drain != nil {
		drain()
	}
	if !replied {
		return nil, fmt.Errorf("%w: no synchronous reply", ErrBadKeyboardState)
	}
	if payload == nil {
		return nil, fmt.Errorf("%w: method not implemented", ErrBadKeyboardState)
	}

	state := gjson.GetBytes(payload, "0")
	if !state.IsObject() {
		return nil, fmt.Errorf("%w: %s", ErrBadKeyboardState, payload)
	}

	out := make(map[keymap.PhysicalKey]keymap.LogicalKey)
	var parseErr error
	state.ForEach(func(key, value gjson.Result) bool {
		physical, err := strconv.ParseUint(key.String(), 10, 64)
		if err != nil {
			parseErr = fmt.Errorf("%w: key %q", ErrBadKeyboardState, key.String())
			return false
		}
		out[keymap.PhysicalKey(physical)] = keymap.LogicalKey(value.Uint())
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return out, nil
}
