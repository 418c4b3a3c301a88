package input

import (
	"context"
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/bnema/droidkeys/internal/application/port"
	"github.com/bnema/droidkeys/internal/domain/entity"
	"github.com/bnema/droidkeys/internal/logging"
)

// KeyEventMessage is the JSON body sent on the flutter/keyevent channel.
type KeyEventMessage struct {
	Type           string `json:"type"`
	Keymap         string `json:"keymap"`
	Flags          uint32 `json:"flags"`
	PlainCodePoint uint32 `json:"plainCodePoint"`
	CodePoint      uint32 `json:"codePoint"`
	KeyCode        uint32 `json:"keyCode"`
	ScanCode       uint32 `json:"scanCode"`
	MetaState      uint32 `json:"metaState"`
	Character      string `json:"character,omitempty"`
	Source         uint32 `json:"source"`
	DeviceID       int32  `json:"deviceId"`
	ProductID      int32  `json:"productId"`
	RepeatCount    uint32 `json:"repeatCount"`
}

// ChannelResponder forwards raw events to the engine as JSON messages.
type ChannelResponder struct {
	messenger port.BinaryMessenger
	combiner  *CharacterCombiner
}

var _ port.Responder = (*ChannelResponder)(nil)

func NewChannelResponder(messenger port.BinaryMessenger) *ChannelResponder {
	return &ChannelResponder{
		messenger: messenger,
		combiner:  NewCharacterCombiner(),
	}
}

// HandleEvent implements port.Responder.
func (r *ChannelResponder) HandleEvent(ctx context.Context, ev entity.RawKeyEvent, done *port.Completion) {
	ctx = logging.WithComponent(ctx, "channel-responder")
	log := logging.FromContext(ctx)

	if ev.Action != entity.ActionDown && ev.Action != entity.ActionUp {
		done.Resolve(false)
		return
	}

	msg := NewKeyEventMessage(ev, r.combiner.Apply(ev.UnicodeChar))
	body, err := json.Marshal(msg)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode key event message")
		done.Resolve(false)
		return
	}

	r.messenger.Send(ctx, port.KeyEventChannel, body, func(reply []byte) {
		done.Resolve(parseHandledReply(ctx, reply))
	})
}

// NewKeyEventMessage builds the channel message for ev. character is the
// combined character, 0 for none.
func NewKeyEventMessage(ev entity.RawKeyEvent, character rune) KeyEventMessage {
	typ := "keydown"
	if ev.Action == entity.ActionUp {
		typ = "keyup"
	}
	plain := ev.PlainChar
	if plain == 0 {
		plain = ev.UnicodeChar
	}
	msg := KeyEventMessage{
		Type:           typ,
		Keymap:         "android",
		Flags:          ev.Flags,
		PlainCodePoint: plain,
		CodePoint:      ev.UnicodeChar,
		KeyCode:        ev.KeyCode,
		ScanCode:       ev.ScanCode,
		MetaState:      ev.MetaState,
		Source:         SourceCode(ev.Source),
		DeviceID:       ev.DeviceID,
		ProductID:      ev.ProductID,
		RepeatCount:    ev.RepeatCount,
	}
	if character != 0 {
		msg.Character = string(character)
	}
	return msg
}

// parseHandledReply reads {"handled": bool}. Anything else is unhandled.
func parseHandledReply(ctx context.Context, reply []byte) bool {
	if reply == nil {
		return false
	}
	if !gjson.ValidBytes(reply) {
		logging.FromContext(ctx).Error().Int("bytes", len(reply)).Msg("malformed key event reply")
		return false
	}
	return gjson.GetBytes(reply, "handled").Bool()
}
