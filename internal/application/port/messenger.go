package port

import "context"

// Channel names shared with the engine.
const (
	// KeyDataChannel carries binary canonical key events.
	KeyDataChannel = "flutter/keydata"
	// KeyEventChannel carries legacy JSON key event messages.
	KeyEventChannel = "flutter/keyevent"
	// KeyboardChannel is the JSON method channel for keyboard queries.
	KeyboardChannel = "flutter/keyboard"
)

// BinaryReply receives the answer to a message. A nil slice means the
// receiver sent no payload.
type BinaryReply func(reply []byte)

// MessageHandler answers messages arriving on a channel. It must call
// reply exactly once.
type MessageHandler func(ctx context.Context, message []byte, reply BinaryReply)

// BinaryMessenger is a reliable, ordered byte channel to the engine.
type BinaryMessenger interface {
	// Send delivers message on channel. reply may be nil when the sender
	// does not care about the answer. The reply can be invoked before Send
	// returns or on a later turn of the UI loop.
	Send(ctx context.Context, channel string, message []byte, reply BinaryReply)

	// SetMessageHandler registers handler for messages sent to channel.
	// A nil handler removes the registration.
	SetMessageHandler(channel string, handler MessageHandler)
}
