package input

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/bnema/droidkeys/internal/application/port"
	"github.com/bnema/droidkeys/internal/domain/entity"
	"github.com/bnema/droidkeys/internal/domain/keymap"
	"github.com/bnema/droidkeys/internal/infrastructure/codec"
	"github.com/bnema/droidkeys/internal/infrastructure/messenger"
	"github.com/bnema/droidkeys/internal/logging"
	"github.com/bnema/droidkeys/internal/ui/mainloop"
)

// fakeEngine decodes every key data packet and answers with a fixed reply.
type fakeEngine struct {
	t      *testing.T
	events []entity.KeyData
	reply  []byte
}

func (e *fakeEngine) handle(_ context.Context, message []byte, reply port.BinaryReply) {
	d, err := codec.DecodeKeyData(message)
	require.NoError(e.t, err)
	e.events = append(e.events, d)
	reply(e.reply)
}

type fixture struct {
	engine    *fakeEngine
	messenger *messenger.Messenger
	loop      *mainloop.Loop
	responder *EmbedderResponder
}

func newFixture(t *testing.T, mode messenger.ReplyMode) *fixture {
	t.Helper()
	loop := mainloop.New()
	m, err := messenger.New(mode, loop)
	require.NoError(t, err)
	engine := &fakeEngine{t: t, reply: []byte{0}}
	m.SetMessageHandler(port.KeyDataChannel, engine.handle)
	return &fixture{
		engine:    engine,
		messenger: m,
		loop:      loop,
		responder: NewEmbedderResponder(m, keymap.Default()),
	}
}

// outcome records how a completion was resolved.
type outcome struct {
	calls   int
	handled bool
}

func (o *outcome) completion() *port.Completion {
	return port.NewCompletion(func(handled bool) {
		o.calls++
		o.handled = handled
	})
}

func (f *fixture) send(t *testing.T, ev entity.RawKeyEvent) *outcome {
	t.Helper()
	o := &outcome{}
	f.responder.HandleEvent(context.Background(), ev, o.completion())
	return o
}

func (f *fixture) take() []entity.KeyData {
	events := f.engine.events
	f.engine.events = nil
	return events
}

func keyEvent(action entity.KeyAction, scanCode, keyCode uint32) entity.RawKeyEvent {
	return entity.RawKeyEvent{
		ScanCode:  scanCode,
		KeyCode:   keyCode,
		Action:    action,
		EventTime: 100,
		Source:    entity.SourceKeyboard,
	}
}

func captureLogs() (context.Context, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.DebugLevel)
	return logging.WithContext(context.Background(), logger), buf
}
