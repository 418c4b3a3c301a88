// Package bootstrap wires the key input pipeline from configuration.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/bnema/droidkeys/internal/application/port"
	"github.com/bnema/droidkeys/internal/domain/keymap"
	"github.com/bnema/droidkeys/internal/infrastructure/config"
	"github.com/bnema/droidkeys/internal/infrastructure/engine"
	"github.com/bnema/droidkeys/internal/infrastructure/host"
	"github.com/bnema/droidkeys/internal/infrastructure/messenger"
	"github.com/bnema/droidkeys/internal/infrastructure/textinput"
	"github.com/bnema/droidkeys/internal/ui/input"
	"github.com/bnema/droidkeys/internal/ui/mainloop"
)

// Pipeline is one embedding: a platform loop, a messenger shared with an
// in-process engine, the responders, the keyboard manager and the host
// view it serves.
type Pipeline struct {
	Loop      *mainloop.Loop
	Messenger *messenger.Messenger
	Engine    *engine.Engine
	Host      *host.Host
	TextField *textinput.TextField
	Manager   *input.KeyboardManager
}

var (
	_ port.KeyEventHost        = (*host.Host)(nil)
	_ port.ChannelRecorder     = (*engine.Engine)(nil)
	_ port.EventPump           = (*mainloop.Loop)(nil)
	_ port.KeyboardStateReader = (*Pipeline)(nil)
)

// NewPipeline builds a pipeline for cfg using keys for key identity.
func NewPipeline(cfg *config.Config, keys keymap.Map) (*Pipeline, error) {
	mode, err := messenger.ParseReplyMode(string(cfg.Transport.ReplyMode))
	if err != nil {
		return nil, err
	}
	handled, err := cfg.Engine.HandledKeys()
	if err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}

	loop := mainloop.New()
	m, err := messenger.New(mode, loop)
	if err != nil {
		return nil, err
	}

	eng := engine.New(engine.Policy{HandleAll: cfg.Engine.HandleAll, HandledLogical: handled})
	eng.Attach(m)

	responders, err := input.NewResponders(cfg.Keyboard.Responders, m, keys)
	if err != nil {
		return nil, err
	}

	field := textinput.NewTextField(cfg.Host.TextFieldFocused)
	h := host.New()
	manager := input.NewKeyboardManager(responders, field, h)
	h.Bind(manager.HandleEvent)
	input.NewKeyboardStateHandler(manager).Register(m)

	return &Pipeline{
		Loop:      loop,
		Messenger: m,
		Engine:    eng,
		Host:      h,
		TextField: field,
		Manager:   manager,
	}, nil
}

// ReadKeyboardState queries the embedding over the keyboard channel,
// running the loop if the reply was deferred.
func (p *Pipeline) ReadKeyboardState(ctx context.Context) (map[keymap.PhysicalKey]keymap.LogicalKey, error) {
	return engine.QueryKeyboardState(ctx, p.Messenger, func() { p.Loop.RunPending() })
}

// Close tears the pipeline down. Pending redispatches are reported by the
// keyboard manager.
func (p *Pipeline) Close(ctx context.Context) {
	p.Manager.Destroy(ctx)
	p.Loop.Destroy()
}
