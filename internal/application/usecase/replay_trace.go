// Package usecase contains application business logic.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/droidkeys/internal/application/port"
	"github.com/bnema/droidkeys/internal/domain/entity"
	"github.com/bnema/droidkeys/internal/domain/keymap"
	"github.com/bnema/droidkeys/internal/logging"
)

// ErrNoEvents is returned when a replay is started without events.
var ErrNoEvents = errors.New("no events to replay")

// ReplayTraceUseCase feeds recorded raw key events through the host input
// path and reports what the framework side received for each of them.
type ReplayTraceUseCase struct {
	host     port.KeyEventHost
	pump     port.EventPump
	recorder port.ChannelRecorder
	state    port.KeyboardStateReader
}

// NewReplayTraceUseCase creates a new ReplayTraceUseCase. state may be nil.
func NewReplayTraceUseCase(
	host port.KeyEventHost,
	pump port.EventPump,
	recorder port.ChannelRecorder,
	state port.KeyboardStateReader,
) *ReplayTraceUseCase {
	return &ReplayTraceUseCase{
		host:     host,
		pump:     pump,
		recorder: recorder,
		state:    state,
	}
}

// ReplayTraceInput contains the events to replay, in order.
type ReplayTraceInput struct {
	Events []entity.RawKeyEvent
}

// ReplayStep is the outcome of a single raw event.
type ReplayStep struct {
	Event entity.RawKeyEvent
	// Records are the channel messages sent while the event was processed,
	// synthesized events included.
	Records        []port.ChannelRecord
	Redispatched   bool
	DefaultHandled bool
}

// ReplayTraceOutput contains the result of a replay.
type ReplayTraceOutput struct {
	Steps          []ReplayStep
	Redispatches   int
	DefaultHandled int
	// KeyboardState is nil when no state reader was configured.
	KeyboardState map[keymap.PhysicalKey]keymap.LogicalKey
}

// Execute delivers every event and drains the loop after each one, so
// deferred replies settle before the next event arrives.
func (uc *ReplayTraceUseCase) Execute(ctx context.Context, input ReplayTraceInput) (*ReplayTraceOutput, error) {
	if len(input.Events) == 0 {
		return nil, ErrNoEvents
	}
	log := logging.FromContext(ctx)

	out := &ReplayTraceOutput{Steps: make([]ReplayStep, 0, len(input.Events))}
	for i, ev := range input.Events {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		recordsBefore := len(uc.recorder.Records())
		redispatchesBefore := uc.host.Redispatches()
		defaultBefore := len(uc.host.DefaultHandled())

		uc.host.Deliver(ctx, ev)
		ran := uc.pump.RunPending()

		records := uc.recorder.Records()
		step := ReplayStep{
			Event:          ev,
			Records:        append([]port.ChannelRecord(nil), records[recordsBefore:]...),
			Redispatched:   uc.host.Redispatches() > redispatchesBefore,
			DefaultHandled: len(uc.host.DefaultHandled()) > defaultBefore,
		}
		out.Steps = append(out.Steps, step)

		log.Debug().
			Int("index", i).
			Str("action", ev.Action.String()).
			Uint32("scan_code", ev.ScanCode).
			Uint32("key_code", ev.KeyCode).
			Int("records", len(step.Records)).
			Int("callbacks", ran).
			Bool("redispatched", step.Redispatched).
			Msg("replayed key event")
	}

	out.Redispatches = uc.host.Redispatches()
	out.DefaultHandled = len(uc.host.DefaultHandled())

	if uc.state != nil {
		state, err := uc.state.ReadKeyboardState(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read keyboard state: %w", err)
		}
		out.KeyboardState = state
	}

	return out, nil
}
