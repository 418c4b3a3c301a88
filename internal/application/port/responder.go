package port

import (
	"context"

	"github.com/bnema/droidkeys/internal/domain/entity"
)

// Responder processes a raw key event and answers through done, exactly
// once, either synchronously or later on the UI loop.
type Responder interface {
	HandleEvent(ctx context.Context, ev entity.RawKeyEvent, done *Completion)
}
