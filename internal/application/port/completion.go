package port

import (
	"errors"
	"sync/atomic"
)

// ErrCompletionResolvedTwice is the panic value raised when a responder
// answers the same event twice.
var ErrCompletionResolvedTwice = errors.New("completion resolved twice")

// Completion is a single-fire handle a responder uses to report whether
// it handled an event.
type Completion struct {
	done atomic.Bool
	fn   func(handled bool)
}

// NewCompletion returns a handle that calls fn on resolution.
func NewCompletion(fn func(handled bool)) *Completion {
	return &Completion{fn: fn}
}

// Resolve reports the outcome. Calling it a second time panics with
// ErrCompletionResolvedTwice.
func (c *Completion) Resolve(handled bool) {
	if !c.done.CompareAndSwap(false, true) {
		panic(ErrCompletionResolvedTwice)
	}
	if c.fn != nil {
		c.fn(handled)
	}
}
