// Package mainloop models the host UI thread: a FIFO of tasks run one at
// a time on the goroutine that drives the loop.
package mainloop

import (
	"context"
	"sync"
)

// Loop is a single-consumer task queue. Post is safe from any goroutine;
// tasks only ever run on the goroutine calling RunPending or Run.
type Loop struct {
	mu        sync.Mutex
	queue     []func()
	wake      chan struct{}
	destroyed bool
}

func New() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Post appends fn to the queue. It is a no-op after Destroy.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}

	l.mu.Lock()
	if l.destroyed {
		l.mu.Unlock()
		return
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// RunPending runs tasks until the queue is empty, including tasks posted
// by the tasks it runs, and returns how many ran.
func (l *Loop) RunPending() int {
	n := 0
	for {
		fn, ok := l.pop()
		if !ok {
			return n
		}
		fn()
		n++
	}
}

// Run drains the queue whenever tasks arrive until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.RunPending()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

// Destroy drops queued work and rejects further posts.
func (l *Loop) Destroy() {
	l.mu.Lock()
	l.destroyed = true
	l.queue = nil
	l.mu.Unlock()
}

func (l *Loop) pop() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.destroyed || len(l.queue) == 0 {
		return nil, false
	}
	fn := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return fn, true
}
