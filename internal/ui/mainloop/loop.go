// Package mainloop serializes event handlers onto a single goroutine.
package mainloop

import (
	"context"
	"sync"
)

// Loop is a single-consumer task queue. Every posted task runs on the
// goroutine executing Run, one at a time, in post order.
type Loop struct {
	mu      sync.Mutex
	pending []func()
	wake    chan struct{}
	closed  bool
}

func New() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Post enqueues fn. It never blocks and may be called from any goroutine,
// including from inside a running task. Returns false once the loop is closed.
func (l *Loop) Post(fn func()) bool {
	if fn == nil {
		return false
	}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return false
	}
	l.pending = append(l.pending, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// Run drains the queue until ctx is done. Tasks still pending at that point
// are dropped and later posts are refused.
func (l *Loop) Run(ctx context.Context) error {
	defer l.close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-l.wake:
		}

		for {
			if ctx.Err() != nil {
				return nil
			}
			fn, ok := l.next()
			if !ok {
				break
			}
			fn()
		}
	}
}

func (l *Loop) next() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.pending) == 0 {
		return nil, false
	}
	fn := l.pending[0]
	l.pending[0] = nil
	l.pending = l.pending[1:]
	return fn, true
}

func (l *Loop) close() {
	l.mu.Lock()
	l.closed = true
	l.pending = nil
	l.mu.Unlock()
}

// Dispatch wraps a one-argument handler so that calling the wrapper posts
// the handler onto the loop instead of running it inline.
func Dispatch[T any](l *Loop, handler func(T)) func(T) {
	return func(v T) {
		l.Post(func() { handler(v) })
	}
}
