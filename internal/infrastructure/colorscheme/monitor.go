package colorscheme

import "context"

// Monitor reports that the ambient preference may have changed. It carries
// no value: the receiver re-resolves through the Resolver.
type Monitor interface {
	Name() string
	// Run blocks until ctx is done, calling onChange from its own goroutine.
	Run(ctx context.Context, onChange func()) error
}
