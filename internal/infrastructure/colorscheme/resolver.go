// Package colorscheme answers "does the host prefer a dark appearance" from a
// chain of detectors and notifies subscribers when the answer changes.
package colorscheme

import (
	"sort"
	"sync"

	"github.com/bnema/dusk/internal/application/port"
)

// sourceFallback indicates no detector provided the preference.
const sourceFallback = "fallback"

// callbackWrapper wraps a callback function to enable pointer comparison for removal.
type callbackWrapper struct {
	fn func(bool)
}

// Resolver implements port.AmbientSignal over prioritized detectors.
// When no detector answers, the host is treated as preferring light.
type Resolver struct {
	mu        sync.RWMutex
	detectors []port.ColorSchemeDetector
	current   port.ColorSchemePreference
	callbacks []*callbackWrapper
}

var _ port.AmbientSignal = (*Resolver)(nil)

// NewResolver creates a resolver with the given detectors.
func NewResolver(detectors ...port.ColorSchemeDetector) *Resolver {
	r := &Resolver{
		current: port.ColorSchemePreference{Source: sourceFallback},
	}
	for _, d := range detectors {
		r.RegisterDetector(d)
	}
	return r
}

// RegisterDetector adds a detector. It is consulted on the next resolution.
func (r *Resolver) RegisterDetector(detector port.ColorSchemeDetector) {
	if detector == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detectors = append(r.detectors, detector)
}

// Detectors returns the registered detectors, highest priority first.
func (r *Resolver) Detectors() []port.ColorSchemeDetector {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedDetectors()
}

// Resolve queries the detectors without recording the result.
func (r *Resolver) Resolve() port.ColorSchemePreference {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolveInternal()
}

// Read implements port.AmbientSignal. The answer becomes the baseline that
// later Refresh calls compare against.
func (r *Resolver) Read() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = r.resolveInternal()
	return r.current.PrefersDark
}

// Current returns the last resolved preference.
func (r *Resolver) Current() port.ColorSchemePreference {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Refresh re-resolves and notifies subscribers if the flag changed.
func (r *Resolver) Refresh() port.ColorSchemePreference {
	r.mu.Lock()
	newPref := r.resolveInternal()
	changed := newPref.PrefersDark != r.current.PrefersDark
	r.current = newPref

	if !changed {
		r.mu.Unlock()
		return newPref
	}

	callbacks := make([]*callbackWrapper, len(r.callbacks))
	copy(callbacks, r.callbacks)
	r.mu.Unlock()

	for _, cb := range callbacks {
		cb.fn(newPref.PrefersDark)
	}
	return newPref
}

// Subscribe implements port.AmbientSignal.
func (r *Resolver) Subscribe(callback func(prefersDark bool)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	wrapper := &callbackWrapper{fn: callback}
	r.callbacks = append(r.callbacks, wrapper)

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		for i, cb := range r.callbacks {
			if cb == wrapper {
				r.callbacks = append(r.callbacks[:i], r.callbacks[i+1:]...)
				return
			}
		}
	}
}

// resolveInternal performs the resolution. Caller must hold at least a read lock.
func (r *Resolver) resolveInternal() port.ColorSchemePreference {
	for _, detector := range r.sortedDetectors() {
		if !detector.Available() {
			continue
		}
		if prefersDark, ok := detector.Detect(); ok {
			return port.ColorSchemePreference{
				PrefersDark: prefersDark,
				Source:      detector.Name(),
			}
		}
	}

	return port.ColorSchemePreference{
		PrefersDark: false,
		Source:      sourceFallback,
	}
}

func (r *Resolver) sortedDetectors() []port.ColorSchemeDetector {
	sorted := make([]port.ColorSchemeDetector, len(r.detectors))
	copy(sorted, r.detectors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})
	return sorted
}
