// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"

	"github.com/bnema/dusk/internal/application/port"
	"github.com/bnema/dusk/internal/domain/entity"
	"github.com/bnema/dusk/internal/logging"
)

// PreferenceController owns the light/dark preference. It resolves the
// effective scheme from the store and the ambient signal, pushes it to the
// presentation sink and persists explicit choices.
//
// The controller is not safe for concurrent use. All calls, including the
// ambient change callback, must happen on one goroutine; use WithScheduler to
// route ambient notifications through an event loop.
type PreferenceController struct {
	store    port.PreferenceStore
	ambient  port.AmbientSignal
	sink     port.PresentationSink
	schedule func(func())

	state       entity.PreferenceState
	initialized bool
	unsubscribe func()
}

// PreferenceControllerOption configures a PreferenceController.
type PreferenceControllerOption func(*PreferenceController)

// WithScheduler sets how ambient notifications reach the controller.
// The default runs them inline on the notifying goroutine.
func WithScheduler(schedule func(func())) PreferenceControllerOption {
	return func(c *PreferenceController) {
		if schedule != nil {
			c.schedule = schedule
		}
	}
}

// NewPreferenceController creates a controller from its collaborators.
func NewPreferenceController(
	store port.PreferenceStore,
	ambient port.AmbientSignal,
	sink port.PresentationSink,
	opts ...PreferenceControllerOption,
) *PreferenceController {
	c := &PreferenceController{
		store:    store,
		ambient:  ambient,
		sink:     sink,
		schedule: func(fn func()) { fn() },
		state:    entity.PreferenceState{Scheme: entity.ColorSchemeLight},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialize resolves the effective scheme, applies it and subscribes to
// ambient changes. It never fails: an unreadable store counts as empty.
// Subsequent calls are no-ops.
func (c *PreferenceController) Initialize(ctx context.Context) entity.PreferenceState {
	if c.initialized {
		return c.state
	}
	log := logging.FromContext(ctx)

	c.state = c.resolve(ctx)
	c.initialized = true
	c.Apply(ctx, c.state.Scheme)

	c.unsubscribe = c.ambient.Subscribe(func(prefersDark bool) {
		c.schedule(func() { c.HandleAmbientChange(ctx, prefersDark) })
	})

	log.Info().
		Str("scheme", c.state.Scheme.String()).
		Str("source", c.state.Source()).
		Msg("color scheme initialized")

	return c.state
}

// Toggle flips the scheme, applies it and stores it as an explicit choice.
// When the write fails the flipped scheme stays applied but nothing counts as
// stored, so the next ambient change is followed again.
func (c *PreferenceController) Toggle(ctx context.Context) entity.ColorScheme {
	log := logging.FromContext(ctx)

	c.state = c.state.Toggle()
	c.Apply(ctx, c.state.Scheme)
	if !c.persist(ctx) {
		c.state.Explicit = false
	}

	log.Info().Str("scheme", c.state.Scheme.String()).Msg("color scheme toggled")
	return c.state.Scheme
}

// Apply pushes a scheme to the presentation sink.
func (c *PreferenceController) Apply(ctx context.Context, scheme entity.ColorScheme) {
	c.sink.Apply(ctx, scheme)
}

// HandleAmbientChange reacts to a change of the host's preference. It is
// ignored once an explicit choice exists, including one stored by another
// process since initialization.
func (c *PreferenceController) HandleAmbientChange(ctx context.Context, prefersDark bool) {
	log := logging.FromContext(ctx)

	if c.state.Explicit {
		log.Debug().Bool("prefers_dark", prefersDark).Msg("ambient change ignored, explicit choice stored")
		return
	}

	if stored, ok := c.loadStored(ctx); ok {
		c.state = stored
		c.Apply(ctx, c.state.Scheme)
		log.Info().Str("scheme", c.state.Scheme.String()).Msg("adopted stored color scheme")
		return
	}

	next, changed := c.state.OnAmbientChange(prefersDark)
	c.state = next
	if !changed {
		return
	}
	c.Apply(ctx, c.state.Scheme)
	log.Info().Str("scheme", c.state.Scheme.String()).Msg("color scheme follows ambient change")
}

// Reload re-resolves from the store and the ambient signal, picking up a
// choice written by another process. The scheme is re-applied only when it
// changed.
func (c *PreferenceController) Reload(ctx context.Context) entity.PreferenceState {
	next := c.resolve(ctx)
	changed := next.Scheme != c.state.Scheme
	c.state = next
	if changed {
		c.Apply(ctx, c.state.Scheme)
	}
	return c.state
}

// Current returns the active scheme.
func (c *PreferenceController) Current() entity.ColorScheme {
	return c.state.Scheme
}

// State returns the active scheme together with its origin.
func (c *PreferenceController) State() entity.PreferenceState {
	return c.state
}

// HasExplicitChoice reports whether an explicit choice is in effect.
func (c *PreferenceController) HasExplicitChoice() bool {
	return c.state.Explicit
}

// Close drops the ambient subscription.
func (c *PreferenceController) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

func (c *PreferenceController) resolve(ctx context.Context) entity.PreferenceState {
	if stored, ok := c.loadStored(ctx); ok {
		return stored
	}
	return entity.ResolvePreference("", false, c.ambient.Read())
}

// loadStored returns the stored explicit state, if any. Store errors and
// unparseable values count as "nothing stored".
func (c *PreferenceController) loadStored(ctx context.Context) (entity.PreferenceState, bool) {
	log := logging.FromContext(ctx)

	value, ok, err := c.store.Load(ctx, port.PreferenceKey)
	if err != nil {
		log.Warn().Err(err).Msg("preference store unreadable, treating as empty")
		return entity.PreferenceState{}, false
	}
	if !ok {
		return entity.PreferenceState{}, false
	}

	scheme, err := entity.ParseColorScheme(value)
	if err != nil {
		log.Warn().Err(err).Msg("ignoring stored preference")
		return entity.PreferenceState{}, false
	}
	return entity.PreferenceState{Scheme: scheme, Explicit: true}, true
}

func (c *PreferenceController) persist(ctx context.Context) bool {
	log := logging.FromContext(ctx)

	if err := c.store.Save(ctx, port.PreferenceKey, c.state.Scheme.String()); err != nil {
		log.Warn().Err(err).Str("scheme", c.state.Scheme.String()).Msg("failed to persist color scheme")
		return false
	}
	return true
}
