package theme

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/dusk/internal/application/port"
	"github.com/bnema/dusk/internal/domain/entity"
	"github.com/bnema/dusk/internal/infrastructure/config"
	"github.com/bnema/dusk/internal/logging"
)

// Frame is everything a presentation output needs to render one scheme.
type Frame struct {
	Scheme     entity.ColorScheme
	Palette    Palette // active palette
	Light      Palette
	Dark       Palette
	ThemeColor string
	ToggleIcon string
}

// Output renders frames somewhere: a file, a terminal, a test recorder.
// Render must tolerate being called again with an identical frame.
type Output interface {
	Name() string
	Render(ctx context.Context, frame Frame) error
}

type observer struct {
	fn func(Frame)
}

// Manager is the presentation sink. It keeps the active scheme and palettes
// and fans every applied scheme out to its outputs and observers.
type Manager struct {
	mu           sync.RWMutex
	scheme       entity.ColorScheme
	applied      bool
	lightPalette Palette
	darkPalette  Palette
	outputs      []Output
	observers    []*observer
}

var _ port.PresentationSink = (*Manager)(nil)

// NewManager creates a new theme manager from configuration.
func NewManager(ctx context.Context, cfg *config.Config, outputs ...Output) *Manager {
	log := logging.FromContext(ctx)

	m := &Manager{
		scheme:       entity.ColorSchemeLight,
		lightPalette: DefaultLightPalette(),
		darkPalette:  DefaultDarkPalette(),
	}
	if cfg != nil {
		light, dark, err := palettesFromConfig(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("invalid palette, using defaults")
		} else {
			m.lightPalette, m.darkPalette = light, dark
		}
	}
	for _, o := range outputs {
		m.AddOutput(o)
	}

	log.Debug().Int("outputs", len(m.outputs)).Msg("theme manager initialized")
	return m
}

// AddOutput registers an output. It receives the next applied frame.
func (m *Manager) AddOutput(o Output) {
	if o == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outputs = append(m.outputs, o)
}

// OnApply registers a callback invoked after every Apply.
// Returns a function to unregister it.
func (m *Manager) OnApply(fn func(Frame)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	obs := &observer{fn: fn}
	m.observers = append(m.observers, obs)

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, o := range m.observers {
			if o == obs {
				m.observers = append(m.observers[:i], m.observers[i+1:]...)
				return
			}
		}
	}
}

// Apply implements port.PresentationSink. Output failures are logged; the
// scheme is still considered applied.
func (m *Manager) Apply(ctx context.Context, scheme entity.ColorScheme) {
	m.mu.Lock()
	m.scheme = scheme
	m.applied = true
	m.mu.Unlock()

	m.render(ctx)
}

// UpdateFromConfig swaps the palettes and re-renders the active scheme.
// Invalid palettes are rejected and the current ones kept.
func (m *Manager) UpdateFromConfig(ctx context.Context, cfg *config.Config) {
	log := logging.FromContext(ctx)

	if cfg == nil {
		return
	}
	light, dark, err := palettesFromConfig(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("ignoring palette update")
		return
	}

	m.mu.Lock()
	m.lightPalette = light
	m.darkPalette = dark
	applied := m.applied
	m.mu.Unlock()

	log.Info().Msg("theme palettes updated from config")

	if applied {
		m.render(ctx)
	}
}

func (m *Manager) render(ctx context.Context) {
	log := logging.FromContext(ctx)

	m.mu.RLock()
	frame := m.frameLocked()
	outputs := make([]Output, len(m.outputs))
	copy(outputs, m.outputs)
	observers := make([]*observer, len(m.observers))
	copy(observers, m.observers)
	m.mu.RUnlock()

	for _, o := range outputs {
		if err := o.Render(ctx, frame); err != nil {
			log.Warn().Err(err).Str("output", o.Name()).Msg("failed to render theme")
		}
	}
	for _, obs := range observers {
		obs.fn(frame)
	}

	log.Debug().
		Str("scheme", frame.Scheme.String()).
		Str("theme_color", frame.ThemeColor).
		Msg("theme applied")
}

// Frame returns the frame for the active scheme.
func (m *Manager) Frame() Frame {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.frameLocked()
}

func (m *Manager) frameLocked() Frame {
	palette := m.lightPalette
	if m.scheme.IsDark() {
		palette = m.darkPalette
	}
	return Frame{
		Scheme:     m.scheme,
		Palette:    palette,
		Light:      m.lightPalette,
		Dark:       m.darkPalette,
		ThemeColor: m.scheme.ThemeColor(),
		ToggleIcon: m.scheme.ToggleIcon(),
	}
}

// Scheme returns the last applied scheme.
func (m *Manager) Scheme() entity.ColorScheme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.scheme
}

func palettesFromConfig(cfg *config.Config) (light, dark Palette, err error) {
	light = PaletteFromConfig(&cfg.Appearance.LightPalette, false)
	if err := light.Validate(); err != nil {
		return Palette{}, Palette{}, fmt.Errorf("light palette: %w", err)
	}
	dark = PaletteFromConfig(&cfg.Appearance.DarkPalette, true)
	if err := dark.Validate(); err != nil {
		return Palette{}, Palette{}, fmt.Errorf("dark palette: %w", err)
	}
	return light, dark, nil
}
