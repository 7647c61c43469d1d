package port

//go:generate mockgen -source=color_scheme.go -destination=mocks/mock_color_scheme.go -package=mock_port

import (
	"context"

	"github.com/bnema/dusk/internal/domain/entity"
)

// PreferenceKey is the store slot holding the explicit color scheme choice.
const PreferenceKey = "theme"

// ColorSchemePreference represents the host's ambient color scheme preference.
type ColorSchemePreference struct {
	// PrefersDark indicates whether dark mode is preferred.
	PrefersDark bool

	// Source identifies which detector provided this preference.
	Source string
}

// ColorSchemeDetector detects the system's color scheme preference.
// Multiple detectors can be registered with different priorities.
type ColorSchemeDetector interface {
	// Name returns a human-readable name for this detector.
	Name() string

	// Priority returns the detector's priority.
	// Higher values = higher priority (checked first).
	// Recommended ranges:
	//   - 50+: user override files
	//   - 10+: desktop settings (gsettings, env vars)
	Priority() int

	// Available returns true if this detector can be used on this host.
	Available() bool

	// Detect returns the detected preference and whether detection succeeded.
	Detect() (prefersDark bool, ok bool)
}

// AmbientSignal is the host's read-only "prefers dark" flag.
type AmbientSignal interface {
	// Read returns the current flag. Hosts that cannot answer report false.
	Read() bool

	// Subscribe registers a callback invoked whenever the flag changes.
	// Returns a function to unregister the callback.
	Subscribe(callback func(prefersDark bool)) func()
}

// PresentationSink receives the active scheme. It is write-only.
type PresentationSink interface {
	Apply(ctx context.Context, scheme entity.ColorScheme)
}

// PreferenceStore is a durable string key-value slot.
type PreferenceStore interface {
	// Load returns the value and true, or "" and false when the key is absent.
	Load(ctx context.Context, key string) (string, bool, error)

	// Save overwrites the value stored under key.
	Save(ctx context.Context, key, value string) error
}
