package entity

import (
	"fmt"
	"strings"
)

// ColorScheme is the display preference: light or dark.
type ColorScheme string

const (
	ColorSchemeLight ColorScheme = "light"
	ColorSchemeDark  ColorScheme = "dark"
)

// Browser theme-color values applied alongside the scheme.
const (
	ThemeColorLight = "#ffffff"
	ThemeColorDark  = "#0f0f0f"
)

// Toggle icons. The icon shows the scheme the next toggle switches to.
const (
	ToggleIconMoon = "moon"
	ToggleIconSun  = "sun"
)

// Preference sources reported alongside a resolved state.
const (
	SourceStored  = "stored"
	SourceAmbient = "ambient"
)

// ParseColorScheme parses a stored or user supplied scheme name.
// Accepts "light", "dark", "prefer-light" and "prefer-dark", case-insensitive.
func ParseColorScheme(s string) (ColorScheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light", "prefer-light":
		return ColorSchemeLight, nil
	case "dark", "prefer-dark":
		return ColorSchemeDark, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidColorScheme, s)
	}
}

// FromPrefersDark maps an ambient "prefers dark" flag to a scheme.
func FromPrefersDark(prefersDark bool) ColorScheme {
	if prefersDark {
		return ColorSchemeDark
	}
	return ColorSchemeLight
}

// IsDark reports whether the scheme is dark.
func (c ColorScheme) IsDark() bool {
	return c == ColorSchemeDark
}

// Opposite returns the other scheme. Anything that is not dark flips to dark.
func (c ColorScheme) Opposite() ColorScheme {
	if c == ColorSchemeDark {
		return ColorSchemeLight
	}
	return ColorSchemeDark
}

func (c ColorScheme) String() string {
	return string(c)
}

// ThemeColor returns the browser theme-color for the scheme.
func (c ColorScheme) ThemeColor() string {
	if c.IsDark() {
		return ThemeColorDark
	}
	return ThemeColorLight
}

// ToggleIcon returns the icon name for a toggle button showing this scheme.
func (c ColorScheme) ToggleIcon() string {
	if c.IsDark() {
		return ToggleIconSun
	}
	return ToggleIconMoon
}

// PreferenceState is the controller's whole state: the active scheme and
// whether it comes from an explicit, stored user choice.
type PreferenceState struct {
	Scheme   ColorScheme
	Explicit bool
}

// ResolvePreference picks the effective state. A parseable stored value wins;
// otherwise the ambient flag decides.
func ResolvePreference(stored string, hasStored, ambientDark bool) PreferenceState {
	if hasStored {
		if scheme, err := ParseColorScheme(stored); err == nil {
			return PreferenceState{Scheme: scheme, Explicit: true}
		}
	}
	return PreferenceState{Scheme: FromPrefersDark(ambientDark)}
}

// Source names where the state came from.
func (s PreferenceState) Source() string {
	if s.Explicit {
		return SourceStored
	}
	return SourceAmbient
}

// Toggle flips the scheme. The result is always an explicit choice.
func (s PreferenceState) Toggle() PreferenceState {
	return PreferenceState{Scheme: s.Scheme.Opposite(), Explicit: true}
}

// OnAmbientChange applies an ambient change. Explicit states ignore it.
// The boolean reports whether the scheme changed.
func (s PreferenceState) OnAmbientChange(prefersDark bool) (PreferenceState, bool) {
	if s.Explicit {
		return s, false
	}
	next := PreferenceState{Scheme: FromPrefersDark(prefersDark)}
	return next, next.Scheme != s.Scheme
}
