// Package styles provides reusable lipgloss-based TUI components.
package styles

import "github.com/bnema/dusk/internal/domain/entity"

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
	IconGo        = "\ue627" // go gopher
	IconArrow     = "\uf061" // arrow right

	// Doctor / diagnostics
	IconDoctor  = "\uf0f1" // stethoscope
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconEye     = "\uf06e" // eye (detectors)

	// Filesystem
	IconFolder   = "\uf07b" // folder
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconFile     = "\uf15b" // file

	// Color scheme
	IconMoon    = "\uf186" // moon
	IconSun     = "\uf185" // sun
	IconPalette = "\ue22b" // palette
)

// ToggleGlyph maps the toggle icon name of a scheme to its glyph.
func ToggleGlyph(scheme entity.ColorScheme) string {
	if scheme.ToggleIcon() == entity.ToggleIconSun {
		return IconSun
	}
	return IconMoon
}
