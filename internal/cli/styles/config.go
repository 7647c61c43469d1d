package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config locations with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// ConfigPaths lists the files dusk reads and writes.
type ConfigPaths struct {
	ConfigFile   string
	Database     string
	Stylesheet   string
	StateFile    string
	OverrideFile string
}

// RenderPaths renders every path with its icon.
func (r *ConfigRenderer) RenderPaths(p ConfigPaths) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Normal

	row := func(icon, label, value string) string {
		if value == "" {
			value = r.theme.Subtle.Render("(disabled)")
		} else {
			value = valStyle.Render(value)
		}
		return fmt.Sprintf("  %s %-10s %s", iconStyle.Render(icon), keyStyle.Render(label), value)
	}

	lines := []string{
		row(IconConfig, "Config", p.ConfigFile),
		row(IconDatabase, "Database", p.Database),
		row(IconPalette, "Stylesheet", p.Stylesheet),
		row(IconFile, "State", p.StateFile),
		row(IconEye, "Override", p.OverrideFile),
	}
	return "\n" + strings.Join(lines, "\n") + "\n"
}
