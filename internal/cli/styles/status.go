package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dusk/internal/domain/entity"
)

// StatusRenderer renders the effective preference for `get` and `toggle`.
type StatusRenderer struct {
	theme *Theme
}

// NewStatusRenderer creates a new status renderer with the given theme.
func NewStatusRenderer(theme *Theme) *StatusRenderer {
	return &StatusRenderer{theme: theme}
}

// Render renders scheme, source, theme-color and the toggle icon on one line.
func (r *StatusRenderer) Render(state entity.PreferenceState, source string) string {
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(state.Scheme.ThemeColor())).
		Render("  ")

	return fmt.Sprintf("%s %s %s %s %s %s",
		r.theme.Highlight.Render(ToggleGlyph(state.Scheme)),
		r.theme.Title.Render(state.Scheme.String()),
		r.theme.BadgeMuted.Render(source),
		swatch,
		r.theme.Subtle.Render(state.Scheme.ThemeColor()),
		r.theme.Subtle.Render("next: "+state.Scheme.Opposite().String()),
	)
}
