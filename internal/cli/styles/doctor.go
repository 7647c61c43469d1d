package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	statusYes = "Yes"
	statusNo  = "No"
)

// DoctorRenderer renders the ambient detector report.
type DoctorRenderer struct {
	theme *Theme
}

// NewDoctorRenderer creates a new doctor renderer with the given theme.
func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

type DoctorReport struct {
	Detectors []DoctorDetector
	// Winner is the detector whose answer is in effect, or "fallback".
	Winner      string
	PrefersDark bool
	Monitors    []string
	Database    DoctorDatabase
}

type DoctorDetector struct {
	Name      string
	Priority  int
	Available bool
	Answered  bool
	Dark      bool
}

type DoctorDatabase struct {
	Path  string
	OK    bool
	Error string
}

// OK reports whether at least one detector answered and the store opened.
func (d DoctorReport) OK() bool {
	return d.Winner != "" && d.Winner != "fallback" && d.Database.OK
}

func (r *DoctorRenderer) Render(report DoctorReport) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		r.renderHeader(report.OK()),
		"",
		r.renderDetectors(report),
		"",
		r.renderDatabase(report.Database),
	)
}

func (r *DoctorRenderer) renderHeader(ok bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	if !ok {
		statusStyle = r.theme.WarningStyle
		statusText = "Needs attention"
	}

	title := fmt.Sprintf("%s %s", iconStyle.Render(IconDoctor), r.theme.Title.Render("Doctor"))
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge)
}

func (r *DoctorRenderer) renderDetectors(report DoctorReport) string {
	lines := make([]string, 0, len(report.Detectors)+3)

	for _, d := range report.Detectors {
		lines = append(lines, r.renderDetector(d, d.Name == report.Winner))
	}
	if len(report.Detectors) == 0 {
		lines = append(lines, r.theme.Subtle.Render("no detectors enabled"))
	}

	answer := "light"
	if report.PrefersDark {
		answer = "dark"
	}
	lines = append(lines, "", fmt.Sprintf("%s %s %s",
		r.theme.Subtle.Render("Ambient"),
		r.theme.Highlight.Render(answer),
		r.theme.Subtle.Render("via "+report.Winner),
	))
	if len(report.Monitors) > 0 {
		lines = append(lines, fmt.Sprintf("%s %s",
			r.theme.Subtle.Render("Monitors"),
			r.theme.Normal.Render(strings.Join(report.Monitors, ", ")),
		))
	}

	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s Detectors", r.theme.Highlight.Render(IconEye)))
	return r.theme.Box.Render(header + "\n" + strings.Join(lines, "\n"))
}

func (r *DoctorRenderer) renderDetector(d DoctorDetector, winner bool) string {
	icon := IconCheck
	statusStyle := r.theme.SuccessStyle
	available := statusYes

	if !d.Available {
		icon = IconX
		statusStyle = r.theme.Subtle
		available = statusNo
	}

	answer := "-"
	switch {
	case d.Answered && d.Dark:
		answer = "dark"
	case d.Answered:
		answer = "light"
	case d.Available:
		icon = IconWarning
		statusStyle = r.theme.WarningStyle
		answer = "no answer"
	}

	line := fmt.Sprintf("%s %-14s %s %s %s %s",
		statusStyle.Render(icon),
		r.theme.Normal.Render(d.Name),
		r.theme.Subtle.Render(fmt.Sprintf("prio %-3d", d.Priority)),
		r.theme.Subtle.Render("available"),
		r.theme.Normal.Render(available),
		r.theme.Highlight.Render(answer),
	)
	if winner {
		line += " " + r.theme.Badge.Render("in effect")
	}
	return line
}

func (r *DoctorRenderer) renderDatabase(db DoctorDatabase) string {
	icon := IconCheck
	statusStyle := r.theme.SuccessStyle
	status := "OK"
	if !db.OK {
		icon = IconWarning
		statusStyle = r.theme.WarningStyle
		status = "unavailable, explicit choices will not persist"
	}

	lines := []string{
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("Path"), r.theme.Normal.Render(db.Path)),
		fmt.Sprintf("%s %s", statusStyle.Render(icon), statusStyle.Render(status)),
	}
	if db.Error != "" {
		lines = append(lines, r.theme.ErrorStyle.Render(db.Error))
	}

	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s Preference store", r.theme.Highlight.Render(IconDatabase)))
	return r.theme.Box.Render(header + "\n" + strings.Join(lines, "\n"))
}
