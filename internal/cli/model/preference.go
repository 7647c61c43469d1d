// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dusk/internal/cli/styles"
	"github.com/bnema/dusk/internal/domain/entity"
	"github.com/bnema/dusk/internal/logging"
	"github.com/bnema/dusk/internal/ui/theme"
)

// pressDuration is how long the toggle button stays in its pressed style.
const pressDuration = 150 * time.Millisecond

// PreferenceController is the part of the preference controller the
// toggle screen drives.
type PreferenceController interface {
	Toggle(ctx context.Context) entity.ColorScheme
	State() entity.PreferenceState
}

// FrameSource exposes the frame last applied to the presentation sink.
type FrameSource interface {
	Frame() theme.Frame
}

// runMsg carries a closure onto the Bubble Tea event loop.
type runMsg struct {
	fn func()
}

// releaseMsg ends the pressed state of the toggle button. Only the release
// matching the latest press is honored.
type releaseMsg struct {
	seq int
}

// Scheduler returns a function that runs closures on the program's event
// loop. Pass it to usecase.WithScheduler so ambient changes reach the
// controller on the same goroutine as key presses.
func Scheduler(send func(tea.Msg)) func(func()) {
	return func(fn func()) {
		send(runMsg{fn: fn})
	}
}

// PreferenceModel is the Bubble Tea model for the interactive toggle.
type PreferenceModel struct {
	// UI components
	help help.Model
	keys preferenceKeyMap

	// State
	state    entity.PreferenceState
	pressed  bool
	pressSeq int
	width    int
	height   int

	// Dependencies
	ctx        context.Context
	controller PreferenceController
	frames     FrameSource
	sourceOf   func(entity.PreferenceState) string
	theme      *styles.Theme
}

// preferenceKeyMap defines keybindings for the toggle screen.
type preferenceKeyMap struct {
	Toggle key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k preferenceKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k preferenceKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle},
		{k.Help, k.Quit},
	}
}

func defaultPreferenceKeyMap() preferenceKeyMap {
	return preferenceKeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("t", "enter", " "),
			key.WithHelp("t/enter", "toggle"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PreferenceModelConfig holds the dependencies of the toggle screen.
type PreferenceModelConfig struct {
	Controller PreferenceController
	Frames     FrameSource
	// SourceOf names the origin of a state; defaults to its Source().
	SourceOf func(entity.PreferenceState) string
}

// NewPreferenceModel creates the toggle screen. The controller must already
// be initialized.
func NewPreferenceModel(ctx context.Context, cfg PreferenceModelConfig) PreferenceModel {
	sourceOf := cfg.SourceOf
	if sourceOf == nil {
		sourceOf = entity.PreferenceState.Source
	}

	m := PreferenceModel{
		help:       help.New(),
		keys:       defaultPreferenceKeyMap(),
		width:      80,
		height:     24,
		ctx:        ctx,
		controller: cfg.Controller,
		frames:     cfg.Frames,
		sourceOf:   sourceOf,
	}
	m.sync()
	return m
}

// Init implements tea.Model.
func (m PreferenceModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PreferenceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case runMsg:
		if msg.fn != nil {
			msg.fn()
		}
		m.sync()
		return m, nil

	case releaseMsg:
		if msg.seq == m.pressSeq {
			m.pressed = false
		}
		return m, nil
	}

	return m, nil
}

func (m PreferenceModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		return m.toggle()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m PreferenceModel) toggle() (tea.Model, tea.Cmd) {
	scheme := m.controller.Toggle(m.ctx)
	logging.FromContext(m.ctx).Debug().Str("scheme", scheme.String()).Msg("toggled from ui")

	m.pressed = true
	m.pressSeq++
	m.sync()

	seq := m.pressSeq
	return m, tea.Tick(pressDuration, func(time.Time) tea.Msg {
		return releaseMsg{seq: seq}
	})
}

// sync pulls the controller state and restyles from the applied frame, which
// also picks up palette changes from a config reload.
func (m *PreferenceModel) sync() {
	m.state = m.controller.State()
	frame := m.frames.Frame()
	if frame.Scheme == "" {
		frame.Scheme = m.state.Scheme
	}
	m.theme = styles.NewTheme(frame)
}

// View implements tea.Model.
func (m PreferenceModel) View() string {
	t := m.theme
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderButton())
	b.WriteString("\n\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return t.Page.Width(m.width).Render(b.String())
}

func (m PreferenceModel) renderHeader() string {
	t := m.theme

	icon := lipgloss.NewStyle().Foreground(t.Accent).Render(styles.IconPalette)
	title := t.Title.MarginLeft(1).Render("dusk")

	return icon + title
}

func (m PreferenceModel) renderButton() string {
	t := m.theme

	style := t.Button
	if m.pressed {
		style = t.ButtonPressed
	}

	label := fmt.Sprintf("%s  %s mode", styles.ToggleGlyph(m.state.Scheme), m.state.Scheme.Opposite())
	return style.Render(label)
}

func (m PreferenceModel) renderStatus() string {
	t := m.theme

	source := m.sourceOf(m.state)
	badge := t.BadgeMuted
	if m.state.Explicit {
		badge = t.Badge
	}

	return fmt.Sprintf("%s %s  %s",
		t.Normal.Render("Current: "+m.state.Scheme.String()),
		badge.Render(source),
		t.Subtle.Render("theme-color "+m.state.Scheme.ThemeColor()),
	)
}

// State returns the state last read from the controller.
func (m PreferenceModel) State() entity.PreferenceState {
	return m.state
}

// Pressed reports whether the toggle button shows its pressed style.
func (m PreferenceModel) Pressed() bool {
	return m.pressed
}
