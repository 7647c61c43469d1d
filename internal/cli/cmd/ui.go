package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bnema/dusk/internal/application/usecase"
	"github.com/bnema/dusk/internal/cli"
	"github.com/bnema/dusk/internal/cli/model"
	"github.com/bnema/dusk/internal/logging"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Interactive light/dark toggle",
	Long: `Open a small terminal screen drawn in the active palette.

Press t or enter to toggle, ? for help and q to quit. The screen repaints
when the desktop preference changes while no explicit choice is stored.`,
	Args: cobra.NoArgs,
	RunE: runUI,
}

var errNoTerminal = errors.New("dusk ui needs an interactive terminal, use 'dusk toggle' instead")

func init() {
	rootCmd.AddCommand(uiCmd)
}

func runUI(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}
	ctx, cancel := context.WithCancel(logging.WithComponent(a.Ctx(), "ui"))
	defer cancel()

	// Ambient notifications reach the controller as messages on the
	// program's event loop, the goroutine that also handles key presses.
	var p *tea.Program
	schedule := model.Scheduler(func(msg tea.Msg) { p.Send(msg) })

	controller := a.NewController(usecase.WithScheduler(schedule))
	defer controller.Close()
	controller.Initialize(ctx)

	m := model.NewPreferenceModel(ctx, model.PreferenceModelConfig{
		Controller: controller,
		Frames:     a.Presenter,
		SourceOf:   a.SourceOf,
	})
	p = tea.NewProgram(m, tea.WithAltScreen())

	// Refresh runs on the monitor goroutines: Send blocks until the event
	// loop receives, so it must never be called from inside Update.
	for _, monitor := range cli.MonitorsFor(a.Config) {
		go func() {
			_ = runMonitor(ctx, monitor, func() { a.Ambient.Refresh() })
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
