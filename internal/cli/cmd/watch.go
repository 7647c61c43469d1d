package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"

	"github.com/bnema/dusk/internal/application/usecase"
	"github.com/bnema/dusk/internal/cli"
	"github.com/bnema/dusk/internal/domain/entity"
	"github.com/bnema/dusk/internal/infrastructure/colorscheme"
	"github.com/bnema/dusk/internal/infrastructure/config"
	"github.com/bnema/dusk/internal/logging"
	"github.com/bnema/dusk/internal/ui/mainloop"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow the desktop preference in the background",
	Long: `Run until interrupted, re-applying the scheme whenever the desktop's
preference changes and no explicit choice is stored.

Signals:
  SIGUSR1   toggle and store the choice
  SIGHUP    reload the stored choice (after 'dusk toggle' elsewhere)
  SIGINT    stop
  SIGTERM   stop

Config changes to palettes are re-rendered without a restart.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(logging.WithComponent(a.Ctx(), "watch"))
	defer cancel()
	log := logging.FromContext(ctx)

	// Everything touching the controller runs on the loop goroutine.
	loop := mainloop.New()
	coalescer := mainloop.NewCoalescer(func(fn func()) { loop.Post(fn) })
	defer coalescer.Destroy()

	controller := a.NewController(usecase.WithScheduler(mainloop.Dispatch(loop, runTask)))
	defer controller.Close()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, unix.SIGUSR1, unix.SIGHUP, unix.SIGINT, unix.SIGTERM)
	defer signal.Stop(signals)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return loop.Run(gctx)
	})

	loop.Post(func() {
		state := controller.Initialize(ctx)
		log.Info().
			Str("scheme", state.Scheme.String()).
			Str("source", a.SourceOf(state)).
			Int("pid", os.Getpid()).
			Msg("watching color scheme")
	})

	for _, monitor := range cli.MonitorsFor(a.Config) {
		g.Go(func() error {
			return runMonitor(gctx, monitor, func() {
				coalescer.Post(monitor.Name(), func() { a.Ambient.Refresh() })
			})
		})
	}

	watchConfig(ctx, a, loop)

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case sig := <-signals:
				if !handleSignal(ctx, loop, controller, sig) {
					log.Info().Str("signal", sig.String()).Msg("shutting down")
					cancel()
					return nil
				}
			}
		}
	})

	return g.Wait()
}

// signalTarget is the part of the controller driven by signals.
type signalTarget interface {
	Toggle(ctx context.Context) entity.ColorScheme
	Reload(ctx context.Context) entity.PreferenceState
}

// handleSignal posts the controller action for sig onto the loop. It returns
// false for signals that should stop the daemon.
func handleSignal(ctx context.Context, loop *mainloop.Loop, target signalTarget, sig os.Signal) bool {
	switch sig {
	case unix.SIGUSR1:
		loop.Post(func() { target.Toggle(ctx) })
	case unix.SIGHUP:
		loop.Post(func() {
			state := target.Reload(ctx)
			logging.FromContext(ctx).Info().Str("scheme", state.Scheme.String()).Msg("preference reloaded")
		})
	default:
		return false
	}
	return true
}

func runTask(fn func()) { fn() }

// runMonitor keeps a failing change source from stopping the daemon; the
// detectors still answer on SIGHUP and at the next start.
func runMonitor(ctx context.Context, monitor colorscheme.Monitor, onChange func()) error {
	log := logging.FromContext(logging.WithDetector(ctx, monitor.Name()))

	if err := monitor.Run(ctx, onChange); err != nil {
		log.Warn().Err(err).Msg("ambient monitor stopped")
	}
	return nil
}

// watchConfig re-renders the outputs with new palettes when the config file
// changes. Detector and path changes need a restart.
func watchConfig(ctx context.Context, a *cli.App, loop *mainloop.Loop) {
	if a.ConfigManager == nil {
		return
	}
	log := logging.FromContext(ctx)

	a.ConfigManager.OnConfigChange(mainloop.Dispatch(loop, func(cfg *config.Config) {
		a.Presenter.UpdateFromConfig(ctx, cfg)
		log.Info().Msg("configuration reloaded")
	}))
	if err := a.ConfigManager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch unavailable")
	}
}
