// Package cli wires dusk's collaborators for the command-line interface.
package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bnema/dusk/internal/application/port"
	"github.com/bnema/dusk/internal/application/usecase"
	"github.com/bnema/dusk/internal/cli/styles"
	"github.com/bnema/dusk/internal/domain/build"
	"github.com/bnema/dusk/internal/domain/entity"
	"github.com/bnema/dusk/internal/infrastructure/colorscheme"
	"github.com/bnema/dusk/internal/infrastructure/config"
	"github.com/bnema/dusk/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dusk/internal/logging"
	"github.com/bnema/dusk/internal/ui/theme"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager // nil when the config file could not be loaded
	Theme         *styles.Theme
	BuildInfo     build.Info

	DB        *sqlite.LazyDB
	Store     port.PreferenceStore
	Ambient   *colorscheme.Resolver
	Presenter *theme.Manager

	// Context with logger
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies. It does not
// fail: a broken config falls back to defaults and a broken database only
// disables persistence.
func NewApp() (*App, error) {
	cfg, mgr, cfgErr := loadConfig()

	var logger zerolog.Logger
	if cfgErr != nil {
		// Without a config only the environment can set the log level.
		logger = logging.NewFromEnv()
		logger.Warn().Err(cfgErr).Msg("using default configuration")
	} else {
		logger = logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	}
	ctx := logging.WithContext(context.Background(), logger)

	db := sqlite.NewLazyDB(cfg.Database.Path)
	presenter := theme.NewManager(ctx, cfg, outputsFor(cfg)...)

	app := &App{
		Config:        cfg,
		ConfigManager: mgr,
		DB:            db,
		Store:         sqlite.NewPreferenceStore(db),
		Ambient:       colorscheme.NewResolver(DetectorsFor(ctx, cfg)...),
		Presenter:     presenter,
		ctx:           ctx,
	}
	app.RefreshTheme()
	presenter.OnApply(func(frame theme.Frame) {
		app.Theme = styles.NewTheme(frame)
	})

	logger.Debug().
		Str("db_path", cfg.Database.Path).
		Int("detectors", len(app.Ambient.Detectors())).
		Msg("app initialized")

	return app, nil
}

// DetectorsFor builds the ambient detectors enabled in cfg. The override
// file is always consulted; a missing file simply does not answer.
func DetectorsFor(ctx context.Context, cfg *config.Config) []port.ColorSchemeDetector {
	detectors := []port.ColorSchemeDetector{colorscheme.NewFileDetector(cfg.Ambient.OverrideFile)}
	if schedule, err := scheduleFor(cfg); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("ambient schedule disabled")
	} else if schedule != nil {
		detectors = append(detectors, schedule)
	}
	if cfg.Ambient.Env {
		detectors = append(detectors, colorscheme.NewEnvDetector())
	}
	if cfg.Ambient.Gsettings {
		detectors = append(detectors, colorscheme.NewGsettingsDetector())
	}
	return detectors
}

// MonitorsFor builds the change sources that trigger a resolver refresh.
func MonitorsFor(cfg *config.Config) []colorscheme.Monitor {
	monitors := []colorscheme.Monitor{colorscheme.NewFileWatcher(cfg.Ambient.OverrideFile)}
	if schedule, err := scheduleFor(cfg); err == nil && schedule != nil {
		monitors = append(monitors, colorscheme.NewScheduleMonitor(schedule))
	}
	if cfg.Ambient.Gsettings && cfg.Ambient.MonitorGsettings {
		monitors = append(monitors, colorscheme.NewGsettingsMonitor())
	}
	return monitors
}

// scheduleFor returns nil without error when no schedule is configured.
func scheduleFor(cfg *config.Config) (*colorscheme.ScheduleDetector, error) {
	if !cfg.Ambient.Schedule.Enabled() {
		return nil, nil
	}
	return colorscheme.NewScheduleDetector(cfg.Ambient.Schedule.Dark, cfg.Ambient.Schedule.Light)
}

func outputsFor(cfg *config.Config) []theme.Output {
	if !cfg.Appearance.Stylesheet || cfg.Appearance.StylesheetPath == "" {
		return nil
	}
	return []theme.Output{
		theme.NewStylesheetOutput(cfg.Appearance.StylesheetPath),
		theme.NewStateOutput(StatePath(cfg.Appearance.StylesheetPath)),
	}
}

// StatePath returns the JSON state file written next to a stylesheet.
func StatePath(stylesheetPath string) string {
	return strings.TrimSuffix(stylesheetPath, filepath.Ext(stylesheetPath)) + ".json"
}

// NewController creates a preference controller over the app's collaborators.
func (a *App) NewController(opts ...usecase.PreferenceControllerOption) *usecase.PreferenceController {
	return usecase.NewPreferenceController(a.Store, a.Ambient, a.Presenter, opts...)
}

// SourceOf names where a state came from: "stored", or the ambient detector
// that answered.
func (a *App) SourceOf(state entity.PreferenceState) string {
	if state.Explicit {
		return entity.SourceStored
	}
	return a.Ambient.Current().Source
}

// RefreshTheme rebuilds the CLI styles from the presenter's active palette.
// Every Apply on the presenter does the same through its observer.
func (a *App) RefreshTheme() {
	a.Theme = styles.NewTheme(a.Presenter.Frame())
}

// Close releases all resources.
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations. On failure it
// returns defaults with resolved paths together with the error.
func loadConfig() (*config.Config, *config.Manager, error) {
	mgr, err := config.NewManager()
	if err == nil {
		err = mgr.Load()
	}
	if err == nil {
		return mgr.Get(), mgr, nil
	}

	cfg := config.DefaultConfig()
	_ = config.ResolvePaths(cfg)
	return cfg, nil, err
}
