// Package config loads dusk's TOML configuration through Viper.
package config

// File permission constants
const (
	dirPerm  = 0o755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0o644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for dusk.
type Config struct {
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
	Ambient    AmbientConfig    `mapstructure:"ambient" toml:"ambient" json:"ambient"`
	Database   DatabaseConfig   `mapstructure:"database" toml:"database" json:"database"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
}

// AppearanceConfig holds the palettes and the stylesheet output.
type AppearanceConfig struct {
	LightPalette ColorPalette `mapstructure:"light_palette" toml:"light_palette" json:"light_palette"`
	DarkPalette  ColorPalette `mapstructure:"dark_palette" toml:"dark_palette" json:"dark_palette"`
	// Stylesheet enables the generated CSS output.
	Stylesheet bool `mapstructure:"stylesheet" toml:"stylesheet" json:"stylesheet"`
	// StylesheetPath defaults to $XDG_STATE_HOME/dusk/theme.css.
	StylesheetPath string `mapstructure:"stylesheet_path" toml:"stylesheet_path" json:"stylesheet_path" jsonschema:"description=Generated stylesheet path"`
}

// ColorPalette contains semantic color tokens for light/dark themes.
type ColorPalette struct {
	Background     string `mapstructure:"background" toml:"background" json:"background" validate:"required,hex6"`
	Surface        string `mapstructure:"surface" toml:"surface" json:"surface" validate:"required,hex6"`
	SurfaceVariant string `mapstructure:"surface_variant" toml:"surface_variant" json:"surface_variant" validate:"required,hex6"`
	Text           string `mapstructure:"text" toml:"text" json:"text" validate:"required,hex6"`
	Muted          string `mapstructure:"muted" toml:"muted" json:"muted" validate:"required,hex6"`
	Accent         string `mapstructure:"accent" toml:"accent" json:"accent" validate:"required,hex6"`
	Border         string `mapstructure:"border" toml:"border" json:"border" validate:"required,hex6"`
}

// AmbientConfig selects where the host's dark preference is read from.
type AmbientConfig struct {
	// Gsettings enables the org.gnome.desktop.interface color-scheme detector.
	Gsettings bool `mapstructure:"gsettings" toml:"gsettings" json:"gsettings"`
	// Env enables the GTK_THEME detector.
	Env bool `mapstructure:"env" toml:"env" json:"env"`
	// OverrideFile holds "dark" or "light" and outranks desktop settings.
	// Defaults to $XDG_STATE_HOME/dusk/ambient.
	OverrideFile string `mapstructure:"override_file" toml:"override_file" json:"override_file"`
	// MonitorGsettings follows `gsettings monitor` in the watch daemon.
	MonitorGsettings bool `mapstructure:"monitor_gsettings" toml:"monitor_gsettings" json:"monitor_gsettings"`
	// Schedule switches the ambient preference on a timetable.
	Schedule ScheduleConfig `mapstructure:"schedule" toml:"schedule" json:"schedule"`
}

// ScheduleConfig holds two cron expressions (five fields or @descriptors).
// Both empty disables the schedule; setting only one is an error.
type ScheduleConfig struct {
	Dark  string `mapstructure:"dark" toml:"dark" json:"dark" validate:"omitempty,cronspec" jsonschema:"description=When to switch to dark, e.g. 0 19 * * *"`
	Light string `mapstructure:"light" toml:"light" json:"light" validate:"omitempty,cronspec" jsonschema:"description=When to switch to light, e.g. 0 7 * * *"`
}

// Enabled reports whether both switch times are set.
func (s ScheduleConfig) Enabled() bool {
	return s.Dark != "" && s.Light != ""
}

// DatabaseConfig holds the preference database location.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path" validate:"required"`
}

// LoggingConfig holds logging options.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" validate:"oneof=trace debug info warn warning error disabled off" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" toml:"format" json:"format" validate:"oneof=console text json" jsonschema:"enum=console,enum=text,enum=json"`
}
