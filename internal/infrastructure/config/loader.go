package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// DUSK_ prefix with dots mapped to underscores, e.g. DUSK_DATABASE_PATH.
	v.SetEnvPrefix("DUSK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Shorter names shared with the logger bootstrap.
	if err := v.BindEnv("logging.level", "DUSK_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DUSK_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DUSK_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DUSK_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created with defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	return m.decode()
}

// decode unmarshals, fills derived paths and validates. Caller holds m.mu.
func (m *Manager) decode() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	if err := ResolvePaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

// ResolvePaths fills empty paths with their XDG defaults and expands "~".
func ResolvePaths(config *Config) error {
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	if config.Appearance.StylesheetPath == "" {
		cssPath, err := GetStylesheetFile()
		if err != nil {
			return fmt.Errorf("failed to get stylesheet path: %w", err)
		}
		config.Appearance.StylesheetPath = cssPath
	}
	if config.Ambient.OverrideFile == "" {
		overridePath, err := GetOverrideFile()
		if err != nil {
			return fmt.Errorf("failed to get override file path: %w", err)
		}
		config.Ambient.OverrideFile = overridePath
	}

	config.Database.Path = expandHome(config.Database.Path)
	config.Appearance.StylesheetPath = expandHome(config.Appearance.StylesheetPath)
	config.Ambient.OverrideFile = expandHome(config.Ambient.OverrideFile)
	return nil
}

func expandHome(path string) string {
	path = strings.TrimSpace(path)
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}

	normalizePalette(&config.Appearance.LightPalette)
	normalizePalette(&config.Appearance.DarkPalette)
}

func normalizePalette(p *ColorPalette) {
	for _, field := range []*string{
		&p.Background, &p.Surface, &p.SurfaceVariant, &p.Text, &p.Muted, &p.Accent, &p.Border,
	} {
		*field = strings.ToLower(strings.TrimSpace(*field))
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper. Every key gets a
// default so AutomaticEnv can resolve it.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setAppearanceDefaults(defaults)
	m.setAmbientDefaults(defaults)
	m.viper.SetDefault("database.path", defaults.Database.Path)
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.setPaletteDefaults("appearance.light_palette", defaults.Appearance.LightPalette)
	m.setPaletteDefaults("appearance.dark_palette", defaults.Appearance.DarkPalette)
	m.viper.SetDefault("appearance.stylesheet", defaults.Appearance.Stylesheet)
	m.viper.SetDefault("appearance.stylesheet_path", defaults.Appearance.StylesheetPath)
}

func (m *Manager) setPaletteDefaults(prefix string, p ColorPalette) {
	m.viper.SetDefault(prefix+".background", p.Background)
	m.viper.SetDefault(prefix+".surface", p.Surface)
	m.viper.SetDefault(prefix+".surface_variant", p.SurfaceVariant)
	m.viper.SetDefault(prefix+".text", p.Text)
	m.viper.SetDefault(prefix+".muted", p.Muted)
	m.viper.SetDefault(prefix+".accent", p.Accent)
	m.viper.SetDefault(prefix+".border", p.Border)
}

func (m *Manager) setAmbientDefaults(defaults *Config) {
	m.viper.SetDefault("ambient.gsettings", defaults.Ambient.Gsettings)
	m.viper.SetDefault("ambient.env", defaults.Ambient.Env)
	m.viper.SetDefault("ambient.override_file", defaults.Ambient.OverrideFile)
	m.viper.SetDefault("ambient.monitor_gsettings", defaults.Ambient.MonitorGsettings)
	m.viper.SetDefault("ambient.schedule.dark", defaults.Ambient.Schedule.Dark)
	m.viper.SetDefault("ambient.schedule.light", defaults.Ambient.Schedule.Light)
}
