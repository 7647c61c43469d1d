package config

import (
	"os"
	"path/filepath"
)

const (
	appName        = "dusk"
	configName     = "config.toml"
	databaseName   = "dusk.sqlite"
	stylesheetName = "theme.css"
	overrideName   = "ambient"
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
	StateHome  string
}

// GetXDGDirs returns the XDG Base Directory paths for dusk.
// It follows the XDG Base Directory specification:
// - $XDG_CONFIG_HOME/dusk (default: ~/.config/dusk)
// - $XDG_DATA_HOME/dusk (default: ~/.local/share/dusk)
// - $XDG_STATE_HOME/dusk (default: ~/.local/state/dusk)
func GetXDGDirs() (*XDGDirs, error) {
	// Development mode: use .dev directory in current working directory
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{
			ConfigHome: devDir,
			DataHome:   devDir,
			StateHome:  devDir,
		}, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return &XDGDirs{
		ConfigHome: xdgDir("XDG_CONFIG_HOME", homeDir, ".config"),
		DataHome:   xdgDir("XDG_DATA_HOME", homeDir, ".local", "share"),
		StateHome:  xdgDir("XDG_STATE_HOME", homeDir, ".local", "state"),
	}, nil
}

func xdgDir(env, home string, fallback ...string) string {
	base := os.Getenv(env)
	if base == "" {
		base = filepath.Join(append([]string{home}, fallback...)...)
	}
	return filepath.Join(base, appName)
}

// GetConfigDir returns the XDG config directory for dusk.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configName), nil
}

// GetDatabaseFile returns the path to the preference database. The explicit
// choice is user data, so it lives in XDG_DATA_HOME.
func GetDatabaseFile() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.DataHome, databaseName), nil
}

// GetStylesheetFile returns the default generated stylesheet path.
func GetStylesheetFile() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.StateHome, stylesheetName), nil
}

// GetOverrideFile returns the default ambient override file path.
func GetOverrideFile() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.StateHome, overrideName), nil
}

// EnsureDirectories creates the XDG directories if they don't exist.
func EnsureDirectories() error {
	dirs, err := GetXDGDirs()
	if err != nil {
		return err
	}

	for _, dir := range []string{dirs.ConfigHome, dirs.DataHome, dirs.StateHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}
	return nil
}
