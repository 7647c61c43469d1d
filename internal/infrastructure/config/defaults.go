package config

// Default configuration constants
const (
	defaultLogLevel  = "warn"
	defaultLogFormat = "console"
)

// DefaultConfig returns the default configuration. Paths left empty are
// resolved against the XDG directories at load time.
func DefaultConfig() *Config {
	return &Config{
		Appearance: AppearanceConfig{
			LightPalette: DefaultLightPalette(),
			DarkPalette:  DefaultDarkPalette(),
			Stylesheet:   true,
		},
		Ambient: AmbientConfig{
			Gsettings:        true,
			Env:              true,
			MonitorGsettings: true,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// DefaultLightPalette returns the light palette written to new config files.
func DefaultLightPalette() ColorPalette {
	return ColorPalette{
		Background:     "#fafafa",
		Surface:        "#f4f4f5",
		SurfaceVariant: "#e4e4e7",
		Text:           "#18181b",
		Muted:          "#71717a",
		Accent:         "#22c55e", // Green-500 - vibrant primary
		Border:         "#d4d4d8",
	}
}

// DefaultDarkPalette returns the dark palette written to new config files.
func DefaultDarkPalette() ColorPalette {
	return ColorPalette{
		Background:     "#0a0a0b",
		Surface:        "#18181b",
		SurfaceVariant: "#27272a",
		Text:           "#fafafa",
		Muted:          "#a1a1aa",
		Accent:         "#4ade80", // Green-400 - vibrant primary
		Border:         "#3f3f46",
	}
}
