package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Database.Path = "/tmp/dusk.sqlite"
	return cfg
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:      "short hex",
			mutate:    func(c *Config) { c.Appearance.LightPalette.Accent = "#fff" },
			wantField: "appearance.light_palette.accent",
		},
		{
			name:      "empty palette color",
			mutate:    func(c *Config) { c.Appearance.DarkPalette.Border = "" },
			wantField: "appearance.dark_palette.border",
		},
		{
			name:      "unknown log level",
			mutate:    func(c *Config) { c.Logging.Level = "loud" },
			wantField: "logging.level",
		},
		{
			name:      "unknown log format",
			mutate:    func(c *Config) { c.Logging.Format = "xml" },
			wantField: "logging.format",
		},
		{
			name: "schedule",
			mutate: func(c *Config) {
				c.Ambient.Schedule = ScheduleConfig{Dark: "0 19 * * *", Light: "@daily"}
			},
		},
		{
			name: "bad schedule expression",
			mutate: func(c *Config) {
				c.Ambient.Schedule = ScheduleConfig{Dark: "at dusk", Light: "0 7 * * *"}
			},
			wantField: "ambient.schedule.dark",
		},
		{
			name:      "half a schedule",
			mutate:    func(c *Config) { c.Ambient.Schedule.Light = "0 7 * * *" },
			wantField: "ambient.schedule",
		},
		{
			name:      "missing database path",
			mutate:    func(c *Config) { c.Database.Path = "" },
			wantField: "database.path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestValidateConfig_ReportsEveryField(t *testing.T) {
	cfg := validConfig()
	cfg.Appearance.LightPalette.Text = "red"
	cfg.Appearance.DarkPalette.Text = "blue"

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "appearance.light_palette.text")
	assert.Contains(t, err.Error(), "appearance.dark_palette.text")
}

func TestValidateConfig_Nil(t *testing.T) {
	assert.Error(t, validateConfig(nil))
}

func TestIsHexColor(t *testing.T) {
	assert.True(t, IsHexColor("#0f0f0f"))
	assert.True(t, IsHexColor("#ABCDEF"))
	assert.False(t, IsHexColor("0f0f0f"))
	assert.False(t, IsHexColor("#fff"))
	assert.False(t, IsHexColor("#12345g"))
}
