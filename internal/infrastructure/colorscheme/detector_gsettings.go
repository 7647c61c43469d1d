package colorscheme

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

const (
	detectorNameGsettings = "gsettings"
	priorityGsettings     = 10

	gsettingsSchema = "org.gnome.desktop.interface"
	gsettingsKey    = "color-scheme"

	gsettingsTimeout = 2 * time.Second
)

// GsettingsDetector detects color scheme from GNOME gsettings.
// This is the most reliable method for GNOME-based desktops.
type GsettingsDetector struct {
	lookPath func(string) (string, error)
	output   func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// NewGsettingsDetector creates a new gsettings-based detector.
func NewGsettingsDetector() *GsettingsDetector {
	return &GsettingsDetector{
		lookPath: exec.LookPath,
		output: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).Output()
		},
	}
}

// Name implements port.ColorSchemeDetector.
func (*GsettingsDetector) Name() string {
	return detectorNameGsettings
}

// Priority implements port.ColorSchemeDetector.
func (*GsettingsDetector) Priority() int {
	return priorityGsettings
}

// Available implements port.ColorSchemeDetector.
// Returns true if gsettings command is available.
func (d *GsettingsDetector) Available() bool {
	_, err := d.lookPath("gsettings")
	return err == nil
}

// Detect implements port.ColorSchemeDetector.
// Queries org.gnome.desktop.interface color-scheme.
func (d *GsettingsDetector) Detect() (prefersDark, ok bool) {
	ctx, cancel := context.WithTimeout(context.Background(), gsettingsTimeout)
	defer cancel()

	output, err := d.output(ctx, "gsettings", "get", gsettingsSchema, gsettingsKey)
	if err != nil {
		return false, false
	}
	return parseGsettingsValue(string(output))
}

// parseGsettingsValue parses "'prefer-dark'\n" style output. "default" means
// the desktop expresses no preference, which is not an answer.
func parseGsettingsValue(raw string) (prefersDark, ok bool) {
	result := strings.TrimSpace(raw)
	// `gsettings monitor` prefixes the value with "color-scheme: "
	result = strings.TrimPrefix(result, gsettingsKey+":")
	result = strings.TrimSpace(result)
	result = strings.Trim(result, "'\"")

	switch result {
	case "prefer-dark":
		return true, true
	case "prefer-light":
		return false, true
	default:
		return false, false
	}
}
