package theme

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/dusk/internal/domain/entity"
)

const (
	outputDirPerm  = 0o755
	outputFilePerm = 0o644
)

// GenerateStylesheet renders the CSS for a frame. Both palettes are always
// present: `:root` carries light, `[data-theme="dark"]` carries dark.
//
// CSS cannot set an attribute, so the data-theme flag itself lives in the
// JSON state file: pages that want the attribute selector set data-theme on
// their root element from its data_theme field. Pages that do not set it get
// the active scheme through `:root:not([data-theme])`, where --data-theme
// carries the flag as a custom property.
func GenerateStylesheet(frame Frame) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "/* Generated by dusk. data-theme: %s; theme-color: %s */\n", frame.Scheme, frame.ThemeColor)
	sb.WriteString("/* Set data-theme on <html> from data_theme in the JSON state file next to\n")
	sb.WriteString("   this stylesheet, or leave it unset to follow the active scheme. */\n\n")

	sb.WriteString(":root {\n")
	sb.WriteString("  color-scheme: light;\n")
	sb.WriteString("  --theme-color: " + entity.ColorSchemeLight.ThemeColor() + ";\n")
	sb.WriteString(frame.Light.ToCSSVars())
	sb.WriteString("}\n\n")

	sb.WriteString("[data-theme=\"dark\"] {\n")
	sb.WriteString("  color-scheme: dark;\n")
	sb.WriteString("  --theme-color: " + entity.ColorSchemeDark.ThemeColor() + ";\n")
	sb.WriteString(frame.Dark.ToCSSVars())
	sb.WriteString("}\n\n")

	sb.WriteString(":root:not([data-theme]) {\n")
	sb.WriteString("  --data-theme: " + frame.Scheme.String() + ";\n")
	if frame.Scheme.IsDark() {
		sb.WriteString("  color-scheme: dark;\n")
		sb.WriteString("  --theme-color: " + frame.ThemeColor + ";\n")
		sb.WriteString(frame.Dark.ToCSSVars())
	}
	sb.WriteString("}\n")

	return sb.String()
}

// StylesheetOutput writes the generated CSS to a file.
type StylesheetOutput struct {
	file fileOutput
}

var _ Output = (*StylesheetOutput)(nil)

// NewStylesheetOutput creates an output writing to path.
func NewStylesheetOutput(path string) *StylesheetOutput {
	return &StylesheetOutput{file: fileOutput{path: path}}
}

// Name implements Output.
func (*StylesheetOutput) Name() string { return "stylesheet" }

// Path returns the stylesheet location.
func (s *StylesheetOutput) Path() string { return s.file.path }

// Render implements Output.
func (s *StylesheetOutput) Render(_ context.Context, frame Frame) error {
	return s.file.write([]byte(GenerateStylesheet(frame)))
}

// fileOutput remembers the last content written and skips identical writes.
type fileOutput struct {
	path string

	mu   sync.Mutex
	last []byte
}

func (f *fileOutput) write(data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.last != nil && bytes.Equal(f.last, data) {
		return nil
	}
	if err := writeFileAtomic(f.path, data); err != nil {
		return err
	}
	f.last = data
	return nil
}

// writeFileAtomic writes to a temp file next to path and renames it over
// path, so readers never see a partial file.
func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), outputDirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, outputFilePerm); err != nil {
		return fmt.Errorf("write %s: %w", tempPath, err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
