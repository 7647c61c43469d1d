package colorscheme

import (
	"os"
	"strings"

	"github.com/bnema/dusk/internal/domain/entity"
)

const (
	detectorNameFile = "override-file"
	priorityFile     = 50
)

// FileDetector reads the ambient preference from a plain text file holding
// "dark" or "light". Tools like darkman or a cron job can write it on a
// schedule; dusk watches it for changes.
type FileDetector struct {
	path string
}

// NewFileDetector creates a detector for the given file path.
func NewFileDetector(path string) *FileDetector {
	return &FileDetector{path: path}
}

// Path returns the watched file path.
func (d *FileDetector) Path() string {
	return d.path
}

// Name implements port.ColorSchemeDetector.
func (*FileDetector) Name() string {
	return detectorNameFile
}

// Priority implements port.ColorSchemeDetector.
func (*FileDetector) Priority() int {
	return priorityFile
}

// Available implements port.ColorSchemeDetector.
func (d *FileDetector) Available() bool {
	if d.path == "" {
		return false
	}
	info, err := os.Stat(d.path)
	return err == nil && info.Mode().IsRegular()
}

// Detect implements port.ColorSchemeDetector.
func (d *FileDetector) Detect() (prefersDark, ok bool) {
	if d.path == "" {
		return false, false
	}
	data, err := os.ReadFile(d.path)
	if err != nil {
		return false, false
	}
	scheme, err := entity.ParseColorScheme(strings.TrimSpace(string(data)))
	if err != nil {
		return false, false
	}
	return scheme.IsDark(), true
}
