package colorscheme

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/bnema/dusk/internal/logging"
)

// GsettingsMonitor follows `gsettings monitor` for the GNOME color-scheme key.
type GsettingsMonitor struct {
	lookPath func(string) (string, error)
}

// NewGsettingsMonitor creates a monitor for org.gnome.desktop.interface color-scheme.
func NewGsettingsMonitor() *GsettingsMonitor {
	return &GsettingsMonitor{lookPath: exec.LookPath}
}

// Name implements Monitor.
func (*GsettingsMonitor) Name() string {
	return detectorNameGsettings
}

// Run implements Monitor. Without a gsettings binary it waits for ctx and
// returns nil.
func (m *GsettingsMonitor) Run(ctx context.Context, onChange func()) error {
	log := logging.FromContext(logging.WithDetector(ctx, detectorNameGsettings))

	bin, err := m.lookPath("gsettings")
	if err != nil {
		log.Debug().Msg("gsettings not found, monitor disabled")
		<-ctx.Done()
		return nil
	}

	cmd := exec.CommandContext(ctx, bin, "monitor", gsettingsSchema, gsettingsKey)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("gsettings monitor pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start gsettings monitor: %w", err)
	}
	log.Debug().Int("pid", cmd.Process.Pid).Msg("gsettings monitor started")

	scanErr := scanMonitorLines(stdout, onChange)
	waitErr := cmd.Wait()

	if ctx.Err() != nil {
		return nil
	}
	if scanErr != nil {
		return fmt.Errorf("read gsettings monitor: %w", scanErr)
	}
	if waitErr != nil {
		return fmt.Errorf("gsettings monitor exited: %w", waitErr)
	}
	return nil
}

// scanMonitorLines calls onChange for every non-empty line. gsettings only
// prints when the monitored key changes, including a switch to 'default'.
func scanMonitorLines(r io.Reader, onChange func()) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == "" {
			continue
		}
		onChange()
	}
	return scanner.Err()
}
