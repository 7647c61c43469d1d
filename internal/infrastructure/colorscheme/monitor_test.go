package colorscheme

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanMonitorLines(t *testing.T) {
	input := "color-scheme: 'prefer-dark'\n\ncolor-scheme: 'default'\ncolor-scheme: 'prefer-light'\n"
	calls := 0

	err := scanMonitorLines(strings.NewReader(input), func() { calls++ })

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestGsettingsMonitor_NoBinaryWaitsForCancel(t *testing.T) {
	m := &GsettingsMonitor{lookPath: func(string) (string, error) { return "", errors.New("not found") }}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- m.Run(ctx, func() { t.Error("unexpected change") }) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("monitor did not stop")
	}
}

func TestFileWatcher_ReportsChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "ambient")
	w := NewFileWatcher(path)

	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, func() { calls.Add(1) }) }()

	// The watcher creates the directory; wait for it before writing.
	require.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Dir(path))
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)

	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("dark"), 0o600)
		return calls.Load() > 0
	}, 5*time.Second, 50*time.Millisecond)

	before := calls.Load()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "unrelated"), []byte("x"), 0o600))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, before, calls.Load(), "other files are ignored")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
