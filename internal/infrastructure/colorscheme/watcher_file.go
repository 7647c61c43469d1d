package colorscheme

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/dusk/internal/logging"
	"github.com/fsnotify/fsnotify"
)

const watchDirPerm = 0o755

// FileWatcher watches the override file. It watches the parent directory so
// that atomic replaces and late creation are seen.
type FileWatcher struct {
	path string
}

// NewFileWatcher creates a watcher for path.
func NewFileWatcher(path string) *FileWatcher {
	return &FileWatcher{path: filepath.Clean(path)}
}

// Name implements Monitor.
func (*FileWatcher) Name() string {
	return detectorNameFile
}

// Run implements Monitor.
func (w *FileWatcher) Run(ctx context.Context, onChange func()) error {
	log := logging.FromContext(logging.WithDetector(ctx, detectorNameFile))

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, watchDirPerm); err != nil {
		return fmt.Errorf("create override directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	log.Debug().Str("path", w.path).Msg("watching override file")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				log.Debug().Str("op", event.Op.String()).Msg("override file changed")
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("override file watcher error")
		}
	}
}
