package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Iron-Ham/teamdate/internal/logging"
)

// watchDebounce collapses the burst of events editors emit for one save.
const watchDebounce = 100 * time.Millisecond

// Watch calls onChange after the file at path is written, created or
// replaced. It watches the parent directory so atomic renames are seen, and
// blocks until ctx is done.
func Watch(ctx context.Context, path string, logger *logging.Logger, onChange func()) error {
	if logger == nil {
		logger = logging.NopLogger()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	debounceTimer := time.NewTimer(0)
	<-debounceTimer.C // drain initial timer
	defer debounceTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("config file changed", "path", target, "op", event.Op.String())
			debounceTimer.Reset(watchDebounce)

		case <-debounceTimer.C:
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher error", "error", err)
		}
	}
}
