package transpile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch registers a watcher on inputPath's parent directory — watching the
// directory rather than the file itself so editors that replace-via-rename
// are still observed — and invokes rebuild once per Write/Create/Rename
// event that targets inputPath. It runs until ctx is cancelled. A rebuild
// error is logged and printed but does not stop the loop; only the initial,
// non-watch invocation treats a parse error as fatal.
func Watch(ctx context.Context, inputPath string, log *zap.SugaredLogger, rebuild func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(inputPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	target, err := filepath.Abs(inputPath)
	if err != nil {
		target = inputPath
	}

	fmt.Fprintln(os.Stderr, Stage("Watching %s for changes (Ctrl+C to stop)...", inputPath))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil {
				abs = ev.Name
			}
			if abs != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			fmt.Fprintln(os.Stderr, Stage("rebuilding..."))
			if err := rebuild(); err != nil {
				log.Errorw("watch rebuild failed", "error", err)
				fmt.Fprintln(os.Stderr, Err("Error: %v", err))
				if hint := ErrorHint(err); hint != "" {
					fmt.Fprintln(os.Stderr, Hint("Hint: %s", hint))
				}
				continue
			}
			fmt.Fprintln(os.Stderr, Success("done"))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Errorw("watcher error", "error", err)
		}
	}
}
