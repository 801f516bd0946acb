package preview

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/attrdoc/internal/logfields"
)

// catalogWatcher monitors the directories behind the catalog globs and
// invokes onChange after a debounce window. Rapid editor save bursts
// collapse into one rebuild.
type catalogWatcher struct {
	watcher      *fsnotify.Watcher
	onChange     func()
	debounceTime time.Duration
}

func newCatalogWatcher(globs []string, onChange func()) (*catalogWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	cw := &catalogWatcher{
		watcher:      watcher,
		onChange:     onChange,
		debounceTime: 500 * time.Millisecond,
	}

	// Watching directories is more reliable than watching files:
	// editors replace files on save, which drops file-level watches.
	for _, dir := range watchDirs(globs) {
		if err := watcher.Add(dir); err != nil {
			slog.Warn("Failed to watch catalog directory", logfields.Path(dir), logfields.Error(err))
			continue
		}
		slog.Debug("Watching catalog directory", logfields.Path(dir))
	}
	return cw, nil
}

// watchDirs derives the existing base directories from the glob patterns.
func watchDirs(globs []string) []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, g := range globs {
		base, _ := doublestar.SplitPattern(g)
		if base == "" {
			base = "."
		}
		if seen[base] {
			continue
		}
		if st, err := os.Stat(base); err != nil || !st.IsDir() {
			continue
		}
		seen[base] = true
		dirs = append(dirs, base)
	}
	return dirs
}

// Start begins the watch loop.
func (cw *catalogWatcher) Start(ctx context.Context) {
	go cw.loop(ctx)
}

func (cw *catalogWatcher) loop(ctx context.Context) {
	var debounce *time.Timer
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			slog.Debug("Catalog change detected", logfields.Path(event.Name), "op", event.Op.String())
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(cw.debounceTime, cw.onChange)
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("Catalog watcher error", logfields.Error(err))
		}
	}
}

// Close stops the underlying filesystem watcher.
func (cw *catalogWatcher) Close() error {
	return cw.watcher.Close()
}
